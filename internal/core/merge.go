package core

import (
	"sort"
	"strings"
)

const FeedLength = 6

// MergeActivities concatenates primary then secondary records and orders them
// by coarse recency class: minutes and "just now" first, then hours, then
// days. Records within a class keep their relative order.
func MergeActivities(primary, secondary []ActivityRecord) []ActivityRecord {
	merged := make([]ActivityRecord, 0, len(primary)+len(secondary))
	merged = append(merged, primary...)
	merged = append(merged, secondary...)

	sort.SliceStable(merged, func(i, j int) bool {
		return recencyClass(merged[i].Time) < recencyClass(merged[j].Time)
	})

	if len(merged) > FeedLength {
		merged = merged[:FeedLength]
	}
	return merged
}

func recencyClass(label string) int {
	switch {
	case strings.Contains(label, "hour"):
		return 1
	case strings.Contains(label, "day"):
		return 2
	default:
		return 0
	}
}
