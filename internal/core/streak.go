package core

import (
	"sort"
	"time"
)

// ComputeStreak counts consecutive calendar days, walking back from the day
// of now, on which at least one event occurred. Days are taken in now's
// location. The walk stops at the first gap.
func ComputeStreak(events []RawEvent, now time.Time) int {
	if len(events) == 0 {
		return 0
	}

	loc := now.Location()
	seen := make(map[time.Time]bool, len(events))
	var dates []time.Time
	for _, e := range events {
		d := dayOf(e.CreatedAt.In(loc))
		if seen[d] {
			continue
		}
		seen[d] = true
		dates = append(dates, d)
	}

	sort.Slice(dates, func(i, j int) bool {
		return dates[i].After(dates[j])
	})

	today := dayOf(now)
	streak := 0
	for i, d := range dates {
		if !d.Equal(today.AddDate(0, 0, -i)) {
			break
		}
		streak++
	}

	return streak
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
