package core

import (
	"fmt"
	"time"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 3600
	secondsPerDay    = 86400
)

// RelativeTime buckets the age of t at now into a coarse label.
// Timestamps in the future count as "just now".
func RelativeTime(t, now time.Time) string {
	d := int64(now.Sub(t) / time.Second)

	switch {
	case d < secondsPerMinute:
		return "just now"
	case d < secondsPerHour:
		return fmt.Sprintf("%d minutes ago", d/secondsPerMinute)
	case d < secondsPerDay:
		return fmt.Sprintf("%d hours ago", d/secondsPerHour)
	case d < 2*secondsPerDay:
		return "1 day ago"
	default:
		return fmt.Sprintf("%d days ago", d/secondsPerDay)
	}
}

// ParseTimestamp parses an upstream RFC 3339 timestamp.
func ParseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q: %v", ErrInvalidTimestamp, s, err)
	}
	return t, nil
}
