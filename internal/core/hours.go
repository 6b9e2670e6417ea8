package core

import (
	"math"
	"time"
)

const (
	hoursPerEvent = 0.5

	// ActiveProjectsPlaceholder is a fixed display value, not derived from data.
	ActiveProjectsPlaceholder = 8
)

// EstimateCodingHours converts this month's event count into hours. The
// per-day average divides by the current day of month, so it only settles
// toward the real average by month end.
func EstimateCodingHours(events []RawEvent, now time.Time) CodingStats {
	loc := now.Location()

	count := 0
	for _, e := range events {
		t := e.CreatedAt.In(loc)
		if t.Year() == now.Year() && t.Month() == now.Month() {
			count++
		}
	}

	hours := float64(count) * hoursPerEvent
	avg := hours / float64(now.Day())

	return CodingStats{
		MonthlyHours:   int(math.Round(hours)),
		AvgPerDay:      math.Round(avg*10) / 10,
		ActiveProjects: ActiveProjectsPlaceholder,
	}
}
