package core

import "time"

const (
	monthlyWindow       = 6
	monthlyDisplayScale = 5
)

// MonthlyContributions buckets events into the trailing six calendar months
// ending with now's month, oldest first.
func MonthlyContributions(events []RawEvent, now time.Time) []MonthlyPoint {
	loc := now.Location()
	points := make([]MonthlyPoint, 0, monthlyWindow)

	for i := monthlyWindow - 1; i >= 0; i-- {
		month := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, loc)

		count := 0
		for _, e := range events {
			t := e.CreatedAt.In(loc)
			if t.Year() == month.Year() && t.Month() == month.Month() {
				count++
			}
		}

		points = append(points, MonthlyPoint{
			Month:         month.Format("Jan"),
			Contributions: count * monthlyDisplayScale,
		})
	}

	return points
}
