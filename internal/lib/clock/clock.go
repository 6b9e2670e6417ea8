package clock

import "time"

// Clock abstracts time to keep derivations deterministic in tests.
type Clock interface {
	Now() time.Time
}

// Local reports the current time in a fixed location, which defines the
// calendar day used for streaks and monthly buckets.
type Local struct {
	Location *time.Location
}

func (c Local) Now() time.Time {
	if c.Location == nil {
		return time.Now()
	}
	return time.Now().In(c.Location)
}

type Fixed struct {
	At time.Time
}

func (c Fixed) Now() time.Time {
	return c.At
}
