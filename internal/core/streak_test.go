package core_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vukan322/devdash/internal/core"
)

func eventAt(t time.Time) core.RawEvent {
	return core.RawEvent{Type: core.EventPush, CreatedAt: t}
}

func TestComputeStreak(t *testing.T) {
	now := time.Date(2026, time.October, 16, 15, 0, 0, 0, time.UTC)
	today := time.Date(2026, time.October, 16, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		events []core.RawEvent
		want   int
	}{
		{
			name: "no events",
			want: 0,
		},
		{
			name: "three consecutive days",
			events: []core.RawEvent{
				eventAt(today),
				eventAt(today.AddDate(0, 0, -1)),
				eventAt(today.AddDate(0, 0, -2)),
			},
			want: 3,
		},
		{
			name: "gap after today",
			events: []core.RawEvent{
				eventAt(today),
				eventAt(today.AddDate(0, 0, -3)),
			},
			want: 1,
		},
		{
			name: "nothing today",
			events: []core.RawEvent{
				eventAt(today.AddDate(0, 0, -1)),
				eventAt(today.AddDate(0, 0, -2)),
			},
			want: 0,
		},
		{
			name: "several events on the same day count once",
			events: []core.RawEvent{
				eventAt(today),
				eventAt(today.Add(2 * time.Hour)),
				eventAt(today.AddDate(0, 0, -1)),
				eventAt(today.AddDate(0, 0, -1).Add(time.Hour)),
			},
			want: 2,
		},
		{
			name: "upstream order does not matter",
			events: []core.RawEvent{
				eventAt(today.AddDate(0, 0, -2)),
				eventAt(today),
				eventAt(today.AddDate(0, 0, -1)),
			},
			want: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, core.ComputeStreak(tt.events, now))
		})
	}
}

func TestComputeStreak_UsesNowLocation(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	now := time.Date(2026, time.October, 16, 1, 0, 0, 0, loc)

	// 22:30 UTC on the 15th is already the 16th at UTC+3.
	events := []core.RawEvent{
		eventAt(time.Date(2026, time.October, 15, 22, 30, 0, 0, time.UTC)),
	}

	assert.Equal(t, 1, core.ComputeStreak(events, now))
	assert.Equal(t, 0, core.ComputeStreak(events, time.Date(2026, time.October, 16, 10, 0, 0, 0, time.UTC)))
}
