package core_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vukan322/devdash/internal/core"
)

func TestMonthlyContributions_WindowLabels(t *testing.T) {
	now := time.Date(2026, time.October, 16, 12, 0, 0, 0, time.UTC)

	points := core.MonthlyContributions(nil, now)

	require.Len(t, points, 6)
	months := make([]string, 0, len(points))
	for _, p := range points {
		months = append(months, p.Month)
		assert.Zero(t, p.Contributions)
	}
	assert.Equal(t, []string{"May", "Jun", "Jul", "Aug", "Sep", "Oct"}, months)
}

func TestMonthlyContributions_YearRollover(t *testing.T) {
	now := time.Date(2026, time.February, 3, 12, 0, 0, 0, time.UTC)

	events := []core.RawEvent{
		eventAt(time.Date(2025, time.September, 30, 10, 0, 0, 0, time.UTC)),
		eventAt(time.Date(2026, time.January, 5, 10, 0, 0, 0, time.UTC)),
		eventAt(time.Date(2026, time.February, 1, 10, 0, 0, 0, time.UTC)),
		eventAt(time.Date(2026, time.February, 2, 10, 0, 0, 0, time.UTC)),
		// Same month a year earlier stays outside the window.
		eventAt(time.Date(2025, time.February, 2, 10, 0, 0, 0, time.UTC)),
		// Before the window.
		eventAt(time.Date(2025, time.August, 31, 10, 0, 0, 0, time.UTC)),
	}

	points := core.MonthlyContributions(events, now)

	assert.Equal(t, []core.MonthlyPoint{
		{Month: "Sep", Contributions: 5},
		{Month: "Oct", Contributions: 0},
		{Month: "Nov", Contributions: 0},
		{Month: "Dec", Contributions: 0},
		{Month: "Jan", Contributions: 5},
		{Month: "Feb", Contributions: 10},
	}, points)
}

func TestMonthlyContributions_EndOfMonth(t *testing.T) {
	// Day 31 must not push earlier months forward when normalising.
	now := time.Date(2026, time.March, 31, 12, 0, 0, 0, time.UTC)

	points := core.MonthlyContributions(nil, now)

	require.Len(t, points, 6)
	assert.Equal(t, "Oct", points[0].Month)
	assert.Equal(t, "Feb", points[4].Month)
	assert.Equal(t, "Mar", points[5].Month)
}
