package tracker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/habitloop/habitloop/dates"
)

func TestHeatLevelEndpoints(t *testing.T) {
	assert.Equal(t, 0, HeatLevel(0))
	assert.Equal(t, 5, HeatLevel(1.0))
}

func TestHeatLevelThresholds(t *testing.T) {
	cases := map[float64]int{
		0.0:  0,
		0.1:  1,
		0.24: 1,
		0.25: 2,
		0.4:  2,
		0.5:  3,
		0.74: 3,
		0.75: 4,
		0.99: 4,
		1.0:  5,
	}
	for ratio, want := range cases {
		assert.Equal(t, want, HeatLevel(ratio), "ratio %v", ratio)
	}
}

func TestHeatLevelMonotonic(t *testing.T) {
	prev := HeatLevel(0)
	for r := 0.0; r <= 1.0; r += 0.01 {
		level := HeatLevel(r)
		assert.GreaterOrEqual(t, level, prev, "level must not decrease at ratio %v", r)
		prev = level
	}
}

func TestHeatmapWindowShape(t *testing.T) {
	days := Heatmap(nil, today)
	require.Len(t, days, HeatmapDays)
	assert.Equal(t, today, days[len(days)-1].Date)
	assert.Equal(t, dates.AddDays(today, -(HeatmapDays-1)), days[0].Date)
	for _, d := range days {
		assert.Equal(t, 0, d.Level, "no habits means ratio 0 everywhere")
	}
}

func TestHeatmapLevels(t *testing.T) {
	habits := []*Habit{
		habitWith(t, "a", "2024-01-05", "2024-01-04"),
		habitWith(t, "b", "2024-01-05"),
	}

	days := Heatmap(habits, today)
	byDate := map[string]int{}
	for _, d := range days {
		byDate[d.Date] = d.Level
	}

	assert.Equal(t, 5, byDate["2024-01-05"]) // 2/2
	assert.Equal(t, 3, byDate["2024-01-04"]) // 1/2
	assert.Equal(t, 0, byDate["2024-01-03"])
}

func TestHeatmapWeeksPadding(t *testing.T) {
	days := Heatmap(nil, today) // window starts 2023-01-06, a Friday
	weeks := HeatmapWeeks(days)
	require.NotEmpty(t, weeks)

	first := weeks[0]
	require.Len(t, first, 7)
	for i := 0; i < 5; i++ {
		assert.Equal(t, PadLevel, first[i].Level, "cell %d should be padding", i)
		assert.Empty(t, first[i].Date)
	}
	assert.Equal(t, "2023-01-06", first[5].Date)

	// Middle columns are full weeks.
	for _, w := range weeks[1 : len(weeks)-1] {
		assert.Len(t, w, 7)
	}

	// Every real date is present exactly once.
	total := 0
	for _, w := range weeks {
		for _, d := range w {
			if d.Level != PadLevel {
				total++
			}
		}
	}
	assert.Equal(t, HeatmapDays, total)
}

func TestHeatmapWeeksEmpty(t *testing.T) {
	assert.Nil(t, HeatmapWeeks(nil))
}
