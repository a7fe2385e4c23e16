package tracker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func habitWith(t *testing.T, id string, completed ...string) *Habit {
	t.Helper()
	h := NewHabit(id, id)
	for _, d := range completed {
		_, err := h.Toggle(d, "")
		require.NoError(t, err)
	}
	return h
}

func TestSummarizeNoHabits(t *testing.T) {
	s := Summarize(nil, today)
	assert.Equal(t, Summary{}, s)
	assert.Equal(t, 0, s.WeeklyRate, "no division by zero with zero habits")
	assert.Equal(t, 0, s.PerfectDays)
}

func TestSummarizeNoneCompletedToday(t *testing.T) {
	habits := []*Habit{
		habitWith(t, "a", "2024-01-03", "2024-01-04"),
		habitWith(t, "b", "2024-01-02"),
		habitWith(t, "c"),
	}

	s := Summarize(habits, today)
	assert.Equal(t, 0, s.TodayCompletions)
	assert.Equal(t, 3, s.TodayTotal)
	// 3 completions inside the window out of 21 slots.
	assert.Equal(t, 14, s.WeeklyRate)
}

func TestSummarizeStreakFields(t *testing.T) {
	habits := []*Habit{
		habitWith(t, "a", "2024-01-03", "2024-01-04", "2024-01-05"), // current streak 3
		habitWith(t, "b", "2024-01-05"),                             // current streak 1
		habitWith(t, "c", "2024-01-01"),                             // broken
	}

	s := Summarize(habits, today)
	assert.Equal(t, 3, s.BestStreak, "best is the max current streak, not best-ever")
	assert.Equal(t, 2, s.ActiveStreaks)
	assert.Equal(t, 5, s.TotalCompletions)
	assert.Equal(t, 2, s.TodayCompletions)
}

func TestSummarizePerfectDays(t *testing.T) {
	// Both habits done on the 3rd, only one on the 4th.
	habits := []*Habit{
		habitWith(t, "a", "2024-01-03", "2024-01-04"),
		habitWith(t, "b", "2024-01-03"),
	}

	s := Summarize(habits, today)
	assert.Equal(t, 1, s.PerfectDays)
}

func TestSummarizePerfectDaysSingleHabit(t *testing.T) {
	// With one habit every completed date is a perfect day.
	habits := []*Habit{habitWith(t, "a", "2024-01-01", "2024-01-04")}
	assert.Equal(t, 2, Summarize(habits, today).PerfectDays)
}

func TestSummarizeWeeklyRateBounds(t *testing.T) {
	full := []*Habit{habitWith(t, "a",
		"2023-12-30", "2023-12-31", "2024-01-01", "2024-01-02",
		"2024-01-03", "2024-01-04", "2024-01-05")}
	assert.Equal(t, 100, Summarize(full, today).WeeklyRate)

	empty := []*Habit{habitWith(t, "a")}
	assert.Equal(t, 0, Summarize(empty, today).WeeklyRate)
}

func TestSummarizeWeeklyRateRounds(t *testing.T) {
	// 1 of 7 slots = 14.28... -> 14; 5 of 14 slots = 35.7... -> 36.
	one := []*Habit{habitWith(t, "a", "2024-01-05")}
	assert.Equal(t, 14, Summarize(one, today).WeeklyRate)

	two := []*Habit{
		habitWith(t, "a", "2024-01-03", "2024-01-04", "2024-01-05"),
		habitWith(t, "b", "2024-01-04", "2024-01-05"),
	}
	assert.Equal(t, 36, Summarize(two, today).WeeklyRate)
}
