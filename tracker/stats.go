package tracker

import (
	"math"

	"github.com/habitloop/habitloop/dates"
)

// Summary is the display-ready aggregate over all of a user's habits. Every
// field is derived; nothing here is stored.
type Summary struct {
	TodayCompletions int `json:"today_completions"`
	TodayTotal       int `json:"today_total"`
	WeeklyRate       int `json:"weekly_rate"`
	BestStreak       int `json:"best_streak"`
	ActiveStreaks    int `json:"active_streaks"`
	TotalCompletions int `json:"total_completions"`
	PerfectDays      int `json:"perfect_days"`
}

// Summarize computes the summary as of today. The per-habit completion sets
// already live on the aggregates, so each membership test is O(1) and the
// whole pass is linear in habits x window rather than rescanning date slices.
func Summarize(habits []*Habit, today string) Summary {
	var s Summary
	s.TodayTotal = len(habits)
	if len(habits) == 0 {
		return s
	}

	week := dates.WeekWindow(today)
	weeklyCompleted := 0
	allDates := map[string]struct{}{}

	for _, h := range habits {
		if h.Completed(today) {
			s.TodayCompletions++
		}
		for _, d := range week {
			if h.Completed(d) {
				weeklyCompleted++
			}
		}
		s.TotalCompletions += h.Len()
		for _, d := range h.CompletedDates() {
			allDates[d] = struct{}{}
		}

		streak := CurrentStreak(h.CompletedDates(), today)
		if streak > 0 {
			s.ActiveStreaks++
		}
		if streak > s.BestStreak {
			s.BestStreak = streak
		}
	}

	s.WeeklyRate = int(math.Round(float64(weeklyCompleted) / float64(len(habits)*7) * 100))

	// A perfect day is a date on which every habit was completed. Only dates
	// with at least one completion can qualify, so the union is enough.
	for d := range allDates {
		done := 0
		for _, h := range habits {
			if h.Completed(d) {
				done++
			}
		}
		if done == len(habits) {
			s.PerfectDays++
		}
	}

	return s
}
