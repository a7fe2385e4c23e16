package tracker

import "github.com/habitloop/habitloop/dates"

// CurrentStreak counts consecutive completed days ending at today or
// yesterday. A most recent completion older than yesterday means the streak
// is broken and the result is 0. Input order and duplicates do not matter.
func CurrentStreak(completed []string, today string) int {
	if len(completed) == 0 {
		return 0
	}

	sorted := dates.SortedDesc(completed)
	yesterday := dates.AddDays(today, -1)
	if sorted[0] != today && sorted[0] != yesterday {
		return 0
	}

	streak := 1
	current := sorted[0]
	for _, d := range sorted[1:] {
		prev := dates.AddDays(current, -1)
		if d != prev {
			break
		}
		streak++
		current = prev
	}
	return streak
}

// BestStreak returns the longest run of consecutive completed days anywhere
// in the history. Empty input yields 0.
func BestStreak(completed []string) int {
	sorted := dates.SortedAsc(completed)
	if len(sorted) == 0 {
		return 0
	}

	best, run := 1, 1
	for i := 1; i < len(sorted); i++ {
		if sorted[i] == dates.AddDays(sorted[i-1], 1) {
			run++
		} else {
			run = 1
		}
		if run > best {
			best = run
		}
	}
	return best
}
