package tracker

import "github.com/habitloop/habitloop/dates"

// HeatmapDays is the size of the rolling heatmap window.
const HeatmapDays = 365

// PadLevel marks grid cells before the first real date; they are not rendered.
const PadLevel = -1

// HeatmapDay is one cell of the calendar heatmap.
type HeatmapDay struct {
	Date  string `json:"date"`
	Level int    `json:"level"`
}

// HeatLevel buckets a completion ratio into a 0-5 intensity. The thresholds
// are inclusive on the upper rules, so a ratio sitting exactly on a boundary
// takes the higher level, and only a full 100% reaches 5.
func HeatLevel(ratio float64) int {
	level := 0
	if ratio > 0 {
		level = 1
	}
	if ratio >= 0.25 {
		level = 2
	}
	if ratio >= 0.5 {
		level = 3
	}
	if ratio >= 0.75 {
		level = 4
	}
	if ratio >= 1 {
		level = 5
	}
	return level
}

// Heatmap projects the last HeatmapDays dates ending at today, oldest first,
// onto intensity levels. With no habits every ratio is 0.
func Heatmap(habits []*Habit, today string) []HeatmapDay {
	window := dates.Window(today, HeatmapDays)
	out := make([]HeatmapDay, 0, len(window))
	for _, d := range window {
		done := 0
		for _, h := range habits {
			if h.Completed(d) {
				done++
			}
		}
		ratio := 0.0
		if len(habits) > 0 {
			ratio = float64(done) / float64(len(habits))
		}
		out = append(out, HeatmapDay{Date: d, Level: HeatLevel(ratio)})
	}
	return out
}

// HeatmapWeeks groups heatmap days into 7-row week columns for a calendar
// grid. The first column is padded with PadLevel cells so each date lands on
// its day-of-week row (Sunday first).
func HeatmapWeeks(days []HeatmapDay) [][]HeatmapDay {
	if len(days) == 0 {
		return nil
	}

	var weeks [][]HeatmapDay
	week := make([]HeatmapDay, 0, 7)
	for i := 0; i < int(dates.Weekday(days[0].Date)); i++ {
		week = append(week, HeatmapDay{Level: PadLevel})
	}

	for _, d := range days {
		if len(week) == 7 {
			weeks = append(weeks, week)
			week = make([]HeatmapDay, 0, 7)
		}
		week = append(week, d)
	}
	if len(week) > 0 {
		weeks = append(weeks, week)
	}
	return weeks
}
