// Package tracker holds the in-memory habit model and the derivations built
// on top of it: streaks, cross-habit statistics and the calendar heatmap.
// Everything here is pure computation over one user's snapshot; persistence
// and HTTP concerns stay in the boundary layers.
package tracker

import (
	"errors"

	"github.com/habitloop/habitloop/dates"
)

var (
	// ErrInvalidDate marks a malformed YYYY-MM-DD string.
	ErrInvalidDate = errors.New("invalid date")
	// ErrNotCompleted is returned when a note targets a date without a completion.
	ErrNotCompleted = errors.New("date not completed")
)

// Habit is the aggregate a single habit's operations run against. The
// completion set and the notes map are only ever mutated together, so callers
// never observe a completion without its note state settled.
type Habit struct {
	ID           string
	Name         string
	Icon         string
	Color        string
	Category     string
	WeeklyGoal   int
	ReminderTime string
	CreatedAt    string

	order     []string            // completion dates, insertion order
	completed map[string]struct{} // same dates, for membership tests
	notes     map[string]string
}

// NewHabit returns an empty aggregate.
func NewHabit(id, name string) *Habit {
	return &Habit{
		ID:         id,
		Name:       name,
		WeeklyGoal: 7,
		completed:  map[string]struct{}{},
		notes:      map[string]string{},
	}
}

// Restore rebuilds an aggregate from persisted completion records. Duplicate
// dates are collapsed; notes for dates without a completion are dropped since
// the store cannot represent them.
func Restore(id, name string, completions []string, notes map[string]string) *Habit {
	h := NewHabit(id, name)
	for _, d := range dates.Unique(completions) {
		h.completed[d] = struct{}{}
		h.order = append(h.order, d)
	}
	for d, n := range notes {
		if _, ok := h.completed[d]; ok && n != "" {
			h.notes[d] = n
		}
	}
	return h
}

// Completed reports whether the habit was done on the given date.
func (h *Habit) Completed(date string) bool {
	_, ok := h.completed[date]
	return ok
}

// CompletedDates returns the completion dates in insertion order.
func (h *Habit) CompletedDates() []string {
	out := make([]string, len(h.order))
	copy(out, h.order)
	return out
}

// Note returns the note for a date, if any.
func (h *Habit) Note(date string) (string, bool) {
	n, ok := h.notes[date]
	return n, ok
}

// Len returns the all-time completion count.
func (h *Habit) Len() int {
	return len(h.completed)
}

// Toggle flips the completion state for a date. Toggling off also removes the
// date's note; toggling on stores the supplied note (overwriting a previous
// one for that date). Returns whether the date is completed after the call.
// Validation happens before any mutation, so a failed call changes nothing.
func (h *Habit) Toggle(date, note string) (bool, error) {
	if !dates.Valid(date) {
		return false, ErrInvalidDate
	}
	if _, ok := h.completed[date]; ok {
		delete(h.completed, date)
		delete(h.notes, date)
		for i, d := range h.order {
			if d == date {
				h.order = append(h.order[:i], h.order[i+1:]...)
				break
			}
		}
		return false, nil
	}
	h.completed[date] = struct{}{}
	h.order = append(h.order, date)
	if note != "" {
		h.notes[date] = note
	}
	return true, nil
}

// SetNote upserts the note for an already-completed date without touching
// completion state.
func (h *Habit) SetNote(date, text string) error {
	if !dates.Valid(date) {
		return ErrInvalidDate
	}
	if _, ok := h.completed[date]; !ok {
		return ErrNotCompleted
	}
	h.notes[date] = text
	return nil
}

// HabitUpdate carries an optional-field patch for habit settings. Nil fields
// are left untouched. Values are validated by the boundary before Apply; the
// aggregate applies them as given.
type HabitUpdate struct {
	Name         *string
	Icon         *string
	Color        *string
	Category     *string
	WeeklyGoal   *int
	ReminderTime *string
}

// Apply copies the present fields of the update onto the habit.
func (h *Habit) Apply(u HabitUpdate) {
	if u.Name != nil {
		h.Name = *u.Name
	}
	if u.Icon != nil {
		h.Icon = *u.Icon
	}
	if u.Color != nil {
		h.Color = *u.Color
	}
	if u.Category != nil {
		h.Category = *u.Category
	}
	if u.WeeklyGoal != nil {
		h.WeeklyGoal = *u.WeeklyGoal
	}
	if u.ReminderTime != nil {
		h.ReminderTime = *u.ReminderTime
	}
}

// WeeklyProgress returns the completion count inside the 7-day window ending
// at today, and that count as a fraction of the weekly goal. The ratio is not
// clamped: a habit past its goal reports more than 1. Display layers clamp at
// 100% themselves.
func (h *Habit) WeeklyProgress(today string) (count int, ratio float64) {
	for _, d := range dates.WeekWindow(today) {
		if _, ok := h.completed[d]; ok {
			count++
		}
	}
	goal := h.WeeklyGoal
	if goal < 1 {
		goal = 7
	}
	return count, float64(count) / float64(goal)
}
