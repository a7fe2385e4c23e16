package tracker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleAddsAndRemoves(t *testing.T) {
	h := NewHabit("h1", "Exercise")

	done, err := h.Toggle("2024-01-05", "")
	require.NoError(t, err)
	assert.True(t, done)
	assert.True(t, h.Completed("2024-01-05"))
	assert.Equal(t, 1, h.Len())

	done, err = h.Toggle("2024-01-05", "")
	require.NoError(t, err)
	assert.False(t, done)
	assert.False(t, h.Completed("2024-01-05"))
	assert.Equal(t, 0, h.Len())
}

func TestToggleRoundTripRestoresState(t *testing.T) {
	h := Restore("h1", "Read", []string{"2024-01-01", "2024-01-02"}, map[string]string{"2024-01-01": "ch. 3"})
	before := h.CompletedDates()

	_, err := h.Toggle("2024-01-05", "late start")
	require.NoError(t, err)
	_, err = h.Toggle("2024-01-05", "")
	require.NoError(t, err)

	assert.Equal(t, before, h.CompletedDates())
	_, hasNote := h.Note("2024-01-05")
	assert.False(t, hasNote, "note added on toggle-on must vanish on toggle-off")

	note, ok := h.Note("2024-01-01")
	require.True(t, ok)
	assert.Equal(t, "ch. 3", note)
}

func TestToggleOffRemovesNote(t *testing.T) {
	h := NewHabit("h1", "Meditate")
	_, err := h.Toggle("2024-01-03", "10 minutes")
	require.NoError(t, err)
	note, ok := h.Note("2024-01-03")
	require.True(t, ok)
	assert.Equal(t, "10 minutes", note)

	_, err = h.Toggle("2024-01-03", "")
	require.NoError(t, err)
	_, ok = h.Note("2024-01-03")
	assert.False(t, ok)
}

func TestToggleRejectsMalformedDateWithoutMutation(t *testing.T) {
	h := NewHabit("h1", "Water")
	_, err := h.Toggle("2024-01-05", "")
	require.NoError(t, err)

	_, err = h.Toggle("05/01/2024", "x")
	assert.ErrorIs(t, err, ErrInvalidDate)
	assert.Equal(t, []string{"2024-01-05"}, h.CompletedDates())
}

func TestSetNoteRequiresCompletion(t *testing.T) {
	h := NewHabit("h1", "Journal")
	err := h.SetNote("2024-01-05", "three pages")
	assert.ErrorIs(t, err, ErrNotCompleted)

	_, err = h.Toggle("2024-01-05", "")
	require.NoError(t, err)
	require.NoError(t, h.SetNote("2024-01-05", "three pages"))

	note, ok := h.Note("2024-01-05")
	require.True(t, ok)
	assert.Equal(t, "three pages", note)

	// Upsert overwrites.
	require.NoError(t, h.SetNote("2024-01-05", "four pages"))
	note, _ = h.Note("2024-01-05")
	assert.Equal(t, "four pages", note)
}

func TestRestoreDropsDuplicatesAndOrphanNotes(t *testing.T) {
	h := Restore("h1", "Run",
		[]string{"2024-01-01", "2024-01-01", "2024-01-02"},
		map[string]string{"2024-01-01": "5k", "2024-01-09": "orphan"})

	assert.Equal(t, 2, h.Len())
	_, ok := h.Note("2024-01-09")
	assert.False(t, ok)
}

func TestApplyPartialUpdate(t *testing.T) {
	h := NewHabit("h1", "Old Name")
	h.Icon = "heart"
	h.WeeklyGoal = 7

	name := "New Name"
	goal := 3
	h.Apply(HabitUpdate{Name: &name, WeeklyGoal: &goal})

	assert.Equal(t, "New Name", h.Name)
	assert.Equal(t, 3, h.WeeklyGoal)
	assert.Equal(t, "heart", h.Icon, "absent fields stay untouched")
}

func TestWeeklyProgress(t *testing.T) {
	h := NewHabit("h1", "Stretch")
	h.WeeklyGoal = 3
	for _, d := range []string{"2024-01-03", "2024-01-04", "2024-01-05", "2023-12-25"} {
		_, err := h.Toggle(d, "")
		require.NoError(t, err)
	}

	count, ratio := h.WeeklyProgress("2024-01-05")
	assert.Equal(t, 3, count)
	assert.InDelta(t, 1.0, ratio, 1e-9)
}

func TestWeeklyProgressRatioNotClamped(t *testing.T) {
	h := NewHabit("h1", "Walk")
	h.WeeklyGoal = 2
	for _, d := range []string{"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04"} {
		_, err := h.Toggle(d, "")
		require.NoError(t, err)
	}

	count, ratio := h.WeeklyProgress("2024-01-05")
	assert.Equal(t, 4, count)
	assert.InDelta(t, 2.0, ratio, 1e-9)
}
