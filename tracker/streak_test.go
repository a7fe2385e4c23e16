package tracker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const today = "2024-01-05"

func TestCurrentStreakEmpty(t *testing.T) {
	assert.Equal(t, 0, CurrentStreak(nil, today))
	assert.Equal(t, 0, CurrentStreak([]string{}, today))
}

func TestCurrentStreakConsecutiveRunEndingToday(t *testing.T) {
	run := []string{"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04", "2024-01-05"}
	assert.Equal(t, 5, CurrentStreak(run, today))
}

func TestCurrentStreakStopsAtGap(t *testing.T) {
	// Completed on the 1st and the 3rd only; the scan stops at the missing 2nd.
	assert.Equal(t, 1, CurrentStreak([]string{"2024-01-01", "2024-01-03"}, "2024-01-03"))
}

func TestCurrentStreakBrokenWhenLastIsBeforeYesterday(t *testing.T) {
	assert.Equal(t, 0, CurrentStreak([]string{"2024-01-01", "2024-01-02", "2024-01-03"}, today))
}

func TestCurrentStreakMayEndYesterday(t *testing.T) {
	assert.Equal(t, 2, CurrentStreak([]string{"2024-01-03", "2024-01-04"}, today))
}

func TestCurrentStreakSingleDay(t *testing.T) {
	assert.Equal(t, 1, CurrentStreak([]string{today}, today))
	assert.Equal(t, 1, CurrentStreak([]string{"2024-01-04"}, today))
	assert.Equal(t, 0, CurrentStreak([]string{"2024-01-03"}, today))
}

func TestCurrentStreakOrderAndDuplicateInvariant(t *testing.T) {
	shuffled := []string{"2024-01-04", "2024-01-02", "2024-01-05", "2024-01-03", "2024-01-04", "2024-01-05"}
	assert.Equal(t, 4, CurrentStreak(shuffled, today))
}

func TestCurrentStreakAcrossMonthBoundary(t *testing.T) {
	run := []string{"2024-01-30", "2024-01-31", "2024-02-01"}
	assert.Equal(t, 3, CurrentStreak(run, "2024-02-01"))
}

func TestBestStreakEmpty(t *testing.T) {
	assert.Equal(t, 0, BestStreak(nil))
}

func TestBestStreakFindsLongestRun(t *testing.T) {
	history := []string{
		"2024-01-01", "2024-01-02", // run of 2
		"2024-01-10", "2024-01-11", "2024-01-12", "2024-01-13", // run of 4
		"2024-01-20", // run of 1
	}
	assert.Equal(t, 4, BestStreak(history))
}

func TestBestStreakIgnoresOrderAndDuplicates(t *testing.T) {
	history := []string{"2024-01-12", "2024-01-10", "2024-01-11", "2024-01-11", "2024-01-01"}
	assert.Equal(t, 3, BestStreak(history))
}

func TestBestStreakDoesNotRequireRecency(t *testing.T) {
	// An old run still counts for best even when the current streak is dead.
	history := []string{"2020-05-01", "2020-05-02", "2020-05-03"}
	assert.Equal(t, 3, BestStreak(history))
	assert.Equal(t, 0, CurrentStreak(history, today))
}

func TestBestStreakLeapDay(t *testing.T) {
	assert.Equal(t, 3, BestStreak([]string{"2024-02-28", "2024-02-29", "2024-03-01"}))
}
