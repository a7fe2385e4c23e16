package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTodayCache(t *testing.T) {
	now := time.Date(2024, 1, 5, 23, 59, 30, 0, time.UTC)
	clock := func() time.Time { return now }
	cache := NewTodayCache(clock, time.Minute)

	assert.Equal(t, "2024-01-05", cache.Today())

	// Within the TTL the cached value is served, even across midnight.
	now = now.Add(45 * time.Second) // 2024-01-06 00:00:15
	assert.Equal(t, "2024-01-05", cache.Today())

	// Once the TTL expires the new day shows up.
	now = now.Add(30 * time.Second)
	assert.Equal(t, "2024-01-06", cache.Today())
}

func TestTodayCacheZeroTTLAlwaysFresh(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	cache := NewTodayCache(func() time.Time { return now }, 0)

	assert.Equal(t, "2024-03-01", cache.Today())
	now = now.AddDate(0, 0, 1)
	assert.Equal(t, "2024-03-02", cache.Today())
}

func TestWeekWindow(t *testing.T) {
	week := WeekWindow("2024-01-07")
	require.Len(t, week, 7)
	assert.Equal(t, "2024-01-01", week[0])
	assert.Equal(t, "2024-01-07", week[6])
}

func TestWeekWindowCrossesMonthBoundary(t *testing.T) {
	week := WeekWindow("2024-03-02")
	assert.Equal(t, []string{
		"2024-02-25", "2024-02-26", "2024-02-27", "2024-02-28",
		"2024-02-29", "2024-03-01", "2024-03-02",
	}, week)
}

func TestDayName(t *testing.T) {
	assert.Equal(t, "Mon", DayName("2024-01-01"))
	assert.Equal(t, "Sun", DayName("2024-01-07"))
	assert.Equal(t, "", DayName("not-a-date"))
}

func TestMonthDates(t *testing.T) {
	feb := MonthDates(2024, time.February)
	require.Len(t, feb, 29) // leap year
	assert.Equal(t, "2024-02-01", feb[0])
	assert.Equal(t, "2024-02-29", feb[28])

	apr := MonthDates(2023, time.April)
	assert.Len(t, apr, 30)
}

func TestAddDays(t *testing.T) {
	assert.Equal(t, "2024-01-01", AddDays("2023-12-31", 1))
	assert.Equal(t, "2023-12-31", AddDays("2024-01-01", -1))
	assert.Equal(t, "2024-02-29", AddDays("2024-02-28", 1))
}

func TestValid(t *testing.T) {
	assert.True(t, Valid("2024-01-31"))
	assert.False(t, Valid("2024-1-31"))
	assert.False(t, Valid("2024-02-30"))
	assert.False(t, Valid("20240131"))
	assert.False(t, Valid(""))
}

func TestUniquePreservesOrder(t *testing.T) {
	got := Unique([]string{"2024-01-03", "2024-01-01", "2024-01-03", "2024-01-02", "2024-01-01"})
	assert.Equal(t, []string{"2024-01-03", "2024-01-01", "2024-01-02"}, got)
}

func TestSortedDescAsc(t *testing.T) {
	in := []string{"2024-01-02", "2024-01-05", "2024-01-02", "2023-12-31"}
	assert.Equal(t, []string{"2024-01-05", "2024-01-02", "2023-12-31"}, SortedDesc(in))
	assert.Equal(t, []string{"2023-12-31", "2024-01-02", "2024-01-05"}, SortedAsc(in))
}
