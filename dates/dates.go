// Package dates works with calendar dates as YYYY-MM-DD strings. The format
// is a hard contract: lexicographic order must match chronological order,
// which streak walks and range queries rely on.
package dates

import (
	"sort"
	"sync"
	"time"
)

// Layout is the canonical calendar date format.
const Layout = "2006-01-02"

// TodayCache returns the current calendar date, recomputing at most once per
// TTL. A stale value can survive a day boundary for up to the TTL, which the
// UI tolerates; the point is to avoid formatting the clock on every call.
type TodayCache struct {
	mu      sync.Mutex
	now     func() time.Time
	ttl     time.Duration
	value   string
	fetched time.Time
}

// NewTodayCache builds a cache around the given clock. A nil clock falls back
// to time.Now; a non-positive ttl disables caching.
func NewTodayCache(now func() time.Time, ttl time.Duration) *TodayCache {
	if now == nil {
		now = time.Now
	}
	return &TodayCache{now: now, ttl: ttl}
}

// Today returns the current date in the local timezone.
func (c *TodayCache) Today() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if c.value != "" && c.ttl > 0 && now.Sub(c.fetched) < c.ttl {
		return c.value
	}
	c.value = now.Format(Layout)
	c.fetched = now
	return c.value
}

// Valid reports whether s is a well-formed YYYY-MM-DD date.
func Valid(s string) bool {
	if len(s) != 10 {
		return false
	}
	_, err := time.Parse(Layout, s)
	return err == nil
}

// AddDays shifts a date by n calendar days (n may be negative).
func AddDays(date string, n int) string {
	t, err := time.Parse(Layout, date)
	if err != nil {
		return date
	}
	return t.AddDate(0, 0, n).Format(Layout)
}

// Window returns the n calendar dates ending at today inclusive, oldest first.
func Window(today string, n int) []string {
	out := make([]string, 0, n)
	for i := n - 1; i >= 0; i-- {
		out = append(out, AddDays(today, -i))
	}
	return out
}

// WeekWindow returns the 7 dates ending at today, oldest first.
func WeekWindow(today string) []string {
	return Window(today, 7)
}

// DayName returns the 3-letter weekday abbreviation for a date, e.g. "Mon".
func DayName(date string) string {
	t, err := time.Parse(Layout, date)
	if err != nil {
		return ""
	}
	return t.Format("Mon")
}

// Weekday returns the day of week for a date; Sunday is 0.
func Weekday(date string) time.Weekday {
	t, err := time.Parse(Layout, date)
	if err != nil {
		return time.Sunday
	}
	return t.Weekday()
}

// MonthDates returns every date of the given month, ascending.
func MonthDates(year int, month time.Month) []string {
	out := []string{}
	for d := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC); d.Month() == month; d = d.AddDate(0, 0, 1) {
		out = append(out, d.Format(Layout))
	}
	return out
}

// Unique removes duplicate dates preserving first-seen order.
func Unique(ds []string) []string {
	seen := make(map[string]struct{}, len(ds))
	out := make([]string, 0, len(ds))
	for _, d := range ds {
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	return out
}

// SortedDesc returns a deduplicated copy sorted newest first.
func SortedDesc(ds []string) []string {
	out := Unique(ds)
	sort.Sort(sort.Reverse(sort.StringSlice(out)))
	return out
}

// SortedAsc returns a deduplicated copy sorted oldest first.
func SortedAsc(ds []string) []string {
	out := Unique(ds)
	sort.Strings(out)
	return out
}
