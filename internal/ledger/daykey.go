package ledger

import (
	"fmt"
	"time"
)

// DayKey is a calendar date used as the exact-match key for bucketing.
// Only its canonical zero-padded string form ever matches stored dates.
type DayKey struct {
	Year  int
	Month time.Month
	Day   int
}

// String renders the canonical YYYY-MM-DD form.
func (k DayKey) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", k.Year, int(k.Month), k.Day)
}

// ParseDayKey parses a date string in canonical form. Anything that is
// not already zero-padded (e.g. "2024-3-1") is rejected, matching the
// bucketing rule that such dates never land in any bucket.
func ParseDayKey(s string) (DayKey, bool) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return DayKey{}, false
	}
	k := DayKey{Year: t.Year(), Month: t.Month(), Day: t.Day()}
	if k.String() != s {
		return DayKey{}, false
	}
	return k, true
}

// DayKeyOf truncates a time to its calendar date.
func DayKeyOf(t time.Time) DayKey {
	return DayKey{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// DaysIn returns the number of days in the given month, leap years
// included. Day 0 of the next month normalizes to the last day.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
