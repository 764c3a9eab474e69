package ledger

import (
	"iter"
	"time"
)

// Month enumerates every day 1..daysInMonth of the given month together
// with the entries whose date equals that day's canonical string. The
// sequence is finite and restartable; the day index is rebuilt on each
// iteration rather than cached.
//
// Matching is exact string comparison, so an entry whose stored date is
// not in zero-padded YYYY-MM-DD form never appears in any bucket.
func Month(entries []Entry, year int, month time.Month) iter.Seq2[int, []Entry] {
	return func(yield func(int, []Entry) bool) {
		byDate := make(map[string][]Entry, len(entries))
		for _, e := range entries {
			byDate[e.Date] = append(byDate[e.Date], e)
		}
		for d := 1; d <= DaysIn(year, month); d++ {
			key := DayKey{Year: year, Month: month, Day: d}.String()
			if !yield(d, byDate[key]) {
				return
			}
		}
	}
}
