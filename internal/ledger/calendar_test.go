package ledger

import (
	"testing"
	"time"
)

func TestDayKeyString(t *testing.T) {
	cases := []struct {
		key  DayKey
		want string
	}{
		{DayKey{2024, time.March, 1}, "2024-03-01"},
		{DayKey{2024, time.December, 31}, "2024-12-31"},
		{DayKey{987, time.January, 5}, "0987-01-05"},
	}
	for _, tc := range cases {
		if got := tc.key.String(); got != tc.want {
			t.Errorf("String(%+v) = %q, want %q", tc.key, got, tc.want)
		}
	}
}

func TestParseDayKey(t *testing.T) {
	k, ok := ParseDayKey("2024-03-15")
	if !ok {
		t.Fatal("ParseDayKey should accept canonical form")
	}
	if k != (DayKey{2024, time.March, 15}) {
		t.Errorf("ParseDayKey = %+v", k)
	}

	for _, bad := range []string{"2024-3-15", "2024-03-5", "15-03-2024", "2024-03-32", "garbage", ""} {
		if _, ok := ParseDayKey(bad); ok {
			t.Errorf("ParseDayKey(%q) should be rejected", bad)
		}
	}
}

func TestDaysIn(t *testing.T) {
	cases := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2024, time.January, 31},
		{2024, time.February, 29}, // leap year
		{2023, time.February, 28},
		{2024, time.April, 30},
		{2100, time.February, 28}, // century non-leap
	}
	for _, tc := range cases {
		if got := DaysIn(tc.year, tc.month); got != tc.want {
			t.Errorf("DaysIn(%d, %s) = %d, want %d", tc.year, tc.month, got, tc.want)
		}
	}
}

func TestMonth_BucketCount(t *testing.T) {
	var days int
	for range Month(nil, 2024, time.March) {
		days++
	}
	if days != 31 {
		t.Errorf("March should yield 31 buckets, got %d", days)
	}
}

func TestMonth_ExactStringMatch(t *testing.T) {
	entries := []Entry{
		{ID: 1, Date: "2024-03-01", Type: TypeExtra, Hours: 2},
		{ID: 2, Date: "2024-03-01", Type: TypeUse, Hours: 1},
		{ID: 3, Date: "2024-3-1", Type: TypeExtra, Hours: 4},  // not zero-padded: never buckets
		{ID: 4, Date: "2024-04-01", Type: TypeExtra, Hours: 1}, // other month
	}

	seen := map[int]int{}
	for day, bucket := range Month(entries, 2024, time.March) {
		if len(bucket) > 0 {
			seen[day] = len(bucket)
		}
		for _, e := range bucket {
			want := DayKey{2024, time.March, day}.String()
			if e.Date != want {
				t.Errorf("day %d holds entry dated %q", day, e.Date)
			}
		}
	}

	if len(seen) != 1 || seen[1] != 2 {
		t.Errorf("expected exactly day 1 with 2 entries, got %v", seen)
	}
}

func TestMonth_Restartable(t *testing.T) {
	entries := []Entry{{ID: 1, Date: "2024-02-29", Type: TypeExtra, Hours: 1}}
	seq := Month(entries, 2024, time.February)

	for i := 0; i < 2; i++ {
		last, hits := 0, 0
		for day, bucket := range seq {
			last = day
			hits += len(bucket)
		}
		if last != 29 || hits != 1 {
			t.Errorf("pass %d: last day = %d, entries seen = %d", i, last, hits)
		}
	}
}
