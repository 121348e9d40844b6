package weekcode

import (
	"testing"
	"time"
)

func TestParseFormatRoundTrip(t *testing.T) {
	tests := []struct {
		code string
		want WeekCode
	}{
		{"2026-W07", WeekCode{2026, 7}},
		{"2026-W52", WeekCode{2026, 52}},
		{"2025-W01", WeekCode{2025, 1}},
		{"1999-W33", WeekCode{1999, 33}},
	}

	for _, tt := range tests {
		got, err := Parse(tt.code)
		if err != nil {
			t.Fatalf("Parse(%q): %v", tt.code, err)
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %v, want %v", tt.code, got, tt.want)
		}
		if got.String() != tt.code {
			t.Errorf("String() = %q, want %q", got.String(), tt.code)
		}
	}
}

func TestParseMalformed(t *testing.T) {
	// Non-canonical forms are rejected too: a parsed code must
	// re-serialize to the exact string it was stored under.
	for _, code := range []string{"", "2026", "2026-07", "W07-2026", "abcd-Wxx", "2026-W07xyz", "2026-W7", "2026-W007"} {
		if _, err := Parse(code); err == nil {
			t.Errorf("Parse(%q): expected error, got none", code)
		}
	}
}

func TestCurrent(t *testing.T) {
	tests := []struct {
		date string
		want WeekCode
	}{
		// Jan 1 2026 is a Thursday; week 1 starts Sunday Dec 28 2025.
		{"2026-01-01", WeekCode{2026, 1}},
		{"2026-01-03", WeekCode{2026, 1}},
		{"2026-01-04", WeekCode{2026, 2}}, // the next Sunday
		{"2026-02-10", WeekCode{2026, 7}},
		// Jan 1 2023 is itself a Sunday.
		{"2023-01-01", WeekCode{2023, 1}},
		{"2023-01-08", WeekCode{2023, 2}},
	}

	for _, tt := range tests {
		d, err := time.Parse("2006-01-02", tt.date)
		if err != nil {
			t.Fatal(err)
		}
		if got := Current(d); got != tt.want {
			t.Errorf("Current(%s) = %v, want %v", tt.date, got, tt.want)
		}
	}
}

func TestOffsetRoundTrip(t *testing.T) {
	codes := []WeekCode{{2026, 7}, {2026, 30}, {2025, 14}}
	for _, c := range codes {
		for _, n := range []int{1, 3, 5, -2, -6} {
			if got := c.Offset(n).Offset(-n); got != c {
				t.Errorf("Offset(%v, %d) round trip = %v, want %v", c, n, got, c)
			}
		}
	}
}

func TestOffsetRollover(t *testing.T) {
	tests := []struct {
		in   WeekCode
		n    int
		want WeekCode
	}{
		{WeekCode{2026, 1}, -1, WeekCode{2025, 52}},
		{WeekCode{2026, 52}, 1, WeekCode{2027, 1}},
		{WeekCode{2026, 2}, -5, WeekCode{2025, 49}},
		{WeekCode{2026, 50}, 6, WeekCode{2027, 4}},
		{WeekCode{2026, 10}, 104, WeekCode{2028, 10}},
		{WeekCode{2026, 10}, -104, WeekCode{2024, 10}},
	}

	for _, tt := range tests {
		if got := tt.in.Offset(tt.n); got != tt.want {
			t.Errorf("%v.Offset(%d) = %v, want %v", tt.in, tt.n, got, tt.want)
		}
	}
}

func TestPreviousCrossesYearBoundary(t *testing.T) {
	got := WeekCode{Year: 2026, Week: 1}.Previous()
	want := WeekCode{Year: 2025, Week: 52}
	if got != want {
		t.Errorf("Previous() = %v, want %v", got, want)
	}
}

func TestPreviousWithinYear(t *testing.T) {
	got := WeekCode{Year: 2026, Week: 7}.Previous()
	if got.String() != "2026-W06" {
		t.Errorf("Previous() = %s, want 2026-W06", got)
	}
}

func TestDateForDay(t *testing.T) {
	// 2026-W07 starts Sunday Feb 8 2026.
	w := WeekCode{Year: 2026, Week: 7}

	tests := []struct {
		dayIndex int
		want     string
	}{
		{0, "2026-02-08"},
		{1, "2026-02-09"},
		{6, "2026-02-14"},
	}

	for _, tt := range tests {
		got := w.DateForDay(tt.dayIndex, time.UTC).Format("2006-01-02")
		if got != tt.want {
			t.Errorf("DateForDay(%d) = %s, want %s", tt.dayIndex, got, tt.want)
		}
	}
}

func TestOrdering(t *testing.T) {
	a := WeekCode{2025, 52}
	b := WeekCode{2026, 1}

	if !a.Before(b) || b.Before(a) {
		t.Errorf("expected %v before %v", a, b)
	}
	if !b.After(a) {
		t.Errorf("expected %v after %v", b, a)
	}
	if !a.Equal(a) || a.Equal(b) {
		t.Errorf("Equal misbehaved for %v / %v", a, b)
	}
}

func TestWithinFutureBound(t *testing.T) {
	current := WeekCode{2026, 50}

	tests := []struct {
		target WeekCode
		max    int
		want   bool
	}{
		{WeekCode{2026, 52}, 4, true},
		{WeekCode{2027, 2}, 4, true},
		{WeekCode{2027, 3}, 4, false},
		{WeekCode{2026, 40}, 0, true}, // past weeks are always in bound
	}

	for _, tt := range tests {
		if got := WithinFutureBound(current, tt.target, tt.max); got != tt.want {
			t.Errorf("WithinFutureBound(%v, %v, %d) = %v, want %v",
				current, tt.target, tt.max, got, tt.want)
		}
	}
}
