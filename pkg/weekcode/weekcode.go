package weekcode

import (
	"fmt"
	"time"
)

// WeekCode identifies one Sunday-starting week, e.g. "2026-W07".
// Week 1 of a year starts on the Sunday on or before January 1.
type WeekCode struct {
	Year int
	Week int
}

// WeeksPerYear is the rollover modulus for week arithmetic. This is an
// approximation (years with 53 Sunday-starting weeks exist); the whole
// system keys weeks with it, so it must stay consistent everywhere.
// Offset is the only place that applies it.
const WeeksPerYear = 52

// week1Sunday returns the Sunday on or before January 1 of the given year.
func week1Sunday(year int, loc *time.Location) time.Time {
	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
	return jan1.AddDate(0, 0, -int(jan1.Weekday()))
}

// Current returns the week code containing the given date.
func Current(date time.Time) WeekCode {
	midnight := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	sunday := week1Sunday(date.Year(), date.Location())

	// Round to whole days so a DST-shortened day still counts as one.
	days := int((midnight.Sub(sunday) + 12*time.Hour) / (24 * time.Hour))
	week := days/7 + 1
	if week < 1 {
		week = 1
	}

	return WeekCode{Year: date.Year(), Week: week}
}

// Parse converts the canonical "YYYY-Wnn" form back to a WeekCode.
// Malformed input is a caller error and is reported, never patched up.
// Only strings that round-trip through String are accepted, so a parsed
// code always re-serializes to the exact store key it came from.
func Parse(code string) (WeekCode, error) {
	var year, week int
	if _, err := fmt.Sscanf(code, "%d-W%d", &year, &week); err != nil {
		return WeekCode{}, fmt.Errorf("invalid week code %q: expected YYYY-Wnn", code)
	}
	if year < 1 || week < 1 {
		return WeekCode{}, fmt.Errorf("invalid week code %q: year and week must be positive", code)
	}
	w := WeekCode{Year: year, Week: week}
	if w.String() != code {
		return WeekCode{}, fmt.Errorf("invalid week code %q: expected YYYY-Wnn", code)
	}
	return w, nil
}

// String returns the canonical "YYYY-Wnn" form. This string is persisted
// as a store key and its shape must never change.
func (w WeekCode) String() string {
	return fmt.Sprintf("%d-W%02d", w.Year, w.Week)
}

// Offset adds n weeks (n may be negative) using the 52-week-per-year
// rollover: week < 1 rolls to week 52 of the prior year, week > 52 rolls
// forward in 52-week chunks.
func (w WeekCode) Offset(n int) WeekCode {
	week := w.Week + n
	year := w.Year

	for week < 1 {
		week += WeeksPerYear
		year--
	}
	for week > WeeksPerYear {
		week -= WeeksPerYear
		year++
	}

	return WeekCode{Year: year, Week: week}
}

// Previous returns the week immediately before w.
func (w WeekCode) Previous() WeekCode {
	return w.Offset(-1)
}

// Next returns the week immediately after w.
func (w WeekCode) Next() WeekCode {
	return w.Offset(1)
}

// DateForDay returns the calendar date of the given day (0 = Sunday ..
// 6 = Saturday) inside week w.
func (w WeekCode) DateForDay(dayIndex int, loc *time.Location) time.Time {
	sunday := week1Sunday(w.Year, loc)
	return sunday.AddDate(0, 0, (w.Week-1)*7+dayIndex)
}

// ordinal linearizes a week code for comparisons, using the same 52-week
// approximation as Offset.
func (w WeekCode) ordinal() int {
	return w.Year*WeeksPerYear + w.Week
}

// Equal reports whether both codes name the same week.
func (w WeekCode) Equal(other WeekCode) bool {
	return w.Year == other.Year && w.Week == other.Week
}

// Before reports whether w is an earlier week than other.
func (w WeekCode) Before(other WeekCode) bool {
	return w.ordinal() < other.ordinal()
}

// After reports whether w is a later week than other.
func (w WeekCode) After(other WeekCode) bool {
	return w.ordinal() > other.ordinal()
}

// WithinFutureBound reports whether target is no more than maxWeeksAhead
// weeks after current.
func WithinFutureBound(current, target WeekCode, maxWeeksAhead int) bool {
	return target.ordinal()-current.ordinal() <= maxWeeksAhead
}
