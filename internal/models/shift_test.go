package models

import (
	"testing"

	"shift-planner-bot/pkg/weekcode"
)

func mustWeek(t *testing.T, code string) weekcode.WeekCode {
	t.Helper()
	w, err := weekcode.Parse(code)
	if err != nil {
		t.Fatal(err)
	}
	return w
}

func TestClockToMinutes(t *testing.T) {
	tests := []struct {
		clock   string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:30", 570, false},
		{"23:59", 1439, false},
		{"24:00", 1440, false},
		{"24:01", 0, true},
		{"25:00", 0, true},
		{"9:30", 570, false},
		{"09:60", 0, true},
		{"0930", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ClockToMinutes(tt.clock)
		if (err != nil) != tt.wantErr {
			t.Errorf("ClockToMinutes(%q) error = %v, wantErr %v", tt.clock, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ClockToMinutes(%q) = %d, want %d", tt.clock, got, tt.want)
		}
	}
}

func TestMinutesToClock(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "00:00"},
		{570, "09:30"},
		{1440, "24:00"},
	}

	for _, tt := range tests {
		if got := MinutesToClock(tt.minutes); got != tt.want {
			t.Errorf("MinutesToClock(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}

func TestShiftCrossesMidnight(t *testing.T) {
	tests := []struct {
		start, end string
		want       bool
	}{
		{"09:00", "17:00", false},
		{"22:00", "02:00", true},
		{"20:00", "00:00", true},
		{"10:00", "10:00", true},
	}

	for _, tt := range tests {
		s := Shift{StartTime: tt.start, EndTime: tt.end}
		if got := s.CrossesMidnight(); got != tt.want {
			t.Errorf("CrossesMidnight(%s-%s) = %v, want %v", tt.start, tt.end, got, tt.want)
		}
	}
}

func TestShiftDurationHours(t *testing.T) {
	tests := []struct {
		start, end string
		want       float64
	}{
		{"09:00", "17:00", 8},
		{"09:00", "17:30", 8.5},
		{"22:00", "02:00", 4},  // crosses midnight, whole span counts
		{"20:00", "00:00", 4},
		{"00:00", "24:00", 24},
	}

	for _, tt := range tests {
		s := Shift{StartTime: tt.start, EndTime: tt.end}
		got, err := s.DurationHours()
		if err != nil {
			t.Fatalf("DurationHours(%s-%s): %v", tt.start, tt.end, err)
		}
		if got != tt.want {
			t.Errorf("DurationHours(%s-%s) = %v, want %v", tt.start, tt.end, got, tt.want)
		}
	}
}

func TestDayNext(t *testing.T) {
	if Monday.Next() != Tuesday {
		t.Error("Monday.Next() != Tuesday")
	}
	if Saturday.Next() != Sunday {
		t.Error("Saturday.Next() != Sunday")
	}
}

func TestParseDay(t *testing.T) {
	tests := []struct {
		in   string
		want DayName
	}{
		{"Sunday", Sunday},
		{"sunday", Sunday},
		{"mon", Monday},
		{"SAT", Saturday},
		{"3", Wednesday},
	}

	for _, tt := range tests {
		got, err := ParseDay(tt.in)
		if err != nil {
			t.Fatalf("ParseDay(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseDay(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := ParseDay("someday"); err == nil {
		t.Error("expected error for unknown day")
	}
}

func TestStaticShiftAppliesTo(t *testing.T) {
	tmpl := StaticShift{
		EmployeeID:    1,
		Day:           Monday,
		StartTime:     "09:00",
		EndTime:       "17:00",
		IsActive:      true,
		StartWeekCode: "2026-W03",
		EndWeekCode:   "2026-W06",
	}

	tests := []struct {
		week string
		want bool
	}{
		{"2026-W02", false},
		{"2026-W03", true},
		{"2026-W05", true},
		{"2026-W06", true},
		{"2026-W07", false},
	}

	for _, tt := range tests {
		w := mustWeek(t, tt.week)
		if got := tmpl.AppliesTo(w); got != tt.want {
			t.Errorf("AppliesTo(%s) = %v, want %v", tt.week, got, tt.want)
		}
	}

	open := StaticShift{IsActive: true}
	if !open.AppliesTo(mustWeek(t, "2030-W01")) {
		t.Error("open-ended template must apply to any week")
	}

	inactive := StaticShift{IsActive: false}
	if inactive.AppliesTo(mustWeek(t, "2026-W05")) {
		t.Error("inactive template must not apply")
	}
}

func TestCompanySettingsHoursFor(t *testing.T) {
	var c CompanySettings
	c.SetHoursFor(Friday, 9)

	if got := c.HoursFor(Friday); got != 9 {
		t.Errorf("HoursFor(Friday) = %v, want 9", got)
	}
	if got := c.HoursFor(Monday); got != 0 {
		t.Errorf("HoursFor(Monday) = %v, want 0 (unset)", got)
	}
}
