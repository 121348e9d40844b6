package service

import (
	"testing"

	"shift-planner-bot/internal/models"
	"shift-planner-bot/pkg/weekcode"
)

type fakeWantedRepo struct {
	hourly []models.WantedCoverage
	daily  []models.WantedDailyTotal
}

func (r *fakeWantedRepo) GetHourly(weekCode string) ([]models.WantedCoverage, error) {
	var out []models.WantedCoverage
	for _, w := range r.hourly {
		if w.WeekCode == weekCode {
			out = append(out, w)
		}
	}
	return out, nil
}

func (r *fakeWantedRepo) SetHourly(weekCode string, day models.DayName, hour, count int) error {
	r.hourly = append(r.hourly, models.WantedCoverage{
		WeekCode: weekCode, Day: day, Hour: hour, Count: count,
	})
	return nil
}

func (r *fakeWantedRepo) GetDaily(weekCode string) ([]models.WantedDailyTotal, error) {
	var out []models.WantedDailyTotal
	for _, w := range r.daily {
		if w.WeekCode == weekCode {
			out = append(out, w)
		}
	}
	return out, nil
}

func (r *fakeWantedRepo) SetDaily(weekCode string, day models.DayName, total int) error {
	r.daily = append(r.daily, models.WantedDailyTotal{
		WeekCode: weekCode, Day: day, Total: total,
	})
	return nil
}

func TestCoverageForWeek(t *testing.T) {
	shiftSvc, shiftRepo, staticRepo := newShiftFixture()
	wanted := &fakeWantedRepo{}
	svc := NewCoverageService(shiftSvc, wanted)
	week := weekcode.WeekCode{Year: 2026, Week: 7}

	day := &models.Shift{
		WeekCode:   "2026-W07",
		Day:        models.Monday,
		EmployeeID: 10,
		StartTime:  "09:00",
		EndTime:    "12:00",
	}
	if err := shiftRepo.Create(day); err != nil {
		t.Fatal(err)
	}

	// A recurring occurrence with no stored row also counts, including
	// its cross-midnight tail on the next day.
	tmpl := &models.StaticShift{
		EmployeeID:    11,
		Day:           models.Monday,
		StartTime:     "22:00",
		EndTime:       "02:00",
		IsActive:      true,
		StartWeekCode: "2026-W01",
	}
	if err := staticRepo.Create(tmpl); err != nil {
		t.Fatal(err)
	}

	if err := svc.SetWantedHour(week, models.Monday, 10, 2); err != nil {
		t.Fatal(err)
	}
	if err := svc.SetWantedDaily(week, models.Monday, 5); err != nil {
		t.Fatal(err)
	}

	coverage, err := svc.ForWeek(week)
	if err != nil {
		t.Fatal(err)
	}

	if got := coverage.Counts[models.Monday][10]; got != 1 {
		t.Errorf("Monday 10h count = %d, want 1", got)
	}
	if got := coverage.Counts[models.Monday][22]; got != 1 {
		t.Errorf("Monday 22h count = %d, want 1", got)
	}
	if got := coverage.Counts[models.Tuesday][1]; got != 1 {
		t.Errorf("Tuesday 1h count = %d, want 1 (cross-midnight tail)", got)
	}
	if got := coverage.WantedHours[models.Monday][10]; got != 2 {
		t.Errorf("wanted Monday 10h = %d, want 2", got)
	}
	if got := coverage.WantedDaily[models.Monday]; got != 5 {
		t.Errorf("wanted Monday total = %d, want 5", got)
	}
}

func TestCoverageCrossMidnightRecurringCountsOnce(t *testing.T) {
	shiftSvc, shiftRepo, staticRepo := newShiftFixture()
	svc := NewCoverageService(shiftSvc, &fakeWantedRepo{})
	week := weekcode.WeekCode{Year: 2026, Week: 7}

	// A stored cross-midnight row together with the template made from
	// it must count one person per hour, not two.
	night := &models.Shift{
		WeekCode:   "2026-W07",
		Day:        models.Monday,
		EmployeeID: 10,
		StartTime:  "22:00",
		EndTime:    "02:00",
	}
	if err := shiftRepo.Create(night); err != nil {
		t.Fatal(err)
	}
	tmpl := &models.StaticShift{
		EmployeeID:    10,
		Day:           models.Monday,
		StartTime:     "22:00",
		EndTime:       "02:00",
		IsActive:      true,
		StartWeekCode: "2026-W07",
	}
	if err := staticRepo.Create(tmpl); err != nil {
		t.Fatal(err)
	}

	coverage, err := svc.ForWeek(week)
	if err != nil {
		t.Fatal(err)
	}

	for _, hour := range []int{22, 23} {
		if got := coverage.Counts[models.Monday][hour]; got != 1 {
			t.Errorf("Monday %dh count = %d, want 1", hour, got)
		}
	}
	for _, hour := range []int{0, 1} {
		if got := coverage.Counts[models.Tuesday][hour]; got != 1 {
			t.Errorf("Tuesday %dh count = %d, want 1", hour, got)
		}
	}
}
