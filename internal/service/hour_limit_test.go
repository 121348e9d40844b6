package service

import (
	"testing"

	"shift-planner-bot/internal/models"
)

func newHourLimitFixture(employee *models.Employee, settings models.CompanySettings) (*HourLimitService, *fakeShiftRepo) {
	shiftRepo := newFakeShiftRepo()
	svc := NewHourLimitService(
		newFakeEmployeeRepo(employee),
		&fakeSettingsRepo{settings: settings},
		shiftRepo,
	)
	return svc, shiftRepo
}

func TestEffectiveLimitPrecedence(t *testing.T) {
	employee := &models.Employee{ID: 10, ChatID: 100, FirstName: "A", MaxDailyHours: 6}
	var settings models.CompanySettings
	settings.SetHoursFor(models.Monday, 9)

	svc, _ := newHourLimitFixture(employee, settings)

	// Employee override wins.
	limit, err := svc.EffectiveLimit(10, models.Monday)
	if err != nil {
		t.Fatal(err)
	}
	if limit != 6 {
		t.Errorf("limit = %v, want employee override 6", limit)
	}

	// No override: company default for the day.
	employee.MaxDailyHours = 0
	limit, err = svc.EffectiveLimit(10, models.Monday)
	if err != nil {
		t.Fatal(err)
	}
	if limit != 9 {
		t.Errorf("limit = %v, want company default 9", limit)
	}

	// Neither set: hardcoded fallback.
	limit, err = svc.EffectiveLimit(10, models.Tuesday)
	if err != nil {
		t.Fatal(err)
	}
	if limit != models.FallbackDailyHourLimit {
		t.Errorf("limit = %v, want fallback %d", limit, models.FallbackDailyHourLimit)
	}
}

func TestEffectiveLimitUnknownEmployee(t *testing.T) {
	svc, _ := newHourLimitFixture(&models.Employee{ID: 1, ChatID: 1, FirstName: "A"}, models.CompanySettings{})

	limit, err := svc.EffectiveLimit(42, models.Monday)
	if err != nil {
		t.Fatal(err)
	}
	if limit != models.FallbackDailyHourLimit {
		t.Errorf("limit = %v, want fallback", limit)
	}
}

func TestValidateShiftAgainstExistingHours(t *testing.T) {
	employee := &models.Employee{ID: 10, ChatID: 100, FirstName: "A", MaxDailyHours: 10}
	svc, shiftRepo := newHourLimitFixture(employee, models.CompanySettings{})

	existing := &models.Shift{
		WeekCode:   "2026-W07",
		Day:        models.Monday,
		EmployeeID: 10,
		StartTime:  "08:00",
		EndTime:    "14:00", // 6h already scheduled
	}
	if err := shiftRepo.Create(existing); err != nil {
		t.Fatal(err)
	}

	// 6 + 5 > 10: rejected.
	tooLong := &models.Shift{
		WeekCode:   "2026-W07",
		Day:        models.Monday,
		EmployeeID: 10,
		StartTime:  "15:00",
		EndTime:    "20:00",
	}
	if err := svc.ValidateShift(tooLong, 0); err == nil {
		t.Error("expected rejection at 6+5 > 10")
	}

	// 6 + 4 <= 10: accepted.
	fits := &models.Shift{
		WeekCode:   "2026-W07",
		Day:        models.Monday,
		EmployeeID: 10,
		StartTime:  "15:00",
		EndTime:    "19:00",
	}
	if err := svc.ValidateShift(fits, 0); err != nil {
		t.Errorf("expected acceptance at 6+4 <= 10: %v", err)
	}
}

func TestValidateShiftExcludesRowBeingEdited(t *testing.T) {
	employee := &models.Employee{ID: 10, ChatID: 100, FirstName: "A", MaxDailyHours: 10}
	svc, shiftRepo := newHourLimitFixture(employee, models.CompanySettings{})

	existing := &models.Shift{
		WeekCode:   "2026-W07",
		Day:        models.Monday,
		EmployeeID: 10,
		StartTime:  "08:00",
		EndTime:    "16:00", // 8h
	}
	if err := shiftRepo.Create(existing); err != nil {
		t.Fatal(err)
	}

	// Resizing the same row to 9h must not double-count its old hours.
	resized := *existing
	resized.EndTime = "17:00"
	if err := svc.ValidateShift(&resized, existing.ID); err != nil {
		t.Errorf("resize within limit rejected: %v", err)
	}
}

func TestValidateShiftCrossMidnightDuration(t *testing.T) {
	employee := &models.Employee{ID: 10, ChatID: 100, FirstName: "A", MaxDailyHours: 5}
	svc, _ := newHourLimitFixture(employee, models.CompanySettings{})

	// 22:00-04:00 is 6h on the pre-segmentation span: over a 5h limit.
	night := &models.Shift{
		WeekCode:   "2026-W07",
		Day:        models.Friday,
		EmployeeID: 10,
		StartTime:  "22:00",
		EndTime:    "04:00",
	}
	if err := svc.ValidateShift(night, 0); err == nil {
		t.Error("expected cross-midnight span to count in full")
	}
}
