package service

import (
	"fmt"
	"shift-planner-bot/internal/models"
	"shift-planner-bot/internal/repository"
	"shift-planner-bot/internal/schedule"

	"github.com/sirupsen/logrus"
)

// HourLimitService gates shift creation and edits against the daily hour
// limit. Durations are measured on the whole pre-segmentation shift, so
// a cross-midnight shift counts its full span on its starting day.
type HourLimitService struct {
	employeeRepo repository.EmployeeRepository
	settingsRepo repository.CompanySettingsRepository
	shiftRepo    repository.ShiftRepository
	logger       *logrus.Logger
}

func NewHourLimitService(
	employeeRepo repository.EmployeeRepository,
	settingsRepo repository.CompanySettingsRepository,
	shiftRepo repository.ShiftRepository,
) *HourLimitService {
	return &HourLimitService{
		employeeRepo: employeeRepo,
		settingsRepo: settingsRepo,
		shiftRepo:    shiftRepo,
		logger:       logrus.New(),
	}
}

// EffectiveLimit resolves the daily hour limit for an employee on a day:
// the employee override if set, else the company default for that day,
// else the fallback.
func (s *HourLimitService) EffectiveLimit(employeeID uint, day models.DayName) (float64, error) {
	employee, err := s.employeeRepo.GetByID(employeeID)
	if err != nil {
		return 0, err
	}
	if employee != nil && employee.MaxDailyHours > 0 {
		return employee.MaxDailyHours, nil
	}

	settings, err := s.settingsRepo.Get()
	if err != nil {
		return 0, err
	}
	if limit := settings.HoursFor(day); limit > 0 {
		return limit, nil
	}

	return models.FallbackDailyHourLimit, nil
}

// CompanySettings returns the company-wide per-day defaults.
func (s *HourLimitService) CompanySettings() (*models.CompanySettings, error) {
	return s.settingsRepo.Get()
}

// SetCompanyDayLimit sets (or clears, hours == 0) the company default
// daily hour limit for one weekday.
func (s *HourLimitService) SetCompanyDayLimit(day models.DayName, hours float64) error {
	if hours < 0 || hours > 24 {
		return fmt.Errorf("daily hour limit must be between 0 and 24")
	}

	settings, err := s.settingsRepo.Get()
	if err != nil {
		return err
	}

	settings.SetHoursFor(day, hours)
	if err := s.settingsRepo.Save(settings); err != nil {
		s.logger.WithError(err).Error("Failed to save company settings")
		return err
	}

	s.logger.WithFields(logrus.Fields{
		"day":   day.String(),
		"hours": hours,
	}).Info("Company day limit updated")

	return nil
}

// ValidateShift checks that adding (or resizing) the given shift keeps
// the employee within the daily limit. excludeShiftID skips the row
// being edited when summing existing hours; pass 0 for a new shift.
func (s *HourLimitService) ValidateShift(shift *models.Shift, excludeShiftID uint) error {
	newHours, err := shift.DurationHours()
	if err != nil {
		return fmt.Errorf("invalid shift time: %v", err)
	}

	existing, err := s.shiftRepo.ListByEmployeeDay(shift.WeekCode, shift.EmployeeID, shift.Day)
	if err != nil {
		return err
	}

	var existingHours float64
	for i := range existing {
		if excludeShiftID != 0 && existing[i].ID == excludeShiftID {
			continue
		}
		hours, err := existing[i].DurationHours()
		if err != nil {
			s.logger.WithFields(logrus.Fields{
				"id":    existing[i].ID,
				"start": existing[i].StartTime,
				"end":   existing[i].EndTime,
			}).Warn("Skipping stored shift with invalid time")
			continue
		}
		existingHours += hours
	}

	limit, err := s.EffectiveLimit(shift.EmployeeID, shift.Day)
	if err != nil {
		return err
	}

	if err := schedule.CheckDailyLimit(existingHours, newHours, limit); err != nil {
		s.logger.WithFields(logrus.Fields{
			"employee": shift.EmployeeID,
			"week":     shift.WeekCode,
			"day":      shift.Day.String(),
			"limit":    limit,
		}).Warn("Shift rejected by daily hour limit")
		return err
	}

	return nil
}
