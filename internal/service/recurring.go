package service

import (
	"fmt"
	"shift-planner-bot/internal/models"
	"shift-planner-bot/internal/repository"
	"shift-planner-bot/pkg/weekcode"

	"github.com/sirupsen/logrus"
)

// RecurringService owns the recurring-template lifecycle. A template
// that has been ended (end week set) is historical record and is never
// mutated again; recurrence resumes only through a brand-new template.
type RecurringService struct {
	staticRepo repository.StaticShiftRepository
	shiftRepo  repository.ShiftRepository
	logger     *logrus.Logger
}

func NewRecurringService(
	staticRepo repository.StaticShiftRepository,
	shiftRepo repository.ShiftRepository,
) *RecurringService {
	return &RecurringService{
		staticRepo: staticRepo,
		shiftRepo:  shiftRepo,
		logger:     logrus.New(),
	}
}

// MakeRecurring turns a stored shift into a recurring one starting at
// the given week. When an open template with the same occurrence key
// already exists the call is idempotent and returns it unchanged.
func (s *RecurringService) MakeRecurring(shiftID uint, week weekcode.WeekCode) (*models.StaticShift, error) {
	shift, err := s.shiftRepo.GetByID(shiftID)
	if err != nil {
		return nil, err
	}
	if shift == nil {
		return nil, fmt.Errorf("shift %d not found", shiftID)
	}

	existing, err := s.staticRepo.FindOpenByKey(shift.EmployeeID, shift.Day, shift.StartTime, shift.EndTime)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if !existing.IsActive {
			// Reactivation is a fresh toggle-on: the recurrence restarts
			// at the week of action, not at the old start week.
			existing.IsActive = true
			existing.StartWeekCode = week.String()
			if err := s.staticRepo.Update(existing); err != nil {
				return nil, err
			}
		}
		s.logger.WithFields(logrus.Fields{
			"template": existing.ID,
			"shift":    shiftID,
		}).Info("Shift already recurring")
		return existing, nil
	}

	template := &models.StaticShift{
		EmployeeID:    shift.EmployeeID,
		Day:           shift.Day,
		StartTime:     shift.StartTime,
		EndTime:       shift.EndTime,
		IsActive:      true,
		StartWeekCode: week.String(),
	}

	if err := s.staticRepo.Create(template); err != nil {
		s.logger.WithError(err).Error("Failed to create recurring template")
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"template":   template.ID,
		"shift":      shiftID,
		"start_week": template.StartWeekCode,
	}).Info("Shift marked recurring")

	return template, nil
}

// StopRecurring ends a recurrence as of the week being viewed: the
// template's end week becomes the week immediately before viewWeek, so
// past occurrences stay in place and nothing recurs from viewWeek on.
// An already-ended template is never touched: attempting it is an
// error, not a no-op, to protect historical recurrence boundaries.
func (s *RecurringService) StopRecurring(templateID uint, viewWeek weekcode.WeekCode) (*models.StaticShift, error) {
	template, err := s.staticRepo.GetByID(templateID)
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, fmt.Errorf("recurring template %d not found", templateID)
	}

	if template.Ended() {
		s.logger.WithFields(logrus.Fields{
			"template": templateID,
			"end_week": template.EndWeekCode,
		}).Warn("Refusing to end an already-ended recurrence")
		return nil, fmt.Errorf("recurrence %d already ended at %s; create a new recurring shift to resume",
			templateID, template.EndWeekCode)
	}

	// The template stays active so it keeps applying to the weeks up
	// through its end week.
	template.EndWeekCode = viewWeek.Previous().String()

	if err := s.staticRepo.Update(template); err != nil {
		s.logger.WithError(err).Error("Failed to end recurrence")
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"template": templateID,
		"end_week": template.EndWeekCode,
	}).Info("Recurrence ended")

	return template, nil
}

// GetTemplate returns one template.
func (s *RecurringService) GetTemplate(id uint) (*models.StaticShift, error) {
	template, err := s.staticRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, fmt.Errorf("recurring template %d not found", id)
	}
	return template, nil
}

// ListTemplates returns all templates, optionally only active ones.
func (s *RecurringService) ListTemplates(activeOnly bool) ([]models.StaticShift, error) {
	return s.staticRepo.GetAll(activeOnly)
}
