package service

import (
	"fmt"
	"shift-planner-bot/internal/models"
	"shift-planner-bot/internal/repository"
	"shift-planner-bot/internal/schedule"
	"shift-planner-bot/pkg/weekcode"

	"github.com/sirupsen/logrus"
)

// ShiftService owns the weekly view and the normal-shift lifecycle. The
// view is recomputed from the stores on every call; nothing is cached,
// because ending a recurrence can reclassify unrelated rows in the same
// week. The target week is always an explicit parameter.
type ShiftService struct {
	shiftRepo  repository.ShiftRepository
	staticRepo repository.StaticShiftRepository
	hourLimit  *HourLimitService
	logger     *logrus.Logger
}

func NewShiftService(
	shiftRepo repository.ShiftRepository,
	staticRepo repository.StaticShiftRepository,
	hourLimit *HourLimitService,
) *ShiftService {
	return &ShiftService{
		shiftRepo:  shiftRepo,
		staticRepo: staticRepo,
		hourLimit:  hourLimit,
		logger:     logrus.New(),
	}
}

// WeekView loads, reconciles and segments one week. Reconciliation runs
// on the stored rows so a cross-midnight row still carries its
// pre-segmentation key and matches the template made from it; the
// decorated result is segmented afterwards, synthetics included. Either
// store failing aborts the whole view; a partially merged week is never
// returned.
func (s *ShiftService) WeekView(week weekcode.WeekCode) ([]schedule.DecoratedShift, error) {
	s.logger.WithField("week", week.String()).Debug("Building week view")

	normal, err := s.shiftRepo.ListByWeek(week.String())
	if err != nil {
		s.logger.WithError(err).Error("Failed to load shifts for week view")
		return nil, err
	}

	templates, err := s.staticRepo.GetAll(false)
	if err != nil {
		s.logger.WithError(err).Error("Failed to load templates for week view")
		return nil, err
	}

	view, err := schedule.SegmentView(schedule.Reconcile(normal, templates, week))
	if err != nil {
		s.logger.WithError(err).Error("Failed to segment week view")
		return nil, err
	}

	return view, nil
}

// CreateShift validates and stores a new shift for the given week.
func (s *ShiftService) CreateShift(week weekcode.WeekCode, employeeID uint, day models.DayName, startTime, endTime, note string) (*models.Shift, error) {
	shift := &models.Shift{
		WeekCode:   week.String(),
		Day:        day,
		EmployeeID: employeeID,
		StartTime:  startTime,
		EndTime:    endTime,
		Note:       note,
	}

	if !shift.IsValid() {
		return nil, fmt.Errorf("invalid shift: check day and HH:MM times")
	}

	if err := s.hourLimit.ValidateShift(shift, 0); err != nil {
		return nil, err
	}

	if err := s.shiftRepo.Create(shift); err != nil {
		s.logger.WithError(err).Error("Failed to create shift")
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"id":       shift.ID,
		"week":     shift.WeekCode,
		"employee": employeeID,
	}).Info("Shift created")

	return shift, nil
}

// UpdateShift changes the timing or note of an existing shift.
func (s *ShiftService) UpdateShift(id uint, day models.DayName, startTime, endTime, note string) (*models.Shift, error) {
	shift, err := s.shiftRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if shift == nil {
		return nil, fmt.Errorf("shift %d not found", id)
	}

	shift.Day = day
	shift.StartTime = startTime
	shift.EndTime = endTime
	if note != "" {
		shift.Note = note
	}

	if !shift.IsValid() {
		return nil, fmt.Errorf("invalid shift: check day and HH:MM times")
	}

	if err := s.hourLimit.ValidateShift(shift, id); err != nil {
		return nil, err
	}

	if err := s.shiftRepo.Update(shift); err != nil {
		s.logger.WithError(err).Error("Failed to update shift")
		return nil, err
	}

	s.logger.WithField("id", id).Info("Shift updated")
	return shift, nil
}

// DeleteShift removes a stored shift row.
func (s *ShiftService) DeleteShift(id uint) error {
	shift, err := s.shiftRepo.GetByID(id)
	if err != nil {
		return err
	}
	if shift == nil {
		return fmt.Errorf("shift %d not found", id)
	}

	if err := s.shiftRepo.Delete(id); err != nil {
		s.logger.WithError(err).Error("Failed to delete shift")
		return err
	}

	s.logger.WithField("id", id).Info("Shift deleted")
	return nil
}

// GetShift returns one stored shift.
func (s *ShiftService) GetShift(id uint) (*models.Shift, error) {
	shift, err := s.shiftRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if shift == nil {
		return nil, fmt.Errorf("shift %d not found", id)
	}
	return shift, nil
}
