package service

import (
	"time"

	"shift-planner-bot/internal/models"
	"shift-planner-bot/internal/repository"
	"shift-planner-bot/pkg/weekcode"

	"github.com/sirupsen/logrus"
)

// WeekStatusService tracks the lock/publish state of weeks. The lock is
// a gate for callers: the scheduling services never check it themselves,
// so manager override paths stay open.
type WeekStatusService struct {
	statusRepo repository.WeekStatusRepository
	shiftRepo  repository.ShiftRepository
	logger     *logrus.Logger
}

func NewWeekStatusService(
	statusRepo repository.WeekStatusRepository,
	shiftRepo repository.ShiftRepository,
) *WeekStatusService {
	return &WeekStatusService{
		statusRepo: statusRepo,
		shiftRepo:  shiftRepo,
		logger:     logrus.New(),
	}
}

// Status returns the state of a week; an unknown week is unlocked and
// unpublished.
func (s *WeekStatusService) Status(week weekcode.WeekCode) (*models.WeekStatus, error) {
	status, err := s.statusRepo.GetByWeek(week.String())
	if err != nil {
		return nil, err
	}
	if status == nil {
		return &models.WeekStatus{WeekCode: week.String()}, nil
	}
	return status, nil
}

// IsLocked reports whether employee-side edits are gated for the week.
func (s *WeekStatusService) IsLocked(week weekcode.WeekCode) (bool, error) {
	status, err := s.Status(week)
	if err != nil {
		return false, err
	}
	return status.Locked, nil
}

// SetLocked locks or unlocks a week, stamping the lock date.
func (s *WeekStatusService) SetLocked(week weekcode.WeekCode, locked bool) (*models.WeekStatus, error) {
	status, err := s.Status(week)
	if err != nil {
		return nil, err
	}

	status.Locked = locked
	if locked {
		now := time.Now()
		status.LockDate = &now
	} else {
		status.LockDate = nil
	}

	if err := s.statusRepo.Save(status); err != nil {
		s.logger.WithError(err).Error("Failed to save week lock state")
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"week":   week.String(),
		"locked": locked,
	}).Info("Week lock state changed")

	return status, nil
}

// Publish marks the week published and flags its stored rows as sent
// and published. Notification delivery itself is outside this system.
func (s *WeekStatusService) Publish(week weekcode.WeekCode) (*models.WeekStatus, error) {
	status, err := s.Status(week)
	if err != nil {
		return nil, err
	}

	status.IsPublished = true
	if err := s.statusRepo.Save(status); err != nil {
		s.logger.WithError(err).Error("Failed to save week publish state")
		return nil, err
	}

	if err := s.shiftRepo.MarkWeekPublished(week.String()); err != nil {
		return nil, err
	}

	s.logger.WithField("week", week.String()).Info("Week published")
	return status, nil
}
