package service

import (
	"shift-planner-bot/internal/models"
	"shift-planner-bot/internal/repository"
	"shift-planner-bot/internal/schedule"
	"shift-planner-bot/pkg/weekcode"

	"github.com/sirupsen/logrus"
)

// WeekCoverage is computed hourly occupancy for one week, with the
// manager-specified wanted numbers alongside for comparison.
type WeekCoverage struct {
	Week        weekcode.WeekCode
	Counts      map[models.DayName][schedule.HoursPerDay]int
	WantedHours map[models.DayName][schedule.HoursPerDay]int
	WantedDaily map[models.DayName]int
}

// CoverageService derives per-hour occupancy from the reconciled week
// and reads the wanted-coverage targets next to it. Wanted numbers are
// external data; this service reads and writes them on behalf of
// managers but the counts themselves are always recomputed.
type CoverageService struct {
	shiftService *ShiftService
	wantedRepo   repository.WantedCoverageRepository
	logger       *logrus.Logger
}

func NewCoverageService(
	shiftService *ShiftService,
	wantedRepo repository.WantedCoverageRepository,
) *CoverageService {
	return &CoverageService{
		shiftService: shiftService,
		wantedRepo:   wantedRepo,
		logger:       logrus.New(),
	}
}

// ForWeek computes coverage for the reconciled week view: synthesized
// recurring occurrences count just like stored rows, and cross-midnight
// occurrences are segmented before counting.
func (s *CoverageService) ForWeek(week weekcode.WeekCode) (*WeekCoverage, error) {
	view, err := s.shiftService.WeekView(week)
	if err != nil {
		return nil, err
	}

	// WeekView entries are already day-bound, synthetics included.
	flat := make([]models.Shift, 0, len(view))
	for i := range view {
		flat = append(flat, view[i].Shift)
	}

	coverage := &WeekCoverage{
		Week:        week,
		Counts:      schedule.WeekCounts(flat),
		WantedHours: make(map[models.DayName][schedule.HoursPerDay]int),
		WantedDaily: make(map[models.DayName]int),
	}

	hourly, err := s.wantedRepo.GetHourly(week.String())
	if err != nil {
		s.logger.WithError(err).Error("Failed to load wanted hourly coverage")
		return nil, err
	}
	for _, w := range hourly {
		buckets := coverage.WantedHours[w.Day]
		buckets[w.Hour] = w.Count
		coverage.WantedHours[w.Day] = buckets
	}

	daily, err := s.wantedRepo.GetDaily(week.String())
	if err != nil {
		s.logger.WithError(err).Error("Failed to load wanted daily totals")
		return nil, err
	}
	for _, w := range daily {
		coverage.WantedDaily[w.Day] = w.Total
	}

	return coverage, nil
}

// SetWantedHour stores a manager's target headcount for one hour bucket.
func (s *CoverageService) SetWantedHour(week weekcode.WeekCode, day models.DayName, hour, count int) error {
	s.logger.WithFields(logrus.Fields{
		"week":  week.String(),
		"day":   day.String(),
		"hour":  hour,
		"count": count,
	}).Info("Setting wanted coverage")

	return s.wantedRepo.SetHourly(week.String(), day, hour, count)
}

// SetWantedDaily stores a manager's target total for one day.
func (s *CoverageService) SetWantedDaily(week weekcode.WeekCode, day models.DayName, total int) error {
	s.logger.WithFields(logrus.Fields{
		"week":  week.String(),
		"day":   day.String(),
		"total": total,
	}).Info("Setting wanted daily total")

	return s.wantedRepo.SetDaily(week.String(), day, total)
}
