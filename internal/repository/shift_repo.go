package repository

import (
	"errors"
	"shift-planner-bot/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ShiftRepository interface {
	Create(shift *models.Shift) error
	Update(shift *models.Shift) error
	Delete(id uint) error
	GetByID(id uint) (*models.Shift, error)
	ListByWeek(weekCode string) ([]models.Shift, error)
	ListByEmployeeDay(weekCode string, employeeID uint, day models.DayName) ([]models.Shift, error)
	MarkWeekPublished(weekCode string) error
}

type GormShiftRepository struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewGormShiftRepository(db *gorm.DB) (*GormShiftRepository, error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	if err := db.AutoMigrate(&models.Shift{}); err != nil {
		logger.WithError(err).Error("Failed to auto-migrate shifts table")
		return nil, err
	}

	logger.Info("Shift repository initialized")

	return &GormShiftRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *GormShiftRepository) Create(shift *models.Shift) error {
	r.logger.WithFields(logrus.Fields{
		"week":     shift.WeekCode,
		"day":      shift.Day.String(),
		"employee": shift.EmployeeID,
	}).Info("Creating shift")

	if !shift.IsValid() {
		r.logger.WithFields(logrus.Fields{
			"week": shift.WeekCode,
			"day":  int(shift.Day),
		}).Warn("Invalid shift data")
		return errors.New("invalid shift data")
	}

	result := r.db.Create(shift)
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to create shift")
		return result.Error
	}

	r.logger.WithField("id", shift.ID).Info("Shift created successfully")
	return nil
}

func (r *GormShiftRepository) Update(shift *models.Shift) error {
	r.logger.WithFields(logrus.Fields{
		"id":   shift.ID,
		"week": shift.WeekCode,
	}).Info("Updating shift")

	if !shift.IsValid() {
		r.logger.WithField("id", shift.ID).Warn("Invalid shift data for update")
		return errors.New("invalid shift data")
	}

	existing, err := r.GetByID(shift.ID)
	if err != nil {
		r.logger.WithError(err).Error("Failed to get shift for update")
		return err
	}
	if existing == nil {
		r.logger.WithField("id", shift.ID).Warn("Shift not found for update")
		return errors.New("shift not found")
	}

	result := r.db.Save(shift)
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to update shift")
		return result.Error
	}

	r.logger.WithField("id", shift.ID).Info("Shift updated successfully")
	return nil
}

func (r *GormShiftRepository) Delete(id uint) error {
	r.logger.WithField("id", id).Info("Deleting shift")

	result := r.db.Delete(&models.Shift{}, id)
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to delete shift")
		return result.Error
	}

	if result.RowsAffected == 0 {
		r.logger.WithField("id", id).Warn("Shift not found for deletion")
		return errors.New("shift not found")
	}

	r.logger.WithField("id", id).Info("Shift deleted successfully")
	return nil
}

func (r *GormShiftRepository) GetByID(id uint) (*models.Shift, error) {
	var shift models.Shift
	result := r.db.First(&shift, id)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		r.logger.WithField("id", id).Debug("Shift not found")
		return nil, nil
	}

	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to get shift by ID")
		return nil, result.Error
	}

	return &shift, nil
}

func (r *GormShiftRepository) ListByWeek(weekCode string) ([]models.Shift, error) {
	var shifts []models.Shift
	result := r.db.Where("week_code = ?", weekCode).
		Order("day ASC, start_time ASC").
		Find(&shifts)

	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to list shifts by week")
		return nil, result.Error
	}

	r.logger.WithFields(logrus.Fields{
		"week":  weekCode,
		"count": len(shifts),
	}).Debug("Retrieved shifts for week")

	return shifts, nil
}

func (r *GormShiftRepository) ListByEmployeeDay(weekCode string, employeeID uint, day models.DayName) ([]models.Shift, error) {
	var shifts []models.Shift
	result := r.db.Where("week_code = ? AND employee_id = ? AND day = ?", weekCode, employeeID, day).
		Order("start_time ASC").
		Find(&shifts)

	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to list shifts by employee/day")
		return nil, result.Error
	}

	return shifts, nil
}

func (r *GormShiftRepository) MarkWeekPublished(weekCode string) error {
	result := r.db.Model(&models.Shift{}).
		Where("week_code = ?", weekCode).
		Updates(map[string]interface{}{"is_published": true, "is_sent": true})

	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to mark week shifts published")
		return result.Error
	}

	r.logger.WithFields(logrus.Fields{
		"week":  weekCode,
		"count": result.RowsAffected,
	}).Info("Marked week shifts published")

	return nil
}
