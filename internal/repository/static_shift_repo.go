package repository

import (
	"errors"
	"shift-planner-bot/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type StaticShiftRepository interface {
	Create(template *models.StaticShift) error
	Update(template *models.StaticShift) error
	GetByID(id uint) (*models.StaticShift, error)
	GetAll(activeOnly bool) ([]models.StaticShift, error)
	FindOpenByKey(employeeID uint, day models.DayName, startTime, endTime string) (*models.StaticShift, error)
}

type GormStaticShiftRepository struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewGormStaticShiftRepository(db *gorm.DB) (*GormStaticShiftRepository, error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	if err := db.AutoMigrate(&models.StaticShift{}); err != nil {
		logger.WithError(err).Error("Failed to auto-migrate static_shifts table")
		return nil, err
	}

	logger.Info("Static shift repository initialized")

	return &GormStaticShiftRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *GormStaticShiftRepository) Create(template *models.StaticShift) error {
	r.logger.WithFields(logrus.Fields{
		"employee": template.EmployeeID,
		"day":      template.Day.String(),
		"start":    template.StartTime,
		"end":      template.EndTime,
	}).Info("Creating static shift template")

	if !template.IsValid() {
		r.logger.Warn("Invalid static shift data")
		return errors.New("invalid static shift data")
	}

	result := r.db.Create(template)
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to create static shift")
		return result.Error
	}

	r.logger.WithField("id", template.ID).Info("Static shift created successfully")
	return nil
}

func (r *GormStaticShiftRepository) Update(template *models.StaticShift) error {
	r.logger.WithField("id", template.ID).Info("Updating static shift template")

	if !template.IsValid() {
		r.logger.WithField("id", template.ID).Warn("Invalid static shift data for update")
		return errors.New("invalid static shift data")
	}

	existing, err := r.GetByID(template.ID)
	if err != nil {
		r.logger.WithError(err).Error("Failed to get static shift for update")
		return err
	}
	if existing == nil {
		r.logger.WithField("id", template.ID).Warn("Static shift not found for update")
		return errors.New("static shift not found")
	}

	result := r.db.Save(template)
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to update static shift")
		return result.Error
	}

	r.logger.WithField("id", template.ID).Info("Static shift updated successfully")
	return nil
}

func (r *GormStaticShiftRepository) GetByID(id uint) (*models.StaticShift, error) {
	var template models.StaticShift
	result := r.db.First(&template, id)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		r.logger.WithField("id", id).Debug("Static shift not found")
		return nil, nil
	}

	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to get static shift by ID")
		return nil, result.Error
	}

	return &template, nil
}

func (r *GormStaticShiftRepository) GetAll(activeOnly bool) ([]models.StaticShift, error) {
	var templates []models.StaticShift

	query := r.db.Order("employee_id ASC, day ASC, start_time ASC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	result := query.Find(&templates)
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to get static shifts")
		return nil, result.Error
	}

	r.logger.WithFields(logrus.Fields{
		"active_only": activeOnly,
		"count":       len(templates),
	}).Debug("Retrieved static shifts")

	return templates, nil
}

// FindOpenByKey returns the not-yet-ended template matching the
// occurrence key, nil when none exists.
func (r *GormStaticShiftRepository) FindOpenByKey(employeeID uint, day models.DayName, startTime, endTime string) (*models.StaticShift, error) {
	var template models.StaticShift
	result := r.db.Where(
		"employee_id = ? AND day = ? AND start_time = ? AND end_time = ? AND (end_week_code IS NULL OR end_week_code = '')",
		employeeID, day, startTime, endTime,
	).First(&template)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to find static shift by key")
		return nil, result.Error
	}

	return &template, nil
}
