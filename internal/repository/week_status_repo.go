package repository

import (
	"errors"
	"shift-planner-bot/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type WeekStatusRepository interface {
	GetByWeek(weekCode string) (*models.WeekStatus, error)
	Save(status *models.WeekStatus) error
}

type GormWeekStatusRepository struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewGormWeekStatusRepository(db *gorm.DB) (*GormWeekStatusRepository, error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	if err := db.AutoMigrate(&models.WeekStatus{}); err != nil {
		logger.WithError(err).Error("Failed to auto-migrate week_statuses table")
		return nil, err
	}

	logger.Info("Week status repository initialized")

	return &GormWeekStatusRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *GormWeekStatusRepository) GetByWeek(weekCode string) (*models.WeekStatus, error) {
	var status models.WeekStatus
	result := r.db.Where("week_code = ?", weekCode).First(&status)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		r.logger.WithField("week", weekCode).Debug("Week status not found")
		return nil, nil
	}

	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to get week status")
		return nil, result.Error
	}

	return &status, nil
}

func (r *GormWeekStatusRepository) Save(status *models.WeekStatus) error {
	r.logger.WithFields(logrus.Fields{
		"week":      status.WeekCode,
		"locked":    status.Locked,
		"published": status.IsPublished,
	}).Info("Saving week status")

	result := r.db.Save(status)
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to save week status")
		return result.Error
	}

	return nil
}
