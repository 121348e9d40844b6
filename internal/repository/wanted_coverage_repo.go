package repository

import (
	"errors"
	"shift-planner-bot/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type WantedCoverageRepository interface {
	GetHourly(weekCode string) ([]models.WantedCoverage, error)
	SetHourly(weekCode string, day models.DayName, hour, count int) error
	GetDaily(weekCode string) ([]models.WantedDailyTotal, error)
	SetDaily(weekCode string, day models.DayName, total int) error
}

type GormWantedCoverageRepository struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewGormWantedCoverageRepository(db *gorm.DB) (*GormWantedCoverageRepository, error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	if err := db.AutoMigrate(&models.WantedCoverage{}, &models.WantedDailyTotal{}); err != nil {
		logger.WithError(err).Error("Failed to auto-migrate wanted coverage tables")
		return nil, err
	}

	logger.Info("Wanted coverage repository initialized")

	return &GormWantedCoverageRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *GormWantedCoverageRepository) GetHourly(weekCode string) ([]models.WantedCoverage, error) {
	var wanted []models.WantedCoverage
	result := r.db.Where("week_code = ?", weekCode).
		Order("day ASC, hour ASC").
		Find(&wanted)

	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to get hourly wanted coverage")
		return nil, result.Error
	}

	return wanted, nil
}

func (r *GormWantedCoverageRepository) SetHourly(weekCode string, day models.DayName, hour, count int) error {
	if hour < 0 || hour > 23 {
		return errors.New("hour must be between 0 and 23")
	}

	var existing models.WantedCoverage
	result := r.db.Where("week_code = ? AND day = ? AND hour = ?", weekCode, day, hour).
		First(&existing)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		entry := models.WantedCoverage{
			WeekCode: weekCode,
			Day:      day,
			Hour:     hour,
			Count:    count,
		}
		if err := r.db.Create(&entry).Error; err != nil {
			r.logger.WithError(err).Error("Failed to create wanted coverage entry")
			return err
		}
		return nil
	}

	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to look up wanted coverage entry")
		return result.Error
	}

	existing.Count = count
	if err := r.db.Save(&existing).Error; err != nil {
		r.logger.WithError(err).Error("Failed to update wanted coverage entry")
		return err
	}

	return nil
}

func (r *GormWantedCoverageRepository) GetDaily(weekCode string) ([]models.WantedDailyTotal, error) {
	var totals []models.WantedDailyTotal
	result := r.db.Where("week_code = ?", weekCode).
		Order("day ASC").
		Find(&totals)

	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to get daily wanted totals")
		return nil, result.Error
	}

	return totals, nil
}

func (r *GormWantedCoverageRepository) SetDaily(weekCode string, day models.DayName, total int) error {
	var existing models.WantedDailyTotal
	result := r.db.Where("week_code = ? AND day = ?", weekCode, day).First(&existing)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		entry := models.WantedDailyTotal{
			WeekCode: weekCode,
			Day:      day,
			Total:    total,
		}
		if err := r.db.Create(&entry).Error; err != nil {
			r.logger.WithError(err).Error("Failed to create daily wanted total")
			return err
		}
		return nil
	}

	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to look up daily wanted total")
		return result.Error
	}

	existing.Total = total
	if err := r.db.Save(&existing).Error; err != nil {
		r.logger.WithError(err).Error("Failed to update daily wanted total")
		return err
	}

	return nil
}
