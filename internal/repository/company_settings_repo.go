package repository

import (
	"errors"
	"shift-planner-bot/internal/models"

	"gorm.io/gorm"
)

type CompanySettingsRepository interface {
	Get() (*models.CompanySettings, error)
	Save(settings *models.CompanySettings) error
}

type GormCompanySettingsRepository struct {
	db *gorm.DB
}

func NewGormCompanySettingsRepository(db *gorm.DB) (*GormCompanySettingsRepository, error) {
	if err := db.AutoMigrate(&models.CompanySettings{}); err != nil {
		return nil, err
	}

	return &GormCompanySettingsRepository{db: db}, nil
}

// Get returns the single settings row, creating it on first access.
func (r *GormCompanySettingsRepository) Get() (*models.CompanySettings, error) {
	var settings models.CompanySettings
	result := r.db.First(&settings)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		settings = models.CompanySettings{}
		if err := r.db.Create(&settings).Error; err != nil {
			return nil, err
		}
		return &settings, nil
	}

	if result.Error != nil {
		return nil, result.Error
	}

	return &settings, nil
}

func (r *GormCompanySettingsRepository) Save(settings *models.CompanySettings) error {
	return r.db.Save(settings).Error
}
