package repository

import (
	"errors"
	"shift-planner-bot/internal/models"

	"gorm.io/gorm"
)

type EmployeeRepository interface {
	Create(employee *models.Employee) error
	Update(employee *models.Employee) error
	Delete(chatID int64) error
	GetByChatID(chatID int64) (*models.Employee, error)
	GetByID(id uint) (*models.Employee, error)
	GetAll() ([]*models.Employee, error)
	Exists(chatID int64) (bool, error)
	UpdateRole(chatID int64, role models.Role) error
	GetManagers() ([]*models.Employee, error)
}

type GormEmployeeRepository struct {
	db *gorm.DB
}

func NewGormEmployeeRepository(db *gorm.DB) (*GormEmployeeRepository, error) {
	if err := db.AutoMigrate(&models.Employee{}); err != nil {
		return nil, err
	}

	return &GormEmployeeRepository{db: db}, nil
}

func (r *GormEmployeeRepository) Create(employee *models.Employee) error {
	var existing models.Employee
	result := r.db.Where("chat_id = ?", employee.ChatID).First(&existing)
	if result.Error == nil {
		return errors.New("employee already exists")
	}

	result = r.db.Create(employee)
	if result.Error != nil {
		return result.Error
	}

	return nil
}

func (r *GormEmployeeRepository) GetByChatID(chatID int64) (*models.Employee, error) {
	var employee models.Employee
	result := r.db.Where("chat_id = ?", chatID).First(&employee)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if result.Error != nil {
		return nil, result.Error
	}

	return &employee, nil
}

func (r *GormEmployeeRepository) GetByID(id uint) (*models.Employee, error) {
	var employee models.Employee
	result := r.db.First(&employee, id)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if result.Error != nil {
		return nil, result.Error
	}

	return &employee, nil
}

func (r *GormEmployeeRepository) Update(employee *models.Employee) error {
	var existing models.Employee
	result := r.db.Where("chat_id = ?", employee.ChatID).First(&existing)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return errors.New("employee not found")
	}

	result = r.db.Save(employee)
	if result.Error != nil {
		return result.Error
	}

	return nil
}

func (r *GormEmployeeRepository) Delete(chatID int64) error {
	result := r.db.Where("chat_id = ?", chatID).Delete(&models.Employee{})

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errors.New("employee not found")
	}

	return nil
}

func (r *GormEmployeeRepository) Exists(chatID int64) (bool, error) {
	var count int64
	result := r.db.Model(&models.Employee{}).Where("chat_id = ?", chatID).Count(&count)

	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}

func (r *GormEmployeeRepository) GetAll() ([]*models.Employee, error) {
	var employees []*models.Employee
	result := r.db.Find(&employees)

	if result.Error != nil {
		return nil, result.Error
	}

	return employees, nil
}

func (r *GormEmployeeRepository) UpdateRole(chatID int64, role models.Role) error {
	result := r.db.Model(&models.Employee{}).
		Where("chat_id = ?", chatID).
		Update("role", role)

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errors.New("employee not found")
	}

	return nil
}

func (r *GormEmployeeRepository) GetManagers() ([]*models.Employee, error) {
	var managers []*models.Employee
	result := r.db.Where("role = ?", models.RoleManager).Find(&managers)

	if result.Error != nil {
		return nil, result.Error
	}

	return managers, nil
}
