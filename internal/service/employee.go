package service

import (
	"fmt"
	"strings"

	"shift-planner-bot/internal/models"
	"shift-planner-bot/internal/repository"

	"github.com/sirupsen/logrus"
)

type EmployeeService struct {
	repo   repository.EmployeeRepository
	logger *logrus.Logger
}

func NewEmployeeService(repo repository.EmployeeRepository) *EmployeeService {
	return &EmployeeService{
		repo:   repo,
		logger: logrus.New(),
	}
}

// CreateEmployee registers a new employee with the default role.
func (s *EmployeeService) CreateEmployee(chatID int64, username, firstName, lastName string) (*models.Employee, error) {
	if firstName == "" {
		return nil, fmt.Errorf("first name cannot be empty")
	}

	employee := &models.Employee{
		ChatID:    chatID,
		Username:  username,
		FirstName: firstName,
		LastName:  lastName,
		Role:      models.RoleEmployee,
	}

	if err := s.repo.Create(employee); err != nil {
		return nil, fmt.Errorf("failed to create employee: %v", err)
	}

	return employee, nil
}

// GetEmployee returns the employee bound to a chat.
func (s *EmployeeService) GetEmployee(chatID int64) (*models.Employee, error) {
	employee, err := s.repo.GetByChatID(chatID)
	if err != nil {
		return nil, fmt.Errorf("failed to get employee: %v", err)
	}
	if employee == nil {
		return nil, fmt.Errorf("employee not found")
	}
	return employee, nil
}

// UpdateEmployee updates profile fields (never the role).
func (s *EmployeeService) UpdateEmployee(chatID int64, username, firstName, lastName string) (*models.Employee, error) {
	employee, err := s.repo.GetByChatID(chatID)
	if err != nil {
		return nil, fmt.Errorf("failed to get employee: %v", err)
	}
	if employee == nil {
		return nil, fmt.Errorf("employee not found")
	}

	if username != "" {
		employee.Username = username
	}
	if firstName != "" {
		employee.FirstName = firstName
	}
	if lastName != "" {
		employee.LastName = lastName
	}

	if err := s.repo.Update(employee); err != nil {
		return nil, fmt.Errorf("failed to update employee: %v", err)
	}

	return employee, nil
}

// DeleteEmployee removes an employee profile.
func (s *EmployeeService) DeleteEmployee(chatID int64) error {
	return s.repo.Delete(chatID)
}

// UpdateRole changes the role of a target employee; only managers may
// do this.
func (s *EmployeeService) UpdateRole(managerChatID, targetChatID int64, role models.Role) error {
	manager, err := s.repo.GetByChatID(managerChatID)
	if err != nil {
		return fmt.Errorf("failed to get manager: %v", err)
	}
	if manager == nil || !manager.IsManager() {
		return fmt.Errorf("only managers can change roles")
	}

	if err := s.repo.UpdateRole(targetChatID, role); err != nil {
		return fmt.Errorf("failed to update role: %v", err)
	}

	s.logger.WithFields(logrus.Fields{
		"manager": managerChatID,
		"target":  targetChatID,
		"role":    role,
	}).Info("Role updated")

	return nil
}

// SetDailyHourLimit sets or clears (hours == 0) the personal daily hour
// override of a target employee.
func (s *EmployeeService) SetDailyHourLimit(managerChatID, targetChatID int64, hours float64) error {
	manager, err := s.repo.GetByChatID(managerChatID)
	if err != nil {
		return fmt.Errorf("failed to get manager: %v", err)
	}
	if manager == nil || !manager.IsManager() {
		return fmt.Errorf("only managers can set hour limits")
	}

	if hours < 0 || hours > 24 {
		return fmt.Errorf("daily hour limit must be between 0 and 24")
	}

	employee, err := s.repo.GetByChatID(targetChatID)
	if err != nil {
		return fmt.Errorf("failed to get employee: %v", err)
	}
	if employee == nil {
		return fmt.Errorf("employee not found")
	}

	employee.MaxDailyHours = hours
	if err := s.repo.Update(employee); err != nil {
		return fmt.Errorf("failed to update employee: %v", err)
	}

	s.logger.WithFields(logrus.Fields{
		"employee": targetChatID,
		"hours":    hours,
	}).Info("Daily hour limit override set")

	return nil
}

// GetAllEmployees returns every registered employee.
func (s *EmployeeService) GetAllEmployees() ([]*models.Employee, error) {
	return s.repo.GetAll()
}

// GetManagers returns every manager.
func (s *EmployeeService) GetManagers() ([]*models.Employee, error) {
	return s.repo.GetManagers()
}

// InitializeManager promotes the configured chat to manager, creating a
// placeholder profile when none exists yet.
func (s *EmployeeService) InitializeManager(chatID int64) error {
	if chatID == 0 {
		return nil
	}

	employee, err := s.repo.GetByChatID(chatID)
	if err != nil {
		return err
	}

	if employee == nil {
		employee = &models.Employee{
			ChatID:    chatID,
			FirstName: "Manager",
			Role:      models.RoleManager,
		}
		return s.repo.Create(employee)
	}

	if !employee.IsManager() {
		return s.repo.UpdateRole(chatID, models.Role(models.RoleManager))
	}

	return nil
}

// FormatEmployeeInfo renders one profile for chat display.
func (s *EmployeeService) FormatEmployeeInfo(e *models.Employee) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("👤 %s\n", e.FullName()))
	if e.Username != "" {
		b.WriteString(fmt.Sprintf("🔗 @%s\n", e.Username))
	}
	b.WriteString(fmt.Sprintf("🆔 Chat ID: %d\n", e.ChatID))
	b.WriteString(fmt.Sprintf("🎭 Role: %s\n", e.Role))
	if e.MaxDailyHours > 0 {
		b.WriteString(fmt.Sprintf("⏰ Daily hour limit: %.1fh\n", e.MaxDailyHours))
	} else {
		b.WriteString("⏰ Daily hour limit: company default\n")
	}
	return b.String()
}

// FormatEmployeeList renders employees for chat display.
func (s *EmployeeService) FormatEmployeeList(employees []*models.Employee) string {
	if len(employees) == 0 {
		return "📭 No employees registered yet"
	}

	var b strings.Builder
	b.WriteString("👥 Employees:\n\n")
	for i, e := range employees {
		b.WriteString(fmt.Sprintf("%d. %s", i+1, e.FullName()))
		if e.Username != "" {
			b.WriteString(" (@" + e.Username + ")")
		}
		if e.IsManager() {
			b.WriteString(" [manager]")
		}
		if e.MaxDailyHours > 0 {
			b.WriteString(fmt.Sprintf(", max %.1fh/day", e.MaxDailyHours))
		}
		b.WriteString("\n")
	}
	return b.String()
}
