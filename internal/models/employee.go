package models

type Role string

const (
	RoleEmployee string = "employee"
	RoleManager  string = "manager"
)

type Employee struct {
	ID        uint   `gorm:"primarykey" json:"id"`
	CreatedAt int64  `json:"created_at"`
	UpdatedAt int64  `json:"updated_at"`
	ChatID    int64  `gorm:"uniqueIndex;not null" json:"chat_id"`
	Username  string `json:"username"`
	FirstName string `gorm:"not null" json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `gorm:"default:'employee'" json:"role"`

	// MaxDailyHours overrides the company per-day limit when > 0.
	MaxDailyHours float64 `gorm:"not null;default:0" json:"max_daily_hours"`
}

// IsManager reports whether the employee administers schedules.
func (e *Employee) IsManager() bool {
	return e.Role == RoleManager
}

// SetRole sets the role.
func (e *Employee) SetRole(role Role) {
	e.Role = string(role)
}

// FullName returns the display name.
func (e *Employee) FullName() string {
	if e.LastName == "" {
		return e.FirstName
	}
	return e.FirstName + " " + e.LastName
}

// TableName sets the table name in the DB.
func (Employee) TableName() string {
	return "employees"
}
