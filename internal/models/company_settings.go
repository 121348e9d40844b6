package models

import "time"

// FallbackDailyHourLimit applies when neither the employee override nor
// the company per-day default is set.
const FallbackDailyHourLimit = 12

// CompanySettings holds the company-wide default daily hour limit per
// weekday. A single row; a zero value for a day means "unset", which
// falls through to FallbackDailyHourLimit.
type CompanySettings struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	SundayHours    float64   `gorm:"not null;default:0" json:"sunday_hours"`
	MondayHours    float64   `gorm:"not null;default:0" json:"monday_hours"`
	TuesdayHours   float64   `gorm:"not null;default:0" json:"tuesday_hours"`
	WednesdayHours float64   `gorm:"not null;default:0" json:"wednesday_hours"`
	ThursdayHours  float64   `gorm:"not null;default:0" json:"thursday_hours"`
	FridayHours    float64   `gorm:"not null;default:0" json:"friday_hours"`
	SaturdayHours  float64   `gorm:"not null;default:0" json:"saturday_hours"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (CompanySettings) TableName() string {
	return "company_settings"
}

// HoursFor returns the default daily hour limit for the given day,
// 0 when unset.
func (c *CompanySettings) HoursFor(day DayName) float64 {
	switch day {
	case Sunday:
		return c.SundayHours
	case Monday:
		return c.MondayHours
	case Tuesday:
		return c.TuesdayHours
	case Wednesday:
		return c.WednesdayHours
	case Thursday:
		return c.ThursdayHours
	case Friday:
		return c.FridayHours
	case Saturday:
		return c.SaturdayHours
	default:
		return 0
	}
}

// SetHoursFor sets the default daily hour limit for the given day.
func (c *CompanySettings) SetHoursFor(day DayName, hours float64) {
	switch day {
	case Sunday:
		c.SundayHours = hours
	case Monday:
		c.MondayHours = hours
	case Tuesday:
		c.TuesdayHours = hours
	case Wednesday:
		c.WednesdayHours = hours
	case Thursday:
		c.ThursdayHours = hours
	case Friday:
		c.FridayHours = hours
	case Saturday:
		c.SaturdayHours = hours
	}
}
