package models

import (
	"time"

	"shift-planner-bot/pkg/weekcode"
)

// StaticShift is a recurring shift template. It applies to every week in
// [StartWeekCode, EndWeekCode] (either bound may be empty = open). Once
// EndWeekCode is set the recurrence is closed for good: the template is
// never reactivated and the bound is never cleared; resuming recurrence
// takes a brand-new template.
type StaticShift struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	EmployeeID    uint      `gorm:"not null;index" json:"employee_id"`
	Day           DayName   `gorm:"not null" json:"day_name"`
	StartTime     string    `gorm:"size:5;not null" json:"start_time"`
	EndTime       string    `gorm:"size:5;not null" json:"end_time"`
	IsActive      bool      `gorm:"not null;default:true" json:"isactive"`
	StartWeekCode string    `gorm:"size:8" json:"start_week_code"`
	EndWeekCode   string    `gorm:"size:8" json:"end_week_code"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Employee Employee `gorm:"foreignKey:EmployeeID" json:"-"`
}

func (StaticShift) TableName() string {
	return "static_shifts"
}

// Ended reports whether the recurrence has been closed.
func (s *StaticShift) Ended() bool {
	return s.EndWeekCode != ""
}

// AppliesTo reports whether the template produces an occurrence in the
// given week: it must be active and the week must fall inside the
// activation window, bounds inclusive.
func (s *StaticShift) AppliesTo(week weekcode.WeekCode) bool {
	if !s.IsActive {
		return false
	}
	if s.StartWeekCode != "" {
		start, err := weekcode.Parse(s.StartWeekCode)
		if err != nil || week.Before(start) {
			return false
		}
	}
	if s.EndWeekCode != "" {
		end, err := weekcode.Parse(s.EndWeekCode)
		if err != nil || week.After(end) {
			return false
		}
	}
	return true
}

// IsValid checks that the row can be stored.
func (s *StaticShift) IsValid() bool {
	if s.EmployeeID == 0 {
		return false
	}
	if !s.Day.IsValid() {
		return false
	}
	if _, err := ClockToMinutes(s.StartTime); err != nil {
		return false
	}
	if _, err := ClockToMinutes(s.EndTime); err != nil {
		return false
	}
	return true
}
