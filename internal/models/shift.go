package models

import (
	"time"
)

// Shift is a single-week, ad-hoc shift row. A shift whose end time is not
// strictly after its start time crosses midnight into the next day.
type Shift struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	WeekCode    string    `gorm:"size:8;not null;index" json:"week_code"`
	Day         DayName   `gorm:"not null" json:"day_name"`
	EmployeeID  uint      `gorm:"not null;index" json:"employee_id"`
	StartTime   string    `gorm:"size:5;not null" json:"start_time"`
	EndTime     string    `gorm:"size:5;not null" json:"end_time"`
	Note        string    `json:"note"`
	IsSent      bool      `gorm:"not null;default:false" json:"issent"`
	IsPublished bool      `gorm:"not null;default:false" json:"ispublished"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Employee Employee `gorm:"foreignKey:EmployeeID" json:"-"`
}

func (Shift) TableName() string {
	return "shifts"
}

// StartMinutes returns the start time as minutes since midnight.
func (s *Shift) StartMinutes() (int, error) {
	return ClockToMinutes(s.StartTime)
}

// EndMinutes returns the end time as minutes since midnight.
func (s *Shift) EndMinutes() (int, error) {
	return ClockToMinutes(s.EndTime)
}

// CrossesMidnight reports whether the shift spans into the next day
// (end not strictly after start, in minutes).
func (s *Shift) CrossesMidnight() bool {
	start, err := s.StartMinutes()
	if err != nil {
		return false
	}
	end, err := s.EndMinutes()
	if err != nil {
		return false
	}
	return end <= start
}

// DurationHours returns the shift length in hours. Cross-midnight shifts
// are measured on the whole pre-segmentation span (end pushed to the
// next day), which is what the daily hour limit counts.
func (s *Shift) DurationHours() (float64, error) {
	start, err := s.StartMinutes()
	if err != nil {
		return 0, err
	}
	end, err := s.EndMinutes()
	if err != nil {
		return 0, err
	}
	if end <= start {
		end += MinutesPerDay
	}
	return float64(end-start) / MinutesPerHour, nil
}

// IsValid checks that the row can be stored.
func (s *Shift) IsValid() bool {
	if s.EmployeeID == 0 {
		return false
	}
	if s.WeekCode == "" {
		return false
	}
	if !s.Day.IsValid() {
		return false
	}
	if _, err := s.StartMinutes(); err != nil {
		return false
	}
	if _, err := s.EndMinutes(); err != nil {
		return false
	}
	return true
}
