package models

import "time"

// WantedCoverage is the manager-specified target headcount for one hour
// bucket of one day. The engine reads these for comparison against
// computed coverage; it does not own them.
type WantedCoverage struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	WeekCode  string    `gorm:"size:8;not null;uniqueIndex:idx_wanted_hour" json:"week_code"`
	Day       DayName   `gorm:"not null;uniqueIndex:idx_wanted_hour" json:"day_name"`
	Hour      int       `gorm:"not null;check:hour >= 0 AND hour <= 23;uniqueIndex:idx_wanted_hour" json:"hour"`
	Count     int       `gorm:"not null;default:0" json:"count"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (WantedCoverage) TableName() string {
	return "wanted_coverage"
}

// WantedDailyTotal is the manager-specified target total for one day.
type WantedDailyTotal struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	WeekCode  string    `gorm:"size:8;not null;uniqueIndex:idx_wanted_day" json:"week_code"`
	Day       DayName   `gorm:"not null;uniqueIndex:idx_wanted_day" json:"day_name"`
	Total     int       `gorm:"not null;default:0" json:"total"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (WantedDailyTotal) TableName() string {
	return "wanted_daily_totals"
}
