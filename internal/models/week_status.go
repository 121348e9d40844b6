package models

import "time"

// WeekStatus is the lock/publish state of one week. Locking is an
// external gate: the engine itself never refuses a mutation because of
// it. Callers check the status before employee-side edits so the
// manager override path stays open.
type WeekStatus struct {
	ID          uint       `gorm:"primarykey" json:"id"`
	WeekCode    string     `gorm:"size:8;not null;uniqueIndex" json:"week_code"`
	Locked      bool       `gorm:"not null;default:false" json:"locked"`
	LockDate    *time.Time `json:"lock_date"`
	IsPublished bool       `gorm:"not null;default:false" json:"is_published"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (WeekStatus) TableName() string {
	return "week_statuses"
}
