package models

import "time"

// UserSetting is one persisted key/value pair for a user
// (target calories, plan needs-update flag).
type UserSetting struct {
	UserID    uint   `gorm:"primaryKey;autoIncrement:false"`
	Key       string `gorm:"primaryKey;size:64"`
	Value     string `gorm:"type:text"`
	UpdatedAt time.Time
}
