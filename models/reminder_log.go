// models/reminder_log.go
package models

import (
	"time"
)

type ReminderLog struct {
	ID            uint   `gorm:"primaryKey"`
	AppointmentID uint   `gorm:"index;not null"`
	CustomerID    uint   `gorm:"index;not null"`
	Message       string `gorm:"type:text"`
	Status        string `gorm:"type:varchar(20)"` // sent, failed, skipped
	ErrorMessage  string `gorm:"type:text"`
	SentAt        time.Time

	CreatedAt time.Time
}
