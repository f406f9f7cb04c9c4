package models

import (
	"time"
)

type Appointment struct {
	ID              uint      `gorm:"primaryKey"`
	CustomerID      uint      `gorm:"index;not null"`
	AppointmentDate time.Time `gorm:"index;not null"`
	Description     string    `gorm:"type:text"`

	Customer Customer `gorm:"foreignKey:CustomerID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
