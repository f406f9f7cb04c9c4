package models

import (
	"time"
)

type Customer struct {
	ID    uint   `gorm:"primaryKey"`
	Name  string `gorm:"index;not null"`
	Phone string `gorm:"type:varchar(20)"`

	Receipts     []Receipt     `gorm:"foreignKey:CustomerID"`
	Appointments []Appointment `gorm:"foreignKey:CustomerID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
