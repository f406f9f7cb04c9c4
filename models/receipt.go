package models

import (
	"time"
)

type Receipt struct {
	ID            uint      `gorm:"primaryKey"`
	ReceiptNumber string    `gorm:"uniqueIndex;not null"`
	CustomerID    uint      `gorm:"index;not null"`
	AmountPaid    float64   `gorm:"type:decimal(10,2);not null"`
	Balance       float64   `gorm:"type:decimal(10,2);not null"`
	ReceiptDate   time.Time `gorm:"not null"`

	Customer Customer `gorm:"foreignKey:CustomerID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
