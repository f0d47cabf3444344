package model

import (
	"time"
)

// Card represents the database model for cash cards
type Card struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	Amount    float64   `gorm:"not null"`
	Owner     string    `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for Card
func (Card) TableName() string {
	return "cards"
}
