package model

import (
	"time"
)

// Credential represents the database model for stored logins
type Credential struct {
	Username     string    `gorm:"primaryKey"`
	PasswordHash string    `gorm:"not null"`
	Role         string    `gorm:"not null"`
	CreatedAt    time.Time `gorm:"not null"`
}

// TableName specifies the table name for Credential
func (Credential) TableName() string {
	return "credentials"
}
