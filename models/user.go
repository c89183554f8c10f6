package models

import (
	"strings"
	"time"
)

type User struct {
	ID           string    `json:"id" gorm:"primaryKey;size:191"`
	Name         string    `json:"name" gorm:"not null;size:255"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null;size:255"`
	PasswordHash string    `json:"-" gorm:"not null;size:255"`
	Phone        *string   `json:"phone" gorm:"size:50"`
	Address      *string   `json:"address" gorm:"size:500"`
	RegisteredAt time.Time `json:"registered_at"`

	Vehicles []Vehicle `json:"vehicles,omitempty" gorm:"foreignKey:OwnerID"`
}

// NormalizeEmail returns the canonical form used for storage and lookup:
// trimmed and lowercased.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
