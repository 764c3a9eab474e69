package models

import "time"

// Session stores login sessions for the single shared-secret account
// (for logout and invalidation).
type Session struct {
	ID        string    `gorm:"primaryKey;size:64"` // UUID
	ExpiresAt time.Time `gorm:"index;not null"`
	Revoked   bool      `gorm:"index;not null"`
	CreatedAt time.Time
}
