package domain

import "time"

// LoginCode Model — at most one outstanding code per email
type LoginCode struct {
	Email     string    `gorm:"primaryKey;size:255"` // One live code per email
	CodeHash  string    `gorm:"not null"`            // bcrypt hash of the 6-digit code
	ExpiresAt time.Time `gorm:"not null"`            // Issuance + 10 minutes
	CreatedAt time.Time // Timestamp of creation
	UpdatedAt time.Time // Bumped on re-issue
}

// Expired reports whether the code is past its expiry at the given instant
func (lc *LoginCode) Expired(now time.Time) bool {
	return now.After(lc.ExpiresAt)
}
