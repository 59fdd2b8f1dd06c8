package domain

import (
	"errors" // Standard errors package
	"time"   // Timestamps

	"gorm.io/gorm" // GORM ORM library
)

// Role is the closed set of user roles
type Role string

// Allowed roles
const (
	RoleCustomer Role = "customer" // Places orders
	RoleDriver   Role = "driver"   // Delivers assigned orders
	RoleAdmin    Role = "admin"    // Assigns orders to drivers
)

// ErrInvalidRole is returned when a role outside the closed set reaches storage
var ErrInvalidRole = errors.New("invalid role")

// Valid reports whether the role is one of the allowed values
func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleDriver, RoleAdmin:
		return true // Known role
	}
	return false // Anything else is rejected
}

// User Model
type User struct {
	ID          uint      `gorm:"primaryKey" json:"id"`                       // Primary key
	Email       string    `gorm:"uniqueIndex;size:255;not null" json:"email"` // Unique login identity
	Name        *string   `json:"name"`                                       // Optional display name
	PhoneNumber *string   `json:"phone_number"`                               // Optional contact number
	Role        Role      `gorm:"size:16;default:customer" json:"role"`       // customer, driver or admin
	CreatedAt   time.Time `json:"created_at"`                                 // Timestamp of creation
	UpdatedAt   time.Time `json:"updated_at"`                                 // Timestamp of last update
}

// BeforeSave validates the role at the storage boundary
func (u *User) BeforeSave(tx *gorm.DB) error {
	if u.Role == "" {
		u.Role = RoleCustomer // Default role for first-time users
	}
	// Reject any role outside the closed set
	if !u.Role.Valid() {
		return ErrInvalidRole
	}
	return nil
}
