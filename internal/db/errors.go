package db

import (
	"errors"  // Error inspection
	"strings" // Driver message fallback

	"gorm.io/gorm" // GORM ORM library
)

// IsDuplicateKey reports whether an error is a unique-constraint violation.
// GORM translates these when TranslateError is on; the message checks cover
// drivers that do not.
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") || // MySQL 1062
		strings.Contains(msg, "UNIQUE constraint") // SQLite
}
