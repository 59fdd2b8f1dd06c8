package utils

import (
	"crypto/rand"   // Cryptographic randomness
	"encoding/hex"  // Hex encoding for order ids
	"math/big"      // Bounded random integers
	"strconv"       // Integer to string conversion
)

// GenerateLoginCode returns a uniformly random 6-digit code (100000-999999)
func GenerateLoginCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000)) // Uniform in [0, 900000)
	if err != nil {
		return "", err // Entropy source failure
	}
	return strconv.FormatInt(n.Int64()+100000, 10), nil // Shift into the 6-digit range
}

// NewOrderID returns a short order identifier (8 hex chars), independent of the
// storage primary key
func NewOrderID() (string, error) {
	b := make([]byte, 4) // 4 random bytes -> 8 hex characters
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
