package util

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword takes a plain-text password and returns a salted digest.
// The cost comes from configuration so tests can run with the minimum.
func HashPassword(password string, cost int) ([]byte, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return []byte{}, err
	}
	return hash, nil
}

// CheckPasswordHash compares the given password with the stored digest.
func CheckPasswordHash(password string, digest []byte) bool {
	err := bcrypt.CompareHashAndPassword(digest, []byte(password))
	return err == nil // Returns true if passwords match, false otherwise
}
