package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// bcrypt only considers the first 72 bytes of input. Truncation happens
// here, at a single normalization point, so hashing and verification
// always see the same bytes regardless of password length.
const maxPasswordBytes = 72

func truncatePassword(password string) []byte {
	b := []byte(password)
	if len(b) > maxPasswordBytes {
		b = b[:maxPasswordBytes]
	}
	return b
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(truncatePassword(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPasswordHash returns false on any mismatch, including a
// malformed stored hash. It never panics or returns an error.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), truncatePassword(password)) == nil
}
