package security

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword produces a bcrypt hash, the same scheme the existing
// admin rows were written with, so they verify unchanged.
func HashPassword(password string) ([]byte, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	return hash, nil
}

// VerifyPassword reports whether password matches the stored hash. The
// comparison inside bcrypt is constant time.
func VerifyPassword(password string, hash []byte) bool {
	return bcrypt.CompareHashAndPassword(hash, []byte(password)) == nil
}
