package auth

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

// BcryptCost is the bcrypt work factor for stored password hashes.
const BcryptCost = 10

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 8

// HashPassword produces a salted bcrypt hash of the password.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPassword verifies a candidate password against a stored hash.
func CheckPassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}

// GenerateTempPassword builds a temporary password of the form
// "Temp" followed by six random digits (100000-999999).
func GenerateTempPassword() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("failed to generate temporary password: %w", err)
	}
	return fmt.Sprintf("Temp%d", 100000+n.Int64()), nil
}
