package utils

import (
	"errors"
	"fmt"
	"sync"

	"github.com/SscSPs/multinav_crm/internal/apperrors"
	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes a staff or client portal password with bcrypt.
// Passwords longer than bcrypt's 72-byte limit are rejected as invalid input.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", fmt.Errorf("%w: password must be at most 72 bytes", apperrors.ErrValidation)
	}
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

var placeholderHash = sync.OnceValue(func() []byte {
	hash, _ := bcrypt.GenerateFromPassword([]byte("placeholder"), bcrypt.DefaultCost)
	return hash
})

// CheckPasswordHash compares a plaintext password with a bcrypt hash. Accounts
// without a password (Google-only staff) never match, but still pay the bcrypt
// cost so they cannot be told apart by response time.
func CheckPasswordHash(password, hash string) bool {
	if hash == "" {
		_ = bcrypt.CompareHashAndPassword(placeholderHash(), []byte(password))
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
