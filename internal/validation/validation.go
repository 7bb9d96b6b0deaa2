// Package validation contains input validation helpers for account fields.
package validation

import (
	"regexp"
	"strings"

	"titiktemu/internal/models"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidateUsername checks username length constraints (3-50 characters).
func ValidateUsername(username string) error {
	username = strings.TrimSpace(username)
	if len(username) < 3 || len(username) > 50 {
		return models.NewValidationError("Username harus 3-50 karakter")
	}
	return nil
}

// ValidateEmail checks email syntax and length.
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" || len(email) > 100 || !emailRegex.MatchString(email) {
		return models.NewValidationError("Format email tidak valid")
	}
	return nil
}

// ValidatePassword checks password length constraints.
func ValidatePassword(password string) error {
	if len(password) < 6 {
		return models.NewValidationError("Password minimal 6 karakter")
	}
	if len(password) > 128 {
		return models.NewValidationError("Password maksimal 128 karakter")
	}
	return nil
}
