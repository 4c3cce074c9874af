package validator

import (
	"errors"
	"strings"
)

var (
	ErrInvalidUsername = errors.New("username is required")
	ErrInvalidPassword = errors.New("password is required")
)

// Credentials are accepted as-is beyond being non-empty; the auth contract
// compares passwords verbatim and puts no shape requirements on either field.
func ValidateUsername(username string) error {
	if strings.TrimSpace(username) == "" {
		return ErrInvalidUsername
	}
	return nil
}

func ValidatePassword(password string) error {
	if password == "" {
		return ErrInvalidPassword
	}
	return nil
}
