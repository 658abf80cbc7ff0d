// Package validation provides input validation utilities
package validation

import (
	"fmt"
	"regexp"
	"time"
	"unicode/utf8"

	"fasttweet/internal/models"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail checks basic email format
func ValidateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("invalid email format")
	}

	if len(email) > 254 {
		return fmt.Errorf("email must not exceed 254 characters")
	}

	return nil
}

// ValidatePassword checks password length bounds (8-64 characters).
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters long")
	}

	if len(password) > 64 {
		return fmt.Errorf("password must not exceed 64 characters")
	}

	return nil
}

// ValidateName checks a first or last name (1-50 characters).
func ValidateName(field, name string) error {
	n := utf8.RuneCountInString(name)
	if n < 1 {
		return fmt.Errorf("%s is required", field)
	}
	if n > 50 {
		return fmt.Errorf("%s must not exceed 50 characters", field)
	}
	return nil
}

// ValidateTweetContent checks tweet content length (1-280 characters).
// Length is counted in characters, not bytes.
func ValidateTweetContent(content string) error {
	n := utf8.RuneCountInString(content)
	if n < 1 {
		return fmt.Errorf("tweet content is required")
	}
	if n > models.MaxTweetLength {
		return fmt.Errorf("tweet content must not exceed %d characters", models.MaxTweetLength)
	}
	return nil
}

// ParseBirthDate parses an optional YYYY-MM-DD birth date string.
// An empty string yields nil without error.
func ParseBirthDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, fmt.Errorf("birth_date must be in YYYY-MM-DD format")
	}
	return &t, nil
}
