package auth

import (
	"regexp"
	"strings"
)

const (
	passwordMinLen = 8
	passwordMaxLen = 128
)

// Intentionally loose: local@domain.tld shape only. Real deliverability is
// not decidable by regex.
var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// NormalizeEmail lower-cases and trims an email. The normalized form is the
// uniqueness and lookup key everywhere.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateEmail(normalized string) error {
	if normalized == "" {
		return invalid("email is required")
	}
	if !emailRe.MatchString(normalized) {
		return invalid("email is not a valid address")
	}
	return nil
}

// validatePassword enforces registration-time strength rules. Login never
// re-checks strength; stored accounts predating a rule change must keep working.
func validatePassword(password string) error {
	if password == "" {
		return invalid("password is required")
	}
	if len(password) < passwordMinLen {
		return invalid("password must be at least 8 characters")
	}
	if len(password) > passwordMaxLen {
		return invalid("password must be at most 128 characters")
	}
	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case r >= '0' && r <= '9':
			hasDigit = true
		case r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z':
			hasLetter = true
		}
	}
	if !hasLetter || !hasDigit {
		return invalid("password must contain at least one letter and one digit")
	}
	return nil
}
