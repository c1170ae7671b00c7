package domain

import (
	"strings"
	"unicode/utf8"
)

const specialCharacters = "@$!%*?&#"

type passwordRule struct {
	ok      func(string) bool
	message string
}

// passwordRules are evaluated in order; the first failing rule is reported.
var passwordRules = []passwordRule{
	{func(p string) bool { return utf8.RuneCountInString(p) >= 6 }, "password must be at least 6 characters long"},
	{func(p string) bool { return strings.IndexFunc(p, isUpper) >= 0 }, "password must contain at least one uppercase letter"},
	{func(p string) bool { return strings.IndexFunc(p, isLower) >= 0 }, "password must contain at least one lowercase letter"},
	{func(p string) bool { return strings.IndexFunc(p, isDigit) >= 0 }, "password must contain at least one number"},
	{func(p string) bool { return strings.ContainsAny(p, specialCharacters) }, "password must contain at least one special character"},
}

func isUpper(r rune) bool { return r >= 'A' && r <= 'Z' }
func isLower(r rune) bool { return r >= 'a' && r <= 'z' }
func isDigit(r rune) bool { return r >= '0' && r <= '9' }

// ValidatePassword enforces the password-strength policy. Applied at
// registration and whenever a password is updated.
func ValidatePassword(password string) error {
	for _, rule := range passwordRules {
		if !rule.ok(password) {
			return &ValidationError{Field: "password", Message: rule.message}
		}
	}
	return nil
}
