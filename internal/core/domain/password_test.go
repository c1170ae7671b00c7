package domain

import (
	"errors"
	"testing"
)

func TestValidatePassword_Valid(t *testing.T) {
	for _, p := range []string{"Str0ng!Pw", "Aa1@xx", "P4ssw?rd", "Aa1@éç"} {
		if err := ValidatePassword(p); err != nil {
			t.Fatalf("expected %q to pass, got %v", p, err)
		}
	}
}

func TestValidatePassword_FirstFailingRule(t *testing.T) {
	tests := []struct {
		password string
		want     string
	}{
		{"abc", "password must be at least 6 characters long"},
		// 5 characters but 6 bytes; length is counted in characters.
		{"Aa1@é", "password must be at least 6 characters long"},
		{"abcdef1@", "password must contain at least one uppercase letter"},
		{"ABCDEF1@", "password must contain at least one lowercase letter"},
		{"Abcdef@!", "password must contain at least one number"},
		{"Abcdef12", "password must contain at least one special character"},
	}

	for _, tt := range tests {
		err := ValidatePassword(tt.password)
		if err == nil {
			t.Fatalf("expected %q to fail", tt.password)
		}
		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("expected ValidationError, got %T", err)
		}
		if ve.Message != tt.want {
			t.Fatalf("password %q: expected %q, got %q", tt.password, tt.want, ve.Message)
		}
	}
}

func TestValidatePassword_ShortReportsLengthFirst(t *testing.T) {
	// "abc" breaks every rule; only the length message must surface.
	err := ValidatePassword("abc")
	if err == nil || err.Error() != "password must be at least 6 characters long" {
		t.Fatalf("expected length rule first, got %v", err)
	}
}

func TestParseRole(t *testing.T) {
	for _, s := range []string{"admin", "user", "tester"} {
		role, err := ParseRole(s)
		if err != nil {
			t.Fatalf("expected %q to parse, got %v", s, err)
		}
		if string(role) != s {
			t.Fatalf("unexpected role: %s", role)
		}
	}

	for _, s := range []string{"", "root", "Admin", "*"} {
		if _, err := ParseRole(s); err == nil {
			t.Fatalf("expected %q to be rejected", s)
		}
	}
}
