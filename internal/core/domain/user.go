package domain

import "time"

// Role is the closed set of privilege levels gating endpoint access.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleUser   Role = "user"
	RoleTester Role = "tester"

	// RoleAny is the wildcard accepted by the RBAC middleware. Never a valid
	// stored role.
	RoleAny Role = "*"
)

// ParseRole validates a free-form role string against the closed set.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleUser, RoleTester:
		return Role(s), nil
	}
	return "", &ValidationError{Field: "role", Message: "role must be one of: admin, user, tester"}
}

// User models an account in the directory. PasswordHash is never serialized.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	FirstName    string    `json:"first_name,omitempty"`
	LastName     string    `json:"last_name,omitempty"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TokenPair is the credential set returned by login and refresh.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}
