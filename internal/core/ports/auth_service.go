package ports

import (
	"context"

	"github.com/orangeplan/user-management/internal/core/domain"
)

// RegisterInput carries the fields required to create an account.
type RegisterInput struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
	Role      string
}

type AuthService interface {
	// Authenticate verifies username/password and account-active status.
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
	// Login authenticates and issues an access/refresh token pair.
	Login(ctx context.Context, username, password string) (*domain.TokenPair, error)
	// Refresh re-issues a token pair from a valid refresh token, re-deriving
	// the role from the current stored identity.
	Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error)
	// Register creates a new account after uniqueness and password checks.
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
}
