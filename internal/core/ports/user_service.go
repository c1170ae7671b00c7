package ports

import (
	"context"

	"github.com/orangeplan/user-management/internal/core/domain"
)

// UserUpdateInput carries the optional fields of a PATCH. Nil means "leave
// unchanged". OldPassword and NewPassword must be provided together.
type UserUpdateInput struct {
	Username    *string
	Email       *string
	FirstName   *string
	LastName    *string
	Role        *string
	IsActive    *bool
	OldPassword *string
	NewPassword *string
}

type UserService interface {
	List(ctx context.Context) ([]*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, id string, input UserUpdateInput) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
