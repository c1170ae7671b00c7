package ports

import (
	"context"

	"github.com/orangeplan/user-management/internal/core/domain"
)

// UserRepository defines the interface for user directory persistence.
// Implementations must enforce username and email uniqueness at the storage
// layer; the core relies on this for its uniqueness invariant.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
