package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/orangeplan/user-management/internal/core/domain"
	"github.com/orangeplan/user-management/internal/core/ports"
)

// UserService implements admin CRUD over the user directory.
type UserService struct {
	repo ports.UserRepository
	log  zerolog.Logger
}

func NewUserService(repo ports.UserRepository, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, log: log}
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// Update applies a partial update. A password change verifies the old
// password before the new one is validated and re-hashed; a role change is
// re-parsed against the closed set.
func (s *UserService) Update(ctx context.Context, id string, input ports.UserUpdateInput) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.OldPassword != nil && input.NewPassword != nil {
		if !VerifyPassword(*input.OldPassword, user.PasswordHash) {
			return nil, domain.ErrInvalidCredentials
		}
		if err := domain.ValidatePassword(*input.NewPassword); err != nil {
			return nil, err
		}
		hash, err := HashPassword(*input.NewPassword)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	if input.Role != nil {
		role, err := domain.ParseRole(*input.Role)
		if err != nil {
			return nil, err
		}
		user.Role = role
	}

	if input.Username != nil && *input.Username != user.Username {
		if _, err := s.repo.FindByUsername(ctx, *input.Username); err == nil {
			return nil, domain.ErrUserExists
		} else if err != domain.ErrUserNotFound {
			return nil, err
		}
		user.Username = *input.Username
	}
	if input.Email != nil && *input.Email != user.Email {
		if _, err := s.repo.FindByEmail(ctx, *input.Email); err == nil {
			return nil, domain.ErrUserExists
		} else if err != domain.ErrUserNotFound {
			return nil, err
		}
		user.Email = *input.Email
	}

	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}

	user.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", id).Str("username", updated.Username).Msg("user updated")
	return updated, nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("user_id", id).Str("username", user.Username).Msg("user deleted")
	return nil
}
