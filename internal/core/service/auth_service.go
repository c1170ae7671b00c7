package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/orangeplan/user-management/internal/core/domain"
	"github.com/orangeplan/user-management/internal/core/ports"
)

const (
	defaultAccessTTL  = 15 * time.Minute
	defaultRefreshTTL = 7 * 24 * time.Hour
)

// AuthService implements authentication, registration and the token
// lifecycle (issue and refresh).
type AuthService struct {
	repo       ports.UserRepository
	codec      *TokenCodec
	accessTTL  time.Duration
	refreshTTL time.Duration
	audit      ports.AuditTrail
	log        zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, codec *TokenCodec, accessTTL, refreshTTL time.Duration, audit ports.AuditTrail, log zerolog.Logger) *AuthService {
	if accessTTL <= 0 {
		accessTTL = defaultAccessTTL
	}
	if refreshTTL <= 0 {
		refreshTTL = defaultRefreshTTL
	}
	return &AuthService{
		repo:       repo,
		codec:      codec,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		audit:      audit,
		log:        log,
	}
}

// Authenticate verifies username/password and account-active status. The
// active check runs before password verification so an inactive account never
// reveals whether the password was correct.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		s.observe(ctx, "login", username, "not_found")
		return nil, err
	}

	if !user.IsActive {
		s.observe(ctx, "login", username, "locked")
		return nil, domain.ErrUserLocked
	}

	if !VerifyPassword(password, user.PasswordHash) {
		s.observe(ctx, "login", username, "invalid_password")
		return nil, domain.ErrInvalidCredentials
	}

	return user, nil
}

// Login authenticates and issues a token pair.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.TokenPair, error) {
	user, err := s.Authenticate(ctx, username, password)
	if err != nil {
		return nil, err
	}

	pair, err := s.issuePair(user)
	if err != nil {
		return nil, err
	}

	s.observe(ctx, "login", username, "success")
	return pair, nil
}

// Refresh decodes a refresh token, re-resolves the identity by its subject
// and issues a fresh pair. The role embedded in the new access token always
// comes from the current stored identity, never from the old token.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	claims, err := s.codec.Decode(refreshToken)
	if err != nil {
		if err == domain.ErrTokenExpired {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrInvalidCredentials
	}

	sub := Subject(claims)
	if sub == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByUsername(ctx, sub)
	if err != nil {
		s.observe(ctx, "refresh", sub, "stale_identity")
		return nil, domain.ErrInvalidCredentials
	}

	return s.issuePair(user)
}

// Register creates a new account. Username and email are checked for
// uniqueness before the password policy is applied; the storage layer
// enforces uniqueness again through its indexes.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	role, err := domain.ParseRole(input.Role)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.FindByUsername(ctx, input.Username); err == nil {
		return nil, domain.ErrUserExists
	} else if err != domain.ErrUserNotFound {
		return nil, err
	}
	if _, err := s.repo.FindByEmail(ctx, input.Email); err == nil {
		return nil, domain.ErrUserExists
	} else if err != domain.ErrUserNotFound {
		return nil, err
	}

	if err := domain.ValidatePassword(input.Password); err != nil {
		return nil, err
	}

	hash, err := HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     input.Username,
		Email:        input.Email,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.observe(ctx, "register", created.Username, "success")
	return created, nil
}

func (s *AuthService) issuePair(user *domain.User) (*domain.TokenPair, error) {
	access, err := s.codec.Encode(jwt.MapClaims{
		"sub":  user.Username,
		"role": string(user.Role),
	}, s.accessTTL)
	if err != nil {
		return nil, err
	}

	// Role is deliberately omitted from the refresh token: a refreshed access
	// token derives its role from the current stored identity.
	refresh, err := s.codec.Encode(jwt.MapClaims{
		"sub": user.Username,
	}, s.refreshTTL)
	if err != nil {
		return nil, err
	}

	return &domain.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "bearer",
	}, nil
}

// observe logs the outcome and appends it to the audit trail. Usernames only,
// never passwords.
func (s *AuthService) observe(ctx context.Context, action, username, outcome string) {
	evt := s.log.Info()
	if outcome != "success" {
		evt = s.log.Warn()
	}
	evt.Str("action", action).Str("username", username).Str("outcome", outcome).Msg("auth event")

	if s.audit != nil {
		s.audit.Record(ctx, ports.AuditEvent{
			Action:   action,
			Username: username,
			Outcome:  outcome,
			At:       time.Now().UTC(),
		})
	}
}
