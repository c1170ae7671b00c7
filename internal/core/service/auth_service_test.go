package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/orangeplan/user-management/internal/core/domain"
	"github.com/orangeplan/user-management/internal/core/ports"
)

type stubUserRepo struct {
	users  map[string]*domain.User // keyed by ID
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User), nextID: 1}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	return out, nil
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == user.Username || u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	created := cloneUser(user)
	created.ID = strconv.Itoa(r.nextID)
	r.nextID++
	r.users[created.ID] = cloneUser(created)
	return created, nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, ok := r.users[user.ID]; !ok {
		return nil, domain.ErrUserNotFound
	}
	r.users[user.ID] = cloneUser(user)
	return cloneUser(user), nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

// seed inserts a user directly, bypassing registration checks.
func (r *stubUserRepo) seed(t *testing.T, username, password string, role domain.Role, active bool) *domain.User {
	t.Helper()
	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	u, err := r.Create(context.Background(), &domain.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: hash,
		Role:         role,
		IsActive:     active,
	})
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	return u
}

func newTestAuthService(repo *stubUserRepo) *AuthService {
	codec := NewTokenCodec("secret")
	return NewAuthService(repo, codec, 15*time.Minute, 7*24*time.Hour, nil, zerolog.Nop())
}

func decodeClaims(t *testing.T, token string) jwt.MapClaims {
	t.Helper()
	claims, err := NewTokenCodec("secret").Decode(token)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	return claims
}

func TestAuthService_Authenticate_Success(t *testing.T) {
	repo := newStubUserRepo()
	repo.seed(t, "alice", "Str0ng!Pw", domain.RoleAdmin, true)
	svc := newTestAuthService(repo)

	user, err := svc.Authenticate(context.Background(), "alice", "Str0ng!Pw")
	if err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}
	if user.Username != "alice" || user.Role != domain.RoleAdmin {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestAuthService_Authenticate_UnknownUser(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo())

	if _, err := svc.Authenticate(context.Background(), "ghost", "whatever"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_Authenticate_WrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	repo.seed(t, "alice", "Str0ng!Pw", domain.RoleAdmin, true)
	svc := newTestAuthService(repo)

	if _, err := svc.Authenticate(context.Background(), "alice", "badpass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Authenticate_LockedBeforePasswordCheck(t *testing.T) {
	repo := newStubUserRepo()
	repo.seed(t, "alice", "Str0ng!Pw", domain.RoleAdmin, false)
	svc := newTestAuthService(repo)

	// Inactive accounts fail with Locked regardless of password correctness:
	// the active check precedes password verification.
	if _, err := svc.Authenticate(context.Background(), "alice", "Str0ng!Pw"); err != domain.ErrUserLocked {
		t.Fatalf("expected ErrUserLocked for correct password, got %v", err)
	}
	if _, err := svc.Authenticate(context.Background(), "alice", "badpass"); err != domain.ErrUserLocked {
		t.Fatalf("expected ErrUserLocked for wrong password, got %v", err)
	}
}

func TestAuthService_Login_IssuesPair(t *testing.T) {
	repo := newStubUserRepo()
	repo.seed(t, "alice", "Str0ng!Pw", domain.RoleAdmin, true)
	svc := newTestAuthService(repo)

	pair, err := svc.Login(context.Background(), "alice", "Str0ng!Pw")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if pair.TokenType != "bearer" {
		t.Fatalf("expected token_type bearer, got %q", pair.TokenType)
	}

	access := decodeClaims(t, pair.AccessToken)
	if Subject(access) != "alice" || access["role"] != "admin" {
		t.Fatalf("unexpected access claims: %v", access)
	}

	refresh := decodeClaims(t, pair.RefreshToken)
	if Subject(refresh) != "alice" {
		t.Fatalf("unexpected refresh subject: %v", refresh["sub"])
	}
	if _, ok := refresh["role"]; ok {
		t.Fatalf("refresh token must not embed the role")
	}
}

func TestAuthService_Refresh_UsesCurrentRole(t *testing.T) {
	repo := newStubUserRepo()
	user := repo.seed(t, "alice", "Str0ng!Pw", domain.RoleAdmin, true)
	svc := newTestAuthService(repo)

	pair, err := svc.Login(context.Background(), "alice", "Str0ng!Pw")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	// Downgrade the role after login; the refreshed access token must carry
	// the stored role, not the one from login time.
	stored := repo.users[user.ID]
	stored.Role = domain.RoleUser

	refreshed, err := svc.Refresh(context.Background(), pair.RefreshToken)
	if err != nil {
		t.Fatalf("refresh failed: %v", err)
	}

	access := decodeClaims(t, refreshed.AccessToken)
	if access["role"] != "user" {
		t.Fatalf("expected refreshed role %q, got %v", "user", access["role"])
	}
}

func TestAuthService_Refresh_Expired(t *testing.T) {
	repo := newStubUserRepo()
	repo.seed(t, "alice", "Str0ng!Pw", domain.RoleAdmin, true)
	svc := newTestAuthService(repo)

	expired, err := NewTokenCodec("secret").Encode(jwt.MapClaims{"sub": "alice"}, -time.Minute)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	if _, err := svc.Refresh(context.Background(), expired); err != domain.ErrTokenExpired {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestAuthService_Refresh_InvalidToken(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo())

	if _, err := svc.Refresh(context.Background(), "not-a-token"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Refresh_MissingSubject(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo())

	token, err := NewTokenCodec("secret").Encode(jwt.MapClaims{}, time.Minute)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	if _, err := svc.Refresh(context.Background(), token); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Refresh_StaleIdentity(t *testing.T) {
	repo := newStubUserRepo()
	user := repo.seed(t, "alice", "Str0ng!Pw", domain.RoleAdmin, true)
	svc := newTestAuthService(repo)

	pair, err := svc.Login(context.Background(), "alice", "Str0ng!Pw")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	// The account disappears between login and refresh; the token's embedded
	// subject must not be trusted on its own.
	if err := repo.Delete(context.Background(), user.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if _, err := svc.Refresh(context.Background(), pair.RefreshToken); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	user, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "bob",
		Email:    "bob@example.com",
		Password: "Str0ng!Pw",
		Role:     "user",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.ID == "" {
		t.Fatalf("expected assigned ID")
	}
	if !user.IsActive {
		t.Fatalf("new accounts must start active")
	}
	if user.PasswordHash == "Str0ng!Pw" {
		t.Fatalf("expected password to be hashed")
	}
	if !VerifyPassword("Str0ng!Pw", user.PasswordHash) {
		t.Fatalf("stored hash does not match password")
	}
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	repo := newStubUserRepo()
	repo.seed(t, "bob", "Str0ng!Pw", domain.RoleUser, true)
	svc := newTestAuthService(repo)

	_, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "bob",
		Email:    "other@example.com",
		Password: "Str0ng!Pw",
		Role:     "user",
	})
	if err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
	if len(repo.users) != 1 {
		t.Fatalf("no new record must be created on conflict")
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	repo.seed(t, "bob", "Str0ng!Pw", domain.RoleUser, true)
	svc := newTestAuthService(repo)

	_, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "robert",
		Email:    "bob@example.com",
		Password: "Str0ng!Pw",
		Role:     "user",
	})
	if err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Register_WeakPassword(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo())

	_, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "bob",
		Email:    "bob@example.com",
		Password: "abc",
		Role:     "user",
	})
	var ve *domain.ValidationError
	if err == nil || !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if ve.Message != "password must be at least 6 characters long" {
		t.Fatalf("expected the first unmet rule (length), got %q", ve.Message)
	}
}

func TestAuthService_Register_UnknownRole(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo())

	_, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "bob",
		Email:    "bob@example.com",
		Password: "Str0ng!Pw",
		Role:     "superuser",
	})
	var ve *domain.ValidationError
	if err == nil || !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError for unknown role, got %v", err)
	}
}
