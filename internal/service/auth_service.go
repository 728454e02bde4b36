package service

import (
	"context"
	"errors"
	"fmt"

	"artshare/internal/models"
	"artshare/internal/repository"
	"artshare/internal/token"

	"github.com/google/uuid"
)

// Activity trail event types recorded by the auth flow.
const (
	EventRegister    = "REGISTER"
	EventLogin       = "LOGIN"
	EventLoginFailed = "LOGIN_FAILED"
)

// Domain errors for auth flows. The HTTP layer maps each one to a
// status; everything else is an internal storage or signing fault.
var (
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AuthService handles user auth logic.
type AuthService struct {
	users    repository.Users
	tokens   *token.Manager
	activity Activity // optional
}

func NewAuthService(users repository.Users, tokens *token.Manager, activity Activity) *AuthService {
	return &AuthService{users: users, tokens: tokens, activity: activity}
}

// Register creates an account unless the email is already taken.
// Passwords and every other field are stored exactly as submitted; no
// format checks happen here. The lookup is a courtesy read: under a
// registration race the users.email UNIQUE constraint has the final say.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("check existing user %q: %w", email, err)
	}
	if existing != nil {
		return nil, ErrUserExists
	}

	created, err := s.users.Create(ctx, models.User{
		ID:       uuid.NewString(),
		Username: username,
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, fmt.Errorf("create user %q: %w", email, err)
	}

	s.record(ctx, EventRegister, email, "account created")
	return created, nil
}

// Login checks credentials and issues a fresh token. The existence
// check deliberately precedes the password check, so an unknown email
// reports ErrUserNotFound rather than ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("lookup user %q: %w", email, err)
	}
	if u == nil {
		s.record(ctx, EventLoginFailed, email, "unknown email")
		return "", ErrUserNotFound
	}
	if u.Password != password {
		s.record(ctx, EventLoginFailed, email, "wrong password")
		return "", ErrInvalidCredentials
	}

	tok, err := s.tokens.Issue(u.ID, u.Email)
	if err != nil {
		return "", fmt.Errorf("issue token for %q: %w", email, err)
	}

	s.record(ctx, EventLogin, email, "login successful")
	return tok, nil
}

// ParseToken verifies an access token and returns its claims.
func (s *AuthService) ParseToken(accessToken string) (*token.Claims, error) {
	return s.tokens.Parse(accessToken)
}

// record appends to the activity trail best-effort: a failed append
// never changes the outcome of the auth operation itself.
func (s *AuthService) record(ctx context.Context, typ, email, detail string) {
	if s.activity == nil {
		return
	}
	_ = s.activity.Record(ctx, typ, email, detail)
}
