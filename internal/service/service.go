package service

import (
	"context"
	"time"

	"artshare/internal/models"
	"artshare/internal/repository"
	"artshare/internal/token"
)

// Authorization owns registration, credential checking and token issuance.
type Authorization interface {
	Register(ctx context.Context, username, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (string, error)
	ParseToken(accessToken string) (*token.Claims, error)
}

// Accounts is plain data access over stored users for the management routes.
type Accounts interface {
	List(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, id string) (*models.User, error)
	Update(ctx context.Context, u models.User) (*models.User, error)
	Delete(ctx context.Context, id string) error
}

// Activity exposes the append-only auth trail with filtering access.
type Activity interface {
	Record(ctx context.Context, typ, email, detail string) error
	List(ctx context.Context, f ActivityFilter) ([]models.ActivityEvent, error)
}

// ActivityFilter supports trail filtering by time range and type.
type ActivityFilter struct {
	From time.Time // inclusive; zero means no lower bound
	To   time.Time // inclusive; zero means no upper bound
	Type string    // "", "REGISTER", "LOGIN", "LOGIN_FAILED"
}

// Root Service aggregates all sub-services.
type Service struct {
	Authorization
	Accounts
	Activity
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, tokens *token.Manager) *Service {
	activity := NewActivityService(repos.Activity)
	return &Service{
		Authorization: NewAuthService(repos.Users, tokens, activity),
		Accounts:      NewAccountService(repos.Users),
		Activity:      activity,
	}
}
