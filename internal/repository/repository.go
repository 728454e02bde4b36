package repository

import (
	"context"
	"database/sql"
	"time"

	"artshare/internal/models"
)

// Users is the store contract the auth flow relies on: lookup by exact
// email and an atomic create. The remaining methods back the account
// management routes. Absent rows are reported as (nil, nil); every
// other failure is a wrapped storage fault.
type Users interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, u models.User) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, u models.User) error
	Delete(ctx context.Context, id string) error
}

// Activity is the append-only trail of auth events.
type Activity interface {
	Append(ctx context.Context, e models.ActivityEvent) error
	List(ctx context.Context, from, to time.Time, typ string) ([]models.ActivityEvent, error)
}

type Repository struct {
	Users    Users
	Activity Activity
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Users:    NewUserRepository(db),
		Activity: NewActivitySQLite(db),
	}
}
