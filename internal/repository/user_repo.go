package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"artshare/internal/models"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Ensure implementation of Users interface at compile time.
var _ Users = (*UserRepository)(nil)

const (
	insertUserSQL        = `INSERT INTO users (id, username, email, password, role) VALUES (?, ?, ?, ?, ?)`
	selectUserByEmailSQL = `SELECT id, username, email, password, role FROM users WHERE email = ?`
	selectUserByIDSQL    = `SELECT id, username, email, password, role FROM users WHERE id = ?`
	listUsersSQL         = `SELECT id, username, email, password, role FROM users ORDER BY email`
	updateUserSQL        = `UPDATE users SET username = ?, email = ?, password = ?, role = ? WHERE id = ?`
	deleteUserSQL        = `DELETE FROM users WHERE id = ?`
)

// FindByEmail fetches a user by exact email match. Returns (nil, nil) if not found.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.scanOne(ctx, selectUserByEmailSQL, email)
}

// GetByID fetches a user by id. Returns (nil, nil) if not found.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	return r.scanOne(ctx, selectUserByIDSQL, id)
}

func (r *UserRepository) scanOne(ctx context.Context, query, arg string) (*models.User, error) {
	var u models.User
	err := r.db.QueryRowContext(ctx, query, arg).
		Scan(&u.ID, &u.Username, &u.Email, &u.Password, &u.Role)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user %q: %w", arg, err)
	}
	return &u, nil
}

// Create inserts a new user and returns the stored record. The
// users.email UNIQUE constraint makes the insert the final word on
// duplicate emails, whatever a prior existence check saw.
func (r *UserRepository) Create(ctx context.Context, u models.User) (*models.User, error) {
	if _, err := r.db.ExecContext(ctx, insertUserSQL, u.ID, u.Username, u.Email, u.Password, u.Role); err != nil {
		return nil, fmt.Errorf("insert user %q: %w", u.Email, err)
	}
	return &u, nil
}

// List returns all users ordered by email.
func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	rows, err := r.db.QueryContext(ctx, listUsersSQL)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	out := make([]models.User, 0, 32)
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.Password, &u.Role); err != nil {
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate user rows: %w", err)
	}
	return out, nil
}

// Update overwrites the mutable fields of the user with the given id.
func (r *UserRepository) Update(ctx context.Context, u models.User) error {
	if _, err := r.db.ExecContext(ctx, updateUserSQL, u.Username, u.Email, u.Password, u.Role, u.ID); err != nil {
		return fmt.Errorf("update user %q: %w", u.ID, err)
	}
	return nil
}

// Delete removes the user with the given id. Deleting an absent id is a no-op.
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, deleteUserSQL, id); err != nil {
		return fmt.Errorf("delete user %q: %w", id, err)
	}
	return nil
}
