package service

import (
	"context"
	"fmt"

	"artshare/internal/models"
	"artshare/internal/repository"
)

// AccountService is the CRUD collaborator over stored users. It applies
// no policy of its own: the role field is carried around but never
// enforced here.
type AccountService struct {
	users repository.Users
}

func NewAccountService(users repository.Users) *AccountService {
	return &AccountService{users: users}
}

func (s *AccountService) List(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx)
}

func (s *AccountService) Get(ctx context.Context, id string) (*models.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user %q: %w", id, err)
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// Update overwrites the mutable fields of an existing user and returns
// the updated record. The id itself is immutable.
func (s *AccountService) Update(ctx context.Context, in models.User) (*models.User, error) {
	existing, err := s.users.GetByID(ctx, in.ID)
	if err != nil {
		return nil, fmt.Errorf("get user %q: %w", in.ID, err)
	}
	if existing == nil {
		return nil, ErrUserNotFound
	}

	existing.Username = in.Username
	existing.Email = in.Email
	existing.Password = in.Password
	existing.Role = in.Role

	if err := s.users.Update(ctx, *existing); err != nil {
		return nil, fmt.Errorf("update user %q: %w", in.ID, err)
	}
	return existing, nil
}

func (s *AccountService) Delete(ctx context.Context, id string) error {
	existing, err := s.users.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get user %q: %w", id, err)
	}
	if existing == nil {
		return ErrUserNotFound
	}
	return s.users.Delete(ctx, id)
}
