package user

import (
	"context"
	"errors"
)

var (
	// ErrNotFound indicates no user matches the lookup.
	ErrNotFound = errors.New("user not found")
	// ErrEmailTaken indicates the email is already registered.
	ErrEmailTaken = errors.New("email already registered")
)

// Repository persists users.
type Repository interface {
	Create(ctx context.Context, user User) error
	FindByID(ctx context.Context, id string) (User, error)
	FindByEmail(ctx context.Context, email string) (User, error)
	HasAdmin(ctx context.Context) (bool, error)
	CountByRole(ctx context.Context, role Role) (int64, error)
	ListByRole(ctx context.Context, role Role, limit int64) ([]User, error)
}
