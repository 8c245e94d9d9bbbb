// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"carvalue/internal/domain/entity"
	"carvalue/internal/errors"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail returns the user owning email, or ErrUserNotFound.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Find lists users matching email. An empty result is not an error.
	Find(ctx context.Context, email string) ([]*entity.User, error)

	// Create persists a new user and fills in its ID and timestamps.
	Create(ctx context.Context, user *entity.User) error

	// Update saves email, password and admin flag of an existing user.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes a user by ID, or returns ErrUserNotFound.
	Delete(ctx context.Context, id uuid.UUID) error
}
