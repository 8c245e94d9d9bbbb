package usecase

import (
	"context"

	"carvalue/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateUserInput holds the fields a PATCH may change. Nil fields are left untouched.
type UpdateUserInput struct {
	Email    *string
	Password *string
}

// UserUsecase defines account administration operations.
type UserUsecase interface {
	// WhoAmI returns the account behind the authenticated caller.
	WhoAmI(ctx context.Context, actor *entity.Identity) (*entity.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindUsers(ctx context.Context, email string) ([]*entity.User, error)
	// UpdateUser and RemoveUser require the actor to be the account owner or an admin.
	UpdateUser(ctx context.Context, actor *entity.Identity, id uuid.UUID, input *UpdateUserInput) (*entity.User, error)
	RemoveUser(ctx context.Context, actor *entity.Identity, id uuid.UUID) error
}
