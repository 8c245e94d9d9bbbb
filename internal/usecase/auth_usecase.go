// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"carvalue/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SignupInput defines the data required to create an account.
type SignupInput struct {
	Email    string
	Password string
}

// SigninInput defines the data required for a user to sign in.
type SigninInput struct {
	Email    string
	Password string
}

// RefreshTokenInput carries the refresh token presented by the client.
type RefreshTokenInput struct {
	RefreshToken string
}

// SignoutInput ends one session, or every session of UserID when
// RefreshToken is empty.
type SignoutInput struct {
	UserID       uuid.UUID
	RefreshToken string
}

// --- Output DTOs ---

// AuthOutput returns the signed-in user and a fresh token pair.
type AuthOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// RefreshTokenOutput returns a new access token. The refresh token is not rotated.
type RefreshTokenOutput struct {
	AccessToken string
}

// AuthUsecase defines signup, signin and session handling.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	Signup(ctx context.Context, input *SignupInput) (*AuthOutput, error)
	Signin(ctx context.Context, input *SigninInput) (*AuthOutput, error)
	RefreshToken(ctx context.Context, input *RefreshTokenInput) (*RefreshTokenOutput, error)
	Signout(ctx context.Context, input *SignoutInput) error
	// CleanupExpiredSessions deletes expired refresh tokens and returns how many were removed.
	CleanupExpiredSessions(ctx context.Context) (int64, error)
}
