// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import (
	"carvalue/internal/domain/entity"
	"carvalue/internal/errors"
)

// ErrEmptyPassword is returned by PasswordHasher.Hash for an empty password.
// No key derivation work is done in that case.
var ErrEmptyPassword = errors.New("password must not be empty")

// ErrMalformedCredential is returned by PasswordHasher.Verify when the stored
// value is not a well-formed serialized credential.
var ErrMalformedCredential = entity.ErrMalformedCredential

// PasswordHasher derives and checks salted password credentials.
// Implementations must be safe for concurrent use and free of shared mutable state.
type PasswordHasher interface {
	// Hash returns a serialized credential ("salt.hash") for a non-empty password.
	Hash(password string) (string, error)

	// Verify reports whether password matches the stored serialized credential.
	// A malformed stored value is an error, never a silent false.
	Verify(password, stored string) (bool, error)
}
