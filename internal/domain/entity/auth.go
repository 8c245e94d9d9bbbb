package entity

import (
	"time"

	"github.com/google/uuid"
)

// RefreshToken is a persisted sign-in session. Only the SHA-256 hash of the
// raw token is stored so a leaked table cannot be replayed.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// IsExpired reports whether the session has passed its expiry at now.
func (t *RefreshToken) IsExpired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}
