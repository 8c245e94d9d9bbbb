package repository

import (
	"context"

	"carvalue/internal/domain/entity"
	"carvalue/internal/errors"
)

// ErrMessageNotFound is returned when a message id is unknown.
var ErrMessageNotFound = errors.New("message not found")

// MessageRepository is the file-backed message store.
type MessageRepository interface {
	// FindOne returns the message with id, or ErrMessageNotFound.
	FindOne(ctx context.Context, id string) (*entity.Message, error)

	// FindAll returns every stored message keyed by id.
	FindAll(ctx context.Context) (map[string]*entity.Message, error)

	// Create stores content under a fresh unique id and returns the message.
	Create(ctx context.Context, content string) (*entity.Message, error)
}
