package usecase

import (
	"context"

	"carvalue/internal/domain/entity"
)

// MessageUsecase reads and appends to the message store.
type MessageUsecase interface {
	ListMessages(ctx context.Context) (map[string]*entity.Message, error)
	GetMessage(ctx context.Context, id string) (*entity.Message, error)
	CreateMessage(ctx context.Context, content string) (*entity.Message, error)
}
