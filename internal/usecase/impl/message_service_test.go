package impl

import (
	"context"
	"testing"

	"carvalue/internal/domain/entity"
	domainerrors "carvalue/internal/domain/errors"
	"carvalue/internal/domain/repository"
	"carvalue/internal/errors"
	mockRepo "carvalue/internal/mocks/repository"
	"carvalue/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestMessageService(t *testing.T) (usecase.MessageUsecase, *mockRepo.MockMessageRepository) {
	repo := mockRepo.NewMockMessageRepository(t)

	return NewMessageService(MessageServiceParams{MessageRepo: repo, Logger: newDiscardLogger()}), repo
}

func TestMessageService_ListMessages(t *testing.T) {
	svc, repo := createTestMessageService(t)
	stored := map[string]*entity.Message{"1": {ID: "1", Content: "hi"}}

	repo.EXPECT().FindAll(mock.Anything).Return(stored, nil)

	messages, err := svc.ListMessages(context.Background())
	require.NoError(t, err)
	assert.Equal(t, stored, messages)
}

func TestMessageService_GetMessage(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc, repo := createTestMessageService(t)
		repo.EXPECT().FindOne(mock.Anything, "1").Return(&entity.Message{ID: "1", Content: "hi"}, nil)

		message, err := svc.GetMessage(context.Background(), "1")
		require.NoError(t, err)
		assert.Equal(t, "hi", message.Content)
	})

	t.Run("missing", func(t *testing.T) {
		svc, repo := createTestMessageService(t)
		repo.EXPECT().FindOne(mock.Anything, "nope").Return(nil, repository.ErrMessageNotFound)

		_, err := svc.GetMessage(context.Background(), "nope")
		assert.True(t, errors.Is(err, domainerrors.ErrMessageNotFound))
	})

	t.Run("store failure", func(t *testing.T) {
		svc, repo := createTestMessageService(t)
		repo.EXPECT().FindOne(mock.Anything, "1").Return(nil, errors.New("disk gone"))

		_, err := svc.GetMessage(context.Background(), "1")
		assert.True(t, errors.Is(err, domainerrors.ErrMessageStoreFailed))
	})
}

func TestMessageService_CreateMessage(t *testing.T) {
	svc, repo := createTestMessageService(t)
	repo.EXPECT().Create(mock.Anything, "hello").Return(&entity.Message{ID: "abc", Content: "hello"}, nil)

	message, err := svc.CreateMessage(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "abc", message.ID)
}
