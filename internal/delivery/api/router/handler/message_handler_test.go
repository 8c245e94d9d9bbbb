package handler

import (
	"net/http"
	"testing"

	"carvalue/internal/domain/entity"
	domainerrors "carvalue/internal/domain/errors"
	"carvalue/internal/errors"
	mockUC "carvalue/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestMessageHandler(t *testing.T) (*MessageHandler, *mockUC.MockMessageUsecase) {
	messageUC := mockUC.NewMockMessageUsecase(t)

	return NewMessageHandler(MessageHandlerParams{MessageUC: messageUC}), messageUC
}

func TestMessageHandler_ListMessages(t *testing.T) {
	h, messageUC := createTestMessageHandler(t)
	messageUC.EXPECT().ListMessages(mock.Anything).Return(map[string]*entity.Message{"1": {ID: "1", Content: "hi"}}, nil)

	rec, env := serve(t, h.ListMessages, testRequest{method: http.MethodGet, target: "/messages"})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"1":{"id":"1","content":"hi"}}`, string(env.Data))
}

func TestMessageHandler_GetMessage_NotFound(t *testing.T) {
	h, messageUC := createTestMessageHandler(t)
	messageUC.EXPECT().GetMessage(mock.Anything, "404").Return(nil, errors.Wrap(domainerrors.ErrMessageNotFound, "get message"))

	rec, env := serve(t, h.GetMessage, testRequest{method: http.MethodGet, target: "/messages/404", params: map[string]string{"id": "404"}})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "MESSAGE_NOT_FOUND", env.Error.Code)
}

func TestMessageHandler_CreateMessage(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		h, messageUC := createTestMessageHandler(t)
		messageUC.EXPECT().CreateMessage(mock.Anything, "hello").Return(&entity.Message{ID: "abc", Content: "hello"}, nil)

		rec, env := serve(t, h.CreateMessage, testRequest{method: http.MethodPost, target: "/messages", body: `{"content":"hello"}`})

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, entity.Message{ID: "abc", Content: "hello"}, decodeData[entity.Message](t, env))
	})

	t.Run("content required", func(t *testing.T) {
		h, _ := createTestMessageHandler(t)

		rec, env := serve(t, h.CreateMessage, testRequest{method: http.MethodPost, target: "/messages", body: `{}`})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "content is required", env.Error.Details)
	})
}
