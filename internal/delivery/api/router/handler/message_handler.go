package handler

import (
	"net/http"

	"carvalue/internal/delivery/api/response"
	"carvalue/internal/errors"
	"carvalue/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MessageHandlerParams holds dependencies for MessageHandler, injected by Fx.
type MessageHandlerParams struct {
	fx.In

	MessageUC usecase.MessageUsecase
}

// MessageHandler exposes the message store.
type MessageHandler struct {
	messageUC usecase.MessageUsecase
}

// NewMessageHandler is the constructor for MessageHandler
func NewMessageHandler(params MessageHandlerParams) *MessageHandler {
	return &MessageHandler{messageUC: params.MessageUC}
}

// CreateMessageRequest is the body of POST /messages.
type CreateMessageRequest struct {
	Content string `json:"content" validate:"required"`
}

func (h *MessageHandler) ListMessages(c echo.Context) error {
	messages, err := h.messageUC.ListMessages(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, messages)
}

func (h *MessageHandler) GetMessage(c echo.Context) error {
	message, err := h.messageUC.GetMessage(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, message)
}

func (h *MessageHandler) CreateMessage(c echo.Context) error {
	var req CreateMessageRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	message, err := h.messageUC.CreateMessage(c.Request().Context(), req.Content)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, message)
}
