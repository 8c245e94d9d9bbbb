package impl

import (
	"context"
	"log/slog"

	deliverycontext "carvalue/internal/delivery/context"
	"carvalue/internal/domain/entity"
	domainerrors "carvalue/internal/domain/errors"
	"carvalue/internal/domain/repository"
	"carvalue/internal/errors"
	"carvalue/internal/usecase"

	"go.uber.org/fx"
)

// messageService implements the MessageUsecase interface.
type messageService struct {
	messageRepo repository.MessageRepository
	logger      *slog.Logger
}

// MessageServiceParams holds dependencies for MessageService, injected by Fx.
type MessageServiceParams struct {
	fx.In

	MessageRepo repository.MessageRepository
	Logger      *slog.Logger
}

// NewMessageService is the constructor for messageService.
func NewMessageService(params MessageServiceParams) usecase.MessageUsecase {
	return &messageService{
		messageRepo: params.MessageRepo,
		logger:      params.Logger,
	}
}

func (srv *messageService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, srv.logger)
}

// storeFailure logs the underlying store error and hides it behind ErrMessageStoreFailed.
func (srv *messageService) storeFailure(ctx context.Context, op string, err error) error {
	srv.log(ctx).Error("Message store failure", slog.String("op", op), slog.Any("error", err))

	return errors.Wrap(domainerrors.ErrMessageStoreFailed, op)
}

// ListMessages returns every stored message keyed by id.
func (srv *messageService) ListMessages(ctx context.Context) (map[string]*entity.Message, error) {
	messages, err := srv.messageRepo.FindAll(ctx)
	if err != nil {
		return nil, srv.storeFailure(ctx, "list messages", err)
	}

	return messages, nil
}

// GetMessage returns one message or ErrMessageNotFound.
func (srv *messageService) GetMessage(ctx context.Context, id string) (*entity.Message, error) {
	message, err := srv.messageRepo.FindOne(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMessageNotFound) {
			return nil, errors.Wrap(domainerrors.ErrMessageNotFound, "get message")
		}

		return nil, srv.storeFailure(ctx, "get message", err)
	}

	return message, nil
}

// CreateMessage appends a message with a fresh id.
func (srv *messageService) CreateMessage(ctx context.Context, content string) (*entity.Message, error) {
	message, err := srv.messageRepo.Create(ctx, content)
	if err != nil {
		return nil, srv.storeFailure(ctx, "create message", err)
	}

	srv.log(ctx).Debug("Message created", slog.String("id", message.ID))

	return message, nil
}
