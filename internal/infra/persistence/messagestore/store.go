// Package messagestore keeps messages as a single JSON document in a gocloud
// blob bucket. Any driver registered below can back it.
package messagestore

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"carvalue/config"
	"carvalue/internal/domain/entity"
	"carvalue/internal/domain/repository"
	"carvalue/internal/errors"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
	"gocloud.dev/gcerrors"
)

// Params holds dependencies for the message store, injected by Fx.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

type blobMessageRepository struct {
	bucket *blob.Bucket
	key    string
	logger *slog.Logger
	newID  func() string

	// mu serializes read-modify-write cycles of the document.
	mu sync.Mutex
}

// New opens the configured bucket and closes it on shutdown.
func New(params Params) (repository.MessageRepository, error) {
	cfg := params.Config.Messages
	if cfg == nil || cfg.BucketURL == "" {
		return nil, errors.New("messages.bucketURL is required")
	}

	bucket, err := blob.OpenBucket(context.Background(), cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open message bucket %s", cfg.BucketURL)
	}

	params.Logger.Info("Message store opened", slog.String("bucket", cfg.BucketURL), slog.String("key", cfg.Key))

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	return NewWithBucket(bucket, cfg.Key, params.Logger), nil
}

// NewWithBucket builds a store on an already opened bucket. The caller owns the bucket.
func NewWithBucket(bucket *blob.Bucket, key string, logger *slog.Logger) repository.MessageRepository {
	return &blobMessageRepository{
		bucket: bucket,
		key:    key,
		logger: logger,
		newID:  uuid.NewString,
	}
}

func (r *blobMessageRepository) FindOne(ctx context.Context, id string) (*entity.Message, error) {
	messages, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	message, ok := messages[id]
	if !ok {
		return nil, errors.WithStack(repository.ErrMessageNotFound)
	}

	return message, nil
}

func (r *blobMessageRepository) FindAll(ctx context.Context) (map[string]*entity.Message, error) {
	return r.load(ctx)
}

func (r *blobMessageRepository) Create(ctx context.Context, content string) (*entity.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	messages, err := r.read(ctx)
	if err != nil {
		return nil, err
	}

	id := r.newID()
	for messages[id] != nil {
		id = r.newID()
	}

	message := &entity.Message{ID: id, Content: content}
	messages[id] = message

	data, err := json.Marshal(messages)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if err := r.bucket.WriteAll(ctx, r.key, data, &blob.WriterOptions{ContentType: "application/json"}); err != nil {
		return nil, errors.Wrapf(err, "failed to write %s", r.key)
	}

	r.logger.Debug("Message stored", slog.String("id", id), slog.Int("total", len(messages)))

	return message, nil
}

func (r *blobMessageRepository) load(ctx context.Context) (map[string]*entity.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.read(ctx)
}

// read must be called with mu held. A missing document is an empty store.
func (r *blobMessageRepository) read(ctx context.Context) (map[string]*entity.Message, error) {
	data, err := r.bucket.ReadAll(ctx, r.key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return map[string]*entity.Message{}, nil
		}

		return nil, errors.Wrapf(err, "failed to read %s", r.key)
	}

	messages := map[string]*entity.Message{}
	if len(data) == 0 {
		return messages, nil
	}
	if err := json.Unmarshal(data, &messages); err != nil {
		return nil, errors.Wrapf(err, "failed to decode %s", r.key)
	}

	// Documents written by hand may omit ids inside the values.
	for id, message := range messages {
		if message == nil {
			delete(messages, id)

			continue
		}
		message.ID = id
	}

	return messages, nil
}

// Module provides the message store FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
)
