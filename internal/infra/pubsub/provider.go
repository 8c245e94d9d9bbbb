// Package pubsub publishes report lifecycle events to Google Pub/Sub, or to a
// local HTTP endpoint that mimics push delivery.
package pubsub

import (
	"context"
	"log/slog"

	"carvalue/config"
	"carvalue/internal/domain/service"
	"carvalue/internal/errors"

	"go.uber.org/fx"
)

type builder func(cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error)

//nolint:gochecknoglobals
var builders = map[string]builder{
	config.PubSubProviderLocal:  buildLocal,
	config.PubSubProviderGoogle: buildGoogle,
}

func buildLocal(cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	if cfg.LocalEndpoint == "" {
		return nil, errors.New("local endpoint is required for local provider")
	}

	return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil
}

func buildGoogle(cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	if cfg.ProjectID == "" {
		return nil, errors.New("project ID is required for google provider")
	}
	if cfg.TopicID == "" {
		return nil, errors.New("topic ID is required for google provider")
	}

	// The client outlives the constructor, so it gets a detached context.
	return NewGooglePubSubPublisher(context.Background(), cfg.ProjectID, cfg.TopicID, logger)
}

type noopPublisher struct {
	logger *slog.Logger
}

// NewNoopPublisher returns a publisher that drops every event.
func NewNoopPublisher(logger *slog.Logger) service.EventPublisher {
	return &noopPublisher{logger: logger}
}

func (p *noopPublisher) PublishReportEvent(_ context.Context, event *service.ReportEvent) error {
	p.logger.Debug("Event publishing disabled", slog.String("type", event.Type))

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher picks the publisher named by pubsub.provider. The no-op
// publisher is used when the section is absent.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	if cfg == nil || cfg.Provider == "" || cfg.Provider == config.PubSubProviderNone {
		params.Logger.Info("Report events disabled")

		return NewNoopPublisher(params.Logger), nil
	}

	build, ok := builders[cfg.Provider]
	if !ok {
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	publisher, err := build(cfg, params.Logger)
	if err != nil {
		return nil, err
	}
	params.Logger.Info("Report events enabled", slog.String("provider", cfg.Provider))

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return publisher.Close()
		},
	})

	return publisher, nil
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
