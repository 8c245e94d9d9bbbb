// Package worker contains background deliveries that run beside the API server.
package worker

import (
	"context"
	"log/slog"
	"time"

	"carvalue/config"
	"carvalue/internal/delivery"
	"carvalue/internal/usecase"

	"go.uber.org/fx"
)

type sessionJanitor struct {
	authUC   usecase.AuthUsecase
	interval time.Duration
	logger   *slog.Logger
	stopped  chan struct{}
	done     chan struct{}
}

// JanitorParams holds dependencies for the session janitor, injected by Fx.
type JanitorParams struct {
	fx.In

	Lc     fx.Lifecycle
	Cfg    *config.Config
	Logger *slog.Logger
	AuthUC usecase.AuthUsecase
}

// NewSessionJanitor periodically purges expired refresh tokens.
func NewSessionJanitor(params JanitorParams) delivery.Delivery {
	interval := time.Hour
	if params.Cfg.Auth != nil && params.Cfg.Auth.SessionCleanupInterval > 0 {
		interval = params.Cfg.Auth.SessionCleanupInterval
	}

	j := &sessionJanitor{
		authUC:   params.AuthUC,
		interval: interval,
		logger:   params.Logger,
		stopped:  make(chan struct{}),
		done:     make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStop: j.stop,
	})

	return j
}

// Serve sweeps once immediately and then on every tick until stopped.
func (j *sessionJanitor) Serve(ctx context.Context) error {
	defer close(j.done)

	// Stopping cancels a sweep that is still running.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		select {
		case <-j.stopped:
			cancel()
		case <-ctx.Done():
		}
	}()

	j.logger.Info("Starting session janitor", slog.Duration("interval", j.interval))

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		j.sweep(ctx)

		select {
		case <-ctx.Done():
			return nil
		case <-j.stopped:
			return nil
		case <-ticker.C:
		}
	}
}

func (j *sessionJanitor) sweep(ctx context.Context) {
	removed, err := j.authUC.CleanupExpiredSessions(ctx)
	if err != nil {
		j.logger.Error("Session cleanup failed", slog.Any("error", err))

		return
	}

	j.logger.Debug("Session cleanup finished", slog.Int64("removed", removed))
}

func (j *sessionJanitor) stop(ctx context.Context) error {
	close(j.stopped)

	j.logger.Info("Stopping session janitor")

	select {
	case <-j.done:
	case <-ctx.Done():
	}

	return nil
}
