package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"carvalue/config"
	"carvalue/internal/domain/repository"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(adminEmails ...string) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			AccessTTL:   time.Minute,
			RefreshTTL:  time.Hour,
			AdminEmails: adminEmails,
		},
		Estimate: &config.EstimateConfig{
			CoordinateRange: 5,
			YearRange:       3,
			SampleSize:      3,
		},
	}
}

// runWith returns an Execute implementation that runs fn against factory.
func runWith(factory repository.RepositoryFactory) func(context.Context, func(repository.RepositoryFactory) error) error {
	return func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
		return fn(factory)
	}
}
