package worker

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"carvalue/config"
	"carvalue/internal/errors"
	mockUC "carvalue/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestSessionJanitor_SweepsUntilStopped(t *testing.T) {
	authUC := mockUC.NewMockAuthUsecase(t)
	swept := make(chan struct{}, 1)

	// The first sweep fails, later ones succeed; both must keep the loop alive.
	authUC.EXPECT().CleanupExpiredSessions(mock.Anything).Return(int64(0), errors.New("db down")).Once()
	authUC.EXPECT().CleanupExpiredSessions(mock.Anything).
		RunAndReturn(func(context.Context) (int64, error) {
			select {
			case swept <- struct{}{}:
			default:
			}

			return 2, nil
		}).Maybe()

	lc := fxtest.NewLifecycle(t)
	cfg := &config.Config{Auth: &config.AuthConfig{SessionCleanupInterval: 5 * time.Millisecond}}
	janitor := NewSessionJanitor(JanitorParams{
		Lc:     lc,
		Cfg:    cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		AuthUC: authUC,
	})

	lc.RequireStart()

	served := make(chan error, 1)
	go func() { served <- janitor.Serve(context.Background()) }()

	select {
	case <-swept:
	case <-time.After(time.Second):
		t.Fatal("janitor did not sweep after a failure")
	}

	lc.RequireStop()

	select {
	case err := <-served:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("janitor did not stop")
	}
}

func TestSessionJanitor_StopsOnContextCancel(t *testing.T) {
	authUC := mockUC.NewMockAuthUsecase(t)
	authUC.EXPECT().CleanupExpiredSessions(mock.Anything).Return(int64(0), nil)

	janitor := NewSessionJanitor(JanitorParams{
		Lc:     fxtest.NewLifecycle(t),
		Cfg:    &config.Config{},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		AuthUC: authUC,
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, janitor.Serve(ctx))
}

func TestSessionJanitor_StopCancelsRunningSweep(t *testing.T) {
	authUC := mockUC.NewMockAuthUsecase(t)
	started := make(chan struct{})

	authUC.EXPECT().CleanupExpiredSessions(mock.Anything).
		RunAndReturn(func(ctx context.Context) (int64, error) {
			close(started)
			<-ctx.Done()

			return 0, ctx.Err()
		}).Once()

	lc := fxtest.NewLifecycle(t)
	janitor := NewSessionJanitor(JanitorParams{
		Lc:     lc,
		Cfg:    &config.Config{},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		AuthUC: authUC,
	})

	lc.RequireStart()

	served := make(chan error, 1)
	go func() { served <- janitor.Serve(context.Background()) }()

	select {
	case <-started:
	case <-time.After(time.Second):
		t.Fatal("janitor did not start sweeping")
	}

	lc.RequireStop()

	select {
	case err := <-served:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("stop did not cancel the running sweep")
	}
}
