package database

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"carvalue/config"
	deliverycontext "carvalue/internal/delivery/context"
	"carvalue/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func sqliteLoggerConfig() *config.Config {
	return &config.Config{Database: &config.DatabaseConfig{Driver: config.DriverSQLite, DSN: ":memory:"}}
}

func sqlFn() (string, int64) {
	return "SELECT 1", 1
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	var base, scoped bytes.Buffer
	l := newGormSlogLogger(newBufferLogger(&base), sqliteLoggerConfig())

	ctx := deliverycontext.WithLogger(context.Background(),
		newBufferLogger(&scoped).With(slog.String("request_id", "req-42")))

	l.Trace(ctx, time.Now(), sqlFn, errors.New("disk I/O error"))

	assert.Empty(t, base.String())
	assert.Contains(t, scoped.String(), "request_id=req-42")
	assert.Contains(t, scoped.String(), "level=ERROR")
	assert.Contains(t, scoped.String(), "gorm query failed")
}

func TestGormSlogLogger_FallsBackOutsideRequest(t *testing.T) {
	var base bytes.Buffer
	l := newGormSlogLogger(newBufferLogger(&base), sqliteLoggerConfig())

	l.Warn(context.Background(), "pool at %d%%", 90)

	assert.Contains(t, base.String(), "pool at 90%")
}

func TestGormSlogLogger_ConstraintViolationIsWarn(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"translated unique", gorm.ErrDuplicatedKey},
		{"sqlite unique", errors.New("UNIQUE constraint failed: users.email")},
		{"postgres unique", errors.New(`ERROR: duplicate key value violates unique constraint "users_email_key" (SQLSTATE 23505)`)},
		{"sqlite foreign key", errors.New("FOREIGN KEY constraint failed")},
		{"postgres foreign key", errors.New(`insert or update on table "reports" violates foreign key constraint`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := newGormSlogLogger(newBufferLogger(&buf), sqliteLoggerConfig())

			l.Trace(context.Background(), time.Now(), sqlFn, tt.err)

			assert.Contains(t, buf.String(), "level=WARN")
			assert.Contains(t, buf.String(), "gorm constraint violation")
			assert.NotContains(t, buf.String(), "level=ERROR")
		})
	}
}

func TestGormSlogLogger_SkipsRecordNotFound(t *testing.T) {
	var buf bytes.Buffer
	l := newGormSlogLogger(newBufferLogger(&buf), sqliteLoggerConfig())

	l.Trace(context.Background(), time.Now(), sqlFn, errors.Wrap(gorm.ErrRecordNotFound, "find user"))

	assert.Empty(t, buf.String())
}

func TestGormSlogLogger_SlowThresholdPerDriver(t *testing.T) {
	sqliteLogger, ok := newGormSlogLogger(nil, sqliteLoggerConfig()).(*gormSlogLogger)
	require.True(t, ok)
	assert.Equal(t, 50*time.Millisecond, sqliteLogger.slowThreshold)

	pgCfg := &config.Config{Database: &config.DatabaseConfig{Driver: config.DriverPostgres}}
	pgLogger, ok := newGormSlogLogger(nil, pgCfg).(*gormSlogLogger)
	require.True(t, ok)
	assert.Equal(t, 200*time.Millisecond, pgLogger.slowThreshold)

	var buf bytes.Buffer
	l := newGormSlogLogger(newBufferLogger(&buf), sqliteLoggerConfig())
	l.Trace(context.Background(), time.Now().Add(-100*time.Millisecond), sqlFn, nil)

	assert.Contains(t, buf.String(), "gorm slow query")
	assert.Contains(t, buf.String(), "driver=sqlite")
}

func TestGormSlogLogger_SilentMode(t *testing.T) {
	var buf bytes.Buffer
	l := newGormSlogLogger(newBufferLogger(&buf), sqliteLoggerConfig()).LogMode(logger.Silent)

	l.Trace(context.Background(), time.Now(), sqlFn, errors.New("boom"))
	l.Error(context.Background(), "boom")

	assert.Empty(t, buf.String())
}
