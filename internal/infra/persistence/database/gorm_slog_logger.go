package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"carvalue/config"
	deliverycontext "carvalue/internal/delivery/context"
	"carvalue/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Slow query thresholds per driver.
var slowQueryThresholds = map[string]time.Duration{
	config.DriverPostgres: 200 * time.Millisecond,
	config.DriverSQLite:   50 * time.Millisecond,
}

const fallbackSlowThreshold = 200 * time.Millisecond

// gormSlogLogger routes GORM output through the request-scoped logger so
// queries carry request_id and user_id.
type gormSlogLogger struct {
	logger        *slog.Logger
	level         logger.LogLevel
	driver        string
	slowThreshold time.Duration
}

func newGormSlogLogger(baseLogger *slog.Logger, cfg *config.Config) logger.Interface {
	level := logger.Warn
	driver := ""
	if cfg != nil {
		if cfg.Env.Debug {
			level = logger.Info
		}
		if cfg.Database != nil {
			driver = cfg.Database.Driver
		}
	}

	threshold, ok := slowQueryThresholds[driver]
	if !ok {
		threshold = fallbackSlowThreshold
	}

	return &gormSlogLogger{
		logger:        baseLogger,
		level:         level,
		driver:        driver,
		slowThreshold: threshold,
	}
}

func (l *gormSlogLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.logf(ctx, logger.Info, slog.LevelInfo, msg, args...)
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.logf(ctx, logger.Warn, slog.LevelWarn, msg, args...)
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.logf(ctx, logger.Error, slog.LevelError, msg, args...)
}

func (l *gormSlogLogger) logf(ctx context.Context, threshold logger.LogLevel, level slog.Level, msg string, args ...any) {
	if l.level < threshold {
		return
	}

	log := deliverycontext.LoggerFrom(ctx, l.logger)
	if log == nil {
		return
	}

	log.LogAttrs(ctx, level, "gorm", slog.String("message", fmt.Sprintf(msg, args...)))
}

func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	if l.level == logger.Silent {
		return
	}

	log := deliverycontext.LoggerFrom(ctx, l.logger)
	if log == nil {
		return
	}

	elapsed := time.Since(begin)

	switch {
	case err != nil && errors.Is(err, gorm.ErrRecordNotFound):
		// Repositories map this to a domain not-found error.
	case err != nil && isExpectedConstraintError(err):
		if l.level >= logger.Warn {
			attrs := append(l.queryAttrs(sqlAndRowsFn, elapsed), slog.String("error", err.Error()))
			log.LogAttrs(ctx, slog.LevelWarn, "gorm constraint violation", attrs...)
		}

		return
	case err != nil:
		if l.level >= logger.Error {
			attrs := append(l.queryAttrs(sqlAndRowsFn, elapsed), slog.String("error", err.Error()))
			log.LogAttrs(ctx, slog.LevelError, "gorm query failed", attrs...)
		}

		return
	}

	if l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= logger.Warn {
		attrs := append(l.queryAttrs(sqlAndRowsFn, elapsed), slog.Duration("slow_threshold", l.slowThreshold))
		log.LogAttrs(ctx, slog.LevelWarn, "gorm slow query", attrs...)

		return
	}

	if l.level >= logger.Info {
		log.LogAttrs(ctx, slog.LevelDebug, "gorm query", l.queryAttrs(sqlAndRowsFn, elapsed)...)
	}
}

func (l *gormSlogLogger) queryAttrs(sqlAndRowsFn func() (string, int64), elapsed time.Duration) []slog.Attr {
	sql, rows := sqlAndRowsFn()

	return []slog.Attr{
		slog.String("driver", l.driver),
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}
}

// isExpectedConstraintError reports violations the repositories translate
// into domain errors such as ErrUserAlreadyExists.
func isExpectedConstraintError(err error) bool {
	return isUniqueConstraintViolation(err) || isForeignKeyConstraintViolation(err)
}
