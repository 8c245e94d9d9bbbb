// Package context carries per-request values between echo and the use cases:
// the request id and a logger already tagged with it.
package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is read from clients and echoed on every response.
const HeaderXRequestID = "X-Request-Id"

const echoRequestIDKey = "request_id"

type ctxKey int

const (
	requestIDKey ctxKey = iota
	loggerKey
)

// SetRequestID stores id on the echo context for response envelopes.
func SetRequestID(c echo.Context, id string) {
	c.Set(echoRequestIDKey, id)
}

// RequestID returns the id assigned by the request id middleware, or "".
func RequestID(c echo.Context) string {
	id, _ := c.Get(echoRequestIDKey).(string)

	return id
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFrom returns the request id carried by ctx, or "".
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// LoggerFrom returns the request-scoped logger, or fallback outside a request.
func LoggerFrom(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

// WithLoggerAttrs derives a request logger carrying attrs in addition to what
// ctx already holds.
func WithLoggerAttrs(ctx context.Context, fallback *slog.Logger, attrs ...slog.Attr) context.Context {
	args := make([]any, 0, len(attrs))
	for _, attr := range attrs {
		args = append(args, attr)
	}

	return WithLogger(ctx, LoggerFrom(ctx, fallback).With(args...))
}
