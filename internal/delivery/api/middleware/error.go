package middleware

import (
	"log/slog"
	"net/http"

	"carvalue/internal/delivery/api/response"
	deliverycontext "carvalue/internal/delivery/context"
	domainerrors "carvalue/internal/domain/errors"
	"carvalue/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware renders handler errors as error envelopes.
type ErrorMiddleware struct {
	logger *slog.Logger
}

func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{logger: logger}
}

type renderedError struct {
	status  int
	code    string
	message string
	details any
}

// classify maps err onto the catalogue. Anything that is neither an AppError
// nor an echo.HTTPError becomes INTERNAL_ERROR without detail.
func classify(err error) renderedError {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return renderedError{appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details()}
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message, ok := httpErr.Message.(string)
		if !ok {
			message = http.StatusText(httpErr.Code)
		}

		return renderedError{httpErr.Code, "HTTP_ERROR", message, nil}
	}

	internal := domainerrors.ErrInternalError

	return renderedError{internal.HTTPCode(), internal.ErrorCode(), internal.Message(), nil}
}

// HandleHTTPError is installed as echo's HTTPErrorHandler.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	rendered := classify(err)
	if rendered.status >= http.StatusInternalServerError {
		deliverycontext.LoggerFrom(c.Request().Context(), m.logger).Error("Request failed",
			slog.String("code", rendered.code),
			slog.String("method", c.Request().Method),
			slog.String("path", c.Request().URL.Path),
			slog.Any("error", err),
		)
	}

	if err := response.Error(c, rendered.status, rendered.code, rendered.message, rendered.details); err != nil {
		m.logger.Warn("Failed to write error response", slog.Any("error", err))
	}
}
