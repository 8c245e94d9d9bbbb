// Package response renders the JSON envelope shared by every endpoint.
package response

import (
	"net/http"

	deliverycontext "carvalue/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// SuccessResponse wraps a payload.
type SuccessResponse struct {
	Data any      `json:"data"`
	Meta MetaInfo `json:"meta"`
}

// ErrorResponse wraps a failure.
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  MetaInfo   `json:"meta"`
}

// ErrorInfo describes a failure by machine-readable code.
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// MetaInfo ties the body to the X-Request-Id header.
type MetaInfo struct {
	RequestID string `json:"request_id"`
}

func meta(c echo.Context) MetaInfo {
	return MetaInfo{RequestID: deliverycontext.RequestID(c)}
}

// Success writes data with statusCode.
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{Data: data, Meta: meta(c)})
}

// Created is Success with 201.
func Created(c echo.Context, data any) error {
	return Success(c, http.StatusCreated, data)
}

// NoContent returns a 204 without an envelope.
func NoContent(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

// Error writes an error envelope. Details are only exposed to the client
// for 4xx errors other than 401 and 403.
func Error(c echo.Context, statusCode int, errorCode, message string, details any) error {
	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: publicDetails(statusCode, details),
		},
		Meta: meta(c),
	})
}

func publicDetails(statusCode int, details any) any {
	switch {
	case statusCode >= http.StatusInternalServerError,
		statusCode == http.StatusUnauthorized,
		statusCode == http.StatusForbidden:
		return nil
	}
	if s, ok := details.(string); ok && s == "" {
		return nil
	}

	return details
}
