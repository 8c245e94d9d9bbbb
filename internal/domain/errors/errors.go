// Package errors is the catalogue of failures the API can report. Each entry
// fixes the HTTP status, a stable machine-readable code and a public message.
package errors

import (
	"net/http"

	"carvalue/internal/errors"
)

// AppError is an error that knows how it is rendered to clients.
type AppError interface {
	error
	HTTPCode() int
	ErrorCode() string
	Message() string
	// Details is optional context shown on 4xx responses.
	Details() string
}

// BaseError is the catalogue entry type.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

func define(httpCode int, errorCode, message string) *BaseError {
	return &BaseError{httpCode: httpCode, errorCode: errorCode, message: message}
}

func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

func (e *BaseError) HTTPCode() int     { return e.httpCode }
func (e *BaseError) ErrorCode() string { return e.errorCode }
func (e *BaseError) Message() string   { return e.message }
func (e *BaseError) Details() string   { return e.details }

// Is matches any BaseError carrying the same code, so a copy made by
// WithDetails still equals its catalogue entry.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
}

// WithDetails returns a copy of e carrying details.
func (e *BaseError) WithDetails(details string) *BaseError {
	c := *e
	c.details = details

	return &c
}

// WrapMessage wraps e with a stack trace and message.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

//nolint:gochecknoglobals
var (
	ErrUserNotFound       = define(http.StatusNotFound, "USER_NOT_FOUND", "user not found")
	ErrEmailInUse         = define(http.StatusConflict, "EMAIL_IN_USE", "email in use")
	ErrUserCreationFailed = define(http.StatusInternalServerError, "USER_CREATION_FAILED", "failed to create user")
	ErrUserUpdateFailed   = define(http.StatusInternalServerError, "USER_UPDATE_FAILED", "failed to update user")

	ErrInvalidCredentials  = define(http.StatusUnauthorized, "INVALID_CREDENTIALS", "invalid email or password")
	ErrUnauthorized        = define(http.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
	ErrRefreshTokenInvalid = define(http.StatusUnauthorized, "REFRESH_TOKEN_INVALID", "invalid or expired refresh token")
	ErrPasswordHashFailed  = define(http.StatusInternalServerError, "PASSWORD_HASH_FAILED", "failed to process password")
	ErrEmptyPassword       = define(http.StatusBadRequest, "EMPTY_PASSWORD", "password must not be empty")
	ErrForbidden           = define(http.StatusForbidden, "FORBIDDEN", "access denied")
	ErrRateLimited         = define(http.StatusTooManyRequests, "RATE_LIMITED", "too many requests")

	ErrReportNotFound = define(http.StatusNotFound, "REPORT_NOT_FOUND", "report not found")

	ErrMessageNotFound    = define(http.StatusNotFound, "MESSAGE_NOT_FOUND", "message not found")
	ErrMessageStoreFailed = define(http.StatusInternalServerError, "MESSAGE_STORE_FAILED", "message store unavailable")

	ErrValidationFailed = define(http.StatusBadRequest, "VALIDATION_FAILED", "input validation failed")
	ErrInternalError    = define(http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
)

// DatabaseExecuteError is an unexpected driver failure. It renders as a 500
// and unwraps to the driver error for logging.
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError wraps a driver error; details names the operation.
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{err: err, details: details}
}

func (e *DatabaseExecuteError) Error() string {
	return e.details + ": " + e.err.Error()
}

func (e *DatabaseExecuteError) Unwrap() error     { return e.err }
func (e *DatabaseExecuteError) HTTPCode() int     { return http.StatusInternalServerError }
func (e *DatabaseExecuteError) ErrorCode() string { return "DATABASE_EXECUTE_FAILED" }
func (e *DatabaseExecuteError) Message() string   { return "database execution failed" }
func (e *DatabaseExecuteError) Details() string   { return e.details }
