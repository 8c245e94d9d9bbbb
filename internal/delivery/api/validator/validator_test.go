package validator

import (
	"testing"

	domainerrors "carvalue/internal/domain/errors"
	"carvalue/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Email   string  `json:"email" validate:"required,email"`
	Year    int     `query:"year" validate:"min=1930,max=2050"`
	Lng     float64 `json:"lng" validate:"longitude"`
	Flagged *bool   `json:"flagged" validate:"required"`
}

func TestCustomValidator_Validate(t *testing.T) {
	v := New()
	yes := true

	assert.NoError(t, v.Validate(&sample{Email: "a@example.com", Year: 1990, Lng: 12.5, Flagged: &yes}))

	err := v.Validate(&sample{Email: "nope", Year: 1900, Lng: 200})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "email must be an email")
	assert.Contains(t, appErr.Details(), "year must be at least 1930")
	assert.Contains(t, appErr.Details(), "lng must be a longitude")
	assert.Contains(t, appErr.Details(), "flagged is required")
}
