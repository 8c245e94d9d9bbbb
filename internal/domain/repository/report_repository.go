package repository

import (
	"context"

	"carvalue/internal/domain/entity"
	"carvalue/internal/errors"

	"github.com/google/uuid"
)

// ErrReportNotFound is returned when a report is not found.
var ErrReportNotFound = errors.New("report not found")

// ComparableFilter selects approved reports similar to an estimate query.
type ComparableFilter struct {
	Make    string
	Model   string
	MinLng  float64
	MaxLng  float64
	MinLat  float64
	MaxLat  float64
	MinYear int
	MaxYear int
	Mileage int // Results are ordered by distance to this mileage.
	Limit   int
}

// ReportRepository defines persistence operations for reports.
type ReportRepository interface {
	// Create persists a new report and fills in its ID and timestamps.
	Create(ctx context.Context, report *entity.Report) error

	// FindByID retrieves a report, or returns ErrReportNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Report, error)

	// UpdateApproval sets the approved flag and returns the updated report.
	UpdateApproval(ctx context.Context, id uuid.UUID, approved bool) (*entity.Report, error)

	// FindComparables returns approved reports matching filter, closest mileage first.
	FindComparables(ctx context.Context, filter ComparableFilter) ([]*entity.Report, error)
}
