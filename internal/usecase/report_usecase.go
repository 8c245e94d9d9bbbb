package usecase

import (
	"context"

	"carvalue/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateReportInput describes an observed sale.
type CreateReportInput struct {
	Price   int
	Make    string
	Model   string
	Year    int
	Lng     float64
	Lat     float64
	Mileage int
}

// ReportUsecase defines report submission, moderation and price estimation.
type ReportUsecase interface {
	// CreateReport stores an unapproved report owned by the actor.
	CreateReport(ctx context.Context, actor *entity.Identity, input *CreateReportInput) (*entity.Report, error)
	// ChangeApproval is restricted to admins.
	ChangeApproval(ctx context.Context, actor *entity.Identity, id uuid.UUID, approved bool) (*entity.Report, error)
	Estimate(ctx context.Context, query *entity.EstimateQuery) (*entity.Estimate, error)
}
