package impl

import (
	"context"
	"log/slog"

	"carvalue/config"
	deliverycontext "carvalue/internal/delivery/context"
	"carvalue/internal/domain/entity"
	domainerrors "carvalue/internal/domain/errors"
	"carvalue/internal/domain/repository"
	"carvalue/internal/domain/service"
	"carvalue/internal/errors"
	"carvalue/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"go.uber.org/fx"
)

// reportService implements the ReportUsecase interface.
type reportService struct {
	reportRepo repository.ReportRepository
	publisher  service.EventPublisher
	metrics    service.MetricsRecorder
	estimate   config.EstimateConfig
	logger     *slog.Logger
}

// ReportServiceParams holds dependencies for ReportService, injected by Fx.
type ReportServiceParams struct {
	fx.In

	ReportRepo repository.ReportRepository
	Publisher  service.EventPublisher
	Metrics    service.MetricsRecorder
	Config     *config.Config
	Logger     *slog.Logger
}

// NewReportService is the constructor for reportService.
func NewReportService(params ReportServiceParams) usecase.ReportUsecase {
	estimate := config.EstimateConfig{CoordinateRange: 5, YearRange: 3, SampleSize: 3}
	if params.Config != nil && params.Config.Estimate != nil {
		estimate = *params.Config.Estimate
	}

	return &reportService{
		reportRepo: params.ReportRepo,
		publisher:  params.Publisher,
		metrics:    params.Metrics,
		estimate:   estimate,
		logger:     params.Logger,
	}
}

func (srv *reportService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, srv.logger)
}

// CreateReport stores a new, unapproved report owned by the actor.
func (srv *reportService) CreateReport(ctx context.Context, actor *entity.Identity, input *usecase.CreateReportInput) (*entity.Report, error) {
	if actor == nil {
		return nil, errors.Wrap(domainerrors.ErrUnauthorized, "create report")
	}

	report := &entity.Report{
		Price:   input.Price,
		Make:    input.Make,
		Model:   input.Model,
		Year:    input.Year,
		Lng:     input.Lng,
		Lat:     input.Lat,
		Mileage: input.Mileage,
		UserID:  actor.UserID,
	}
	if err := srv.reportRepo.Create(ctx, report); err != nil {
		return nil, errors.Wrap(err, "failed to create report")
	}

	srv.log(ctx).Info("Report created", slog.Any("reportID", report.ID), slog.Any("userID", report.UserID))
	srv.metrics.ObserveReport(service.ReportEventCreated)
	srv.publish(ctx, service.ReportEventCreated, report)

	return report, nil
}

// ChangeApproval approves or rejects a report. Only admins may do this.
func (srv *reportService) ChangeApproval(ctx context.Context, actor *entity.Identity, id uuid.UUID, approved bool) (*entity.Report, error) {
	if actor == nil {
		return nil, errors.Wrap(domainerrors.ErrUnauthorized, "change approval")
	}
	if !actor.IsAdmin() {
		srv.log(ctx).Warn("Approval change denied", slog.Any("userID", actor.UserID), slog.Any("reportID", id))

		return nil, errors.Wrap(domainerrors.ErrForbidden, "admin role required")
	}

	report, err := srv.reportRepo.UpdateApproval(ctx, id, approved)
	if err != nil {
		if errors.Is(err, repository.ErrReportNotFound) {
			return nil, errors.Wrap(domainerrors.ErrReportNotFound, "change approval")
		}

		return nil, errors.Wrap(err, "failed to change report approval")
	}

	srv.log(ctx).Info("Report approval changed", slog.Any("reportID", id), slog.Bool("approved", approved))
	srv.metrics.ObserveReport(service.ReportEventApprovalChanged)
	srv.publish(ctx, service.ReportEventApprovalChanged, report)

	return report, nil
}

// Estimate averages the prices of the approved reports for the same make and
// model that lie inside the coordinate box and year window, taking the ones
// closest in mileage first.
func (srv *reportService) Estimate(ctx context.Context, query *entity.EstimateQuery) (*entity.Estimate, error) {
	bound := orb.Point{query.Lng, query.Lat}.Bound().Pad(srv.estimate.CoordinateRange)

	comparables, err := srv.reportRepo.FindComparables(ctx, repository.ComparableFilter{
		Make:    query.Make,
		Model:   query.Model,
		MinLng:  bound.Left(),
		MaxLng:  bound.Right(),
		MinLat:  bound.Bottom(),
		MaxLat:  bound.Top(),
		MinYear: query.Year - srv.estimate.YearRange,
		MaxYear: query.Year + srv.estimate.YearRange,
		Mileage: query.Mileage,
		Limit:   srv.estimate.SampleSize,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to find comparable reports")
	}

	estimate := &entity.Estimate{SampleSize: len(comparables)}
	if len(comparables) == 0 {
		return estimate, nil
	}

	var total float64
	for _, report := range comparables {
		total += float64(report.Price)
	}
	price := total / float64(len(comparables))
	estimate.Price = &price

	return estimate, nil
}

// publish emits a report event. Failures are logged and never fail the caller.
func (srv *reportService) publish(ctx context.Context, eventType string, report *entity.Report) {
	event := &service.ReportEvent{
		RequestID: deliverycontext.RequestIDFrom(ctx),
		Type:      eventType,
		ReportID:  report.ID.String(),
		UserID:    report.UserID.String(),
		Make:      report.Make,
		Model:     report.Model,
		Year:      report.Year,
		Price:     report.Price,
		Approved:  report.Approved,
	}

	if err := srv.publisher.PublishReportEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish report event",
			slog.String("type", eventType),
			slog.Any("reportID", report.ID),
			slog.Any("error", err),
		)
	}
}
