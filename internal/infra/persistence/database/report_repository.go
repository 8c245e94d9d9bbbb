package database

import (
	"context"

	"carvalue/internal/domain/entity"
	domainerrors "carvalue/internal/domain/errors"
	"carvalue/internal/domain/repository"
	"carvalue/internal/errors"
	"carvalue/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// reportRepository implements the domain.ReportRepository interface using GORM.
type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository is the constructor for reportRepository.
func NewReportRepository(db *gorm.DB) repository.ReportRepository {
	return &reportRepository{db: db}
}

// Create persists a new report.
func (repo *reportRepository) Create(ctx context.Context, report *entity.Report) error {
	if report.ID == uuid.Nil {
		report.ID = uuid.New()
	}
	reportM := fromReportDomain(report)

	if err := repo.db.WithContext(ctx).Create(reportM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("report owner does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create report")
	}

	report.CreatedAt = reportM.CreatedAt
	report.UpdatedAt = reportM.UpdatedAt

	return nil
}

// FindByID retrieves a single report by its ID.
func (repo *reportRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Report, error) {
	var reportM model.ReportModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&reportM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReportNotFound
		}

		return nil, errors.Wrap(err, "failed to find report by id")
	}

	return toReportDomain(&reportM), nil
}

// UpdateApproval sets the approved flag of a report.
func (repo *reportRepository) UpdateApproval(ctx context.Context, id uuid.UUID, approved bool) (*entity.Report, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.ReportModel{ID: id}).
		Select("approved").
		Updates(&model.ReportModel{Approved: approved})
	if err := result.Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update report approval")
	}

	if result.RowsAffected == 0 {
		return nil, repository.ErrReportNotFound
	}

	return repo.FindByID(ctx, id)
}

// FindComparables returns approved reports inside the filter's bounding box
// and year window, closest mileage first.
func (repo *reportRepository) FindComparables(ctx context.Context, filter repository.ComparableFilter) ([]*entity.Report, error) {
	var reportModels []model.ReportModel

	query := repo.db.WithContext(ctx).
		Where("approved = ?", true).
		Where("make = ?", filter.Make).
		Where("model = ?", filter.Model).
		Where("lng BETWEEN ? AND ?", filter.MinLng, filter.MaxLng).
		Where("lat BETWEEN ? AND ?", filter.MinLat, filter.MaxLat).
		Where("year BETWEEN ? AND ?", filter.MinYear, filter.MaxYear).
		Clauses(clause.OrderBy{Expression: clause.Expr{
			SQL:                "ABS(mileage - ?), created_at",
			Vars:               []any{filter.Mileage},
			WithoutParentheses: true,
		}})
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	if err := query.Find(&reportModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find comparable reports")
	}

	reports := make([]*entity.Report, 0, len(reportModels))
	for i := range reportModels {
		reports = append(reports, toReportDomain(&reportModels[i]))
	}

	return reports, nil
}

// --- Mapper Functions ---

func toReportDomain(data *model.ReportModel) *entity.Report {
	if data == nil {
		return nil
	}

	return &entity.Report{
		ID:        data.ID,
		Price:     data.Price,
		Make:      data.Make,
		Model:     data.Model,
		Year:      data.Year,
		Lng:       data.Lng,
		Lat:       data.Lat,
		Mileage:   data.Mileage,
		Approved:  data.Approved,
		UserID:    data.UserID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromReportDomain(data *entity.Report) *model.ReportModel {
	if data == nil {
		return nil
	}

	return &model.ReportModel{
		ID:        data.ID,
		Price:     data.Price,
		Make:      data.Make,
		Model:     data.Model,
		Year:      data.Year,
		Lng:       data.Lng,
		Lat:       data.Lat,
		Mileage:   data.Mileage,
		Approved:  data.Approved,
		UserID:    data.UserID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
