package handler

import (
	"net/http"

	"carvalue/internal/delivery/api/middleware"
	"carvalue/internal/delivery/api/response"
	"carvalue/internal/domain/entity"
	"carvalue/internal/errors"
	"carvalue/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReportHandlerParams holds dependencies for ReportHandler, injected by Fx.
type ReportHandlerParams struct {
	fx.In

	ReportUC usecase.ReportUsecase
}

// ReportHandler serves report submission, moderation and estimates.
type ReportHandler struct {
	reportUC usecase.ReportUsecase
}

// NewReportHandler is the constructor for ReportHandler
func NewReportHandler(params ReportHandlerParams) *ReportHandler {
	return &ReportHandler{reportUC: params.ReportUC}
}

// CreateReportRequest describes an observed sale.
type CreateReportRequest struct {
	Make    string  `json:"make" validate:"required"`
	Model   string  `json:"model" validate:"required"`
	Year    int     `json:"year" validate:"min=1930,max=2050"`
	Lng     float64 `json:"lng" validate:"longitude"`
	Lat     float64 `json:"lat" validate:"latitude"`
	Mileage int     `json:"mileage" validate:"min=0,max=1000000"`
	Price   int     `json:"price" validate:"min=0,max=1000000"`
}

// ApproveReportRequest sets the approval flag.
type ApproveReportRequest struct {
	Approved *bool `json:"approved" validate:"required"`
}

// EstimateRequest is bound from the query string.
type EstimateRequest struct {
	Make    string  `query:"make" validate:"required"`
	Model   string  `query:"model" validate:"required"`
	Year    int     `query:"year" validate:"min=1930,max=2050"`
	Lng     float64 `query:"lng" validate:"longitude"`
	Lat     float64 `query:"lat" validate:"latitude"`
	Mileage int     `query:"mileage" validate:"min=0,max=1000000"`
}

// CreateReport handles POST /reports.
func (h *ReportHandler) CreateReport(c echo.Context) error {
	var req CreateReportRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	report, err := h.reportUC.CreateReport(c.Request().Context(), middleware.GetIdentity(c), &usecase.CreateReportInput{
		Price:   req.Price,
		Make:    req.Make,
		Model:   req.Model,
		Year:    req.Year,
		Lng:     req.Lng,
		Lat:     req.Lat,
		Mileage: req.Mileage,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, newReportResponse(report))
}

// ChangeApproval handles PATCH /reports/:id.
func (h *ReportHandler) ChangeApproval(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req ApproveReportRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	report, err := h.reportUC.ChangeApproval(c.Request().Context(), middleware.GetIdentity(c), id, *req.Approved)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newReportResponse(report))
}

// Estimate handles GET /reports.
func (h *ReportHandler) Estimate(c echo.Context) error {
	var req EstimateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	estimate, err := h.reportUC.Estimate(c.Request().Context(), &entity.EstimateQuery{
		Make:    req.Make,
		Model:   req.Model,
		Year:    req.Year,
		Lng:     req.Lng,
		Lat:     req.Lat,
		Mileage: req.Mileage,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, EstimateResponse{Price: estimate.Price, SampleSize: estimate.SampleSize})
}
