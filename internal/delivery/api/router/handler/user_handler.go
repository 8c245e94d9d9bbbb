package handler

import (
	"net/http"

	"carvalue/internal/delivery/api/middleware"
	"carvalue/internal/delivery/api/response"
	"carvalue/internal/errors"
	"carvalue/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
}

// UserHandler holds dependencies for account administration handlers.
type UserHandler struct {
	userUC usecase.UserUsecase
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{userUC: params.UserUC}
}

// FindUsersRequest filters users by email.
type FindUsersRequest struct {
	Email string `query:"email" validate:"required,email"`
}

// UpdateUserRequest changes any provided field.
type UpdateUserRequest struct {
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"password"`
}

// GetUser handles GET /auth/:id.
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	user, err := h.userUC.GetUser(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(user))
}

// FindUsers handles GET /auth?email=.
func (h *UserHandler) FindUsers(c echo.Context) error {
	var req FindUsersRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	users, err := h.userUC.FindUsers(c.Request().Context(), req.Email)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserResponses(users))
}

// UpdateUser handles PATCH /auth/:id.
func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req UpdateUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.userUC.UpdateUser(c.Request().Context(), middleware.GetIdentity(c), id, &usecase.UpdateUserInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(user))
}

// RemoveUser handles DELETE /auth/:id.
func (h *UserHandler) RemoveUser(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.userUC.RemoveUser(c.Request().Context(), middleware.GetIdentity(c), id); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}
