package handler

import (
	"net/http"

	"carvalue/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// AppHandler serves the greeting and health endpoints.
type AppHandler struct{}

// NewAppHandler creates a new AppHandler instance
func NewAppHandler() *AppHandler {
	return &AppHandler{}
}

func (h *AppHandler) Hi(c echo.Context) error {
	return c.String(http.StatusOK, "Hi there!")
}

func (h *AppHandler) Bye(c echo.Context) error {
	return c.String(http.StatusOK, "Bye there!")
}

// HealthCheck is a simple handler to check if the service is up.
func (h *AppHandler) HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
