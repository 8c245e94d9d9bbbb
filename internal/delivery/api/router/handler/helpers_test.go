package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"carvalue/internal/delivery/api/middleware"
	"carvalue/internal/delivery/api/response"
	"carvalue/internal/delivery/api/validator"
	"carvalue/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Data  json.RawMessage     `json:"data"`
	Error *response.ErrorInfo `json:"error"`
}

type testRequest struct {
	method   string
	target   string
	body     string
	params   map[string]string
	identity *entity.Identity
}

// serve runs h against req and renders any returned error the way the server does.
func serve(t *testing.T, h echo.HandlerFunc, req testRequest) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	httpReq := httptest.NewRequest(req.method, req.target, strings.NewReader(req.body))
	if req.body != "" {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(httpReq, rec)

	if len(req.params) > 0 {
		names := make([]string, 0, len(req.params))
		values := make([]string, 0, len(req.params))
		for name, value := range req.params {
			names = append(names, name)
			values = append(values, value)
		}
		c.SetParamNames(names...)
		c.SetParamValues(values...)
	}
	if req.identity != nil {
		middleware.SetIdentity(c, req.identity)
	}

	if err := h(c); err != nil {
		middleware.NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError(err, c)
	}

	var env envelope
	if rec.Body.Len() > 0 && strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec, env
}

func decodeData[T any](t *testing.T, env envelope) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(env.Data, &out))

	return out
}

func TestServe_SetsPathParams(t *testing.T) {
	h := func(c echo.Context) error {
		return c.String(http.StatusOK, c.Param("id")+"/"+c.Param("version"))
	}

	rec, _ := serve(t, h, testRequest{
		method: http.MethodGet,
		target: "/reports/7/v/2",
		params: map[string]string{"id": "7", "version": "2"},
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "7/2", rec.Body.String())
}
