package api

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"carvalue/config"
	apimiddleware "carvalue/internal/delivery/api/middleware"
	"carvalue/internal/delivery/api/router"
	"carvalue/internal/delivery/api/router/handler"
	deliverycontext "carvalue/internal/delivery/context"
	"carvalue/internal/domain/entity"
	domainerrors "carvalue/internal/domain/errors"
	"carvalue/internal/domain/service"
	"carvalue/internal/errors"
	"carvalue/internal/infra/metrics"
	mockSvc "carvalue/internal/mocks/service"
	mockUC "carvalue/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type serverFixtures struct {
	echo      *echo.Echo
	tokenSvc  *mockSvc.MockTokenService
	authUC    *mockUC.MockAuthUsecase
	userUC    *mockUC.MockUserUsecase
	reportUC  *mockUC.MockReportUsecase
	messageUC *mockUC.MockMessageUsecase
}

func newTestServer(t *testing.T) *serverFixtures {
	t.Helper()

	f := &serverFixtures{
		tokenSvc:  mockSvc.NewMockTokenService(t),
		authUC:    mockUC.NewMockAuthUsecase(t),
		userUC:    mockUC.NewMockUserUsecase(t),
		reportUC:  mockUC.NewMockReportUsecase(t),
		messageUC: mockUC.NewMockMessageUsecase(t),
	}

	cfg := &config.Config{
		Auth: &config.AuthConfig{
			AccessTTL:       time.Minute,
			SigninRateLimit: config.RateLimitConfig{RPS: 1, Burst: 1, IdleTTL: time.Minute},
		},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	registry := metrics.NewRegistry()

	f.echo = NewEcho(ServerParams{
		Cfg:             cfg,
		Logger:          logger,
		ErrorMiddleware: apimiddleware.NewErrorMiddleware(logger),
		Metrics:         metrics.NewRecorder(registry),
		Registry:        registry,
		RouterParams: router.RouterParams{
			AppHandler:     handler.NewAppHandler(),
			AuthHandler:    handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: f.authUC, UserUC: f.userUC, Config: cfg}),
			UserHandler:    handler.NewUserHandler(handler.UserHandlerParams{UserUC: f.userUC}),
			ReportHandler:  handler.NewReportHandler(handler.ReportHandlerParams{ReportUC: f.reportUC}),
			MessageHandler: handler.NewMessageHandler(handler.MessageHandlerParams{MessageUC: f.messageUC}),
			AuthMiddleware: apimiddleware.NewAuthMiddleware(f.tokenSvc, logger),
			Config:         cfg,
		},
	})

	return f
}

func (f *serverFixtures) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	return rec
}

func TestServer_Greeting(t *testing.T) {
	f := newTestServer(t)

	rec := f.do(httptest.NewRequest(http.MethodGet, "/app/hi", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Hi there!", rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestServer_RequestIDEchoed(t *testing.T) {
	f := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-123")
	rec := f.do(req)

	assert.Equal(t, "req-123", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Contains(t, rec.Body.String(), `"request_id":"req-123"`)
}

func TestServer_AuthenticationRequired(t *testing.T) {
	f := newTestServer(t)

	rec := f.do(httptest.NewRequest(http.MethodGet, "/auth/whoami", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"UNAUTHORIZED"`)
}

func TestServer_InvalidToken(t *testing.T) {
	f := newTestServer(t)
	f.tokenSvc.EXPECT().ValidateToken("forged", service.TokenTypeAccess).Return(nil, errors.New("signature is invalid"))

	req := httptest.NewRequest(http.MethodGet, "/auth/whoami", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer forged")
	rec := f.do(req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestServer_SessionCookie(t *testing.T) {
	f := newTestServer(t)
	userID := uuid.New()

	f.tokenSvc.EXPECT().ValidateToken("cookie-token", service.TokenTypeAccess).
		Return(&service.Claims{UserID: userID, Roles: []string{"user"}}, nil)
	f.userUC.EXPECT().WhoAmI(mock.Anything, mock.MatchedBy(func(id *entity.Identity) bool {
		return id.UserID == userID && !id.IsAdmin()
	})).Return(&entity.User{ID: userID, Email: "a@example.com"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/auth/whoami", nil)
	req.AddCookie(&http.Cookie{Name: apimiddleware.SessionCookie, Value: "cookie-token"})
	rec := f.do(req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"email":"a@example.com"`)
}

func TestServer_ApprovalRequiresAdmin(t *testing.T) {
	f := newTestServer(t)
	f.tokenSvc.EXPECT().ValidateToken("user-token", service.TokenTypeAccess).
		Return(&service.Claims{UserID: uuid.New(), Roles: []string{"user"}}, nil)

	req := httptest.NewRequest(http.MethodPatch, "/reports/"+uuid.NewString(), strings.NewReader(`{"approved":true}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, "Bearer user-token")
	rec := f.do(req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), `"FORBIDDEN"`)
}

func TestServer_SigninRateLimited(t *testing.T) {
	f := newTestServer(t)
	f.authUC.EXPECT().Signin(mock.Anything, mock.Anything).
		Return(nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "signin")).Once()

	signin := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/auth/signin", strings.NewReader(`{"email":"a@example.com","password":"nope"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

		return f.do(req)
	}

	assert.Equal(t, http.StatusUnauthorized, signin().Code)

	rec := signin()
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), `"RATE_LIMITED"`)
}

func TestServer_Metrics(t *testing.T) {
	f := newTestServer(t)

	f.do(httptest.NewRequest(http.MethodGet, "/app/bye", nil))
	rec := f.do(httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `carvalue_http_request_duration_seconds_count{method="GET",route="/app/bye",status="200"} 1`)
	assert.Contains(t, body, "go_goroutines")
}
