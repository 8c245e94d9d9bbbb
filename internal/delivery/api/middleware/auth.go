package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "carvalue/internal/delivery/context"
	"carvalue/internal/domain/entity"
	domainerrors "carvalue/internal/domain/errors"
	"carvalue/internal/domain/service"
	"carvalue/internal/errors"

	"github.com/labstack/echo/v4"
)

const (
	// SessionCookie carries the access token for browser clients.
	SessionCookie = "session"

	keyIdentity = "identity"
	bearer      = "Bearer "
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, logger: logger}
}

// Authenticate validates the access token from the Authorization header, or
// the session cookie when the header is absent, and stores the caller's identity.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, err := accessToken(c)
		if err != nil {
			return err
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString, service.TokenTypeAccess)
		if err != nil {
			return errors.Wrap(domainerrors.ErrUnauthorized, "invalid or expired access token")
		}

		c.Set(keyIdentity, &entity.Identity{
			UserID: claims.UserID,
			Roles:  entity.ParseRoles(claims.Roles),
		})

		ctx := deliverycontext.WithLoggerAttrs(c.Request().Context(), m.logger, slog.String("user_id", claims.UserID.String()))
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// RequireRole must be used AFTER Authenticate.
func (m *AuthMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity := GetIdentity(c)
			if identity == nil {
				return errors.Wrap(domainerrors.ErrUnauthorized, "role check without identity")
			}
			if !identity.Roles.Contains(role) {
				return errors.Wrapf(domainerrors.ErrForbidden, "require %s role", role)
			}

			return next(c)
		}
	}
}

// GetIdentity returns the authenticated caller, or nil on public routes.
func GetIdentity(c echo.Context) *entity.Identity {
	identity, _ := c.Get(keyIdentity).(*entity.Identity)

	return identity
}

// SetIdentity stores identity on c. Exposed for handler tests.
func SetIdentity(c echo.Context, identity *entity.Identity) {
	c.Set(keyIdentity, identity)
}

func accessToken(c echo.Context) (string, error) {
	if header := c.Request().Header.Get(echo.HeaderAuthorization); header != "" {
		if !strings.HasPrefix(header, bearer) {
			return "", errors.Wrap(domainerrors.ErrUnauthorized, "authorization header must be a Bearer token")
		}

		return strings.TrimSpace(strings.TrimPrefix(header, bearer)), nil
	}

	if cookie, err := c.Cookie(SessionCookie); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	return "", errors.Wrap(domainerrors.ErrUnauthorized, "no access token presented")
}
