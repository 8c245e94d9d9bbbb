package handler

import (
	"net/http"
	"time"

	"carvalue/config"
	"carvalue/internal/delivery/api/middleware"
	"carvalue/internal/delivery/api/response"
	domainerrors "carvalue/internal/domain/errors"
	"carvalue/internal/errors"
	"carvalue/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	UserUC usecase.UserUsecase
	Config *config.Config
}

// AuthHandler serves signup, signin and session endpoints.
type AuthHandler struct {
	authUC       usecase.AuthUsecase
	userUC       usecase.UserUsecase
	cookieSecure bool
	cookieTTL    time.Duration
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	h := &AuthHandler{
		authUC:    params.AuthUC,
		userUC:    params.UserUC,
		cookieTTL: 15 * time.Minute,
	}
	if params.Config != nil && params.Config.Auth != nil {
		h.cookieSecure = params.Config.Auth.CookieSecure
		if params.Config.Auth.AccessTTL > 0 {
			h.cookieTTL = params.Config.Auth.AccessTTL
		}
	}

	return h
}

// CredentialsRequest is the body of signup and signin. The password is not
// required here so an empty one reaches the hasher and is rejected there.
type CredentialsRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password"`
}

// RefreshRequest carries the refresh token to exchange.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// SignoutRequest optionally names the session to end.
type SignoutRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// Signup handles the account creation request.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req CredentialsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.authUC.Signup(c.Request().Context(), &usecase.SignupInput{Email: req.Email, Password: req.Password})
	if err != nil {
		return errors.WithStack(err)
	}

	h.setSession(c, output.AccessToken)

	return response.Created(c, newAuthResponse(output))
}

// Signin handles the user login request.
func (h *AuthHandler) Signin(c echo.Context) error {
	var req CredentialsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.authUC.Signin(c.Request().Context(), &usecase.SigninInput{Email: req.Email, Password: req.Password})
	if err != nil {
		return errors.WithStack(err)
	}

	h.setSession(c, output.AccessToken)

	return response.Success(c, http.StatusOK, newAuthResponse(output))
}

// Refresh handles the token refresh request.
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req RefreshRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.authUC.RefreshToken(c.Request().Context(), &usecase.RefreshTokenInput{RefreshToken: req.RefreshToken})
	if err != nil {
		return errors.WithStack(err)
	}

	h.setSession(c, output.AccessToken)

	return response.Success(c, http.StatusOK, map[string]string{"accessToken": output.AccessToken})
}

// Signout ends the named session, or all of the caller's sessions.
func (h *AuthHandler) Signout(c echo.Context) error {
	identity := middleware.GetIdentity(c)
	if identity == nil {
		return errors.Wrap(domainerrors.ErrUnauthorized, "signout")
	}

	var req SignoutRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.authUC.Signout(c.Request().Context(), &usecase.SignoutInput{
		UserID:       identity.UserID,
		RefreshToken: req.RefreshToken,
	}); err != nil {
		return errors.WithStack(err)
	}

	h.clearSession(c)

	return response.NoContent(c)
}

// WhoAmI returns the signed-in account.
func (h *AuthHandler) WhoAmI(c echo.Context) error {
	user, err := h.userUC.WhoAmI(c.Request().Context(), middleware.GetIdentity(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(user))
}

func (h *AuthHandler) setSession(c echo.Context, accessToken string) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    accessToken,
		Path:     "/",
		MaxAge:   int(h.cookieTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearSession(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func newAuthResponse(output *usecase.AuthOutput) AuthResponse {
	return AuthResponse{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
		User:         newUserResponse(output.User),
	}
}
