// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"carvalue/config"
	deliverycontext "carvalue/internal/delivery/context"
	"carvalue/internal/domain/entity"
	domainerrors "carvalue/internal/domain/errors"
	"carvalue/internal/domain/repository"
	"carvalue/internal/domain/service"
	"carvalue/internal/errors"
	"carvalue/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// Operation labels reported to the metrics recorder.
const (
	opSignup  = "signup"
	opSignin  = "signin"
	opRefresh = "refresh"
	opSignout = "signout"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager        repository.TransactionManager
	userRepo         repository.UserRepository
	refreshTokenRepo repository.RefreshTokenRepository
	hasher           service.PasswordHasher
	tokenService     service.TokenService
	metrics          service.MetricsRecorder
	authConfig       *config.AuthConfig
	logger           *slog.Logger
	now              func() time.Time
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	Metrics          service.MetricsRecorder
	Config           *config.Config
	Logger           *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	authConfig := &config.AuthConfig{}
	if params.Config != nil && params.Config.Auth != nil {
		authConfig = params.Config.Auth
	}

	return &authService{
		txManager:        params.TxManager,
		userRepo:         params.UserRepo,
		refreshTokenRepo: params.RefreshTokenRepo,
		hasher:           params.Hasher,
		tokenService:     params.TokenService,
		metrics:          params.Metrics,
		authConfig:       authConfig,
		logger:           params.Logger,
		now:              time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, srv.logger)
}

// Signup creates an account with a freshly salted credential and signs it in.
func (srv *authService) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Info("Starting signup", slog.String("email", email))

	if _, err := srv.userRepo.FindByEmail(ctx, email); err == nil {
		srv.log(ctx).Warn("Signup rejected, email in use", slog.String("email", email))
		srv.metrics.ObserveAuth(opSignup, service.OutcomeRejected)

		return nil, errors.Wrap(domainerrors.ErrEmailInUse, "signup rejected")
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		srv.metrics.ObserveAuth(opSignup, service.OutcomeError)

		return nil, errors.Wrap(err, "failed to look up email during signup")
	}

	// Hash outside the transaction, scrypt is CPU-bound.
	credential, err := srv.hasher.Hash(input.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmptyPassword) {
			srv.metrics.ObserveAuth(opSignup, service.OutcomeRejected)

			return nil, errors.Wrap(domainerrors.ErrEmptyPassword, "signup rejected")
		}

		srv.log(ctx).Error("Failed to hash password during signup", slog.Any("error", err))
		srv.metrics.ObserveAuth(opSignup, service.OutcomeError)

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password during signup")
	}

	var output *usecase.AuthOutput
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		newUser := &entity.User{
			Email:    email,
			Password: credential,
			Admin:    srv.authConfig.IsAdminEmail(email),
		}
		if err := repoFactory.UserRepo().Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user during signup")
		}

		accessToken, refreshToken, err := srv.issueSession(ctx, repoFactory.RefreshTokenRepo(), newUser)
		if err != nil {
			return err
		}

		output = &usecase.AuthOutput{AccessToken: accessToken, RefreshToken: refreshToken, User: newUser}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute signup transaction", slog.String("email", email), slog.Any("error", err))
		srv.metrics.ObserveAuth(opSignup, outcomeOf(err))

		return nil, errors.Wrap(err, "failed to execute signup transaction")
	}

	srv.log(ctx).Debug("Signup completed", slog.Any("userID", output.User.ID))
	srv.metrics.ObserveAuth(opSignup, service.OutcomeSuccess)

	return output, nil
}

// Signin verifies the password against the stored credential and opens a session.
// Unknown emails and wrong passwords are indistinguishable to the caller.
func (srv *authService) Signin(ctx context.Context, input *usecase.SigninInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Debug("Starting signin", slog.String("email", email))

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Signin failed, unknown email", slog.String("email", email))
			srv.metrics.ObserveAuth(opSignin, service.OutcomeRejected)

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "signin failed")
		}

		srv.metrics.ObserveAuth(opSignin, service.OutcomeError)

		return nil, errors.Wrap(err, "failed to find user during signin")
	}

	matched, err := srv.hasher.Verify(input.Password, user.Password)
	if err != nil {
		if errors.Is(err, service.ErrMalformedCredential) {
			srv.log(ctx).Error("Stored credential is malformed", slog.Any("userID", user.ID), slog.Any("error", err))
			srv.metrics.ObserveAuth(opSignin, service.OutcomeRejected)

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "signin failed")
		}

		srv.metrics.ObserveAuth(opSignin, service.OutcomeError)

		return nil, errors.Wrap(err, "failed to verify password")
	}
	if !matched {
		srv.log(ctx).Warn("Signin failed, wrong password", slog.String("email", email))
		srv.metrics.ObserveAuth(opSignin, service.OutcomeRejected)

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "signin failed")
	}

	accessToken, refreshToken, err := srv.issueSession(ctx, srv.refreshTokenRepo, user)
	if err != nil {
		srv.metrics.ObserveAuth(opSignin, service.OutcomeError)

		return nil, err
	}

	srv.log(ctx).Debug("User signed in", slog.Any("userID", user.ID))
	srv.metrics.ObserveAuth(opSignin, service.OutcomeSuccess)

	return &usecase.AuthOutput{AccessToken: accessToken, RefreshToken: refreshToken, User: user}, nil
}

// RefreshToken handles the process of issuing a new access token using a refresh token.
func (srv *authService) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error) {
	claims, err := srv.tokenService.ValidateToken(input.RefreshToken, service.TokenTypeRefresh)
	if err != nil {
		srv.log(ctx).Warn("Refresh with invalid token", slog.Any("error", err))
		srv.metrics.ObserveAuth(opRefresh, service.OutcomeRejected)

		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "invalid refresh token")
	}

	session, err := srv.refreshTokenRepo.FindRefreshTokenByHash(ctx, srv.tokenService.HashToken(input.RefreshToken))
	if err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) || errors.Is(err, repository.ErrRefreshTokenExpired) {
			srv.metrics.ObserveAuth(opRefresh, service.OutcomeRejected)

			return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token revoked or expired")
		}

		srv.metrics.ObserveAuth(opRefresh, service.OutcomeError)

		return nil, errors.Wrap(err, "failed to find refresh token")
	}
	if session.UserID != claims.UserID {
		srv.metrics.ObserveAuth(opRefresh, service.OutcomeRejected)

		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token subject mismatch")
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.metrics.ObserveAuth(opRefresh, service.OutcomeRejected)

			return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token owner no longer exists")
		}

		srv.metrics.ObserveAuth(opRefresh, service.OutcomeError)

		return nil, errors.Wrap(err, "failed to find user")
	}

	accessToken, err := srv.tokenService.GenerateAccessToken(user.ID, user.Roles().Strings())
	if err != nil {
		srv.metrics.ObserveAuth(opRefresh, service.OutcomeError)

		return nil, errors.Wrap(err, "failed to generate new access token")
	}

	srv.metrics.ObserveAuth(opRefresh, service.OutcomeSuccess)

	return &usecase.RefreshTokenOutput{AccessToken: accessToken}, nil
}

// Signout revokes the presented refresh token, or all of the user's sessions
// when none is presented. Revoking an unknown token is not an error; a token
// owned by another user is rejected.
func (srv *authService) Signout(ctx context.Context, input *usecase.SignoutInput) error {
	if input.RefreshToken == "" {
		if err := srv.refreshTokenRepo.DeleteRefreshTokensByUserID(ctx, input.UserID); err != nil {
			srv.metrics.ObserveAuth(opSignout, service.OutcomeError)

			return errors.Wrap(err, "failed to delete refresh tokens")
		}

		srv.log(ctx).Info("Signed out of all sessions", slog.Any("userID", input.UserID))
		srv.metrics.ObserveAuth(opSignout, service.OutcomeSuccess)

		return nil
	}

	tokenHash := srv.tokenService.HashToken(input.RefreshToken)
	session, err := srv.refreshTokenRepo.FindRefreshTokenByHash(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) || errors.Is(err, repository.ErrRefreshTokenExpired) {
			// Already revoked, or left for the session janitor.
			srv.metrics.ObserveAuth(opSignout, service.OutcomeSuccess)

			return nil
		}

		srv.metrics.ObserveAuth(opSignout, service.OutcomeError)

		return errors.Wrap(err, "failed to find refresh token")
	}
	if session.UserID != input.UserID {
		srv.log(ctx).Warn("Signout with another user's refresh token",
			slog.Any("userID", input.UserID), slog.Any("ownerID", session.UserID))
		srv.metrics.ObserveAuth(opSignout, service.OutcomeRejected)

		return errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token belongs to another user")
	}

	if err := srv.refreshTokenRepo.DeleteRefreshTokenByHash(ctx, tokenHash); err != nil && !errors.Is(err, repository.ErrRefreshTokenNotFound) {
		srv.log(ctx).Error("Failed to delete refresh token", slog.Any("error", err))
		srv.metrics.ObserveAuth(opSignout, service.OutcomeError)

		return errors.Wrap(err, "failed to delete refresh token")
	}

	srv.log(ctx).Info("Signed out", slog.Any("userID", input.UserID))
	srv.metrics.ObserveAuth(opSignout, service.OutcomeSuccess)

	return nil
}

// CleanupExpiredSessions removes refresh tokens past their expiry.
func (srv *authService) CleanupExpiredSessions(ctx context.Context) (int64, error) {
	removed, err := srv.refreshTokenRepo.DeleteExpiredRefreshTokens(ctx, srv.now())
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete expired refresh tokens")
	}

	if removed > 0 {
		srv.log(ctx).Info("Removed expired sessions", slog.Int64("count", removed))
	}

	return removed, nil
}

// issueSession generates a token pair for user and persists the refresh token hash.
func (srv *authService) issueSession(ctx context.Context, refreshRepo repository.RefreshTokenRepository, user *entity.User) (string, string, error) {
	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, user.Roles().Strings())
	if err != nil {
		return "", "", errors.Wrap(err, "failed to generate tokens")
	}

	session := &entity.RefreshToken{
		UserID:    user.ID,
		TokenHash: srv.tokenService.HashToken(refreshToken),
		ExpiresAt: srv.now().Add(srv.tokenService.GetRefreshTokenDuration()),
	}
	if err := refreshRepo.CreateRefreshToken(ctx, session); err != nil {
		return "", "", errors.Wrap(err, "failed to store refresh token")
	}

	return accessToken, refreshToken, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// outcomeOf classifies an error as a client rejection or a server failure.
func outcomeOf(err error) string {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.HTTPCode() < 500 {
		return service.OutcomeRejected
	}

	return service.OutcomeError
}

// requireManage returns ErrForbidden unless actor may manage the account.
func requireManage(actor *entity.Identity, userID uuid.UUID) error {
	if actor == nil {
		return errors.Wrap(domainerrors.ErrUnauthorized, "no authenticated caller")
	}
	if !actor.CanManage(userID) {
		return errors.Wrap(domainerrors.ErrForbidden, "caller may not manage this account")
	}

	return nil
}
