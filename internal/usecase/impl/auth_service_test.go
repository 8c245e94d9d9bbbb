package impl

import (
	"context"
	"testing"
	"time"

	"carvalue/internal/domain/entity"
	domainerrors "carvalue/internal/domain/errors"
	"carvalue/internal/domain/repository"
	"carvalue/internal/domain/service"
	"carvalue/internal/errors"
	mockRepo "carvalue/internal/mocks/repository"
	mockSvc "carvalue/internal/mocks/service"
	"carvalue/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service          usecase.AuthUsecase
	txManager        *mockRepo.MockTransactionManager
	userRepo         *mockRepo.MockUserRepository
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	hasher           *mockSvc.MockPasswordHasher
	tokenService     *mockSvc.MockTokenService
	metrics          *mockSvc.MockMetricsRecorder
}

func createTestAuthService(t *testing.T, adminEmails ...string) authServiceFixtures {
	f := authServiceFixtures{
		txManager:        mockRepo.NewMockTransactionManager(t),
		userRepo:         mockRepo.NewMockUserRepository(t),
		refreshTokenRepo: mockRepo.NewMockRefreshTokenRepository(t),
		hasher:           mockSvc.NewMockPasswordHasher(t),
		tokenService:     mockSvc.NewMockTokenService(t),
		metrics:          mockSvc.NewMockMetricsRecorder(t),
	}

	f.service = NewAuthService(AuthServiceParams{
		TxManager:        f.txManager,
		UserRepo:         f.userRepo,
		RefreshTokenRepo: f.refreshTokenRepo,
		Hasher:           f.hasher,
		TokenService:     f.tokenService,
		Metrics:          f.metrics,
		Config:           newTestConfig(adminEmails...),
		Logger:           newDiscardLogger(),
	})

	return f
}

func (f authServiceFixtures) expectSession(t *testing.T, refreshRepo *mockRepo.MockRefreshTokenRepository, roles []string) {
	t.Helper()

	f.tokenService.EXPECT().GenerateTokens(mock.AnythingOfType("uuid.UUID"), roles).Return("access", "refresh", nil)
	f.tokenService.EXPECT().HashToken("refresh").Return("refresh-hash")
	f.tokenService.EXPECT().GetRefreshTokenDuration().Return(time.Hour)
	refreshRepo.EXPECT().
		CreateRefreshToken(mock.Anything, mock.MatchedBy(func(token *entity.RefreshToken) bool {
			return token.TokenHash == "refresh-hash" && token.ExpiresAt.After(time.Now())
		})).
		Return(nil)
}

func TestAuthService_Signup_Success(t *testing.T) {
	f := createTestAuthService(t)
	ctx := context.Background()
	input := &usecase.SignupInput{Email: " Test@Example.com ", Password: "blah"}

	f.userRepo.EXPECT().FindByEmail(ctx, "test@example.com").Return(nil, repository.ErrUserNotFound)
	f.hasher.EXPECT().Hash("blah").Return("0011.aabb", nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	txRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
	factory.EXPECT().UserRepo().Return(txUserRepo)
	factory.EXPECT().RefreshTokenRepo().Return(txRefreshRepo)

	txUserRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			user.ID = uuid.New()
		}).
		Return(nil)
	f.expectSession(t, txRefreshRepo, entity.Roles{entity.RoleUser}.Strings())
	f.txManager.EXPECT().Execute(ctx, mock.Anything).RunAndReturn(runWith(factory))
	f.metrics.EXPECT().ObserveAuth(opSignup, service.OutcomeSuccess).Return()

	output, err := f.service.Signup(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "test@example.com", output.User.Email)
	assert.Equal(t, "0011.aabb", output.User.Password)
	assert.False(t, output.User.Admin)
	assert.Equal(t, "access", output.AccessToken)
	assert.Equal(t, "refresh", output.RefreshToken)
}

func TestAuthService_Signup_AdminEmail(t *testing.T) {
	f := createTestAuthService(t, "boss@example.com")
	ctx := context.Background()

	f.userRepo.EXPECT().FindByEmail(ctx, "boss@example.com").Return(nil, repository.ErrUserNotFound)
	f.hasher.EXPECT().Hash("secret").Return("0011.aabb", nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	txRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
	factory.EXPECT().UserRepo().Return(txUserRepo)
	factory.EXPECT().RefreshTokenRepo().Return(txRefreshRepo)

	txUserRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(user *entity.User) bool { return user.Admin })).
		Return(nil)
	f.expectSession(t, txRefreshRepo, entity.Roles{entity.RoleUser, entity.RoleAdmin}.Strings())
	f.txManager.EXPECT().Execute(ctx, mock.Anything).RunAndReturn(runWith(factory))
	f.metrics.EXPECT().ObserveAuth(opSignup, service.OutcomeSuccess).Return()

	output, err := f.service.Signup(ctx, &usecase.SignupInput{Email: "boss@example.com", Password: "secret"})

	require.NoError(t, err)
	assert.True(t, output.User.Admin)
}

func TestAuthService_Signup_EmailInUse(t *testing.T) {
	f := createTestAuthService(t)
	ctx := context.Background()

	f.userRepo.EXPECT().FindByEmail(ctx, "taken@example.com").Return(&entity.User{ID: uuid.New()}, nil)
	f.metrics.EXPECT().ObserveAuth(opSignup, service.OutcomeRejected).Return()

	output, err := f.service.Signup(ctx, &usecase.SignupInput{Email: "taken@example.com", Password: "blah"})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailInUse))
}

func TestAuthService_Signup_RaceOnUniqueEmail(t *testing.T) {
	f := createTestAuthService(t)
	ctx := context.Background()

	f.userRepo.EXPECT().FindByEmail(ctx, "race@example.com").Return(nil, repository.ErrUserNotFound)
	f.hasher.EXPECT().Hash("blah").Return("0011.aabb", nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	factory.EXPECT().UserRepo().Return(txUserRepo)
	txUserRepo.EXPECT().Create(ctx, mock.Anything).Return(domainerrors.ErrEmailInUse.WrapMessage("email already exists"))
	f.txManager.EXPECT().Execute(ctx, mock.Anything).RunAndReturn(runWith(factory))
	f.metrics.EXPECT().ObserveAuth(opSignup, service.OutcomeRejected).Return()

	_, err := f.service.Signup(ctx, &usecase.SignupInput{Email: "race@example.com", Password: "blah"})

	assert.True(t, errors.Is(err, domainerrors.ErrEmailInUse))
}

func TestAuthService_Signup_EmptyPassword(t *testing.T) {
	f := createTestAuthService(t)
	ctx := context.Background()

	f.userRepo.EXPECT().FindByEmail(ctx, "a@example.com").Return(nil, repository.ErrUserNotFound)
	f.hasher.EXPECT().Hash("").Return("", service.ErrEmptyPassword)
	f.metrics.EXPECT().ObserveAuth(opSignup, service.OutcomeRejected).Return()

	_, err := f.service.Signup(ctx, &usecase.SignupInput{Email: "a@example.com", Password: ""})

	assert.True(t, errors.Is(err, domainerrors.ErrEmptyPassword))
}

func TestAuthService_Signin_Success(t *testing.T) {
	f := createTestAuthService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "a@example.com", Password: "0011.aabb"}

	f.userRepo.EXPECT().FindByEmail(ctx, "a@example.com").Return(user, nil)
	f.hasher.EXPECT().Verify("blah", "0011.aabb").Return(true, nil)
	f.expectSession(t, f.refreshTokenRepo, entity.Roles{entity.RoleUser}.Strings())
	f.metrics.EXPECT().ObserveAuth(opSignin, service.OutcomeSuccess).Return()

	output, err := f.service.Signin(ctx, &usecase.SigninInput{Email: "A@example.com", Password: "blah"})

	require.NoError(t, err)
	assert.Equal(t, user, output.User)
	assert.Equal(t, "access", output.AccessToken)
}

func TestAuthService_Signin_Rejections(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Email: "a@example.com", Password: "0011.aabb"}

	tests := []struct {
		name  string
		setup func(f authServiceFixtures)
	}{
		{
			name: "unknown email",
			setup: func(f authServiceFixtures) {
				f.userRepo.EXPECT().FindByEmail(mock.Anything, "a@example.com").Return(nil, repository.ErrUserNotFound)
			},
		},
		{
			name: "wrong password",
			setup: func(f authServiceFixtures) {
				f.userRepo.EXPECT().FindByEmail(mock.Anything, "a@example.com").Return(user, nil)
				f.hasher.EXPECT().Verify("blah", user.Password).Return(false, nil)
			},
		},
		{
			name: "malformed stored credential",
			setup: func(f authServiceFixtures) {
				f.userRepo.EXPECT().FindByEmail(mock.Anything, "a@example.com").Return(user, nil)
				f.hasher.EXPECT().Verify("blah", user.Password).
					Return(false, errors.Wrap(service.ErrMalformedCredential, "expected exactly one separator"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestAuthService(t)
			tt.setup(f)
			f.metrics.EXPECT().ObserveAuth(opSignin, service.OutcomeRejected).Return()

			output, err := f.service.Signin(context.Background(), &usecase.SigninInput{Email: "a@example.com", Password: "blah"})

			assert.Nil(t, output)
			assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
		})
	}
}

func TestAuthService_Signin_RepositoryFailure(t *testing.T) {
	f := createTestAuthService(t)
	dbErr := errors.New("connection reset")

	f.userRepo.EXPECT().FindByEmail(mock.Anything, "a@example.com").Return(nil, dbErr)
	f.metrics.EXPECT().ObserveAuth(opSignin, service.OutcomeError).Return()

	_, err := f.service.Signin(context.Background(), &usecase.SigninInput{Email: "a@example.com", Password: "blah"})

	assert.ErrorIs(t, err, dbErr)
	assert.False(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_RefreshToken_Success(t *testing.T) {
	f := createTestAuthService(t)
	ctx := context.Background()
	userID := uuid.New()

	f.tokenService.EXPECT().ValidateToken("refresh", service.TokenTypeRefresh).Return(&service.Claims{UserID: userID}, nil)
	f.tokenService.EXPECT().HashToken("refresh").Return("refresh-hash")
	f.refreshTokenRepo.EXPECT().FindRefreshTokenByHash(ctx, "refresh-hash").Return(&entity.RefreshToken{UserID: userID}, nil)
	f.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, Admin: true}, nil)
	f.tokenService.EXPECT().GenerateAccessToken(userID, entity.Roles{entity.RoleUser, entity.RoleAdmin}.Strings()).Return("new-access", nil)
	f.metrics.EXPECT().ObserveAuth(opRefresh, service.OutcomeSuccess).Return()

	output, err := f.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh"})

	require.NoError(t, err)
	assert.Equal(t, "new-access", output.AccessToken)
}

func TestAuthService_RefreshToken_InvalidSignature(t *testing.T) {
	f := createTestAuthService(t)

	f.tokenService.EXPECT().ValidateToken("forged", service.TokenTypeRefresh).Return(nil, errors.New("signature is invalid"))
	f.metrics.EXPECT().ObserveAuth(opRefresh, service.OutcomeRejected).Return()

	_, err := f.service.RefreshToken(context.Background(), &usecase.RefreshTokenInput{RefreshToken: "forged"})

	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
}

func TestAuthService_RefreshToken_Revoked(t *testing.T) {
	f := createTestAuthService(t)
	userID := uuid.New()

	f.tokenService.EXPECT().ValidateToken("refresh", service.TokenTypeRefresh).Return(&service.Claims{UserID: userID}, nil)
	f.tokenService.EXPECT().HashToken("refresh").Return("refresh-hash")
	f.refreshTokenRepo.EXPECT().FindRefreshTokenByHash(mock.Anything, "refresh-hash").Return(nil, repository.ErrRefreshTokenNotFound)
	f.metrics.EXPECT().ObserveAuth(opRefresh, service.OutcomeRejected).Return()

	_, err := f.service.RefreshToken(context.Background(), &usecase.RefreshTokenInput{RefreshToken: "refresh"})

	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
}

func TestAuthService_Signout(t *testing.T) {
	t.Run("single session", func(t *testing.T) {
		f := createTestAuthService(t)
		userID := uuid.New()

		f.tokenService.EXPECT().HashToken("refresh").Return("refresh-hash")
		f.refreshTokenRepo.EXPECT().FindRefreshTokenByHash(mock.Anything, "refresh-hash").
			Return(&entity.RefreshToken{UserID: userID, TokenHash: "refresh-hash"}, nil)
		f.refreshTokenRepo.EXPECT().DeleteRefreshTokenByHash(mock.Anything, "refresh-hash").Return(nil)
		f.metrics.EXPECT().ObserveAuth(opSignout, service.OutcomeSuccess).Return()

		err := f.service.Signout(context.Background(), &usecase.SignoutInput{UserID: userID, RefreshToken: "refresh"})
		assert.NoError(t, err)
	})

	t.Run("unknown token", func(t *testing.T) {
		f := createTestAuthService(t)

		f.tokenService.EXPECT().HashToken("refresh").Return("refresh-hash")
		f.refreshTokenRepo.EXPECT().FindRefreshTokenByHash(mock.Anything, "refresh-hash").Return(nil, repository.ErrRefreshTokenNotFound)
		f.metrics.EXPECT().ObserveAuth(opSignout, service.OutcomeSuccess).Return()

		err := f.service.Signout(context.Background(), &usecase.SignoutInput{UserID: uuid.New(), RefreshToken: "refresh"})
		assert.NoError(t, err)
	})

	t.Run("token owned by another user", func(t *testing.T) {
		f := createTestAuthService(t)

		f.tokenService.EXPECT().HashToken("refresh").Return("refresh-hash")
		f.refreshTokenRepo.EXPECT().FindRefreshTokenByHash(mock.Anything, "refresh-hash").
			Return(&entity.RefreshToken{UserID: uuid.New(), TokenHash: "refresh-hash"}, nil)
		f.metrics.EXPECT().ObserveAuth(opSignout, service.OutcomeRejected).Return()

		err := f.service.Signout(context.Background(), &usecase.SignoutInput{UserID: uuid.New(), RefreshToken: "refresh"})

		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
	})

	t.Run("all sessions", func(t *testing.T) {
		f := createTestAuthService(t)
		userID := uuid.New()

		f.refreshTokenRepo.EXPECT().DeleteRefreshTokensByUserID(mock.Anything, userID).Return(nil)
		f.metrics.EXPECT().ObserveAuth(opSignout, service.OutcomeSuccess).Return()

		err := f.service.Signout(context.Background(), &usecase.SignoutInput{UserID: userID})
		assert.NoError(t, err)
	})
}

func TestAuthService_CleanupExpiredSessions(t *testing.T) {
	f := createTestAuthService(t)

	f.refreshTokenRepo.EXPECT().DeleteExpiredRefreshTokens(mock.Anything, mock.AnythingOfType("time.Time")).Return(int64(4), nil)

	removed, err := f.service.CleanupExpiredSessions(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(4), removed)
}
