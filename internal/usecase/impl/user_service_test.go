package impl

import (
	"context"
	"testing"

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

type userServiceFixtures struct {
	service   usecase.UserUsecase
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
	hasher    *mockSvc.MockPasswordHasher
}

func createTestUserService(t *testing.T) userServiceFixtures {
	f := userServiceFixtures{
		txManager: mockRepo.NewMockTransactionManager(t),
		userRepo:  mockRepo.NewMockUserRepository(t),
		hasher:    mockSvc.NewMockPasswordHasher(t),
	}

	f.service = NewUserService(UserServiceParams{
		TxManager: f.txManager,
		UserRepo:  f.userRepo,
		Hasher:    f.hasher,
		Logger:    newDiscardLogger(),
	})

	return f
}

func ptr[T any](v T) *T {
	return &v
}

func TestUserService_GetUser(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()
	id := uuid.New()

	f.userRepo.EXPECT().FindByID(ctx, id).Return(&entity.User{ID: id, Email: "a@example.com"}, nil)

	user, err := f.service.GetUser(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, user.ID)
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	f := createTestUserService(t)
	id := uuid.New()

	f.userRepo.EXPECT().FindByID(mock.Anything, id).Return(nil, repository.ErrUserNotFound)

	_, err := f.service.GetUser(context.Background(), id)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestUserService_WhoAmI(t *testing.T) {
	t.Run("anonymous", func(t *testing.T) {
		f := createTestUserService(t)

		_, err := f.service.WhoAmI(context.Background(), nil)
		assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
	})

	t.Run("existing", func(t *testing.T) {
		f := createTestUserService(t)
		id := uuid.New()
		f.userRepo.EXPECT().FindByID(mock.Anything, id).Return(&entity.User{ID: id}, nil)

		user, err := f.service.WhoAmI(context.Background(), &entity.Identity{UserID: id})
		require.NoError(t, err)
		assert.Equal(t, id, user.ID)
	})

	t.Run("deleted account", func(t *testing.T) {
		f := createTestUserService(t)
		id := uuid.New()
		f.userRepo.EXPECT().FindByID(mock.Anything, id).Return(nil, repository.ErrUserNotFound)

		_, err := f.service.WhoAmI(context.Background(), &entity.Identity{UserID: id})
		assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
	})
}

func TestUserService_FindUsers_NormalizesEmail(t *testing.T) {
	f := createTestUserService(t)

	f.userRepo.EXPECT().Find(mock.Anything, "a@example.com").Return([]*entity.User{{Email: "a@example.com"}}, nil)

	users, err := f.service.FindUsers(context.Background(), "  A@Example.COM")
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestUserService_UpdateUser_Permissions(t *testing.T) {
	target := uuid.New()

	tests := []struct {
		name    string
		actor   *entity.Identity
		wantErr *domainerrors.BaseError
	}{
		{name: "anonymous", actor: nil, wantErr: domainerrors.ErrUnauthorized},
		{name: "other user", actor: &entity.Identity{UserID: uuid.New(), Roles: entity.Roles{entity.RoleUser}}, wantErr: domainerrors.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestUserService(t)

			_, err := f.service.UpdateUser(context.Background(), tt.actor, target, &usecase.UpdateUserInput{Email: ptr("x@example.com")})
			assert.True(t, errors.Is(err, tt.wantErr))
		})
	}
}

func TestUserService_UpdateUser_PasswordRevokesSessions(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()
	id := uuid.New()
	actor := &entity.Identity{UserID: id, Roles: entity.Roles{entity.RoleUser}}

	f.hasher.EXPECT().Hash("new-secret").Return("aa.bb", nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	txRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
	factory.EXPECT().UserRepo().Return(txUserRepo)
	factory.EXPECT().RefreshTokenRepo().Return(txRefreshRepo)

	txUserRepo.EXPECT().FindByID(ctx, id).Return(&entity.User{ID: id, Email: "old@example.com", Password: "00.11"}, nil)
	txUserRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(user *entity.User) bool {
			return user.Email == "new@example.com" && user.Password == "aa.bb"
		})).
		Return(nil)
	txRefreshRepo.EXPECT().DeleteRefreshTokensByUserID(ctx, id).Return(nil)
	f.txManager.EXPECT().Execute(ctx, mock.Anything).RunAndReturn(runWith(factory))

	user, err := f.service.UpdateUser(ctx, actor, id, &usecase.UpdateUserInput{
		Email:    ptr("New@example.com"),
		Password: ptr("new-secret"),
	})

	require.NoError(t, err)
	assert.Equal(t, "new@example.com", user.Email)
}

func TestUserService_UpdateUser_AdminEmailOnly(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()
	id := uuid.New()
	admin := &entity.Identity{UserID: uuid.New(), Roles: entity.Roles{entity.RoleUser, entity.RoleAdmin}}

	factory := mockRepo.NewMockRepositoryFactory(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	factory.EXPECT().UserRepo().Return(txUserRepo)

	txUserRepo.EXPECT().FindByID(ctx, id).Return(&entity.User{ID: id, Email: "old@example.com", Password: "00.11"}, nil)
	txUserRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	f.txManager.EXPECT().Execute(ctx, mock.Anything).RunAndReturn(runWith(factory))

	user, err := f.service.UpdateUser(ctx, admin, id, &usecase.UpdateUserInput{Email: ptr("x@example.com")})

	require.NoError(t, err)
	assert.Equal(t, "00.11", user.Password)
}

func TestUserService_UpdateUser_EmptyPassword(t *testing.T) {
	f := createTestUserService(t)
	id := uuid.New()

	f.hasher.EXPECT().Hash("").Return("", service.ErrEmptyPassword)

	_, err := f.service.UpdateUser(context.Background(), &entity.Identity{UserID: id}, id, &usecase.UpdateUserInput{Password: ptr("")})
	assert.True(t, errors.Is(err, domainerrors.ErrEmptyPassword))
}

func TestUserService_UpdateUser_NotFound(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()
	id := uuid.New()

	factory := mockRepo.NewMockRepositoryFactory(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	factory.EXPECT().UserRepo().Return(txUserRepo)
	txUserRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrUserNotFound)
	f.txManager.EXPECT().Execute(ctx, mock.Anything).RunAndReturn(runWith(factory))

	_, err := f.service.UpdateUser(ctx, &entity.Identity{UserID: id}, id, &usecase.UpdateUserInput{Email: ptr("x@example.com")})
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestUserService_RemoveUser(t *testing.T) {
	t.Run("self", func(t *testing.T) {
		f := createTestUserService(t)
		id := uuid.New()

		f.userRepo.EXPECT().Delete(mock.Anything, id).Return(nil)

		err := f.service.RemoveUser(context.Background(), &entity.Identity{UserID: id}, id)
		assert.NoError(t, err)
	})

	t.Run("unknown id", func(t *testing.T) {
		f := createTestUserService(t)
		id := uuid.New()
		admin := &entity.Identity{UserID: uuid.New(), Roles: entity.Roles{entity.RoleAdmin}}

		f.userRepo.EXPECT().Delete(mock.Anything, id).Return(repository.ErrUserNotFound)

		err := f.service.RemoveUser(context.Background(), admin, id)
		assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
	})

	t.Run("forbidden", func(t *testing.T) {
		f := createTestUserService(t)

		err := f.service.RemoveUser(context.Background(), &entity.Identity{UserID: uuid.New()}, uuid.New())
		assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	})
}
