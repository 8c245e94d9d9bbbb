package impl

import (
	"context"
	"log/slog"

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

// userService implements the UserUsecase interface.
type userService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	logger    *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Hasher    service.PasswordHasher
	Logger    *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		hasher:    params.Hasher,
		logger:    params.Logger,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, srv.logger)
}

// GetUser loads a single account.
func (srv *userService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "get user")
		}

		return nil, errors.Wrap(err, "failed to get user")
	}

	return user, nil
}

// WhoAmI returns the caller's own account. A token whose user was deleted is unauthorized.
func (srv *userService) WhoAmI(ctx context.Context, actor *entity.Identity) (*entity.User, error) {
	if actor == nil {
		return nil, errors.Wrap(domainerrors.ErrUnauthorized, "whoami")
	}

	user, err := srv.userRepo.FindByID(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUnauthorized, "caller no longer exists")
		}

		return nil, errors.Wrap(err, "failed to load caller")
	}

	return user, nil
}

// FindUsers lists accounts registered under email.
func (srv *userService) FindUsers(ctx context.Context, email string) ([]*entity.User, error) {
	users, err := srv.userRepo.Find(ctx, normalizeEmail(email))
	if err != nil {
		return nil, errors.Wrap(err, "failed to find users")
	}

	return users, nil
}

// UpdateUser changes email and/or password. A new password is re-salted.
func (srv *userService) UpdateUser(ctx context.Context, actor *entity.Identity, id uuid.UUID, input *usecase.UpdateUserInput) (*entity.User, error) {
	if err := requireManage(actor, id); err != nil {
		srv.log(ctx).Warn("User update denied", slog.Any("targetID", id), slog.Any("error", err))

		return nil, err
	}

	var credential string
	if input.Password != nil {
		var err error
		credential, err = srv.hasher.Hash(*input.Password)
		if err != nil {
			if errors.Is(err, service.ErrEmptyPassword) {
				return nil, errors.Wrap(domainerrors.ErrEmptyPassword, "update rejected")
			}

			return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password during update")
		}
	}

	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "update user")
			}

			return errors.Wrap(err, "failed to load user for update")
		}

		if input.Email != nil {
			user.Email = normalizeEmail(*input.Email)
		}
		if input.Password != nil {
			user.Password = credential
		}

		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to update user")
		}

		// Changing the password ends every existing session.
		if input.Password != nil {
			if err := repoFactory.RefreshTokenRepo().DeleteRefreshTokensByUserID(ctx, user.ID); err != nil {
				return errors.Wrap(err, "failed to revoke sessions after password change")
			}
		}

		updated = user

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute user update transaction")
	}

	srv.log(ctx).Info("User updated", slog.Any("userID", updated.ID))

	return updated, nil
}

// RemoveUser deletes an account together with its reports and sessions.
func (srv *userService) RemoveUser(ctx context.Context, actor *entity.Identity, id uuid.UUID) error {
	if err := requireManage(actor, id); err != nil {
		srv.log(ctx).Warn("User removal denied", slog.Any("targetID", id), slog.Any("error", err))

		return err
	}

	if err := srv.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "remove user")
		}

		return errors.Wrap(err, "failed to remove user")
	}

	srv.log(ctx).Info("User removed", slog.Any("userID", id))

	return nil
}
