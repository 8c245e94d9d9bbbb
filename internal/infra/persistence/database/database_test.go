package database

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"carvalue/config"
	"carvalue/internal/domain/entity"
	domainerrors "carvalue/internal/domain/errors"
	"carvalue/internal/domain/repository"
	"carvalue/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := &config.Config{Database: &config.DatabaseConfig{Driver: config.DriverSQLite, DSN: ":memory:"}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	db, err := Open(cfg, logger)
	require.NoError(t, err)
	require.NoError(t, Migrate(context.Background(), db, config.DriverSQLite, logger))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}

func createUser(t *testing.T, repo repository.UserRepository, email string) *entity.User {
	t.Helper()

	user := &entity.User{Email: email, Password: "00ff.abcd"}
	require.NoError(t, repo.Create(context.Background(), user))

	return user
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	cfg := &config.Config{Database: &config.DatabaseConfig{Driver: "oracle"}}

	_, err := Open(cfg, nil)
	assert.Error(t, err)
}

func TestMigrate_IsIdempotent(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, Migrate(context.Background(), db, config.DriverSQLite, nil))
	assert.True(t, db.Migrator().HasTable("users"))
	assert.True(t, db.Migrator().HasTable("reports"))
	assert.True(t, db.Migrator().HasTable("refresh_tokens"))
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	user := createUser(t, repo, "a@example.com")
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.False(t, user.CreatedAt.IsZero())

	byID, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", byID.Email)
	assert.Equal(t, "00ff.abcd", byID.Password)
	assert.False(t, byID.Admin)

	byEmail, err := repo.FindByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	found, err := repo.Find(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Len(t, found, 1)

	none, err := repo.Find(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	_, err = repo.FindByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_CreateDuplicateEmail(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	createUser(t, repo, "dup@example.com")

	err := repo.Create(context.Background(), &entity.User{Email: "dup@example.com", Password: "00.11"})
	assert.True(t, errors.Is(err, domainerrors.ErrEmailInUse))
}

func TestUserRepository_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))
	user := createUser(t, repo, "before@example.com")
	other := createUser(t, repo, "taken@example.com")

	user.Email = "after@example.com"
	user.Admin = true
	require.NoError(t, repo.Update(ctx, user))

	updated, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "after@example.com", updated.Email)
	assert.True(t, updated.Admin)

	user.Email = other.Email
	err = repo.Update(ctx, user)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailInUse))

	err = repo.Update(ctx, &entity.User{ID: uuid.New(), Email: "ghost@example.com", Password: "00.11"})
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	require.NoError(t, repo.Delete(ctx, user.ID))
	_, err = repo.FindByID(ctx, user.ID)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, user.ID), repository.ErrUserNotFound)
}

func TestReportRepository_CreateAndApprove(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	owner := createUser(t, NewUserRepository(db), "owner@example.com")
	repo := NewReportRepository(db)

	report := &entity.Report{
		Price: 15000, Make: "toyota", Model: "corolla", Year: 2010,
		Lng: 0, Lat: 0, Mileage: 50000, UserID: owner.ID,
	}
	require.NoError(t, repo.Create(ctx, report))
	assert.NotEqual(t, uuid.Nil, report.ID)

	loaded, err := repo.FindByID(ctx, report.ID)
	require.NoError(t, err)
	assert.False(t, loaded.Approved)
	assert.Equal(t, owner.ID, loaded.UserID)

	approved, err := repo.UpdateApproval(ctx, report.ID, true)
	require.NoError(t, err)
	assert.True(t, approved.Approved)

	rejected, err := repo.UpdateApproval(ctx, report.ID, false)
	require.NoError(t, err)
	assert.False(t, rejected.Approved)

	_, err = repo.UpdateApproval(ctx, uuid.New(), true)
	assert.ErrorIs(t, err, repository.ErrReportNotFound)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrReportNotFound)
}

func TestReportRepository_FindComparables(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	owner := createUser(t, NewUserRepository(db), "owner@example.com")
	repo := NewReportRepository(db)

	seed := []struct {
		report   entity.Report
		approved bool
	}{
		{entity.Report{Price: 10000, Make: "ford", Model: "mustang", Year: 1982, Lng: 45, Lat: 45, Mileage: 50000}, true},
		{entity.Report{Price: 20000, Make: "ford", Model: "mustang", Year: 1981, Lng: 46, Lat: 44, Mileage: 60000}, true},
		{entity.Report{Price: 30000, Make: "ford", Model: "mustang", Year: 1983, Lng: 44, Lat: 46, Mileage: 10000}, true},
		{entity.Report{Price: 99000, Make: "ford", Model: "mustang", Year: 1982, Lng: 45, Lat: 45, Mileage: 50001}, false},
		{entity.Report{Price: 88000, Make: "ford", Model: "focus", Year: 1982, Lng: 45, Lat: 45, Mileage: 50000}, true},
		{entity.Report{Price: 77000, Make: "ford", Model: "mustang", Year: 1990, Lng: 45, Lat: 45, Mileage: 50000}, true},
		{entity.Report{Price: 66000, Make: "ford", Model: "mustang", Year: 1982, Lng: 60, Lat: 45, Mileage: 50000}, true},
	}
	for _, s := range seed {
		report := s.report
		report.UserID = owner.ID
		require.NoError(t, repo.Create(ctx, &report))
		if s.approved {
			_, err := repo.UpdateApproval(ctx, report.ID, true)
			require.NoError(t, err)
		}
	}

	results, err := repo.FindComparables(ctx, repository.ComparableFilter{
		Make: "ford", Model: "mustang",
		MinLng: 40, MaxLng: 50, MinLat: 40, MaxLat: 50,
		MinYear: 1979, MaxYear: 1985,
		Mileage: 52000,
		Limit:   2,
	})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, 10000, results[0].Price)
	assert.Equal(t, 20000, results[1].Price)

	results, err = repo.FindComparables(ctx, repository.ComparableFilter{
		Make: "ford", Model: "mustang",
		MinLng: 40, MaxLng: 50, MinLat: 40, MaxLat: 50,
		MinYear: 1979, MaxYear: 1985,
		Mileage: 0,
		Limit:   10,
	})
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, 30000, results[0].Price)

	results, err = repo.FindComparables(ctx, repository.ComparableFilter{
		Make: "honda", Model: "civic", MinLng: -180, MaxLng: 180, MinLat: -90, MaxLat: 90,
		MinYear: 0, MaxYear: 3000, Limit: 3,
	})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestRefreshTokenRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	owner := createUser(t, NewUserRepository(db), "owner@example.com")
	repo := NewRefreshTokenRepository(db)

	live := &entity.RefreshToken{UserID: owner.ID, TokenHash: "live", ExpiresAt: time.Now().Add(time.Hour)}
	expired := &entity.RefreshToken{UserID: owner.ID, TokenHash: "expired", ExpiresAt: time.Now().Add(-time.Hour)}
	require.NoError(t, repo.CreateRefreshToken(ctx, live))
	require.NoError(t, repo.CreateRefreshToken(ctx, expired))

	err := repo.CreateRefreshToken(ctx, &entity.RefreshToken{UserID: owner.ID, TokenHash: "live", ExpiresAt: time.Now().Add(time.Hour)})
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))

	found, err := repo.FindRefreshTokenByHash(ctx, "live")
	require.NoError(t, err)
	assert.Equal(t, owner.ID, found.UserID)

	_, err = repo.FindRefreshTokenByHash(ctx, "expired")
	assert.ErrorIs(t, err, repository.ErrRefreshTokenExpired)

	_, err = repo.FindRefreshTokenByHash(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrRefreshTokenNotFound)

	removed, err := repo.DeleteExpiredRefreshTokens(ctx, time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	require.NoError(t, repo.DeleteRefreshTokenByHash(ctx, "live"))
	assert.ErrorIs(t, repo.DeleteRefreshTokenByHash(ctx, "live"), repository.ErrRefreshTokenNotFound)

	require.NoError(t, repo.CreateRefreshToken(ctx, &entity.RefreshToken{UserID: owner.ID, TokenHash: "a", ExpiresAt: time.Now().Add(time.Hour)}))
	require.NoError(t, repo.CreateRefreshToken(ctx, &entity.RefreshToken{UserID: owner.ID, TokenHash: "b", ExpiresAt: time.Now().Add(time.Hour)}))
	require.NoError(t, repo.DeleteRefreshTokensByUserID(ctx, owner.ID))
	_, err = repo.FindRefreshTokenByHash(ctx, "a")
	assert.ErrorIs(t, err, repository.ErrRefreshTokenNotFound)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	txManager := NewTransactionManager(db)
	sentinel := errors.New("abort")

	err := txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.UserRepo().Create(ctx, &entity.User{Email: "tx@example.com", Password: "00.11"}); err != nil {
			return err
		}

		return sentinel
	})
	assert.ErrorIs(t, err, sentinel)

	_, err = NewUserRepository(db).FindByEmail(ctx, "tx@example.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestTransactionManager_Commits(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	txManager := NewTransactionManager(db)

	var userID uuid.UUID
	err := txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		user := &entity.User{Email: "commit@example.com", Password: "00.11"}
		if err := factory.UserRepo().Create(ctx, user); err != nil {
			return err
		}
		userID = user.ID

		return factory.RefreshTokenRepo().CreateRefreshToken(ctx, &entity.RefreshToken{
			UserID: user.ID, TokenHash: "commit", ExpiresAt: time.Now().Add(time.Hour),
		})
	})
	require.NoError(t, err)

	user, err := NewUserRepository(db).FindByEmail(ctx, "commit@example.com")
	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)
}
