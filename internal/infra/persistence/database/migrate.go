package database

import (
	"context"
	"log/slog"

	"carvalue/config"
	"carvalue/internal/errors"
	"carvalue/internal/infra/persistence/migrations"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"
)

// Migrate applies every pending embedded migration.
func Migrate(ctx context.Context, db *gorm.DB, driver string, logger *slog.Logger) error {
	dialect, err := gooseDialect(driver)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get sql.DB")
	}

	provider, err := goose.NewProvider(dialect, sqlDB, migrations.FS)
	if err != nil {
		return errors.Wrap(err, "failed to create migration provider")
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to apply migrations")
	}

	if logger != nil {
		for _, result := range results {
			logger.InfoContext(ctx, "Applied migration",
				slog.String("source", result.Source.Path),
				slog.Duration("duration", result.Duration),
			)
		}
	}

	return nil
}

func gooseDialect(driver string) (goose.Dialect, error) {
	switch driver {
	case config.DriverPostgres:
		return goose.DialectPostgres, nil
	case config.DriverSQLite:
		return goose.DialectSQLite3, nil
	default:
		return "", errors.Errorf("no migration dialect for driver %q", driver)
	}
}
