package postgres

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres" // драйвер postgres:// для migrate
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"

	"gonotes/pkg/logger"
)

// Константы для сообщений об ошибках миграций.
const (
	ErrOpenMigrationSource     = "failed to open migration source"
	ErrCreateMigrationInstance = "failed to create migration instance"
	ErrApplyMigrations         = "failed to apply migrations"
	ErrRollbackMigrations      = "failed to roll back migrations"
)

// Direction задает направление миграций.
type Direction string

// Поддерживаемые направления.
const (
	Up   Direction = "up"
	Down Direction = "down"
)

// ErrUnknownDirection возвращается для неизвестного направления миграций.
var ErrUnknownDirection = errors.New("unknown migration direction")

// MigrateFS применяет миграции из файловой системы fsys (каталог dir) к базе dsn.
func MigrateFS(ctx context.Context, dsn string, fsys fs.FS, dir string, direction Direction) error {
	log := logger.Log(ctx).With(zap.String("direction", string(direction)))

	src, err := iofs.New(fsys, dir)
	if err != nil {
		log.Error(ctx, ErrOpenMigrationSource, zap.Error(err), zap.String("dir", dir))
		return fmt.Errorf("%s: %w", ErrOpenMigrationSource, err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, dsn)
	if err != nil {
		log.Error(ctx, ErrCreateMigrationInstance, zap.Error(err))
		return fmt.Errorf("%s: %w", ErrCreateMigrationInstance, err)
	}
	defer m.Close()

	switch direction {
	case Up:
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			log.Error(ctx, ErrApplyMigrations, zap.Error(err))
			return fmt.Errorf("%s: %w", ErrApplyMigrations, err)
		}
	case Down:
		if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			log.Error(ctx, ErrRollbackMigrations, zap.Error(err))
			return fmt.Errorf("%s: %w", ErrRollbackMigrations, err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDirection, direction)
	}

	log.Info(ctx, LogMigrationsApplied)
	return nil
}
