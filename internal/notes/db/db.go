// Package db подключает хранилища сервиса заметок: Postgres и Redis.
package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"gonotes/internal/notes/config"
	"gonotes/migrations"
	"gonotes/pkg/db/postgres"
	"gonotes/pkg/db/redis"
	"gonotes/pkg/logger"
	"gonotes/pkg/retry"
)

// Константы для сообщений logger.
const (
	LogDBInitializing    = "initializing notes database"
	LogDBInitialized     = "notes database initialized successfully"
	LogMigrationStarting = "starting database migrations for notes service"
)

// Константы для сообщений об ошибках.
const (
	ErrDBMigrations      = "failed to apply notes database migrations"
	ErrDBConnection      = "failed to connect to notes database"
	ErrDBCheckConnection = "error checking the database connection"
	ErrRedisConnection   = "failed to connect to token store"
)

// DB представляет соединение с базой данных сервиса заметок.
type DB struct {
	database *postgres.Database
}

// Migrate применяет встроенные миграции в направлении direction.
func Migrate(ctx context.Context, cfg *config.PostgresConfig, direction postgres.Direction, policy retry.Config) error {
	logger.Log(ctx).Info(ctx, LogMigrationStarting, zap.String("direction", string(direction)))

	err := retry.New("postgres-migrate", policy).Execute(ctx, func(ctx context.Context) error {
		return postgres.MigrateFS(ctx, cfg.GetConnectionURL(), migrations.Notes, migrations.NotesDir, direction)
	})
	if err != nil {
		return fmt.Errorf("%s: %w", ErrDBMigrations, err)
	}
	return nil
}

// New инициализирует соединение с базой данных, предварительно применив миграции.
// Недоступная при старте база опрашивается повторно согласно policy.
func New(ctx context.Context, cfg *config.PostgresConfig, policy retry.Config) (*DB, error) {
	log := logger.Log(ctx)

	log.Info(ctx, LogDBInitializing,
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
		zap.String("database", cfg.Database),
		zap.Int("min_conn", cfg.MinConn),
		zap.Int("max_conn", cfg.MaxConn))

	if err := Migrate(ctx, cfg, postgres.Up, policy); err != nil {
		return nil, err
	}

	var database *postgres.Database
	err := retry.New("postgres-connect", policy).Execute(ctx, func(ctx context.Context) error {
		var err error
		database, err = postgres.New(ctx, cfg.GetDSN(), poolOptions(cfg))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrDBConnection, err)
	}

	log.Info(ctx, LogDBInitialized)

	return &DB{
		database: database,
	}, nil
}

// Close закрывает соединение с базой данных.
func (db *DB) Close(ctx context.Context) {
	db.database.Close(ctx)
}

// Pool возвращает пул соединений с базой данных.
func (db *DB) Pool() *pgxpool.Pool {
	return db.database.Pool()
}

// Ping проверяет соединение с базой данных.
func (db *DB) Ping(ctx context.Context) error {
	if err := db.database.Ping(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrDBCheckConnection, err)
	}
	return nil
}

// NewRedis подключается к хранилищу refresh-токенов с повторными попытками.
func NewRedis(ctx context.Context, cfg *config.RedisConfig, policy retry.Config) (*redis.Client, error) {
	var client *redis.Client
	err := retry.New("redis-connect", policy).Execute(ctx, func(ctx context.Context) error {
		var err error
		client, err = redis.NewClient(ctx, cfg.ClientConfig())
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrRedisConnection, err)
	}
	return client, nil
}

func poolOptions(cfg *config.PostgresConfig) postgres.PoolOptions {
	return postgres.PoolOptions{
		MinConns:          int32(cfg.MinConn), //nolint:gosec
		MaxConns:          int32(cfg.MaxConn), //nolint:gosec
		MaxConnIdleTime:   cfg.MaxConnIdleTime,
		HealthCheckPeriod: cfg.HealthCheckPeriod,
		ConnectTimeout:    cfg.ConnectTimeout,
	}
}
