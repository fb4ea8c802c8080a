package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"gonotes/internal/notes/adapters/grpc"
	httpServer "gonotes/internal/notes/adapters/http"
	"gonotes/internal/notes/adapters/postgres"
	tokenstore "gonotes/internal/notes/adapters/redis"
	"gonotes/internal/notes/adapters/services"
	"gonotes/internal/notes/app"
	"gonotes/internal/notes/config"
	"gonotes/internal/notes/db"
	"gonotes/pkg/retry"
	"gonotes/pkg/shutdown"
)

// Константы для сообщений об ошибках.
const (
	ErrInitDB     = "failed to initialize database"
	ErrInitRedis  = "failed to initialize token store"
	ErrStartHTTP  = "failed to start HTTP server"
	ErrStartGRPC  = "failed to start gRPC server"
	ErrStopHTTP   = "failed to stop HTTP server"
	ErrCloseRedis = "failed to close token store"
)

// Константы для сообщений сервиса.
const (
	LogServiceStarted      = "notes service started"
	LogServiceShutdownDone = "notes service shutdown complete"
	LogClosingDB           = "closing database connections"
	LogInitRepo            = "initializing repositories"
	LogInitServices        = "initializing services"
	LogInitUseCases        = "initializing use cases"
	LogInitHTTPServer      = "initializing HTTP server"
	LogInitGRPCServer      = "initializing gRPC server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and the gRPC health endpoint",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		cfg, err := config.Load(ctx, configPath)
		if err != nil {
			return err
		}

		ctx, log, err := applyLoggingConfig(ctx, &cfg.Logging)
		if err != nil {
			return err
		}
		cmd.SetContext(ctx)

		database, err := db.New(ctx, &cfg.Postgres, retry.DefaultConfig())
		if err != nil {
			log.Error(ctx, ErrInitDB, zap.Error(err))
			return fmt.Errorf("%s: %w", ErrInitDB, err)
		}
		defer func() {
			log.Info(ctx, LogClosingDB)
			database.Close(ctx)
		}()

		redisClient, err := db.NewRedis(ctx, &cfg.Redis, retry.DefaultConfig())
		if err != nil {
			log.Error(ctx, ErrInitRedis, zap.Error(err))
			return fmt.Errorf("%s: %w", ErrInitRedis, err)
		}
		defer func() {
			if err := redisClient.Close(ctx); err != nil {
				log.Error(ctx, ErrCloseRedis, zap.Error(err))
			}
		}()

		log.Info(ctx, LogInitRepo)
		repoFactory := postgres.NewRepositoryFactory(database.Pool())
		noteRepo := repoFactory.NoteRepository()
		userRepo := repoFactory.UserRepository()
		tokenRepo := tokenstore.NewTokenStore(redisClient.RawClient())

		log.Info(ctx, LogInitServices)
		serviceFactory := services.NewServiceFactory(cfg.JWT.Domain(), cfg.JWT.BCryptCost)

		log.Info(ctx, LogInitUseCases)
		useCases := httpServer.UseCases{
			Notes: app.NewNoteUseCase(noteRepo),
			Users: app.NewUserUseCase(userRepo, serviceFactory.PasswordService()),
			Auth: app.NewAuthUseCase(userRepo, tokenRepo,
				serviceFactory.PasswordService(), serviceFactory.TokenService()),
			Health: app.NewHealthUseCase(app.DefaultCheckTimeout,
				app.Dependency{Name: "postgres", Check: database.Ping},
				app.Dependency{Name: "redis", Check: redisClient.Ping},
			),
		}

		log.Info(ctx, LogInitHTTPServer)
		api := httpServer.New(&cfg.HTTP, useCases)
		if err := api.Start(ctx); err != nil {
			log.Error(ctx, ErrStartHTTP, zap.Error(err))
			return fmt.Errorf("%s: %w", ErrStartHTTP, err)
		}

		log.Info(ctx, LogInitGRPCServer)
		grpcServer := grpc.New(&cfg.GRPC, useCases.Health)
		if err := grpcServer.Start(ctx); err != nil {
			log.Error(ctx, ErrStartGRPC, zap.Error(err))
			if stopErr := api.Stop(ctx); stopErr != nil {
				log.Error(ctx, ErrStopHTTP, zap.Error(stopErr))
			}
			return fmt.Errorf("%s: %w", ErrStartGRPC, err)
		}

		log.Info(ctx, LogServiceStarted,
			zap.String("environment", string(cfg.Logging.GetEnvironment())),
			zap.String("log_level", cfg.Logging.Level),
			zap.String("http_address", api.Addr()),
			zap.String("grpc_address", grpcServer.Addr()),
			zap.String("startup_time", time.Now().Format(time.RFC3339)))

		shutdown.Wait(ctx, cfg.Shutdown.GetTimeout(),
			func(ctx context.Context) error {
				grpcServer.Stop(ctx)
				return nil
			},
			api.Stop,
		)

		log.Info(ctx, LogServiceShutdownDone)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
