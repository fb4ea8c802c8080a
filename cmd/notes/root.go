package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"gonotes/internal/notes/config"
	"gonotes/pkg/logger"
)

// Константы для переменных окружения.
const (
	EnvLoggerMode  = "NOTES_LOGGER_MODE"
	EnvLoggerLevel = "NOTES_LOGGER_LEVEL"
)

// Константы для сообщений об ошибках.
const (
	ErrInitLogger           = "failed to initialize logger"
	ErrSyncLogger           = "failed to sync logger"
	ErrInitLoggerWithConfig = "failed to initialize logger with configuration settings"
)

// Константы для игнорируемых ошибок.
const (
	ErrSyncStderr = "sync /dev/stderr: invalid argument"
	ErrSyncStdout = "sync /dev/stdout: invalid argument"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:           "notes",
	Short:         "Notes service: personal notes over a JSON API",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		env := logger.Development
		if strings.ToLower(os.Getenv(EnvLoggerMode)) == "production" {
			env = logger.Production
		}

		log, err := logger.NewLogger(env, os.Getenv(EnvLoggerLevel))
		if err != nil {
			return fmt.Errorf("%s: %w", ErrInitLogger, err)
		}
		logger.SetGlobalLogger(log)

		cmd.SetContext(logger.NewContext(logger.NewRequestIDContext(cmd.Context(), ""), log))
		return nil
	},
}

// Execute запускает корневую команду.
func Execute() error {
	ctx := context.Background()
	defer syncLogger(ctx)

	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"path to a YAML or .env configuration file (defaults to $NOTES_CONFIG_PATH)")
}

// applyLoggingConfig заменяет стартовый логгер логгером из конфигурации.
func applyLoggingConfig(ctx context.Context, cfg *config.LoggingConfig) (context.Context, *logger.Logger, error) {
	log, err := logger.NewLogger(cfg.GetEnvironment(), cfg.Level)
	if err != nil {
		logger.Log(ctx).Error(ctx, ErrInitLoggerWithConfig, zap.Error(err))
		return ctx, nil, fmt.Errorf("%s: %w", ErrInitLoggerWithConfig, err)
	}
	logger.SetGlobalLogger(log)
	return logger.NewContext(ctx, log), log, nil
}

func syncLogger(ctx context.Context) {
	if err := logger.Log(ctx).Sync(); err != nil {
		errMsg := err.Error()
		if strings.Contains(errMsg, ErrSyncStderr) || strings.Contains(errMsg, ErrSyncStdout) {
			return
		}
		if _, writeErr := fmt.Fprintf(os.Stderr, "%s: %v\n", ErrSyncLogger, err); writeErr != nil {
			panic(writeErr)
		}
	}
}
