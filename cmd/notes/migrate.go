package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"gonotes/internal/notes/config"
	"gonotes/internal/notes/db"
	"gonotes/pkg/db/postgres"
	"gonotes/pkg/retry"
)

const (
	LogMigrationsDone = "migrations completed"

	ErrMigrate = "failed to run migrations"
)

var migrateCmd = &cobra.Command{
	Use:       "migrate up|down",
	Short:     "Apply or roll back the notes database schema",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{string(postgres.Up), string(postgres.Down)},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := config.LoadMigrate(ctx, configPath)
		if err != nil {
			return err
		}

		ctx, log, err := applyLoggingConfig(ctx, &cfg.Logging)
		if err != nil {
			return err
		}
		cmd.SetContext(ctx)

		direction := postgres.Direction(args[0])
		if err := db.Migrate(ctx, &cfg.Postgres, direction, retry.DefaultConfig()); err != nil {
			log.Error(ctx, ErrMigrate, zap.Error(err))
			return fmt.Errorf("%s: %w", ErrMigrate, err)
		}

		log.Info(ctx, LogMigrationsDone, zap.String("direction", string(direction)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
