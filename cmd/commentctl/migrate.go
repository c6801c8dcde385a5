package main

import (
	"context"
	"database/sql"
	"fmt"

	"comment-srv/config"
	configPostgre "comment-srv/config/postgre"
	"comment-srv/migrations"
	"comment-srv/pkg/log"

	"github.com/spf13/cobra"
)

var migrateDownSteps int

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending schema migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMigrate(cmd.Context(), func(ctx context.Context, db *sql.DB, l log.Logger) ([]string, error) {
			return migrations.Up(ctx, db, l)
		})
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Revert the most recent migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMigrate(cmd.Context(), func(ctx context.Context, db *sql.DB, l log.Logger) ([]string, error) {
			return migrations.Down(ctx, db, l, migrateDownSteps)
		})
	},
}

func init() {
	migrateDownCmd.Flags().IntVar(&migrateDownSteps, "steps", 1, "Number of migrations to revert")
	migrateCmd.AddCommand(migrateDownCmd)
}

func runMigrate(ctx context.Context, fn func(ctx context.Context, db *sql.DB, l log.Logger) ([]string, error)) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	l := log.Init(log.ZapConfig{
		Level:    cfg.Logger.Level,
		Mode:     cfg.Logger.Mode,
		Encoding: cfg.Logger.Encoding,
	})

	db, err := configPostgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	defer configPostgre.Disconnect(db)

	versions, err := fn(ctx, db, l)
	if err != nil {
		return err
	}
	if len(versions) == 0 {
		l.Info(ctx, "Schema is up to date")
		return nil
	}
	l.Infof(ctx, "Migrated versions %v", versions)
	return nil
}
