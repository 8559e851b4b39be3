package main

import (
	"context"
	"fmt"
	"time"

	"portal-api/internal/config"
	"portal-api/internal/database"
	"portal-api/internal/database/migration"
	dbpostgres "portal-api/internal/database/postgres"
	"portal-api/internal/database/seeder"
	"portal-api/internal/logger"

	"github.com/spf13/cobra"
)

var migrateList bool

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		if migrateList {
			files, err := migration.Files()
			if err != nil {
				return fmt.Errorf("list migrations: %w", err)
			}
			for _, f := range files {
				fmt.Fprintln(cmd.OutOrStdout(), f)
			}
			return nil
		}
		return withDB(cmd.Context(), func(ctx context.Context, _ config.Config, db database.DB) error {
			if err := (migration.Runner{}).Run(ctx, db.SQLDB()); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
			return nil
		})
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the built-in sample postings",
	Long: `Inserts the five built-in sample postings. Rows whose blockchain hash
already exists are skipped, so the command can be re-run safely.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(cmd.Context(), func(ctx context.Context, cfg config.Config, db database.DB) error {
			log, err := logger.New(cfg.App.Environment)
			if err != nil {
				return err
			}
			r := seeder.Runner{Seeders: seeder.Defaults(), Logger: log}
			if err := r.Run(ctx, db); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "seed complete")
			return nil
		})
	},
}

func init() {
	migrateCmd.Flags().BoolVar(&migrateList, "list", false, "print the embedded migrations and exit")
}

func withDB(ctx context.Context, fn func(ctx context.Context, cfg config.Config, db database.DB) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if !cfg.Database.Enabled() {
		return fmt.Errorf("DB_HOST is not set")
	}

	connCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	db, err := dbpostgres.Connect(connCtx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer db.Close()

	return fn(ctx, cfg, db)
}
