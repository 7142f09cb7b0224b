package main

import (
	"database/sql"
	"errors"
	"fmt"

	"cattags/config"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply or roll back database migrations",
	Long:  `Run the SQL migrations in MIGRATIONS_PATH against DATABASE_URL. Exactly one of --up or --down is required.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		up, _ := cmd.Flags().GetBool("up")
		down, _ := cmd.Flags().GetBool("down")
		if up == down {
			return errors.New("exactly one of --up or --down is required")
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		logger := config.NewLogger(cfg.Environment)

		db, err := sql.Open("postgres", cfg.DBUrl)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer db.Close()
		if err := db.PingContext(cmd.Context()); err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}

		driver, err := postgres.WithInstance(db, &postgres.Config{})
		if err != nil {
			return fmt.Errorf("failed to create database driver: %w", err)
		}
		m, err := migrate.NewWithDatabaseInstance("file://"+cfg.MigrationsPath, "postgres", driver)
		if err != nil {
			return fmt.Errorf("failed to create migrate instance: %w", err)
		}

		direction := "up"
		apply := m.Up
		if down {
			direction = "down"
			apply = m.Down
		}
		logger.Info("running migrations", "direction", direction, "source", cfg.MigrationsPath)
		if err := apply(); err != nil {
			if errors.Is(err, migrate.ErrNoChange) {
				logger.Info("no migrations to apply")
				return nil
			}
			return fmt.Errorf("failed to run %s migrations: %w", direction, err)
		}
		logger.Info("migrations completed", "direction", direction)
		return nil
	},
}

func init() {
	migrateCmd.Flags().Bool("up", false, "Apply all up migrations")
	migrateCmd.Flags().Bool("down", false, "Roll back all migrations")
	rootCmd.AddCommand(migrateCmd)
}
