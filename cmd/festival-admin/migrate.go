package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"festival/internal/config"
	"festival/internal/storage"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the database schema",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	RunE: func(cmd *cobra.Command, _ []string) error {
		dialect, dsn, err := sqlTarget()
		if err != nil {
			return err
		}
		if err := storage.RunMigrations(dialect, dsn); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "  %s schema is up to date\n", dialect)
		return nil
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back every migration (drops all data)",
	RunE: func(cmd *cobra.Command, _ []string) error {
		dialect, dsn, err := sqlTarget()
		if err != nil {
			return err
		}
		if err := storage.MigrateDown(dialect, dsn); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "  %s schema rolled back\n", dialect)
		return nil
	},
}

var migrateVersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the applied schema version",
	RunE: func(cmd *cobra.Command, _ []string) error {
		dialect, dsn, err := sqlTarget()
		if err != nil {
			return err
		}
		version, dirty, err := storage.MigrationVersion(dialect, dsn)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "  version %d (dirty: %t)\n", version, dirty)
		return nil
	},
}

func init() {
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd, migrateVersionCmd)
	rootCmd.AddCommand(migrateCmd)
}

func sqlTarget() (storage.Dialect, string, error) {
	cfg, _, err := loadConfig()
	if err != nil {
		return "", "", err
	}
	return dialectFor(cfg)
}

func dialectFor(cfg *config.Config) (storage.Dialect, string, error) {
	switch storage.Dialect(cfg.DataBackend) {
	case storage.SQLite, storage.Postgres:
		return storage.Dialect(cfg.DataBackend), cfg.DatabaseURL, nil
	default:
		return "", "", fmt.Errorf("migrations need a sqlite or postgres backend, got %q", cfg.DataBackend)
	}
}
