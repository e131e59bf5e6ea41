package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"festival/internal/backend"
	"festival/internal/cli"
	"festival/internal/config"
	"festival/internal/log"
	"festival/internal/storage"
)

var flagEnvFile string

var rootCmd = &cobra.Command{
	Use:           "festival-admin",
	Short:         "Festival tracker administration",
	Long:          "Run migrations, load sample data, print totals and hash the admin password.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagEnvFile, "env-file", ".env", "Environment file loaded before reading configuration")
}

// loadConfig is the shared configuration path used by commands that touch the store.
func loadConfig() (*config.Config, *log.Logger, error) {
	cli.LoadEnvFile(flagEnvFile)
	cfg, err := cli.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	return cfg, cli.SetupLogger(cfg, log.ComponentAdmin), nil
}

// openRepository opens the configured store without change events, so admin
// writes do not trigger mirror rewrites one record at a time.
func openRepository(ctx context.Context) (storage.Repository, *config.Config, func(), error) {
	cfg, logger, err := loadConfig()
	if err != nil {
		return nil, nil, nil, err
	}
	bcfg, err := backend.FromAppConfig(cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	bcfg.AMQPURL = ""
	be, err := backend.NewFactory(logger).CreateBackend(ctx, bcfg)
	if err != nil {
		return nil, nil, nil, err
	}
	closeFn := func() {
		if err := be.Cleanup(); err != nil {
			logger.Warn("Backend cleanup failed", "error", err)
		}
	}
	return be.Repository, cfg, closeFn, nil
}
