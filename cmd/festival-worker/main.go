package main

import (
	"context"
	"os"

	"festival/internal/amqp"
	"festival/internal/backend"
	"festival/internal/cli"
	"festival/internal/log"
	"festival/internal/sheets"
	gsheet "festival/internal/sheets/google"
	mem "festival/internal/sheets/memory"
	"festival/internal/worker"
)

func main() {
	cli.LoadEnvFile()
	cfg := cli.LoadAndValidateConfig()
	logger := cli.SetupLogger(cfg, log.ComponentWorker)

	logger.Info("Starting festival-worker")

	ctx, cancel := cli.SignalContext(context.Background(), logger)
	defer cancel()

	backendCfg, err := backend.FromAppConfig(cfg)
	if err != nil {
		logger.Error("Invalid backend configuration", "error", err)
		os.Exit(1)
	}
	// the worker consumes events, it never publishes them
	backendCfg.AMQPURL = ""
	be, err := backend.NewFactory(logger).CreateBackend(ctx, backendCfg)
	if err != nil {
		logger.Error("Failed to initialize backend", "error", err, log.FieldBackend, cfg.DataBackend)
		os.Exit(1)
	}
	defer be.Cleanup()

	var writer sheets.MirrorWriter
	if cfg.MirrorEnabled() {
		client, err := gsheet.NewClient(ctx, gsheet.Config{
			SpreadsheetID:   cfg.GoogleSpreadsheetID,
			CredentialsJSON: cfg.GoogleServiceAccountJSON,
			CredentialsFile: cfg.GoogleServiceAccountFile,
		}, logger)
		if err != nil {
			logger.Error("Failed to initialize Google Sheets client", "error", err)
			os.Exit(1)
		}
		writer = client
		logger.Info("Google Sheets mirror enabled", "spreadsheet_id", cfg.GoogleSpreadsheetID)
	} else {
		writer = mem.New()
		logger.Warn("Google Sheets not configured, mirroring into memory only")
	}

	var consumer worker.Consumer
	if cfg.AMQPEnabled() {
		client, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue, logger)
		if err != nil {
			logger.Error("Failed to initialize AMQP client", "error", err)
			os.Exit(1)
		}
		defer client.Close()
		consumer = client
	} else {
		logger.Info("AMQP disabled, relying on periodic mirrors", "interval", cfg.MirrorInterval.String())
	}

	w := worker.NewMirrorWorker(be.Repository, writer, cfg.MirrorInterval, logger)
	if err := w.Run(ctx, consumer); err != nil {
		logger.Error("Mirror worker failed", "error", err)
		cancel()
		be.Cleanup()
		os.Exit(1)
	}
	logger.Info("Worker stopped gracefully")
}
