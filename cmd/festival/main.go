package main

import (
	"context"
	"os"
	"time"

	"festival/internal/auth"
	"festival/internal/backend"
	"festival/internal/cli"
	apphttp "festival/internal/http"
	"festival/internal/log"
	"festival/internal/middleware/security"
	"festival/internal/services"
)

func main() {
	cli.LoadEnvFile()
	cfg := cli.LoadAndValidateConfig()
	logger := cli.SetupLogger(cfg, log.ComponentApp)

	ctx, cancel := cli.SignalContext(context.Background(), logger)
	defer cancel()

	backendCfg, err := backend.FromAppConfig(cfg)
	if err != nil {
		logger.Error("Invalid backend configuration", "error", err)
		os.Exit(1)
	}
	be, err := backend.NewFactory(logger).CreateBackend(ctx, backendCfg)
	if err != nil {
		logger.Error("Failed to initialize backend", "error", err, log.FieldBackend, cfg.DataBackend)
		os.Exit(1)
	}
	defer func() {
		if err := be.Cleanup(); err != nil {
			logger.Error("Backend cleanup failed", "error", err)
		}
	}()

	ipResolver, err := security.NewIPResolver(cfg.TrustedProxies...)
	if err != nil {
		logger.Error("Invalid trusted proxies", "error", err)
		os.Exit(1)
	}

	deps := apphttp.Deps{
		Donors:     services.NewDonorService(be.Repository, be.Publisher, logger),
		Expenses:   services.NewExpenseService(be.Repository, be.Publisher, logger),
		Aggregates: services.NewAggregationService(be.Repository, cfg.Budget()),
		Store:      be.Repository,
		Logger:     logger,
		IPResolver: ipResolver,
		LoginLimit: cfg.LoginRateLimit,
	}
	if cfg.AuthEnabled() {
		deps.Tokens = auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
		deps.Auth = auth.NewAuthenticator(cfg.AdminUsername, cfg.AdminPasswordHash, deps.Tokens, logger)
	}

	srv, err := apphttp.NewServer(":"+cfg.Port, deps)
	if err != nil {
		logger.Error("Failed to build HTTP server", "error", err)
		os.Exit(1)
	}

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		<-ctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", "error", err)
		}
	}()

	logger.Info("Starting festival server",
		"port", cfg.Port,
		log.FieldBackend, cfg.DataBackend,
		"budget", cfg.Budget().String(),
		"auth_enabled", cfg.AuthEnabled(),
		"amqp_enabled", be.Publisher != nil)

	start := time.Now()
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("Server error", "error", err, "port", cfg.Port)
		cancel()
		os.Exit(1)
	}
	<-stopped
	logger.Info("Server stopped gracefully", "uptime", time.Since(start).Round(time.Second).String())
}
