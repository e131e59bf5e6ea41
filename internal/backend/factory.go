package backend

import (
	"context"
	"errors"
	"fmt"

	"festival/internal/amqp"
	"festival/internal/config"
	"festival/internal/log"
	"festival/internal/storage"
	"festival/internal/storage/memory"
)

// FromAppConfig converts the application config to backend config
func FromAppConfig(appConfig *config.Config) (Config, error) {
	if appConfig == nil {
		return Config{}, fmt.Errorf("app config is nil")
	}

	backendType := BackendType(appConfig.DataBackend)
	if !backendType.IsValid() {
		return Config{}, fmt.Errorf("invalid backend type in config: %s", appConfig.DataBackend)
	}

	return Config{
		Type:         backendType,
		DSN:          appConfig.DatabaseURL,
		Snapshots:    appConfig.SnapshotAggregates,
		AMQPURL:      appConfig.AMQPURL,
		AMQPExchange: appConfig.AMQPExchange,
		AMQPQueue:    appConfig.AMQPQueue,
	}, nil
}

// DefaultFactory implements the Factory interface
type DefaultFactory struct {
	logger *log.Logger
}

// NewFactory creates a new backend factory
func NewFactory(logger *log.Logger) *DefaultFactory {
	if logger == nil {
		logger = log.Discard()
	}
	return &DefaultFactory{logger: logger.WithComponent(log.ComponentBackend)}
}

// CreateBackend opens the configured store and, when AMQP is configured,
// a publisher. A broker that cannot be reached is logged and skipped so the
// API keeps serving without change events.
func (f *DefaultFactory) CreateBackend(ctx context.Context, cfg Config) (*BackendResult, error) {
	repo, err := f.openRepository(ctx, cfg)
	if err != nil {
		return nil, err
	}

	result := &BackendResult{Repository: repo}
	var client *amqp.Client
	if cfg.AMQPURL != "" {
		client, err = amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue, f.logger)
		if err != nil {
			f.logger.Warn("Failed to initialize AMQP client, continuing without change events", "error", err)
			client = nil
		} else {
			result.Publisher = client
			f.logger.Info("Initialized AMQP client", "exchange", cfg.AMQPExchange, "queue", cfg.AMQPQueue)
		}
	}

	result.Cleanup = func() error {
		var errs []error
		if client != nil {
			errs = append(errs, client.Close())
		}
		errs = append(errs, repo.Close())
		return errors.Join(errs...)
	}

	f.logger.Info("Initialized backend",
		log.FieldBackend, cfg.Type.String(),
		"snapshots", cfg.Snapshots,
		"amqp_enabled", client != nil)
	return result, nil
}

func (f *DefaultFactory) openRepository(ctx context.Context, cfg Config) (storage.Repository, error) {
	switch cfg.Type {
	case MemoryBackend:
		return memory.New(), nil
	case SQLiteBackend, PostgresBackend:
		if cfg.DSN == "" {
			return nil, fmt.Errorf("%s backend requires a DSN", cfg.Type)
		}
		repo, err := storage.Open(ctx, storage.Dialect(cfg.Type), cfg.DSN,
			storage.WithSnapshots(cfg.Snapshots),
			storage.WithLogger(f.logger))
		if err != nil {
			return nil, fmt.Errorf("failed to initialize %s repository: %w", cfg.Type, err)
		}
		return repo, nil
	default:
		return nil, fmt.Errorf("invalid backend type: %s", cfg.Type)
	}
}
