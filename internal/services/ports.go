//go:generate go run go.uber.org/mock/mockgen -source=ports.go -destination=../mocks/mock_services.go -package=mocks

package services

import (
	"context"

	"festival/internal/amqp"
	"festival/internal/storage"
)

type (
	// Publisher announces committed writes. *amqp.Client implements it.
	Publisher interface {
		Publish(ctx context.Context, msg *amqp.RecordChanged) error
	}

	// SnapshotSource runs aggregate reads against a consistent view.
	SnapshotSource interface {
		Snapshot(ctx context.Context, fn func(storage.AggregateReader) error) error
	}
)
