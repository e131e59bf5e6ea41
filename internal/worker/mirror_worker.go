// Package worker keeps the spreadsheet mirror in step with the store.
package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"festival/internal/amqp"
	"festival/internal/core"
	"festival/internal/log"
	"festival/internal/sheets"
)

// Source is the read side of the store the mirror copies from.
type Source interface {
	ListDonors(ctx context.Context, f core.DonorFilter) ([]core.Donor, error)
	ListExpenses(ctx context.Context) ([]core.Expense, error)
}

// Consumer delivers change events until ctx is cancelled.
type Consumer interface {
	Consume(ctx context.Context, handler func(context.Context, *amqp.RecordChanged) error) error
}

// MirrorWorker rewrites a table of the mirror whenever a record of that kind
// changes, and both tables at startup and on every interval tick.
type MirrorWorker struct {
	source   Source
	writer   sheets.MirrorWriter
	interval time.Duration
	logger   *log.Logger

	// one mirror of a table at a time
	donorMu   sync.Mutex
	expenseMu sync.Mutex
}

func NewMirrorWorker(source Source, writer sheets.MirrorWriter, interval time.Duration, logger *log.Logger) *MirrorWorker {
	if logger == nil {
		logger = log.Discard()
	}
	return &MirrorWorker{
		source:   source,
		writer:   writer,
		interval: interval,
		logger:   logger.WithComponent(log.ComponentWorker),
	}
}

// HandleRecordChanged mirrors the table named by msg. Unknown kinds are
// logged and acknowledged so they do not loop through the queue.
func (w *MirrorWorker) HandleRecordChanged(ctx context.Context, msg *amqp.RecordChanged) error {
	w.logger.InfoContext(ctx, "Processing record change",
		log.FieldKind, msg.Kind, "op", msg.Op, log.FieldRecordID, msg.ID)

	switch msg.Kind {
	case core.KindDonor:
		return w.MirrorDonors(ctx)
	case core.KindExpense:
		return w.MirrorExpenses(ctx)
	default:
		w.logger.WarnContext(ctx, "Ignoring change of unknown kind", log.FieldKind, msg.Kind)
		return nil
	}
}

func (w *MirrorWorker) MirrorDonors(ctx context.Context) error {
	w.donorMu.Lock()
	defer w.donorMu.Unlock()

	donors, err := w.source.ListDonors(ctx, core.DonorFilter{})
	if err != nil {
		return fmt.Errorf("list donors: %w", err)
	}
	if err := w.writer.WriteDonors(ctx, donors); err != nil {
		return fmt.Errorf("mirror donors: %w", err)
	}
	return nil
}

func (w *MirrorWorker) MirrorExpenses(ctx context.Context) error {
	w.expenseMu.Lock()
	defer w.expenseMu.Unlock()

	expenses, err := w.source.ListExpenses(ctx)
	if err != nil {
		return fmt.Errorf("list expenses: %w", err)
	}
	if err := w.writer.WriteExpenses(ctx, expenses); err != nil {
		return fmt.Errorf("mirror expenses: %w", err)
	}
	return nil
}

// MirrorAll mirrors both tables concurrently.
func (w *MirrorWorker) MirrorAll(ctx context.Context) error {
	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return w.MirrorDonors(gctx) })
	g.Go(func() error { return w.MirrorExpenses(gctx) })
	if err := g.Wait(); err != nil {
		return err
	}
	w.logger.InfoContext(ctx, "Full mirror completed", "duration_ms", time.Since(start).Milliseconds())
	return nil
}

// Run performs a startup mirror, then serves change events from consumer
// (when not nil) and periodic full mirrors until ctx is cancelled. Mirror
// failures are logged; only a consumer failure ends Run with an error.
func (w *MirrorWorker) Run(ctx context.Context, consumer Consumer) error {
	if err := w.MirrorAll(ctx); err != nil {
		w.logger.LogError(ctx, "Startup mirror failed", err, log.ComponentWorker, log.OpMirror, nil)
	}

	g, gctx := errgroup.WithContext(ctx)
	if consumer != nil {
		g.Go(func() error {
			return consumer.Consume(gctx, w.HandleRecordChanged)
		})
	}
	if w.interval > 0 {
		g.Go(func() error {
			w.periodic(gctx)
			return nil
		})
	}

	err := g.Wait()
	if err != nil && ctx.Err() == nil {
		return err
	}
	w.logger.Info("Mirror worker stopped")
	return nil
}

func (w *MirrorWorker) periodic(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.MirrorAll(ctx); err != nil && ctx.Err() == nil {
				w.logger.LogError(ctx, "Periodic mirror failed", err, log.ComponentWorker, log.OpMirror, nil)
			}
		}
	}
}
