package services

import (
	"context"
	"fmt"

	"festival/internal/core"
	"festival/internal/storage"
)

// AggregationService derives totals from the stores on every call.
//
// Each total is its own query. Unless the source was built with snapshots
// enabled, a write landing between two queries can make one response mix
// pre- and post-write totals.
type AggregationService struct {
	source SnapshotSource
	budget core.Money
}

func NewAggregationService(source SnapshotSource, budget core.Money) *AggregationService {
	return &AggregationService{source: source, budget: budget}
}

// Budget returns the configured estimate budget.
func (s *AggregationService) Budget() core.Money {
	return s.budget
}

func (s *AggregationService) Summary(ctx context.Context) (core.Summary, error) {
	var out core.Summary
	err := s.source.Snapshot(ctx, func(r storage.AggregateReader) error {
		donations, err := r.SumDonations(ctx)
		if err != nil {
			return err
		}
		out = core.NewSummary(donations, s.budget)
		return nil
	})
	if err != nil {
		return core.Summary{}, fmt.Errorf("summary: %w", err)
	}
	return out, nil
}

func (s *AggregationService) ExpenseReport(ctx context.Context) (core.ExpenseReport, error) {
	var out core.ExpenseReport
	err := s.source.Snapshot(ctx, func(r storage.AggregateReader) error {
		expenses, err := r.SumExpenses(ctx)
		if err != nil {
			return err
		}
		donations, err := r.SumDonations(ctx)
		if err != nil {
			return err
		}
		history, err := r.ListExpenses(ctx)
		if err != nil {
			return err
		}
		out = core.NewExpenseReport(expenses, donations, history)
		return nil
	})
	if err != nil {
		return core.ExpenseReport{}, fmt.Errorf("expense report: %w", err)
	}
	return out, nil
}

func (s *AggregationService) Remaining(ctx context.Context) (core.Remaining, error) {
	var out core.Remaining
	err := s.source.Snapshot(ctx, func(r storage.AggregateReader) error {
		donations, err := r.SumDonations(ctx)
		if err != nil {
			return err
		}
		expenses, err := r.SumExpenses(ctx)
		if err != nil {
			return err
		}
		out = core.NewRemaining(donations, expenses)
		return nil
	})
	if err != nil {
		return core.Remaining{}, fmt.Errorf("remaining: %w", err)
	}
	return out, nil
}
