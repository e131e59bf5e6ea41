//go:generate go run go.uber.org/mock/mockgen -source=ports.go -destination=../mocks/mock_storage.go -package=mocks

package storage

import (
	"context"

	"festival/internal/core"
)

// Ports implemented by every backend.
type (
	DonorStore interface {
		ListDonors(ctx context.Context, f core.DonorFilter) ([]core.Donor, error)
		GetDonor(ctx context.Context, id int64) (core.Donor, error)
		CreateDonor(ctx context.Context, in core.DonorFields) (core.Donor, error)
		// UpdateDonor replaces name, contact and amount. The date is kept.
		UpdateDonor(ctx context.Context, id int64, in core.DonorFields) (core.Donor, error)
		DeleteDonor(ctx context.Context, id int64) (core.Donor, error)
	}

	ExpenseStore interface {
		ListExpenses(ctx context.Context) ([]core.Expense, error)
		GetExpense(ctx context.Context, id int64) (core.Expense, error)
		CreateExpense(ctx context.Context, in core.ExpenseFields) (core.Expense, error)
		UpdateExpense(ctx context.Context, id int64, in core.ExpenseFields) (core.Expense, error)
		DeleteExpense(ctx context.Context, id int64) (core.Expense, error)
	}

	// AggregateReader is the read side used to compute totals.
	AggregateReader interface {
		SumDonations(ctx context.Context) (core.Money, error)
		SumExpenses(ctx context.Context) (core.Money, error)
		ListExpenses(ctx context.Context) ([]core.Expense, error)
	}

	// Repository is the full persistence surface handed to services.
	Repository interface {
		DonorStore
		ExpenseStore
		SumDonations(ctx context.Context) (core.Money, error)
		SumExpenses(ctx context.Context) (core.Money, error)
		// Snapshot runs fn against a consistent view of both tables.
		Snapshot(ctx context.Context, fn func(AggregateReader) error) error
		Ping(ctx context.Context) error
		Close() error
	}
)
