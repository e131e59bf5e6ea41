package sheets

import (
	"context"

	"festival/internal/core"
)

// MirrorWriter replaces the mirrored copy of each table with the given rows.
type MirrorWriter interface {
	WriteDonors(ctx context.Context, donors []core.Donor) error
	WriteExpenses(ctx context.Context, expenses []core.Expense) error
}
