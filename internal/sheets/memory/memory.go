// Package memory is a MirrorWriter that keeps the last written tables in
// process. The worker uses it for dry runs and tests.
package memory

import (
	"context"
	"slices"
	"sync"

	"festival/internal/core"
	"festival/internal/sheets"
)

var _ sheets.MirrorWriter = (*Store)(nil)

type Store struct {
	mu       sync.Mutex
	donors   []core.Donor
	expenses []core.Expense
	writes   int
}

func New() *Store {
	return &Store{}
}

func (s *Store) WriteDonors(_ context.Context, donors []core.Donor) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.donors = slices.Clone(donors)
	s.writes++
	return nil
}

func (s *Store) WriteExpenses(_ context.Context, expenses []core.Expense) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expenses = slices.Clone(expenses)
	s.writes++
	return nil
}

// Donors returns the last mirrored donor table.
func (s *Store) Donors() []core.Donor {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.donors)
}

// Expenses returns the last mirrored expense table.
func (s *Store) Expenses() []core.Expense {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.expenses)
}

// Writes counts table writes since creation.
func (s *Store) Writes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}
