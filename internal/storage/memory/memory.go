// Package memory keeps donors and expenses in process memory. It backs local
// runs with DATA_BACKEND=memory and handler tests.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"festival/internal/core"
	"festival/internal/storage"
)

type Store struct {
	mu       sync.Mutex
	now      func() time.Time
	nextID   int64
	donors   []core.Donor
	expenses []core.Expense
}

var _ storage.Repository = (*Store)(nil)

func New() *Store {
	return &Store{now: time.Now}
}

// NewWithClock is New with a custom clock for record dates.
func NewWithClock(now func() time.Time) *Store {
	return &Store{now: now}
}

func (s *Store) ListDonors(_ context.Context, f core.DonorFilter) ([]core.Donor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []core.Donor{}
	for _, d := range s.donors {
		if f.Matches(d) {
			out = append(out, cloneDonor(d))
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return newer(out[i].Date, out[i].ID, out[j].Date, out[j].ID) })
	return out, nil
}

func (s *Store) GetDonor(_ context.Context, id int64) (core.Donor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.donorIndex(id)
	if i < 0 {
		return core.Donor{}, fmt.Errorf("get donor: %w", &core.NotFoundError{Entity: core.KindDonor, ID: id})
	}
	return cloneDonor(s.donors[i]), nil
}

func (s *Store) CreateDonor(_ context.Context, in core.DonorFields) (core.Donor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	d := core.Donor{
		ID:             s.nextID,
		Name:           in.Name,
		Contact:        cloneString(in.Contact),
		DonationAmount: in.Amount,
		Date:           s.now().UTC(),
	}
	s.donors = append(s.donors, d)
	return cloneDonor(d), nil
}

func (s *Store) UpdateDonor(_ context.Context, id int64, in core.DonorFields) (core.Donor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.donorIndex(id)
	if i < 0 {
		return core.Donor{}, fmt.Errorf("update donor: %w", &core.NotFoundError{Entity: core.KindDonor, ID: id})
	}
	s.donors[i].Name = in.Name
	s.donors[i].Contact = cloneString(in.Contact)
	s.donors[i].DonationAmount = in.Amount
	return cloneDonor(s.donors[i]), nil
}

func (s *Store) DeleteDonor(_ context.Context, id int64) (core.Donor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.donorIndex(id)
	if i < 0 {
		return core.Donor{}, fmt.Errorf("delete donor: %w", &core.NotFoundError{Entity: core.KindDonor, ID: id})
	}
	d := s.donors[i]
	s.donors = append(s.donors[:i], s.donors[i+1:]...)
	return d, nil
}

func (s *Store) ListExpenses(_ context.Context) ([]core.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sortedExpenses(s.expenses), nil
}

func (s *Store) GetExpense(_ context.Context, id int64) (core.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.expenseIndex(id)
	if i < 0 {
		return core.Expense{}, fmt.Errorf("get expense: %w", &core.NotFoundError{Entity: core.KindExpense, ID: id})
	}
	return s.expenses[i], nil
}

func (s *Store) CreateExpense(_ context.Context, in core.ExpenseFields) (core.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	e := core.Expense{
		ID:          s.nextID,
		Description: in.Description,
		Amount:      in.Amount,
		Date:        s.now().UTC(),
	}
	s.expenses = append(s.expenses, e)
	return e, nil
}

func (s *Store) UpdateExpense(_ context.Context, id int64, in core.ExpenseFields) (core.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.expenseIndex(id)
	if i < 0 {
		return core.Expense{}, fmt.Errorf("update expense: %w", &core.NotFoundError{Entity: core.KindExpense, ID: id})
	}
	s.expenses[i].Description = in.Description
	s.expenses[i].Amount = in.Amount
	return s.expenses[i], nil
}

func (s *Store) DeleteExpense(_ context.Context, id int64) (core.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.expenseIndex(id)
	if i < 0 {
		return core.Expense{}, fmt.Errorf("delete expense: %w", &core.NotFoundError{Entity: core.KindExpense, ID: id})
	}
	e := s.expenses[i]
	s.expenses = append(s.expenses[:i], s.expenses[i+1:]...)
	return e, nil
}

func (s *Store) SumDonations(_ context.Context) (core.Money, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sumDonors(s.donors), nil
}

func (s *Store) SumExpenses(_ context.Context) (core.Money, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sumExpenses(s.expenses), nil
}

// Snapshot hands fn a frozen copy of both collections.
func (s *Store) Snapshot(ctx context.Context, fn func(storage.AggregateReader) error) error {
	s.mu.Lock()
	view := &frozen{
		donations: sumDonors(s.donors),
		expenses:  sortedExpenses(s.expenses),
	}
	s.mu.Unlock()
	return fn(view)
}

func (s *Store) Ping(context.Context) error { return nil }
func (s *Store) Close() error               { return nil }

type frozen struct {
	donations core.Money
	expenses  []core.Expense
}

func (f *frozen) SumDonations(context.Context) (core.Money, error) { return f.donations, nil }
func (f *frozen) SumExpenses(context.Context) (core.Money, error)  { return sumExpenses(f.expenses), nil }
func (f *frozen) ListExpenses(context.Context) ([]core.Expense, error) {
	return append([]core.Expense{}, f.expenses...), nil
}

func (s *Store) donorIndex(id int64) int {
	for i, d := range s.donors {
		if d.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) expenseIndex(id int64) int {
	for i, e := range s.expenses {
		if e.ID == id {
			return i
		}
	}
	return -1
}

func sortedExpenses(in []core.Expense) []core.Expense {
	out := append([]core.Expense{}, in...)
	sort.SliceStable(out, func(i, j int) bool { return newer(out[i].Date, out[i].ID, out[j].Date, out[j].ID) })
	return out
}

func sumDonors(ds []core.Donor) core.Money {
	var total core.Money
	for _, d := range ds {
		total = total.Add(d.DonationAmount)
	}
	return total
}

func sumExpenses(es []core.Expense) core.Money {
	var total core.Money
	for _, e := range es {
		total = total.Add(e.Amount)
	}
	return total
}

// newer orders by date then id, both descending.
func newer(ai time.Time, aid int64, bi time.Time, bid int64) bool {
	if !ai.Equal(bi) {
		return ai.After(bi)
	}
	return aid > bid
}

func cloneDonor(d core.Donor) core.Donor {
	d.Contact = cloneString(d.Contact)
	return d
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
