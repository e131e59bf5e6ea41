package core

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDonorFilter_Matches(t *testing.T) {
	req := require.New(t)

	day := time.Date(2025, 8, 20, 10, 0, 0, 0, time.UTC)
	d := Donor{ID: 1, Name: "Rajesh Kumar", DonationAmount: MoneyFromCents(250000), Date: day}

	name := "kum"
	other := "sharma"
	lo := MoneyFromCents(100000)
	hi := MoneyFromCents(300000)
	exact := MoneyFromCents(250000)
	before := day.Add(-time.Hour)
	after := day.Add(time.Hour)

	req.True(DonorFilter{}.Matches(d))
	req.True(DonorFilter{}.IsEmpty())
	req.True(DonorFilter{Name: &name}.Matches(d))
	req.False(DonorFilter{Name: &other}.Matches(d))
	req.True(DonorFilter{MinAmount: &lo, MaxAmount: &hi}.Matches(d))
	req.True(DonorFilter{MinAmount: &exact, MaxAmount: &exact}.Matches(d), "bounds are inclusive")
	req.False(DonorFilter{MaxAmount: &lo}.Matches(d))
	req.True(DonorFilter{DateFrom: &day, DateTo: &day}.Matches(d))
	req.False(DonorFilter{DateFrom: &after}.Matches(d))
	req.False(DonorFilter{DateTo: &before}.Matches(d))
	req.False(DonorFilter{Name: &name, MaxAmount: &lo}.Matches(d), "criteria are combined with AND")
}

func TestAggregates(t *testing.T) {
	req := require.New(t)

	donations := MoneyFromCents(250000).Add(MoneyFromCents(252500))
	expenses := MoneyFromCents(1500000)

	s := NewSummary(donations, MoneyFromCents(10000000))
	req.Equal("5025.00", s.TotalDonations.String())
	req.Equal("94975.00", s.RemainingBudget.String())

	r := NewExpenseReport(expenses, donations, nil)
	req.Equal("-9975.00", r.RemainingBalance.String())
	req.NotNil(r.ExpenseHistory)

	rem := NewRemaining(donations, expenses)
	req.Equal(r.RemainingBalance.String(), rem.RemainingDonation.String())
}

func TestErrors(t *testing.T) {
	req := require.New(t)

	err := fmt.Errorf("update donor: %w", &NotFoundError{Entity: KindDonor, ID: 42})
	req.ErrorIs(err, ErrNotFound)
	req.Equal("update donor: donor 42 not found", err.Error())

	verr := fmt.Errorf("create: %w", &ValidationError{Field: "amount", Message: "Amount must be a positive number"})
	ve, ok := IsValidation(verr)
	req.True(ok)
	req.Equal("amount", ve.Field)

	_, ok = IsValidation(errors.New("boom"))
	req.False(ok)
}
