package services

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"festival/internal/core"
)

// Client-facing validation messages.
const (
	MsgDonorRequired    = "Name and donation amount are required"
	MsgDonationPositive = "Donation amount must be a positive number"
	MsgExpenseRequired  = "Description and amount are required"
	MsgAmountPositive   = "Amount must be a positive number"
)

var validate = validator.New()

// DonorInput is a donor write as received from a client. Absent values are
// empty strings; Amount is the raw text of the submitted number.
type DonorInput struct {
	Name    string `validate:"required"`
	Contact *string
	Amount  string `validate:"required"`
}

// ExpenseInput is an expense write as received from a client.
type ExpenseInput struct {
	Description string `validate:"required"`
	Amount      string `validate:"required"`
}

// Fields checks presence, then the amount, and returns the values to store.
func (in DonorInput) Fields() (core.DonorFields, error) {
	if err := validate.Struct(in); err != nil {
		return core.DonorFields{}, requiredError(err, MsgDonorRequired)
	}
	amount, err := positiveAmount(in.Amount, "donation_amount", MsgDonationPositive)
	if err != nil {
		return core.DonorFields{}, err
	}
	return core.DonorFields{Name: in.Name, Contact: in.Contact, Amount: amount}, nil
}

func (in ExpenseInput) Fields() (core.ExpenseFields, error) {
	if err := validate.Struct(in); err != nil {
		return core.ExpenseFields{}, requiredError(err, MsgExpenseRequired)
	}
	amount, err := positiveAmount(in.Amount, "amount", MsgAmountPositive)
	if err != nil {
		return core.ExpenseFields{}, err
	}
	return core.ExpenseFields{Description: in.Description, Amount: amount}, nil
}

func requiredError(err error, msg string) error {
	field := ""
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		field = verrs[0].Field()
	}
	return &core.ValidationError{Field: field, Message: msg}
}

// positiveAmount parses raw and requires 0 < amount <= core.MaxCents after
// rounding to two places.
func positiveAmount(raw, field, msg string) (core.Money, error) {
	m, err := core.ParseMoney(raw)
	if err != nil || !m.IsPositive() || m.Cents() > core.MaxCents {
		return core.Money{}, &core.ValidationError{Field: field, Message: msg}
	}
	return m, nil
}
