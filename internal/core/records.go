package core

import "time"

// Record kinds, used in events and log fields.
const (
	KindDonor   = "donor"
	KindExpense = "expense"
)

// Donor is a single contribution to the festival fund.
type Donor struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Contact        *string   `json:"contact"`
	DonationAmount Money     `json:"donation_amount"`
	Date           time.Time `json:"date"`
}

// Expense is a single festival expenditure.
type Expense struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	Amount      Money     `json:"amount"`
	Date        time.Time `json:"date"`
}

// DonorFields are the mutable fields of a donor, already validated.
type DonorFields struct {
	Name    string
	Contact *string
	Amount  Money
}

// ExpenseFields are the mutable fields of an expense, already validated.
type ExpenseFields struct {
	Description string
	Amount      Money
}

// ContactOrEmpty dereferences the optional contact.
func (d Donor) ContactOrEmpty() string {
	if d.Contact == nil {
		return ""
	}
	return *d.Contact
}
