package google

import (
	"time"

	"festival/internal/core"
)

var (
	donorHeader   = []any{"ID", "Date", "Name", "Contact", "Donation amount"}
	expenseHeader = []any{"ID", "Date", "Description", "Amount"}
)

const sheetDateLayout = "2006-01-02 15:04"

// DonorRows lays out donors as a header, one row per donor and a total row.
// Amounts are written as numbers so the sheet can sum them.
func DonorRows(donors []core.Donor) [][]any {
	rows := make([][]any, 0, len(donors)+2)
	rows = append(rows, donorHeader)
	var total core.Money
	for _, d := range donors {
		rows = append(rows, []any{d.ID, formatDate(d.Date), d.Name, d.ContactOrEmpty(), d.DonationAmount.Float64()})
		total = total.Add(d.DonationAmount)
	}
	return append(rows, []any{"", "", "Total", "", total.Float64()})
}

// ExpenseRows lays out expenses the same way as DonorRows.
func ExpenseRows(expenses []core.Expense) [][]any {
	rows := make([][]any, 0, len(expenses)+2)
	rows = append(rows, expenseHeader)
	var total core.Money
	for _, e := range expenses {
		rows = append(rows, []any{e.ID, formatDate(e.Date), e.Description, e.Amount.Float64()})
		total = total.Add(e.Amount)
	}
	return append(rows, []any{"", "", "Total", total.Float64()})
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(sheetDateLayout)
}
