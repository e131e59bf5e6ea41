package core

// Summary is the budget overview shown on the dashboard cards.
type Summary struct {
	TotalDonations  Money `json:"totalDonations"`
	EstimateBudget  Money `json:"estimateBudget"`
	RemainingBudget Money `json:"remainingBudget"`
}

// NewSummary derives the remaining budget, which may be negative once
// donations exceed the estimate.
func NewSummary(totalDonations, estimateBudget Money) Summary {
	return Summary{
		TotalDonations:  totalDonations,
		EstimateBudget:  estimateBudget,
		RemainingBudget: estimateBudget.Sub(totalDonations),
	}
}

// ExpenseReport is the spending overview with the full expense history.
type ExpenseReport struct {
	TotalExpenses    Money     `json:"totalExpenses"`
	TotalDonations   Money     `json:"totalDonations"`
	RemainingBalance Money     `json:"remainingBalance"`
	ExpenseHistory   []Expense `json:"expenseHistory"`
}

func NewExpenseReport(totalExpenses, totalDonations Money, history []Expense) ExpenseReport {
	if history == nil {
		history = []Expense{}
	}
	return ExpenseReport{
		TotalExpenses:    totalExpenses,
		TotalDonations:   totalDonations,
		RemainingBalance: totalDonations.Sub(totalExpenses),
		ExpenseHistory:   history,
	}
}

// Remaining is the cash still available from donations.
type Remaining struct {
	RemainingDonation Money `json:"remainingDonation"`
	TotalDonations    Money `json:"totalDonations"`
	TotalExpenses     Money `json:"totalExpenses"`
}

func NewRemaining(totalDonations, totalExpenses Money) Remaining {
	return Remaining{
		RemainingDonation: totalDonations.Sub(totalExpenses),
		TotalDonations:    totalDonations,
		TotalExpenses:     totalExpenses,
	}
}
