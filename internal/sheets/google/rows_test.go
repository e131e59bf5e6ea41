package google

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"festival/internal/core"
)

func TestDonorRows(t *testing.T) {
	req := require.New(t)
	contact := "+91-9359774343"
	at := time.Date(2025, 8, 27, 18, 30, 0, 0, time.UTC)

	rows := DonorRows([]core.Donor{
		{ID: 1, Name: "Kundlik Bhikaji Patil", Contact: &contact, DonationAmount: core.MoneyFromCents(250000), Date: at},
		{ID: 2, Name: "Kunal Patil", DonationAmount: core.MoneyFromCents(252550), Date: at},
	})

	req.Len(rows, 4)
	req.Equal(donorHeader, rows[0])
	req.Equal([]any{int64(1), "2025-08-27 18:30", "Kundlik Bhikaji Patil", "+91-9359774343", 2500.0}, rows[1])
	req.Equal("", rows[2][3])
	req.Equal([]any{"", "", "Total", "", 5025.5}, rows[3])
}

func TestExpenseRows(t *testing.T) {
	req := require.New(t)

	rows := ExpenseRows(nil)
	req.Equal([][]any{expenseHeader, {"", "", "Total", 0.0}}, rows)

	rows = ExpenseRows([]core.Expense{
		{ID: 7, Description: "Sound System", Amount: core.MoneyFromCents(800000)},
	})
	req.Equal([]any{int64(7), "", "Sound System", 8000.0}, rows[1])
	req.Equal(8000.0, rows[2][3])
}

func TestCredentials(t *testing.T) {
	_, err := credentials(Config{})
	require.Error(t, err)

	b, err := credentials(Config{CredentialsJSON: `{"type":"service_account"}`})
	require.NoError(t, err)
	require.JSONEq(t, `{"type":"service_account"}`, string(b))

	_, err = credentials(Config{CredentialsFile: "/does/not/exist.json"})
	require.ErrorContains(t, err, "read service account file")

	require.Equal(t, DefaultDonorsSheet, orDefault(" ", DefaultDonorsSheet))
}
