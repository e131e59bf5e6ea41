package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"festival/internal/auth"
	"festival/internal/config"
	"festival/internal/core"
	"festival/internal/services"
	"festival/internal/storage"
	"festival/internal/storage/memory"
)

func TestLoadSeed_BuiltIn(t *testing.T) {
	req := require.New(t)
	data, err := loadSeed("")
	req.NoError(err)
	req.Len(data.Donors, 8)
	req.Len(data.Expenses, 5)
	req.Equal("Kundlik Bhikaji Patil", data.Donors[0].Name)
	req.Equal("Food & Prasad", data.Expenses[2].Description)
}

func TestLoadSeed_File(t *testing.T) {
	req := require.New(t)
	path := filepath.Join(t.TempDir(), "seed.toml")
	req.NoError(os.WriteFile(path, []byte(`
[[donors]]
name = "Asha"
amount = "101"
`), 0o600))

	data, err := loadSeed(path)
	req.NoError(err)
	req.Len(data.Donors, 1)
	req.Empty(data.Expenses)

	_, err = loadSeed(filepath.Join(t.TempDir(), "missing.toml"))
	req.Error(err)
}

func TestSeedStore(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	store := memory.New()
	data, err := loadSeed("")
	req.NoError(err)

	donors, expenses, err := seedStore(ctx, store, data)
	req.NoError(err)
	req.Equal(8, donors)
	req.Equal(5, expenses)

	donated, err := store.SumDonations(ctx)
	req.NoError(err)
	req.Equal(int64(2010000), donated.Cents())

	// second run leaves populated tables alone
	donors, expenses, err = seedStore(ctx, store, data)
	req.NoError(err)
	req.Zero(donors)
	req.Zero(expenses)

	all, err := store.ListDonors(ctx, core.DonorFilter{})
	req.NoError(err)
	req.Len(all, 8)
}

func TestSeedStore_RejectsInvalidRecords(t *testing.T) {
	tests := []struct {
		name string
		data seedData
		want string
	}{
		{"non-numeric expense", seedData{Expenses: []seedExpense{{Description: "Lights", Amount: "lots"}}}, `expense "Lights"`},
		{"zero expense", seedData{Expenses: []seedExpense{{Description: "Lights", Amount: "0"}}}, services.MsgAmountPositive},
		{"negative donation", seedData{Donors: []seedDonor{{Name: "Bhau", Amount: "-5"}}}, services.MsgDonationPositive},
		{"donation over the cap", seedData{Donors: []seedDonor{{Name: "Bhau", Amount: "100000000"}}}, services.MsgDonationPositive},
		{"missing description", seedData{Expenses: []seedExpense{{Amount: "10"}}}, services.MsgExpenseRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			store := memory.New()
			_, _, err := seedStore(context.Background(), store, tt.data)
			req.ErrorContains(err, tt.want)
			_, ok := core.IsValidation(err)
			req.True(ok)

			donated, err := store.SumDonations(context.Background())
			req.NoError(err)
			req.True(donated.IsZero())
			spent, err := store.SumExpenses(context.Background())
			req.NoError(err)
			req.True(spent.IsZero())
		})
	}
}

func TestPrintSummary(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	store := memory.New()
	data, err := loadSeed("")
	req.NoError(err)
	_, _, err = seedStore(ctx, store, data)
	req.NoError(err)

	var out bytes.Buffer
	agg := services.NewAggregationService(store, core.MoneyFromCents(5000000))
	req.NoError(printSummary(ctx, &out, agg))

	text := out.String()
	req.Contains(text, "20100.00")
	req.Contains(text, "29900.00")
	req.Contains(text, "43000.00")
	req.Contains(text, "-22900.00")
}

func TestHashPasswordCommand(t *testing.T) {
	req := require.New(t)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetIn(strings.NewReader("ganesha\n"))
	rootCmd.SetArgs([]string{"hash-password"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetArgs(nil)
	})

	req.NoError(rootCmd.Execute())
	ok, err := auth.ComparePassword("ganesha", strings.TrimSpace(out.String()))
	req.NoError(err)
	req.True(ok)
}

func TestDialectFor(t *testing.T) {
	req := require.New(t)

	dialect, dsn, err := dialectFor(&config.Config{DataBackend: "sqlite", DatabaseURL: "file:festival.db"})
	req.NoError(err)
	req.Equal(storage.SQLite, dialect)
	req.Equal("file:festival.db", dsn)

	_, _, err = dialectFor(&config.Config{DataBackend: "memory"})
	req.ErrorContains(err, "sqlite or postgres")
}
