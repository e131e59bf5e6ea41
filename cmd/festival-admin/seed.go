package main

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"festival/internal/core"
	"festival/internal/services"
	"festival/internal/storage"
)

//go:embed seed.toml
var defaultSeed []byte

var flagSeedFile string

type seedDonor struct {
	Name    string `toml:"name"`
	Contact string `toml:"contact"`
	Amount  string `toml:"amount"`
}

type seedExpense struct {
	Description string `toml:"description"`
	Amount      string `toml:"amount"`
}

type seedData struct {
	Donors   []seedDonor   `toml:"donors"`
	Expenses []seedExpense `toml:"expenses"`
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load sample donors and expenses into empty tables",
	RunE: func(cmd *cobra.Command, _ []string) error {
		data, err := loadSeed(flagSeedFile)
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		repo, _, closeFn, err := openRepository(ctx)
		if err != nil {
			return err
		}
		defer closeFn()

		donors, expenses, err := seedStore(ctx, repo, data)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "  Seeded %d donors and %d expenses\n", donors, expenses)
		return nil
	},
}

func init() {
	seedCmd.Flags().StringVarP(&flagSeedFile, "file", "f", "", "TOML seed file (defaults to the built-in sample data)")
	rootCmd.AddCommand(seedCmd)
}

func loadSeed(path string) (seedData, error) {
	var data seedData
	if path == "" {
		if _, err := toml.Decode(string(defaultSeed), &data); err != nil {
			return data, fmt.Errorf("decode built-in seed: %w", err)
		}
		return data, nil
	}
	if _, err := toml.DecodeFile(path, &data); err != nil {
		return data, fmt.Errorf("decode seed file %s: %w", path, err)
	}
	return data, nil
}

// seedStore inserts data into each table that is still empty. Tables that
// already hold records are left untouched. Records go through the same
// validation as API writes.
func seedStore(ctx context.Context, repo storage.Repository, data seedData) (donors, expenses int, err error) {
	existingDonors, err := repo.ListDonors(ctx, core.DonorFilter{})
	if err != nil {
		return 0, 0, fmt.Errorf("list donors: %w", err)
	}
	if len(existingDonors) == 0 {
		for _, d := range data.Donors {
			in := services.DonorInput{Name: d.Name, Amount: d.Amount}
			if d.Contact != "" {
				contact := d.Contact
				in.Contact = &contact
			}
			fields, err := in.Fields()
			if err != nil {
				return donors, expenses, fmt.Errorf("donor %q: %w", d.Name, err)
			}
			if _, err := repo.CreateDonor(ctx, fields); err != nil {
				return donors, expenses, fmt.Errorf("create donor %q: %w", d.Name, err)
			}
			donors++
		}
	}

	existingExpenses, err := repo.ListExpenses(ctx)
	if err != nil {
		return donors, expenses, fmt.Errorf("list expenses: %w", err)
	}
	if len(existingExpenses) == 0 {
		for _, e := range data.Expenses {
			fields, err := services.ExpenseInput{Description: e.Description, Amount: e.Amount}.Fields()
			if err != nil {
				return donors, expenses, fmt.Errorf("expense %q: %w", e.Description, err)
			}
			if _, err := repo.CreateExpense(ctx, fields); err != nil {
				return donors, expenses, fmt.Errorf("create expense %q: %w", e.Description, err)
			}
			expenses++
		}
	}
	return donors, expenses, nil
}
