package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"festival/internal/services"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print donation, expense and budget totals",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		repo, cfg, closeFn, err := openRepository(ctx)
		if err != nil {
			return err
		}
		defer closeFn()
		return printSummary(ctx, cmd.OutOrStdout(), services.NewAggregationService(repo, cfg.Budget()))
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func printSummary(ctx context.Context, out io.Writer, agg *services.AggregationService) error {
	summary, err := agg.Summary(ctx)
	if err != nil {
		return err
	}
	report, err := agg.ExpenseReport(ctx)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	rows := [][2]string{
		{"Total donations", summary.TotalDonations.String()},
		{"Estimate budget", summary.EstimateBudget.String()},
		{"Remaining budget", summary.RemainingBudget.String()},
		{"Total expenses", report.TotalExpenses.String()},
		{"Remaining balance", report.RemainingBalance.String()},
		{"Expenses recorded", fmt.Sprint(len(report.ExpenseHistory))},
	}
	for _, row := range rows {
		fmt.Fprintf(tw, "%s\t%s\t\n", row[0], row[1])
	}
	return tw.Flush()
}
