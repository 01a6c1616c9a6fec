package cmd

import (
	"fmt"

	"github.com/bnema/ledgerline/internal/adapters/render/summary"
	"github.com/bnema/ledgerline/internal/application"
	"github.com/bnema/ledgerline/internal/domain"
	"github.com/spf13/cobra"
)

func newCreditCmd() *cobra.Command {
	defaults := domain.DefaultSessionDefaults()

	var balance, saved, spent, goal float64

	cmd := &cobra.Command{
		Use:   "credit",
		Short: "Score a ledger the way the credit card in the story does",
		RunE: func(cmd *cobra.Command, _ []string) error {
			report := application.EvaluateCredit(balance, saved, spent, goal)
			_, err := fmt.Fprintln(cmd.OutOrStdout(), summary.RenderCreditReport(report))
			return err
		},
	}

	cmd.Flags().Float64Var(&balance, "balance", defaults.Balance, "Checking balance")
	cmd.Flags().Float64Var(&saved, "saved", defaults.TotalSaved, "Total saved")
	cmd.Flags().Float64Var(&spent, "spent", defaults.TotalSpent, "Total spent")
	cmd.Flags().Float64Var(&goal, "goal", defaults.GoalAmount, "Savings goal")

	return cmd
}
