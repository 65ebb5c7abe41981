package cmd

import (
	"fmt"
	"time"

	"github.com/hance08/ledger/internal/ui"
	"github.com/hance08/ledger/internal/ui/views"
	"github.com/spf13/cobra"
)

type summaryFlags struct {
	Year  int
	Month int
}

func NewSummaryCmd(cc *cliContext) *cobra.Command {
	now := time.Now()
	flags := &summaryFlags{}

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show the income, expenses and balance of a month",
		Example: `  # Current month
  ledger summary

  # January 2025
  ledger summary --year 2025 --month 1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := cc.loadLedger(ui.NewPrinter(cmd.OutOrStdout())); err != nil {
				return err
			}

			summary := cc.app.Service.Summary.Monthly(flags.Year, flags.Month)
			if err := views.RenderMonthlySummary(cmd.OutOrStdout(), summary, cc.cfg.Display.CurrencySymbol); err != nil {
				return fmt.Errorf("failed to render summary: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&flags.Year, "year", "y", now.Year(), "Year to summarise")
	cmd.Flags().IntVarP(&flags.Month, "month", "m", int(now.Month()), "Month to summarise (1-12)")

	return cmd
}
