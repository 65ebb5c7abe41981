package cmd

import (
	"fmt"

	"github.com/hance08/ledger/internal/model"
	"github.com/hance08/ledger/internal/ui"
	"github.com/hance08/ledger/internal/ui/views"
	"github.com/spf13/cobra"
)

type listFlags struct {
	Year  int
	Month int
}

func NewListCmd(cc *cliContext) *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the transactions in the ledger file",
		Long: `List the transactions in the ledger file in the order they were recorded.

Use --year and --month together to show a single month.`,
		Example: `  # Everything
  ledger list

  # Only January 2025
  ledger list --year 2025 --month 1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			byMonth := cmd.Flags().Changed("year") || cmd.Flags().Changed("month")
			if byMonth && !(cmd.Flags().Changed("year") && cmd.Flags().Changed("month")) {
				return fmt.Errorf("--year and --month must be used together")
			}

			if _, err := cc.loadLedger(ui.NewPrinter(cmd.OutOrStdout())); err != nil {
				return err
			}

			svc := cc.app.Service
			var txs []model.Transaction
			title := fmt.Sprintf("All transactions in %s", svc.File.Path())
			if byMonth {
				txs = svc.Transaction.GetByMonth(flags.Year, flags.Month)
				title = fmt.Sprintf("Transactions for %d-%02d", flags.Year, flags.Month)
			} else {
				txs = svc.Transaction.GetAll()
			}

			items := views.NewTransactionListItems(txs, cc.cfg.Display.CurrencySymbol)
			return views.NewTransactionListView(cmd.OutOrStdout()).Render(items, title)
		},
	}

	cmd.Flags().IntVarP(&flags.Year, "year", "y", 0, "Only show this year (with --month)")
	cmd.Flags().IntVarP(&flags.Month, "month", "m", 0, "Only show this month (with --year)")

	return cmd
}
