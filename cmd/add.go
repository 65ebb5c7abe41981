package cmd

import (
	"fmt"
	"time"

	"github.com/hance08/ledger/internal/constants"
	"github.com/hance08/ledger/internal/service"
	"github.com/hance08/ledger/internal/ui"
	"github.com/hance08/ledger/internal/ui/views"
	"github.com/hance08/ledger/internal/validation"
	"github.com/spf13/cobra"
)

type addFlags struct {
	Type     string
	Category string
	Amount   string
	Date     string
	Desc     string
}

type addRunner struct {
	cc    *cliContext
	flags *addFlags
	cmd   *cobra.Command
}

func NewAddCmd(cc *cliContext) *cobra.Command {
	flags := &addFlags{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a transaction to the ledger file",
		Long: `Add one transaction to the ledger file without the interactive menu.

	The ledger file is loaded, the transaction appended and the file saved.

	Examples:
	ledger add --type expense --category food --amount 23.50 --desc Groceries
	ledger add --type income --category salary --amount 1500 --date 2025-01-15`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &addRunner{
				cc:    cc,
				flags: flags,
				cmd:   cmd,
			}
			return runner.Run()
		},
	}
	cmd.Flags().StringVarP(&flags.Type, "type", "t", "", "Transaction type: income or expense")
	cmd.Flags().StringVarP(&flags.Category, "category", "g", "", "Category (Salary, Business, Food, Rent, Travel)")
	cmd.Flags().StringVarP(&flags.Amount, "amount", "a", "", "Transaction amount (e.g., 150 or 150.50)")
	cmd.Flags().StringVar(&flags.Date, "date", "", "Transaction date (YYYY-MM-DD), default is today")
	cmd.Flags().StringVarP(&flags.Desc, "desc", "d", "", "Transaction description")

	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func (r *addRunner) Run() error {
	svc := r.cc.app.Service
	printer := ui.NewPrinter(r.cmd.OutOrStdout())

	if r.flags.Date == "" {
		r.flags.Date = time.Now().Format(constants.DateFormat)
	}
	for _, check := range []struct {
		validate func(any) error
		value    string
	}{
		{validation.ValidateAmount, r.flags.Amount},
		{validation.ValidateDate, r.flags.Date},
		{validation.ValidateDescription, r.flags.Desc},
	} {
		if err := check.validate(check.value); err != nil {
			return err
		}
	}

	report, err := r.cc.loadLedger(printer)
	if err != nil {
		return err
	}
	// saving now would drop the unreadable lines from the file
	if len(report.Skipped) > 0 {
		return fmt.Errorf("%s has %d unreadable lines, fix them before adding", svc.File.Path(), len(report.Skipped))
	}

	tx, err := svc.Transaction.Create(service.TransactionInput{
		Type:        r.flags.Type,
		Category:    r.flags.Category,
		Amount:      r.flags.Amount,
		Date:        r.flags.Date,
		Description: r.flags.Desc,
	})
	if err != nil {
		return err
	}

	if err := svc.File.Save(); err != nil {
		return fmt.Errorf("transaction not saved: %w", err)
	}

	printer.Success("Transaction added!")
	items := views.NewTransactionListItems(svc.Transaction.GetAll(), svc.Config.Display.CurrencySymbol)
	return views.NewTransactionListView(r.cmd.OutOrStdout()).Render(items[len(items)-1:], fmt.Sprintf("%s %s", tx.Kind, tx.Category))
}
