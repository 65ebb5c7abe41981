package views

import (
	"fmt"
	"io"

	"github.com/hance08/ledger/internal/service"
	"github.com/hance08/ledger/internal/ui"
	"github.com/hance08/ledger/internal/utils"
	"github.com/pterm/pterm"
)

// RenderMonthlySummary prints the totals of one month and, when anything
// matched, the per-category breakdown.
func RenderMonthlySummary(w io.Writer, s service.MonthlySummary, currency string) error {
	ui.PrintL2Title(w, "Summary for %d-%02d:", s.Year, s.Month)

	balance := utils.FormatMoney(currency, s.Balance)
	if s.Balance.IsNegative() {
		balance = pterm.Red(balance)
	} else {
		balance = pterm.Green(balance)
	}

	totals := pterm.TableData{
		{"Total Income:", utils.FormatMoney(currency, s.Income)},
		{"Total Expenses:", utils.FormatMoney(currency, s.Expense)},
		{"Balance:", balance},
	}
	if err := pterm.DefaultTable.WithWriter(w).WithData(totals).Render(); err != nil {
		return err
	}

	if len(s.ByCategory) == 0 {
		return nil
	}

	breakdown := pterm.TableData{
		{"Type", "Category", "Count", "Total"},
	}
	for _, ct := range s.ByCategory {
		breakdown = append(breakdown, []string{
			colorByKind(ct.Kind.String(), ct.Kind.String()),
			string(ct.Category),
			fmt.Sprintf("%d", ct.Count),
			utils.FormatMoney(currency, ct.Total),
		})
	}
	return pterm.DefaultTable.WithWriter(w).WithHasHeader().WithData(breakdown).Render()
}
