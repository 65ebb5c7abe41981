package views

import (
	"fmt"
	"io"

	"github.com/hance08/ledger/internal/constants"
	"github.com/hance08/ledger/internal/model"
	"github.com/hance08/ledger/internal/utils"
	"github.com/pterm/pterm"
)

type TransactionListItem struct {
	Position    int
	Date        string
	Type        string
	Category    string
	Description string
	Amount      string
}

// NewTransactionListItems numbers transactions by their position, starting at 1.
func NewTransactionListItems(txs []model.Transaction, currency string) []TransactionListItem {
	items := make([]TransactionListItem, 0, len(txs))
	for i, tx := range txs {
		items = append(items, TransactionListItem{
			Position:    i + 1,
			Date:        model.FormatDate(tx.Date),
			Type:        tx.Kind.String(),
			Category:    string(tx.Category),
			Description: tx.Description,
			Amount:      utils.FormatMoney(currency, tx.Amount),
		})
	}
	return items
}

type TransactionListView struct {
	w io.Writer
}

func NewTransactionListView(w io.Writer) *TransactionListView {
	return &TransactionListView{w: w}
}

func (v *TransactionListView) Render(items []TransactionListItem, title string) error {
	if len(items) == 0 {
		pterm.Warning.WithWriter(v.w).Println("No transactions found")
		return nil
	}

	pterm.DefaultSection.WithWriter(v.w).Println(title)

	tableData := pterm.TableData{
		{"#", "Date", "Type", "Category", "Description", "Amount"},
	}

	for _, item := range items {
		tableData = append(tableData, []string{
			fmt.Sprintf("%d", item.Position),
			item.Date,
			colorByKind(item.Type, item.Type),
			colorByKind(item.Type, item.Category),
			item.Description,
			colorByKind(item.Type, item.Amount),
		})
	}

	if err := pterm.DefaultTable.WithWriter(v.w).WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}
	pterm.Info.WithWriter(v.w).Printfln("Total: %d transactions", len(items))
	return nil
}

func colorByKind(kind, text string) string {
	switch kind {
	case constants.KindExpense:
		return pterm.Red(text)
	case constants.KindIncome:
		return pterm.Green(text)
	default:
		return text
	}
}
