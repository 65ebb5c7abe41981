package constants

const (
	// Transaction kinds as they appear in the ledger file
	KindIncome  = "Income"
	KindExpense = "Expense"

	// Date Layout
	DateFormat = "2006-01-02"

	// Amounts are kept and printed with two decimal places
	AmountPlaces = 2
)
