package service

// TransactionInput is a transaction as typed on the command line, before
// any parsing.
type TransactionInput struct {
	Type        string
	Category    string
	Amount      string
	Date        string
	Description string
}
