package prompts

import (
	"github.com/hance08/ledger/internal/model"
)

// PromptTransactionType asks for 1 (Income) or 2 (Expense)
func PromptTransactionType(p Prompter) (int, error) {
	var options []string
	for _, k := range model.Kinds() {
		options = append(options, k.String())
	}
	return p.Choose("Enter type:", options)
}

// PromptCategory lists the categories of kind and returns the typed number
func PromptCategory(p Prompter, kind model.Kind) (int, error) {
	var options []string
	for _, c := range kind.Categories() {
		options = append(options, string(c))
	}
	return p.Choose("Choose category:", options)
}

func PromptAmount(p Prompter) (string, error) {
	return p.Text("Enter amount:")
}

// PromptTransactionDate asks for a date in YYYY-MM-DD format
func PromptTransactionDate(p Prompter) (string, error) {
	return p.Text("Enter date (YYYY-MM-DD):")
}

func PromptDescription(p Prompter) (string, error) {
	return p.Text("Enter description:")
}

func PromptYear(p Prompter) (int, error) {
	return p.Number("Enter year (e.g., 2025):")
}

func PromptMonth(p Prompter) (int, error) {
	return p.Number("Enter month (1-12):")
}
