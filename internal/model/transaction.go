package model

import (
	"fmt"
	"time"

	"github.com/hance08/ledger/internal/constants"
	"github.com/shopspring/decimal"
)

// Transaction is a single income or expense record. It has no identity of
// its own; its position in the store is all that distinguishes it.
type Transaction struct {
	Kind        Kind
	Category    Category
	Amount      decimal.Decimal
	Date        time.Time
	Description string
}

// NewTransaction builds a transaction after checking that the category
// belongs to the kind. The amount is rounded to two decimal places.
func NewTransaction(kind Kind, category Category, amount decimal.Decimal, date time.Time, description string) (Transaction, error) {
	tx := Transaction{
		Kind:        kind,
		Category:    category,
		Amount:      amount.Round(constants.AmountPlaces),
		Date:        date,
		Description: description,
	}
	if err := tx.Validate(); err != nil {
		return Transaction{}, err
	}
	return tx, nil
}

// Validate checks the kind/category pairing and the date.
// Negative and zero amounts are allowed.
func (t Transaction) Validate() error {
	if !t.Kind.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidKind, t.Kind)
	}
	if !t.Kind.Allows(t.Category) {
		return fmt.Errorf("%w: %q is not a %s category", ErrInvalidCategory, t.Category, t.Kind)
	}
	if t.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidDate)
	}
	return nil
}

// InMonth reports whether the transaction date falls in the given year and month.
func (t Transaction) InMonth(year, month int) bool {
	return t.Date.Year() == year && int(t.Date.Month()) == month
}

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(constants.DateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return d, nil
}

// FormatDate renders a date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(constants.DateFormat)
}
