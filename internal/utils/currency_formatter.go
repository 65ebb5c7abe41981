package utils

import (
	"fmt"
	"strings"

	"github.com/hance08/ledger/internal/constants"
	"github.com/hance08/ledger/internal/model"
	"github.com/shopspring/decimal"
)

// FormatAmount renders an amount with two decimal places, e.g. "1500.00".
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(constants.AmountPlaces)
}

// FormatMoney prefixes the formatted amount with a currency symbol.
// Negative values keep the sign after the symbol: "$-23.50".
func FormatMoney(symbol string, amount decimal.Decimal) string {
	return symbol + FormatAmount(amount)
}

// ParseAmount parses a decimal amount such as "150", "150.5" or "-3.25".
// Surrounding whitespace is ignored; the sign is not checked.
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	s := strings.TrimSpace(amountStr)
	if s == "" {
		return decimal.Zero, fmt.Errorf("%w: empty", model.ErrInvalidAmount)
	}

	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", model.ErrInvalidAmount, amountStr)
	}
	return amount, nil
}
