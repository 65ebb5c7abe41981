package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hance08/ledger/internal/model"
	"github.com/hance08/ledger/internal/utils"
)

// ErrDescriptionComma marks a description that the ledger file can't
// store faithfully. It is a warning, the transaction is still valid.
var ErrDescriptionComma = errors.New("description contains a comma and will not survive a reload")

func asString(val any, field string) (string, error) {
	s, ok := val.(string)
	if !ok {
		return "", fmt.Errorf("%s must be a string", field)
	}
	return s, nil
}

// ValidateAmount accepts any decimal, including zero and negatives.
// Accepts any (for survey compatibility)
func ValidateAmount(val any) error {
	input, err := asString(val, "amount")
	if err != nil {
		return err
	}
	_, err = utils.ParseAmount(input)
	return err
}

// ValidateDate requires YYYY-MM-DD.
func ValidateDate(val any) error {
	input, err := asString(val, "date")
	if err != nil {
		return err
	}
	_, err = model.ParseDate(input)
	return err
}

func ValidateDescription(val any) error {
	input, err := asString(val, "description")
	if err != nil {
		return err
	}
	if strings.Contains(input, ",") {
		return ErrDescriptionComma
	}
	return nil
}

// ParseKindName resolves "income" or "expense" in any letter case.
func ParseKindName(name string) (model.Kind, error) {
	name = strings.TrimSpace(name)
	for _, k := range model.Kinds() {
		if strings.EqualFold(name, k.String()) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w '%s' (must be income or expense)", model.ErrInvalidKind, name)
}

// ParseCategoryName resolves a category of kind in any letter case.
func ParseCategoryName(kind model.Kind, name string) (model.Category, error) {
	name = strings.TrimSpace(name)
	cats := kind.Categories()
	for _, c := range cats {
		if strings.EqualFold(name, string(c)) {
			return c, nil
		}
	}

	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = string(c)
	}
	return "", fmt.Errorf("%w '%s' for %s (must be one of %s)", model.ErrInvalidCategory, name, kind, strings.Join(names, ", "))
}
