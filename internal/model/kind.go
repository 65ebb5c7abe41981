package model

import (
	"fmt"
	"slices"

	"github.com/hance08/ledger/internal/constants"
)

// Kind tells income apart from expense. Each kind carries its own closed
// set of categories.
type Kind int

const (
	Income Kind = iota + 1
	Expense
)

type Category string

const (
	CategorySalary   Category = "Salary"
	CategoryBusiness Category = "Business"
	CategoryFood     Category = "Food"
	CategoryRent     Category = "Rent"
	CategoryTravel   Category = "Travel"
)

var vocabulary = map[Kind][]Category{
	Income:  {CategorySalary, CategoryBusiness},
	Expense: {CategoryFood, CategoryRent, CategoryTravel},
}

// Kinds lists the kinds in menu order.
func Kinds() []Kind {
	return []Kind{Income, Expense}
}

func (k Kind) String() string {
	switch k {
	case Income:
		return constants.KindIncome
	case Expense:
		return constants.KindExpense
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

func (k Kind) Valid() bool {
	return k == Income || k == Expense
}

// Categories returns the kind's categories in menu order.
func (k Kind) Categories() []Category {
	return slices.Clone(vocabulary[k])
}

func (k Kind) Allows(c Category) bool {
	return slices.Contains(vocabulary[k], c)
}

// CategoryAt resolves a 1-based menu choice into a category of this kind.
func (k Kind) CategoryAt(choice int) (Category, error) {
	cats := vocabulary[k]
	if choice < 1 || choice > len(cats) {
		return "", fmt.Errorf("%w: choice %d for %s", ErrInvalidCategory, choice, k)
	}
	return cats[choice-1], nil
}

// ParseCategory matches a category name exactly against this kind's list.
func (k Kind) ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !k.Allows(c) {
		return "", fmt.Errorf("%w: %q is not a %s category", ErrInvalidCategory, s, k)
	}
	return c, nil
}

// KindFromChoice resolves the menu choice 1 (Income) or 2 (Expense).
func KindFromChoice(choice int) (Kind, error) {
	k := Kind(choice)
	if !k.Valid() {
		return 0, fmt.Errorf("%w: choice %d", ErrInvalidKind, choice)
	}
	return k, nil
}

// ParseKind matches the exact names written to the ledger file.
func ParseKind(s string) (Kind, error) {
	switch s {
	case constants.KindIncome:
		return Income, nil
	case constants.KindExpense:
		return Expense, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidKind, s)
	}
}
