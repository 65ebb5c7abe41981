package validation

import (
	"errors"
	"testing"

	"github.com/hance08/ledger/internal/model"
)

func TestValidateAmount(t *testing.T) {
	for _, ok := range []string{"1", "23.5", "-4", "0"} {
		if err := ValidateAmount(ok); err != nil {
			t.Fatalf("%q: expected ok, got %v", ok, err)
		}
	}
	for _, bad := range []any{"", "ten", 10} {
		if err := ValidateAmount(bad); err == nil {
			t.Fatalf("%v: expected error", bad)
		}
	}
}

func TestValidateDate(t *testing.T) {
	if err := ValidateDate("2025-01-16"); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if err := ValidateDate("15-01-2025"); !errors.Is(err, model.ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestValidateDescription(t *testing.T) {
	if err := ValidateDescription(""); err != nil {
		t.Fatalf("empty description is fine, got %v", err)
	}
	if err := ValidateDescription("Rent, January"); !errors.Is(err, ErrDescriptionComma) {
		t.Fatalf("expected ErrDescriptionComma, got %v", err)
	}
}

func TestParseKindName(t *testing.T) {
	cases := map[string]model.Kind{"income": model.Income, "EXPENSE": model.Expense, " Income ": model.Income}
	for in, want := range cases {
		got, err := ParseKindName(in)
		if err != nil || got != want {
			t.Fatalf("%q: expected %v, got %v (err=%v)", in, want, got, err)
		}
	}
	if _, err := ParseKindName("transfer"); !errors.Is(err, model.ErrInvalidKind) {
		t.Fatalf("expected ErrInvalidKind, got %v", err)
	}
}

func TestParseCategoryName(t *testing.T) {
	got, err := ParseCategoryName(model.Expense, "food")
	if err != nil || got != model.CategoryFood {
		t.Fatalf("expected Food, got %q (err=%v)", got, err)
	}
	if _, err := ParseCategoryName(model.Income, "food"); !errors.Is(err, model.ErrInvalidCategory) {
		t.Fatalf("expected ErrInvalidCategory, got %v", err)
	}
}
