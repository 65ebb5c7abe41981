package store

import (
	"testing"
	"time"

	"github.com/hance08/ledger/internal/model"
	"github.com/shopspring/decimal"
)

func tx(desc string) model.Transaction {
	return model.Transaction{
		Kind:        model.Expense,
		Category:    model.CategoryFood,
		Amount:      decimal.NewFromInt(1),
		Date:        time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		Description: desc,
	}
}

func TestMemoryStoreAppendKeepsOrder(t *testing.T) {
	s := NewMemoryStore()
	s.Append(tx("a"))
	s.Append(tx("b"))
	s.Append(tx("a"))

	all := s.All()
	if len(all) != 3 || s.Len() != 3 {
		t.Fatalf("expected 3 transactions, got %d (Len=%d)", len(all), s.Len())
	}
	for i, want := range []string{"a", "b", "a"} {
		if all[i].Description != want {
			t.Fatalf("position %d: expected %q, got %q", i, want, all[i].Description)
		}
	}
}

func TestMemoryStoreAllReturnsCopy(t *testing.T) {
	s := NewMemoryStore()
	s.Append(tx("a"))

	all := s.All()
	all[0].Description = "changed"
	if s.All()[0].Description != "a" {
		t.Fatalf("store was mutated through All()")
	}
}

func TestMemoryStoreClear(t *testing.T) {
	s := NewMemoryStore()
	s.Append(tx("a"))
	s.Clear()
	if s.Len() != 0 || len(s.All()) != 0 {
		t.Fatalf("expected empty store after Clear")
	}
	s.Append(tx("b"))
	if s.Len() != 1 {
		t.Fatalf("expected store to be usable after Clear")
	}
}
