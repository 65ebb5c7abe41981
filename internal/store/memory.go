package store

import (
	"slices"

	"github.com/hance08/ledger/internal/model"
)

// MemoryStore keeps transactions in insertion order. It is not safe for
// concurrent use.
type MemoryStore struct {
	transactions []model.Transaction
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Append adds tx to the end. No validation or de-duplication is done here.
func (s *MemoryStore) Append(tx model.Transaction) {
	s.transactions = append(s.transactions, tx)
}

func (s *MemoryStore) Clear() {
	s.transactions = nil
}

// All returns a copy of the stored transactions in order.
func (s *MemoryStore) All() []model.Transaction {
	return slices.Clone(s.transactions)
}

func (s *MemoryStore) Len() int {
	return len(s.transactions)
}
