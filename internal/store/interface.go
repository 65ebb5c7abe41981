package store

import "github.com/hance08/ledger/internal/model"

// Repository holds the ordered transactions of one session.
type Repository interface {
	Append(tx model.Transaction)
	Clear()
	All() []model.Transaction
	Len() int
}
