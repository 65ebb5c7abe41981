package service

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hance08/ledger/internal/model"
	"github.com/hance08/ledger/internal/store"
	"github.com/hance08/ledger/internal/utils"
	"github.com/hance08/ledger/internal/validation"
)

type TransactionService struct {
	repo   store.Repository
	logger *log.Logger
}

func NewTransactionService(repo store.Repository, logger *log.Logger) *TransactionService {
	return &TransactionService{repo: repo, logger: logger}
}

// Add appends tx to the session after checking the kind/category pairing.
func (ts *TransactionService) Add(tx model.Transaction) error {
	if err := tx.Validate(); err != nil {
		return err
	}
	ts.repo.Append(tx)
	ts.logger.Debug("transaction added", "type", tx.Kind, "category", tx.Category, "amount", utils.FormatAmount(tx.Amount), "count", ts.repo.Len())
	return nil
}

// Create parses command line input and adds the resulting transaction.
func (ts *TransactionService) Create(input TransactionInput) (model.Transaction, error) {
	kind, err := validation.ParseKindName(input.Type)
	if err != nil {
		return model.Transaction{}, err
	}
	category, err := validation.ParseCategoryName(kind, input.Category)
	if err != nil {
		return model.Transaction{}, err
	}
	amount, err := utils.ParseAmount(input.Amount)
	if err != nil {
		return model.Transaction{}, err
	}
	date, err := model.ParseDate(input.Date)
	if err != nil {
		return model.Transaction{}, err
	}

	tx, err := model.NewTransaction(kind, category, amount, date, input.Description)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("failed to build transaction: %w", err)
	}
	if err := ts.Add(tx); err != nil {
		return model.Transaction{}, err
	}
	return tx, nil
}

// GetAll returns every transaction in insertion order.
func (ts *TransactionService) GetAll() []model.Transaction {
	return ts.repo.All()
}

// GetByMonth returns the transactions dated in year/month, in insertion order.
func (ts *TransactionService) GetByMonth(year, month int) []model.Transaction {
	var matched []model.Transaction
	for _, tx := range ts.repo.All() {
		if tx.InMonth(year, month) {
			matched = append(matched, tx)
		}
	}
	return matched
}

func (ts *TransactionService) Count() int {
	return ts.repo.Len()
}
