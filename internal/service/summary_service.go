package service

import (
	"github.com/hance08/ledger/internal/model"
	"github.com/hance08/ledger/internal/store"
	"github.com/shopspring/decimal"
)

// CategoryTotal is the sum of one category within a month.
type CategoryTotal struct {
	Kind     model.Kind
	Category model.Category
	Count    int
	Total    decimal.Decimal
}

// MonthlySummary aggregates the transactions dated in one year/month.
type MonthlySummary struct {
	Year       int
	Month      int
	Count      int
	Income     decimal.Decimal
	Expense    decimal.Decimal
	Balance    decimal.Decimal
	ByCategory []CategoryTotal
}

type SummaryService struct {
	repo store.Repository
}

func NewSummaryService(repo store.Repository) *SummaryService {
	return &SummaryService{repo: repo}
}

// Monthly summarises the session's transactions for year/month. The month
// is not range checked; a month outside 1-12 matches nothing.
func (ss *SummaryService) Monthly(year, month int) MonthlySummary {
	return Summarize(ss.repo.All(), year, month)
}

// Summarize sums amounts per kind for transactions dated in year/month.
// Anything that is not Income counts as expense.
func Summarize(txs []model.Transaction, year, month int) MonthlySummary {
	s := MonthlySummary{
		Year:    year,
		Month:   month,
		Income:  decimal.Zero,
		Expense: decimal.Zero,
	}

	type key struct {
		kind     model.Kind
		category model.Category
	}
	totals := make(map[key]*CategoryTotal)

	for _, tx := range txs {
		if !tx.InMonth(year, month) {
			continue
		}
		s.Count++
		if tx.Kind == model.Income {
			s.Income = s.Income.Add(tx.Amount)
		} else {
			s.Expense = s.Expense.Add(tx.Amount)
		}

		k := key{tx.Kind, tx.Category}
		ct, ok := totals[k]
		if !ok {
			ct = &CategoryTotal{Kind: tx.Kind, Category: tx.Category, Total: decimal.Zero}
			totals[k] = ct
		}
		ct.Count++
		ct.Total = ct.Total.Add(tx.Amount)
	}
	s.Balance = s.Income.Sub(s.Expense)

	// vocabulary order, income first
	for _, kind := range model.Kinds() {
		for _, cat := range kind.Categories() {
			if ct, ok := totals[key{kind, cat}]; ok {
				s.ByCategory = append(s.ByCategory, *ct)
			}
		}
	}

	return s
}
