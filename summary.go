package moneybook

import (
	"github.com/hyejin/moneybook/date"
	"github.com/shopspring/decimal"
)

// This file holds the derived views over a collection. They are pure
// functions: nothing here is stored state.

// Summary holds the per-type totals of a collection.
type Summary struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Saving  decimal.Decimal
}

// Balance is income minus expense minus saving.
func (s Summary) Balance() decimal.Decimal {
	return s.Income.Sub(s.Expense).Sub(s.Saving)
}

// Summarize computes the per-type totals of the given transactions.
func Summarize(txs []Transaction) Summary {
	var s Summary
	for _, t := range txs {
		switch t.Type {
		case Income:
			s.Income = s.Income.Add(t.Amount)
		case Expense:
			s.Expense = s.Expense.Add(t.Amount)
		case Saving:
			s.Saving = s.Saving.Add(t.Amount)
		}
	}
	return s
}

// Between returns the transactions whose date falls within the range,
// boundaries included, preserving order.
func Between(txs []Transaction, r date.Range) []Transaction {
	var out []Transaction
	for _, t := range txs {
		if r.Contains(t.Date) {
			out = append(out, t)
		}
	}
	return out
}

// ByType returns the transactions of the given type, preserving order.
func ByType(txs []Transaction, ty Type) []Transaction {
	var out []Transaction
	for _, t := range txs {
		if t.Type == ty {
			out = append(out, t)
		}
	}
	return out
}

// ByClassification returns the transactions of the given
// classification, preserving order.
func ByClassification(txs []Transaction, c Classification) []Transaction {
	var out []Transaction
	for _, t := range txs {
		if t.Classification == c {
			out = append(out, t)
		}
	}
	return out
}
