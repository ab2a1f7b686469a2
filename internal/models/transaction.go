// Package models provides the data structures used throughout the application.
package models

import (
	"github.com/shopspring/decimal"
)

// Transaction is a single income or expense entry of a portfolio.
// It is immutable once created; the only way to change it is to delete it.
type Transaction struct {
	ID          string          `json:"id" csv:"ID"`
	Type        TransactionType `json:"type" csv:"Type"`
	Amount      decimal.Decimal `json:"amount" csv:"Amount"`
	Category    string          `json:"category" csv:"Category"`
	Description string          `json:"description,omitempty" csv:"Description"`
	Date        string          `json:"date" csv:"Date"` // calendar day, YYYY-MM-DD
}

// IsIncome returns true if the transaction brings money in
func (t Transaction) IsIncome() bool {
	return t.Type == TransactionTypeIncome
}

// IsExpense returns true if the transaction takes money out
func (t Transaction) IsExpense() bool {
	return t.Type == TransactionTypeExpense
}

// MonthKey returns the YYYY-MM prefix of the transaction date.
func (t Transaction) MonthKey() string {
	if len(t.Date) < 7 {
		return ""
	}
	return t.Date[:7]
}

// Label returns the description, or the category when the description is empty.
func (t Transaction) Label() string {
	if t.Description != "" {
		return t.Description
	}
	return t.Category
}

// SignedAmount returns the amount with a negative sign for expenses.
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.IsExpense() {
		return t.Amount.Neg()
	}
	return t.Amount
}

// IsValidTransactionType reports whether s names a known transaction type.
func IsValidTransactionType(s string) bool {
	switch TransactionType(s) {
	case TransactionTypeIncome, TransactionTypeExpense:
		return true
	default:
		return false
	}
}
