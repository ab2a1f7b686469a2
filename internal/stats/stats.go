// Package stats computes the read-side aggregates of a portfolio: totals,
// trailing monthly flow and the expense category breakdown. All sums are
// exact decimals; rounding is left to display.
package stats

import (
	"sort"
	"time"

	"fjacquet/financeos/internal/dateutils"
	"fjacquet/financeos/internal/models"

	"github.com/shopspring/decimal"
)

const (
	// FlowMonths is the number of calendar months covered by MonthlyFlow.
	FlowMonths = 6
	// TopCategories is the number of categories returned by CategoryBreakdown.
	TopCategories = 5
)

// Totals summarises a portfolio over its full history.
type Totals struct {
	Income    decimal.Decimal `json:"income" yaml:"income"`
	Expense   decimal.Decimal `json:"expense" yaml:"expense"`
	Balance   decimal.Decimal `json:"balance" yaml:"balance"`
	TotalDebt decimal.Decimal `json:"totalDebt" yaml:"total_debt"`
}

// MonthBucket is the income and expense of one calendar month.
type MonthBucket struct {
	Key     string          `json:"key" yaml:"key"`     // YYYY-MM
	Label   string          `json:"label" yaml:"label"` // short month name
	Income  decimal.Decimal `json:"income" yaml:"income"`
	Expense decimal.Decimal `json:"expense" yaml:"expense"`
}

// CategoryTotal is the summed expense of one category.
type CategoryTotal struct {
	Name  string          `json:"name" yaml:"name"`
	Value decimal.Decimal `json:"value" yaml:"value"`
}

// ComputeTotals sums income, expense and remaining debt.
func ComputeTotals(p models.Portfolio) Totals {
	t := Totals{Income: decimal.Zero, Expense: decimal.Zero, TotalDebt: decimal.Zero}
	for _, tx := range p.Transactions {
		switch tx.Type {
		case models.TransactionTypeIncome:
			t.Income = t.Income.Add(tx.Amount)
		case models.TransactionTypeExpense:
			t.Expense = t.Expense.Add(tx.Amount)
		}
	}
	for _, d := range p.Debts {
		t.TotalDebt = t.TotalDebt.Add(d.Remaining)
	}
	t.Balance = t.Income.Sub(t.Expense)
	return t
}

// MonthlyFlow buckets transactions into the FlowMonths calendar months ending
// with the month of now, oldest first. Every bucket is present even when
// empty; transactions outside the window are ignored.
func MonthlyFlow(p models.Portfolio, now time.Time) []MonthBucket {
	months := dateutils.TrailingMonths(now, FlowMonths)
	buckets := make([]MonthBucket, len(months))
	index := make(map[string]int, len(months))
	for i, m := range months {
		key := dateutils.MonthKey(m)
		buckets[i] = MonthBucket{
			Key:     key,
			Label:   dateutils.ShortMonth(m),
			Income:  decimal.Zero,
			Expense: decimal.Zero,
		}
		index[key] = i
	}

	for _, tx := range p.Transactions {
		i, ok := index[tx.MonthKey()]
		if !ok {
			continue
		}
		switch tx.Type {
		case models.TransactionTypeIncome:
			buckets[i].Income = buckets[i].Income.Add(tx.Amount)
		case models.TransactionTypeExpense:
			buckets[i].Expense = buckets[i].Expense.Add(tx.Amount)
		}
	}
	return buckets
}

// CategoryBreakdown sums expenses per category and returns the TopCategories
// largest, descending. Ties keep the order in which categories first appear.
func CategoryBreakdown(p models.Portfolio) []CategoryTotal {
	var totals []CategoryTotal
	index := make(map[string]int)
	for _, tx := range p.Transactions {
		if !tx.IsExpense() {
			continue
		}
		i, ok := index[tx.Category]
		if !ok {
			i = len(totals)
			index[tx.Category] = i
			totals = append(totals, CategoryTotal{Name: tx.Category, Value: decimal.Zero})
		}
		totals[i].Value = totals[i].Value.Add(tx.Amount)
	}

	sort.SliceStable(totals, func(a, b int) bool {
		return totals[a].Value.GreaterThan(totals[b].Value)
	})
	if len(totals) > TopCategories {
		totals = totals[:TopCategories]
	}
	if totals == nil {
		totals = []CategoryTotal{}
	}
	return totals
}
