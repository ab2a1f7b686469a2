package report

import (
	"time"

	"fjacquet/financeos/internal/amortization"
	"fjacquet/financeos/internal/dateutils"
	"fjacquet/financeos/internal/models"
	"fjacquet/financeos/internal/reminders"
	"fjacquet/financeos/internal/stats"

	"github.com/shopspring/decimal"
)

// Summary is the dashboard view of one portfolio.
type Summary struct {
	Portfolio   string                `json:"portfolio" yaml:"portfolio"`
	GeneratedOn string                `json:"generatedOn" yaml:"generated_on"`
	Currency    string                `json:"currency" yaml:"currency"`
	Totals      stats.Totals          `json:"totals" yaml:"totals"`
	MonthlyFlow []stats.MonthBucket   `json:"monthlyFlow" yaml:"monthly_flow"`
	Categories  []stats.CategoryTotal `json:"categories" yaml:"categories"`
	Debts       []DebtSummary         `json:"debts" yaml:"debts"`
	Reminders   []ReminderSummary     `json:"reminders" yaml:"reminders"`
}

// DebtSummary is a debt's realized progress against its plan.
type DebtSummary struct {
	ID             string          `json:"id" yaml:"id"`
	Name           string          `json:"name" yaml:"name"`
	Total          decimal.Decimal `json:"total" yaml:"total"`
	Remaining      decimal.Decimal `json:"remaining" yaml:"remaining"`
	Paid           decimal.Decimal `json:"paid" yaml:"paid"`
	Percent        decimal.Decimal `json:"percent" yaml:"percent"`
	CoveredThrough int             `json:"coveredThrough" yaml:"covered_through"`
	PlanMonths     int             `json:"planMonths" yaml:"plan_months"`
	Settled        bool            `json:"settled" yaml:"settled"`
}

// ReminderSummary is an active or overdue reminder.
type ReminderSummary struct {
	ID        string            `json:"id" yaml:"id"`
	Name      string            `json:"name" yaml:"name"`
	DueDate   string            `json:"dueDate" yaml:"due_date"`
	Amount    *decimal.Decimal  `json:"amount,omitempty" yaml:"amount,omitempty"`
	DaysUntil int               `json:"daysUntil" yaml:"days_until"`
	Urgency   reminders.Urgency `json:"urgency" yaml:"urgency"`
}

// BuildSummary gathers totals, flow, categories, debt progress and the
// reminders that need attention (overdue first, then active).
func BuildSummary(p models.Portfolio, list []models.UpcomingPayment, now time.Time, currency string) Summary {
	s := Summary{
		Portfolio:   p.Name,
		GeneratedOn: dateutils.ToISODate(now),
		Currency:    currency,
		Totals:      stats.ComputeTotals(p),
		MonthlyFlow: stats.MonthlyFlow(p, now),
		Categories:  stats.CategoryBreakdown(p),
		Debts:       make([]DebtSummary, 0, len(p.Debts)),
		Reminders:   []ReminderSummary{},
	}

	for _, d := range p.Debts {
		progress := amortization.ProgressOf(d)
		s.Debts = append(s.Debts, DebtSummary{
			ID:             d.ID,
			Name:           d.Name,
			Total:          d.Total,
			Remaining:      d.Remaining,
			Paid:           d.Paid,
			Percent:        progress.Percent.Round(1),
			CoveredThrough: progress.CoveredThrough,
			PlanMonths:     progress.PlanMonths,
			Settled:        progress.Settled,
		})
	}

	attention := append(reminders.Overdue(list, now), reminders.Active(list, now)...)
	for _, e := range attention {
		s.Reminders = append(s.Reminders, ReminderSummary{
			ID:        e.Reminder.ID,
			Name:      e.Reminder.Name,
			DueDate:   e.Reminder.DueDate,
			Amount:    e.Reminder.Amount,
			DaysUntil: e.DaysUntil,
			Urgency:   e.Urgency,
		})
	}
	return s
}
