package amortization

import (
	"fjacquet/financeos/internal/models"

	"github.com/shopspring/decimal"
)

// Progress describes how far a debt is from being paid off.
type Progress struct {
	Percent        decimal.Decimal // share of the total already paid, 0-100
	CoveredThrough int             // plan rows considered covered
	PlanMonths     int
	Settled        bool
}

// CoveredThrough returns how many leading plan rows are covered by paid,
// comparing paid against the cumulative planned payment.
//
// The plan is a fixed projection: irregular or extra payments make this an
// approximation, never a substitute for the debt's remaining balance.
func CoveredThrough(plan []models.ScheduleRow, paid decimal.Decimal) int {
	cumulative := decimal.Zero
	covered := 0
	for _, row := range plan {
		cumulative = cumulative.Add(row.Payment)
		if cumulative.GreaterThan(paid.Add(Epsilon)) {
			break
		}
		covered++
	}
	return covered
}

// PercentComplete returns (total-remaining)/total as a percentage.
func PercentComplete(d models.Debt) decimal.Decimal {
	if !d.Total.IsPositive() {
		return decimal.Zero
	}
	return d.Total.Sub(d.Remaining).Div(d.Total).Mul(hundred)
}

// ProgressOf summarises a debt's realized progress against its plan.
func ProgressOf(d models.Debt) Progress {
	return Progress{
		Percent:        PercentComplete(d),
		CoveredThrough: CoveredThrough(d.Plan, d.Paid),
		PlanMonths:     len(d.Plan),
		Settled:        d.IsSettled(),
	}
}
