// Package amortization computes fixed-payment payoff schedules for debts.
package amortization

import (
	"fjacquet/financeos/internal/ledgererror"
	"fjacquet/financeos/internal/models"

	"github.com/shopspring/decimal"
)

const (
	// MaxMonths caps a schedule at 50 years.
	MaxMonths = 600

	// interestPlaces bounds the digits carried by each interest charge.
	interestPlaces = 10
)

var (
	// Epsilon absorbs rounding drift: a remaining balance below it is zero.
	Epsilon = decimal.New(1, -4)

	monthsPerYearPct = decimal.NewFromInt(1200)
	hundred          = decimal.NewFromInt(100)
)

// MonthlyRate converts an annual percentage into a monthly fraction.
func MonthlyRate(annualInterestPct decimal.Decimal) decimal.Decimal {
	return annualInterestPct.Div(monthsPerYearPct)
}

// GenerateSchedule builds the month-by-month payoff of total at the given
// annual interest percentage with a fixed monthly payment.
//
// The last payment is capped to what is owed, so no row overpays. A payment
// that does not exceed the interest charge is rejected with
// ledgererror.ErrPaymentDoesNotCoverInterest; a debt that would outlive
// MaxMonths is rejected with ledgererror.ErrScheduleTooLong.
func GenerateSchedule(total, annualInterestPct, monthlyPayment decimal.Decimal) ([]models.ScheduleRow, error) {
	if !total.IsPositive() {
		return nil, ledgererror.Validation("total", "must be greater than zero")
	}
	if annualInterestPct.IsNegative() {
		return nil, ledgererror.Validation("interest", "must not be negative")
	}
	if !monthlyPayment.IsPositive() {
		return nil, ledgererror.Validation("payment", "must be greater than zero")
	}

	rate := MonthlyRate(annualInterestPct)
	remaining := total
	plan := make([]models.ScheduleRow, 0)

	for month := 1; month <= MaxMonths; month++ {
		interest := remaining.Mul(rate).Round(interestPlaces)
		if monthlyPayment.LessThanOrEqual(interest) {
			return nil, &ledgererror.ScheduleRejection{Months: month, Err: ledgererror.ErrPaymentDoesNotCoverInterest}
		}

		payment := decimal.Min(monthlyPayment, remaining.Add(interest))
		principal := payment.Sub(interest)
		remaining = remaining.Sub(principal)
		if remaining.LessThan(Epsilon) {
			remaining = decimal.Zero
		}

		plan = append(plan, models.ScheduleRow{
			Month:     month,
			Payment:   payment,
			Principal: principal,
			Interest:  interest,
			Remaining: remaining,
		})

		if remaining.IsZero() {
			return plan, nil
		}
	}

	return nil, &ledgererror.ScheduleRejection{Months: MaxMonths, Err: ledgererror.ErrScheduleTooLong}
}

// TotalInterest sums the interest of every row of a plan.
func TotalInterest(plan []models.ScheduleRow) decimal.Decimal {
	sum := decimal.Zero
	for _, row := range plan {
		sum = sum.Add(row.Interest)
	}
	return sum
}

// TotalPaid sums the payments of every row of a plan.
func TotalPaid(plan []models.ScheduleRow) decimal.Decimal {
	sum := decimal.Zero
	for _, row := range plan {
		sum = sum.Add(row.Payment)
	}
	return sum
}
