package models

import (
	"github.com/shopspring/decimal"
)

// ScheduleRow is one projected month of a debt payoff.
type ScheduleRow struct {
	Month     int             `json:"month" csv:"Month"`
	Payment   decimal.Decimal `json:"payment" csv:"Payment"`
	Principal decimal.Decimal `json:"principal" csv:"Principal"`
	Interest  decimal.Decimal `json:"interest" csv:"Interest"`
	Remaining decimal.Decimal `json:"remaining" csv:"Remaining"`
}

// PaymentRecord is a payment applied against a debt.
type PaymentRecord struct {
	Date   string          `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

// Debt is a fixed-payment installment obligation.
//
// Remaining + Paid always equals Total. Plan is computed once at creation and
// is the original projection; realized progress lives in Paid and Payments.
type Debt struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Total     decimal.Decimal `json:"total"`
	Interest  decimal.Decimal `json:"interest"` // annual percentage
	Payment   decimal.Decimal `json:"payment"`  // monthly
	StartDate string          `json:"startDate"`
	Notes     string          `json:"notes,omitempty"`
	Remaining decimal.Decimal `json:"remaining"`
	Paid      decimal.Decimal `json:"paid"`
	Plan      []ScheduleRow   `json:"plan"`
	Payments  []PaymentRecord `json:"payments"`
}

// IsSettled returns true once nothing remains to be paid.
func (d Debt) IsSettled() bool {
	return !d.Remaining.IsPositive()
}

// Clone returns a copy that shares no slices with d.
func (d Debt) Clone() Debt {
	c := d
	c.Plan = append([]ScheduleRow(nil), d.Plan...)
	c.Payments = append([]PaymentRecord(nil), d.Payments...)
	if c.Plan == nil {
		c.Plan = []ScheduleRow{}
	}
	if c.Payments == nil {
		c.Payments = []PaymentRecord{}
	}
	return c
}
