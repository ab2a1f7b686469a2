package models

import (
	"github.com/shopspring/decimal"
)

// UpcomingPayment is a standalone due-date reminder. Reminders are not scoped
// to a portfolio and are never created from debts automatically.
type UpcomingPayment struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Amount       *decimal.Decimal `json:"amount,omitempty"`
	DueDate      string           `json:"dueDate"` // calendar day, YYYY-MM-DD
	Type         string           `json:"type"`
	ReminderDays int              `json:"reminderDays"`
	Notes        string           `json:"notes,omitempty"`
	Dismissed    bool             `json:"dismissed"`
}

// Clone returns a copy that does not share the amount pointer.
func (u UpcomingPayment) Clone() UpcomingPayment {
	c := u
	if u.Amount != nil {
		a := *u.Amount
		c.Amount = &a
	}
	return c
}
