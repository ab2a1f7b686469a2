package models

// TransactionType distinguishes money coming in from money going out.
type TransactionType string

// Transaction types
const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Categories
const (
	CategoryDebts = "Debts"
	CategoryOther = "Other"
)

// Reminder types
const (
	ReminderTypeBill         = "bill"
	ReminderTypeSubscription = "subscription"
	ReminderTypeDebt         = "debt"
	ReminderTypeOther        = "other"
)

// DefaultPortfolioName names the portfolio created when nothing is persisted.
const DefaultPortfolioName = "Main Portfolio"

// File permissions
const (
	PermissionDataFile  = 0600
	PermissionDirectory = 0750
	PermissionExport    = 0644
)

// IsValidReminderType reports whether s names a known reminder type.
func IsValidReminderType(s string) bool {
	switch s {
	case ReminderTypeBill, ReminderTypeSubscription, ReminderTypeDebt, ReminderTypeOther:
		return true
	default:
		return false
	}
}
