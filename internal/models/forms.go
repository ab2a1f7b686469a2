package models

// TransactionForm carries raw user input for a new transaction.
type TransactionForm struct {
	Type        string
	Amount      string
	Category    string
	Description string
	Date        string
}

// DebtForm carries raw user input for a new debt.
type DebtForm struct {
	Name      string
	Total     string
	Interest  string
	Payment   string
	StartDate string
	Notes     string
}

// ReminderForm carries raw user input for a new upcoming payment.
type ReminderForm struct {
	Name         string
	Amount       string
	DueDate      string
	Type         string
	ReminderDays string
	Notes        string
}
