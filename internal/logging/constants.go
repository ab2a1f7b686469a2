package logging

// Standardized field names for structured logging.
// These constants ensure consistency across the application's log output,
// making logs easier to parse, filter, and analyze.
const (
	FieldPortfolioID   = "portfolio_id"
	FieldTransactionID = "transaction_id"
	FieldDebtID        = "debt_id"
	FieldReminderID    = "reminder_id"
	FieldCategory      = "category"
	FieldAmount        = "amount"
	FieldReason        = "reason"
	FieldOperation     = "operation"
	FieldKey           = "key"
	FieldBackend       = "backend"
	FieldError         = "error"
	FieldCount         = "count"
	FieldFile          = "file_path"
	FieldOutputFile    = "output_file"
)
