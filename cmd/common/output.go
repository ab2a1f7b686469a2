// Package common contains shared functionality for command handlers
package common

import (
	"fmt"
	"io"
	"text/tabwriter"

	"fjacquet/financeos/internal/currencyutils"
	"fjacquet/financeos/internal/logging"
	"fjacquet/financeos/internal/models"

	"github.com/shopspring/decimal"
)

// CommandError is returned by command handlers when an operation is
// rejected. Its message is the user-facing notification.
type CommandError struct {
	Notification models.Notification
	Err          error
}

func (e *CommandError) Error() string {
	return e.Notification.Message
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// Fail logs a rejected operation and wraps err for display.
func Fail(log logging.Logger, op string, err error) error {
	log.WithError(err).Debug("Operation rejected", logging.F(logging.FieldOperation, op))
	return &CommandError{Notification: models.NotificationFor(err), Err: err}
}

// PrintResult writes the notification of a successful mutation. A mutation
// that could not be persisted is still reported as done, followed by a
// warning line.
func PrintResult(out io.Writer, n models.Notification, persisted bool, persistErr error) {
	fmt.Fprintln(out, n.Message)
	if !persisted {
		fmt.Fprintf(out, "warning: changes kept in memory only: %v\n", persistErr)
	}
}

// NewTable returns a writer that aligns tab-separated columns.
func NewTable(out io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
}

// Money formats an amount for listings.
func Money(amount decimal.Decimal, currency string) string {
	return currencyutils.FormatAmount(amount, currency)
}
