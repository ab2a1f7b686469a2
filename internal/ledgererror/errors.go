// Package ledgererror defines the error taxonomy shared by the ledger, the
// debt engine and the reminder book.
package ledgererror

import (
	"errors"
	"fmt"
)

var (
	// ErrPaymentDoesNotCoverInterest is the reason a schedule is rejected when
	// the monthly payment never amortizes principal.
	ErrPaymentDoesNotCoverInterest = errors.New("payment does not cover interest")

	// ErrScheduleTooLong is the reason a schedule is rejected when the debt is
	// not paid off within the safety ceiling.
	ErrScheduleTooLong = errors.New("payment does not pay off the debt within the maximum term")

	// ErrDebtSettled is returned when a payment targets a debt with nothing left to pay.
	ErrDebtSettled = errors.New("debt is already paid off")
)

// ValidationError represents a missing or invalid required field.
// No state change happens when it is returned.
type ValidationError struct {
	Field  string
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ScheduleRejection is returned when an amortization schedule cannot be built
// for the requested terms.
type ScheduleRejection struct {
	Months int
	Err    error
}

func (e *ScheduleRejection) Error() string {
	if e.Months > 0 {
		return fmt.Sprintf("schedule rejected at month %d: %v", e.Months, e.Err)
	}
	return fmt.Sprintf("schedule rejected: %v", e.Err)
}

func (e *ScheduleRejection) Unwrap() error {
	return e.Err
}

// Reason returns the user-facing rejection reason.
func (e *ScheduleRejection) Reason() string {
	if e.Err == nil {
		return "schedule rejected"
	}
	return e.Err.Error()
}

// NotFoundError represents a reference to an entity that does not exist.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Entity, e.ID)
}

// PersistenceError wraps a failure of the external key-value store.
// Mutations never fail because of it; it is reported through the result.
type PersistenceError struct {
	Key string
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence %s failed for %s: %v", e.Op, e.Key, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Validation builds a ValidationError.
func Validation(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsScheduleRejection reports whether err is a ScheduleRejection.
func IsScheduleRejection(err error) bool {
	var sr *ScheduleRejection
	return errors.As(err, &sr)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
