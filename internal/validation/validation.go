// Package validation re-validates form input coming from the UI layer.
// Callers are not trusted: every required field and numeric bound is checked
// again before the ledger is touched.
package validation

import (
	"strconv"
	"strings"
	"time"

	"fjacquet/financeos/internal/currencyutils"
	"fjacquet/financeos/internal/dateutils"
	"fjacquet/financeos/internal/ledgererror"

	"github.com/shopspring/decimal"
)

// RequireText returns the trimmed value or a ValidationError when it is blank.
func RequireText(field, value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", ledgererror.Validation(field, "is required")
	}
	return trimmed, nil
}

// PositiveAmount parses a required amount that must be strictly positive.
func PositiveAmount(field, raw string) (decimal.Decimal, error) {
	if strings.TrimSpace(raw) == "" {
		return decimal.Zero, ledgererror.Validation(field, "is required")
	}
	amount, err := currencyutils.ParseAmount(raw)
	if err != nil {
		return decimal.Zero, &ledgererror.ValidationError{Field: field, Reason: "must be a number", Err: err}
	}
	if !amount.IsPositive() {
		return decimal.Zero, ledgererror.Validation(field, "must be greater than zero")
	}
	return amount, nil
}

// NonNegativeAmount parses an amount that may be zero. A blank value yields fallback.
func NonNegativeAmount(field, raw string, fallback decimal.Decimal) (decimal.Decimal, error) {
	if strings.TrimSpace(raw) == "" {
		return fallback, nil
	}
	amount, err := currencyutils.ParseAmount(raw)
	if err != nil {
		return decimal.Zero, &ledgererror.ValidationError{Field: field, Reason: "must be a number", Err: err}
	}
	if amount.IsNegative() {
		return decimal.Zero, ledgererror.Validation(field, "must not be negative")
	}
	return amount, nil
}

// OptionalPositiveAmount parses an amount that may be omitted. When present it
// must be strictly positive.
func OptionalPositiveAmount(field, raw string) (*decimal.Decimal, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	amount, err := PositiveAmount(field, raw)
	if err != nil {
		return nil, err
	}
	return &amount, nil
}

// CalendarDay normalises a date to YYYY-MM-DD. A blank value yields the
// calendar day of fallback.
func CalendarDay(field, raw string, fallback time.Time) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return dateutils.ToISODate(fallback), nil
	}
	day, err := dateutils.NormalizeDay(raw)
	if err != nil {
		return "", &ledgererror.ValidationError{Field: field, Reason: "must be a calendar date", Err: err}
	}
	return day, nil
}

// RequiredCalendarDay is CalendarDay without a fallback.
func RequiredCalendarDay(field, raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", ledgererror.Validation(field, "is required")
	}
	return CalendarDay(field, raw, time.Time{})
}

// NonNegativeInt parses a whole number that may be zero. A blank value yields fallback.
func NonNegativeInt(field, raw string, fallback int) (int, error) {
	if strings.TrimSpace(raw) == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, &ledgererror.ValidationError{Field: field, Reason: "must be a whole number", Err: err}
	}
	if n < 0 {
		return 0, ledgererror.Validation(field, "must not be negative")
	}
	return n, nil
}
