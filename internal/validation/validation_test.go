package validation

import (
	"testing"
	"time"

	"fjacquet/financeos/internal/ledgererror"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireText(t *testing.T) {
	v, err := RequireText("name", "  Car loan ")
	require.NoError(t, err)
	assert.Equal(t, "Car loan", v)

	_, err = RequireText("name", "   ")
	require.Error(t, err)
	assert.True(t, ledgererror.IsValidation(err))
	assert.Equal(t, "invalid name: is required", err.Error())
}

func TestPositiveAmount(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected decimal.Decimal
		reason   string
	}{
		{name: "valid", raw: "1200", expected: decimal.NewFromInt(1200)},
		{name: "valid with decimals", raw: "15.75", expected: decimal.NewFromFloat(15.75)},
		{name: "missing", raw: "", reason: "is required"},
		{name: "non numeric", raw: "twelve", reason: "must be a number"},
		{name: "zero", raw: "0", reason: "must be greater than zero"},
		{name: "negative", raw: "-5", reason: "must be greater than zero"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, err := PositiveAmount("amount", tt.raw)
			if tt.reason != "" {
				var ve *ledgererror.ValidationError
				require.ErrorAs(t, err, &ve)
				assert.Equal(t, "amount", ve.Field)
				assert.Equal(t, tt.reason, ve.Reason)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(amount))
		})
	}
}

func TestNonNegativeAmount(t *testing.T) {
	v, err := NonNegativeAmount("interest", "", decimal.Zero)
	require.NoError(t, err)
	assert.True(t, v.IsZero())

	v, err = NonNegativeAmount("interest", "24", decimal.Zero)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(24).Equal(v))

	_, err = NonNegativeAmount("interest", "-1", decimal.Zero)
	assert.True(t, ledgererror.IsValidation(err))
}

func TestOptionalPositiveAmount(t *testing.T) {
	v, err := OptionalPositiveAmount("amount", "")
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = OptionalPositiveAmount("amount", "30")
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.True(t, decimal.NewFromInt(30).Equal(*v))

	_, err = OptionalPositiveAmount("amount", "0")
	assert.True(t, ledgererror.IsValidation(err))
}

func TestCalendarDay(t *testing.T) {
	fallback := time.Date(2026, 10, 18, 15, 0, 0, 0, time.UTC)

	day, err := CalendarDay("date", "", fallback)
	require.NoError(t, err)
	assert.Equal(t, "2026-10-18", day)

	day, err = CalendarDay("date", "01.02.2026", fallback)
	require.NoError(t, err)
	assert.Equal(t, "2026-02-01", day)

	_, err = CalendarDay("date", "someday", fallback)
	assert.True(t, ledgererror.IsValidation(err))

	_, err = RequiredCalendarDay("dueDate", " ")
	assert.True(t, ledgererror.IsValidation(err))
}

func TestNonNegativeInt(t *testing.T) {
	n, err := NonNegativeInt("reminderDays", "", 3)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = NonNegativeInt("reminderDays", "0", 3)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	_, err = NonNegativeInt("reminderDays", "-2", 3)
	assert.True(t, ledgererror.IsValidation(err))

	_, err = NonNegativeInt("reminderDays", "soon", 3)
	assert.True(t, ledgererror.IsValidation(err))
}
