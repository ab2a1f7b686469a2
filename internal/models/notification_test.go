package models

import (
	"fmt"
	"testing"

	"fjacquet/financeos/internal/ledgererror"

	"github.com/stretchr/testify/assert"
)

func TestNotificationFor(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Notification
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: Notification{Message: "Done", Kind: NotificationSuccess},
		},
		{
			name:     "schedule rejection shows reason only",
			err:      fmt.Errorf("add debt: %w", &ledgererror.ScheduleRejection{Months: 1, Err: ledgererror.ErrPaymentDoesNotCoverInterest}),
			expected: Notification{Message: "payment does not cover interest", Kind: NotificationError},
		},
		{
			name:     "validation error",
			err:      ledgererror.Validation("amount", "is required"),
			expected: Notification{Message: "invalid amount: is required", Kind: NotificationError},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NotificationFor(tt.err))
		})
	}
}
