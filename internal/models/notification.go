package models

import (
	"errors"

	"fjacquet/financeos/internal/ledgererror"
)

// NotificationKind classifies an operation outcome for display.
type NotificationKind string

const (
	NotificationSuccess NotificationKind = "success"
	NotificationError   NotificationKind = "error"
)

// Notification is the outcome signal shown to the user after an operation.
type Notification struct {
	Message string           `json:"message"`
	Kind    NotificationKind `json:"kind"`
}

// Success builds a success notification.
func Success(message string) Notification {
	return Notification{Message: message, Kind: NotificationSuccess}
}

// NotificationFor maps an operation error to a user-facing notification.
func NotificationFor(err error) Notification {
	if err == nil {
		return Success("Done")
	}
	var sr *ledgererror.ScheduleRejection
	if errors.As(err, &sr) {
		return Notification{Message: sr.Reason(), Kind: NotificationError}
	}
	return Notification{Message: err.Error(), Kind: NotificationError}
}
