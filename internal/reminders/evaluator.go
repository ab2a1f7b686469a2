// Package reminders evaluates upcoming-payment reminders against a calendar
// day and keeps the persisted reminder book.
package reminders

import (
	"sort"
	"time"

	"fjacquet/financeos/internal/dateutils"
	"fjacquet/financeos/internal/models"
)

// Urgency classifies a reminder relative to today.
type Urgency string

const (
	UrgencyOverdue  Urgency = "overdue"
	UrgencyUrgent   Urgency = "urgent"
	UrgencyUpcoming Urgency = "upcoming"
	UrgencyQuiet    Urgency = "quiet"
)

// Evaluation is a reminder together with its standing on a given day.
type Evaluation struct {
	Reminder  models.UpcomingPayment `json:"reminder"`
	DaysUntil int                    `json:"daysUntil"`
	Urgency   Urgency                `json:"urgency"`
	Active    bool                   `json:"active"`
}

// DaysUntil returns the whole days from today to due, both taken at
// midnight. It is negative for past dates and zero for today.
func DaysUntil(due, today time.Time) int {
	return dateutils.DaysBetween(today, due)
}

// DaysUntilDay parses a YYYY-MM-DD due date and returns DaysUntil.
func DaysUntilDay(dueDate string, today time.Time) (int, error) {
	due, _, err := dateutils.ParseDate(dueDate)
	if err != nil {
		return 0, err
	}
	return DaysUntil(due, today), nil
}

// Classify returns the urgency tier of r. Overdue wins over dismissal so a
// missed payment is never hidden; otherwise a dismissed reminder is quiet.
// A reminder whose due date cannot be read is quiet.
func Classify(r models.UpcomingPayment, today time.Time) Urgency {
	diff, err := DaysUntilDay(r.DueDate, today)
	if err != nil {
		return UrgencyQuiet
	}
	return classify(r, diff)
}

func classify(r models.UpcomingPayment, diff int) Urgency {
	switch {
	case diff < 0:
		return UrgencyOverdue
	case r.Dismissed, diff > r.ReminderDays:
		return UrgencyQuiet
	case diff <= 1:
		return UrgencyUrgent
	default:
		return UrgencyUpcoming
	}
}

// IsActive reports whether r is not dismissed and due within its lead time.
func IsActive(r models.UpcomingPayment, today time.Time) bool {
	diff, err := DaysUntilDay(r.DueDate, today)
	if err != nil {
		return false
	}
	return !r.Dismissed && diff >= 0 && diff <= r.ReminderDays
}

// Evaluate classifies every reminder, keeping the input order.
func Evaluate(list []models.UpcomingPayment, today time.Time) []Evaluation {
	out := make([]Evaluation, 0, len(list))
	for _, r := range list {
		e := Evaluation{Reminder: r.Clone(), Urgency: UrgencyQuiet}
		if diff, err := DaysUntilDay(r.DueDate, today); err == nil {
			e.DaysUntil = diff
			e.Urgency = classify(r, diff)
			e.Active = !r.Dismissed && diff >= 0 && diff <= r.ReminderDays
		}
		out = append(out, e)
	}
	return out
}

// Active returns the active reminders, soonest first.
func Active(list []models.UpcomingPayment, today time.Time) []Evaluation {
	return filterSorted(Evaluate(list, today), func(e Evaluation) bool { return e.Active })
}

// Overdue returns the reminders whose due date has passed, oldest first.
func Overdue(list []models.UpcomingPayment, today time.Time) []Evaluation {
	return filterSorted(Evaluate(list, today), func(e Evaluation) bool { return e.Urgency == UrgencyOverdue })
}

func filterSorted(all []Evaluation, keep func(Evaluation) bool) []Evaluation {
	out := make([]Evaluation, 0, len(all))
	for _, e := range all {
		if keep(e) {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].DaysUntil < out[j].DaysUntil })
	return out
}
