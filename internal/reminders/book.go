package reminders

import (
	"strings"
	"sync"
	"time"

	"fjacquet/financeos/internal/idgen"
	"fjacquet/financeos/internal/ledgererror"
	"fjacquet/financeos/internal/logging"
	"fjacquet/financeos/internal/models"
	"fjacquet/financeos/internal/validation"
)

// DefaultLeadDays is the lead time used when configuration does not set one.
const DefaultLeadDays = 3

// SnapshotStore loads and saves the whole reminder list.
type SnapshotStore interface {
	LoadReminders() ([]models.UpcomingPayment, bool)
	SaveReminders(list []models.UpcomingPayment) error
}

// Options carries the collaborators of a Book.
type Options struct {
	IDs      idgen.Generator
	Clock    func() time.Time
	Logger   logging.Logger
	LeadDays int // below zero means DefaultLeadDays
}

// Result is the outcome of a successful book mutation.
type Result struct {
	Reminders    []models.UpcomingPayment
	Persisted    bool
	PersistErr   error
	Notification models.Notification
}

// Book owns the reminder list. Like the ledger, each mutation replaces the
// whole list and then persists it best-effort.
type Book struct {
	mu        sync.Mutex
	list      []models.UpcomingPayment
	snapshots SnapshotStore

	ids      idgen.Generator
	now      func() time.Time
	logger   logging.Logger
	leadDays int
}

// OpenBook loads the persisted reminders, starting empty when none are stored.
func OpenBook(snapshots SnapshotStore, opts Options) *Book {
	b := &Book{
		snapshots: snapshots,
		ids:       opts.IDs,
		now:       opts.Clock,
		logger:    opts.Logger,
		leadDays:  opts.LeadDays,
	}
	if b.ids == nil {
		b.ids = idgen.UUID{}
	}
	if b.now == nil {
		b.now = time.Now
	}
	if b.logger == nil {
		b.logger = logging.NewDiscardLogger()
	}
	if b.leadDays < 0 {
		b.leadDays = DefaultLeadDays
	}

	list, ok := snapshots.LoadReminders()
	if !ok {
		list = []models.UpcomingPayment{}
	}
	b.list = list
	return b
}

// List returns a copy of every reminder in insertion order.
func (b *Book) List() []models.UpcomingPayment {
	b.mu.Lock()
	defer b.mu.Unlock()
	return cloneList(b.list)
}

// Evaluate classifies every reminder against today.
func (b *Book) Evaluate() []Evaluation {
	return Evaluate(b.List(), b.now())
}

// Active returns the reminders currently within their lead time.
func (b *Book) Active() []Evaluation {
	return Active(b.List(), b.now())
}

// Overdue returns the reminders past their due date.
func (b *Book) Overdue() []Evaluation {
	return Overdue(b.List(), b.now())
}

// Add validates form and appends a new, not dismissed reminder.
func (b *Book) Add(form models.ReminderForm) (Result, error) {
	name, err := validation.RequireText("name", form.Name)
	if err != nil {
		return Result{}, err
	}
	dueDate, err := validation.RequiredCalendarDay("dueDate", form.DueDate)
	if err != nil {
		return Result{}, err
	}
	amount, err := validation.OptionalPositiveAmount("amount", form.Amount)
	if err != nil {
		return Result{}, err
	}
	leadDays, err := validation.NonNegativeInt("reminderDays", form.ReminderDays, b.leadDays)
	if err != nil {
		return Result{}, err
	}
	kind := strings.ToLower(strings.TrimSpace(form.Type))
	if kind == "" {
		kind = models.ReminderTypeOther
	}
	if !models.IsValidReminderType(kind) {
		return Result{}, ledgererror.Validation("type", "must be bill, subscription, debt or other")
	}

	r := models.UpcomingPayment{
		ID:           b.ids.NewID(),
		Name:         name,
		Amount:       amount,
		DueDate:      dueDate,
		Type:         kind,
		ReminderDays: leadDays,
		Notes:        strings.TrimSpace(form.Notes),
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	next := append(cloneList(b.list), r)
	return b.done(b.replace("add_reminder", next), "Reminder added", r.ID), nil
}

// Dismiss silences a reminder until it is reactivated.
func (b *Book) Dismiss(id string) (Result, error) {
	return b.setDismissed(id, true, "dismiss_reminder", "Reminder dismissed")
}

// Reactivate clears the dismissed flag.
func (b *Book) Reactivate(id string) (Result, error) {
	return b.setDismissed(id, false, "reactivate_reminder", "Reminder reactivated")
}

func (b *Book) setDismissed(id string, dismissed bool, op, message string) (Result, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	next := cloneList(b.list)
	found := false
	for i := range next {
		if next[i].ID == id {
			next[i].Dismissed = dismissed
			found = true
		}
	}
	if !found {
		return Result{}, &ledgererror.NotFoundError{Entity: "reminder", ID: id}
	}
	return b.done(b.replace(op, next), message, id), nil
}

// Delete removes a reminder. An unknown id is a no-op.
func (b *Book) Delete(id string) (Result, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	next := make([]models.UpcomingPayment, 0, len(b.list))
	for _, r := range b.list {
		if r.ID != id {
			next = append(next, r.Clone())
		}
	}
	return b.done(b.replace("delete_reminder", next), "Reminder deleted", id), nil
}

// replace installs next and persists it. Callers must hold b.mu.
func (b *Book) replace(op string, next []models.UpcomingPayment) Result {
	b.list = next
	result := Result{Reminders: cloneList(next)}

	if err := b.snapshots.SaveReminders(next); err != nil {
		b.logger.WithError(err).Warn("Failed to persist reminders, keeping in-memory state",
			logging.F(logging.FieldOperation, op))
		result.PersistErr = err
		return result
	}
	result.Persisted = true
	return result
}

func (b *Book) done(result Result, message, id string) Result {
	result.Notification = models.Success(message)
	b.logger.Debug(message, logging.F(logging.FieldReminderID, id))
	return result
}

func cloneList(list []models.UpcomingPayment) []models.UpcomingPayment {
	out := make([]models.UpcomingPayment, len(list))
	for i, r := range list {
		out[i] = r.Clone()
	}
	return out
}
