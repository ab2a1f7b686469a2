package store

import (
	"encoding/json"
	"errors"

	"fjacquet/financeos/internal/ledgererror"
	"fjacquet/financeos/internal/logging"
	"fjacquet/financeos/internal/models"
)

// Record keys of the two persisted snapshots.
const (
	KeyLedger    = "financeos_portfolios"
	KeyReminders = "financeos_reminders"
)

// SnapshotRepository owns the JSON encoding of the ledger and reminder
// snapshots on top of a KeyValueStore. Missing or corrupt records read as
// absent so callers fall back to defaults.
type SnapshotRepository struct {
	kv     KeyValueStore
	logger logging.Logger
}

// NewSnapshotRepository wraps kv. A nil logger discards log output.
func NewSnapshotRepository(kv KeyValueStore, logger logging.Logger) *SnapshotRepository {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	return &SnapshotRepository{kv: kv, logger: logger}
}

// LoadLedger returns the persisted AppState. The boolean is false when the
// record is missing, unreadable, corrupt or holds no portfolios.
func (r *SnapshotRepository) LoadLedger() (models.AppState, bool) {
	var state models.AppState
	if !r.load(KeyLedger, &state) {
		return models.AppState{}, false
	}
	if len(state.Portfolios) == 0 {
		return models.AppState{}, false
	}
	for i := range state.Portfolios {
		normalizePortfolio(&state.Portfolios[i])
	}
	return state, true
}

// SaveLedger persists the whole AppState.
func (r *SnapshotRepository) SaveLedger(state models.AppState) error {
	return r.save(KeyLedger, state)
}

// LoadReminders returns the persisted reminder list. The boolean is false
// when the record is missing or corrupt.
func (r *SnapshotRepository) LoadReminders() ([]models.UpcomingPayment, bool) {
	var list []models.UpcomingPayment
	if !r.load(KeyReminders, &list) {
		return nil, false
	}
	if list == nil {
		list = []models.UpcomingPayment{}
	}
	return list, true
}

// SaveReminders persists the whole reminder list.
func (r *SnapshotRepository) SaveReminders(list []models.UpcomingPayment) error {
	if list == nil {
		list = []models.UpcomingPayment{}
	}
	return r.save(KeyReminders, list)
}

func (r *SnapshotRepository) load(key string, v interface{}) bool {
	data, err := r.kv.Load(key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			r.logger.WithError(err).Warn("Failed to read snapshot, using defaults",
				logging.F(logging.FieldKey, key))
		}
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		r.logger.WithError(err).Warn("Corrupt snapshot, using defaults",
			logging.F(logging.FieldKey, key))
		return false
	}
	return true
}

func (r *SnapshotRepository) save(key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return &ledgererror.PersistenceError{Key: key, Op: "encode", Err: err}
	}
	if err := r.kv.Save(key, data); err != nil {
		return &ledgererror.PersistenceError{Key: key, Op: "save", Err: err}
	}
	r.logger.Debug("Snapshot saved", logging.F(logging.FieldKey, key))
	return nil
}

func normalizePortfolio(p *models.Portfolio) {
	if p.Transactions == nil {
		p.Transactions = []models.Transaction{}
	}
	if p.Debts == nil {
		p.Debts = []models.Debt{}
	}
	for i := range p.Debts {
		if p.Debts[i].Plan == nil {
			p.Debts[i].Plan = []models.ScheduleRow{}
		}
		if p.Debts[i].Payments == nil {
			p.Debts[i].Payments = []models.PaymentRecord{}
		}
	}
}
