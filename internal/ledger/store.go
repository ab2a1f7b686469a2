// Package ledger implements the portfolio, transaction and debt store.
//
// Every mutation is a whole-snapshot replacement: the active portfolio is
// rebuilt by an updater function and swapped into a fresh portfolio slice,
// after which the snapshot is persisted. Persistence failures never undo an
// in-memory change; they are reported through Result instead.
package ledger

import (
	"strings"
	"sync"
	"time"

	"fjacquet/financeos/internal/categories"
	"fjacquet/financeos/internal/dateutils"
	"fjacquet/financeos/internal/idgen"
	"fjacquet/financeos/internal/logging"
	"fjacquet/financeos/internal/models"
)

// SnapshotStore loads and saves the whole ledger snapshot.
type SnapshotStore interface {
	LoadLedger() (models.AppState, bool)
	SaveLedger(state models.AppState) error
}

// Options carries the collaborators of a Store. Zero values get defaults.
type Options struct {
	IDs                  idgen.Generator
	Clock                func() time.Time
	Logger               logging.Logger
	Suggester            categories.Suggester
	DefaultPortfolioName string
	DebtCategory         string
}

// Result is the outcome of a successful mutation.
type Result struct {
	State        models.AppState
	Persisted    bool
	PersistErr   error
	Notification models.Notification
}

// Store owns the AppState and applies mutations to it.
type Store struct {
	mu        sync.Mutex
	state     models.AppState
	snapshots SnapshotStore

	ids          idgen.Generator
	now          func() time.Time
	logger       logging.Logger
	suggester    categories.Suggester
	debtCategory string
}

// Open loads the persisted snapshot, or starts from a single default
// portfolio when nothing usable is stored. A stale activeId is repaired by
// selecting the first portfolio.
func Open(snapshots SnapshotStore, opts Options) *Store {
	s := &Store{
		snapshots:    snapshots,
		ids:          opts.IDs,
		now:          opts.Clock,
		logger:       opts.Logger,
		suggester:    opts.Suggester,
		debtCategory: opts.DebtCategory,
	}
	if s.ids == nil {
		s.ids = idgen.UUID{}
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.logger == nil {
		s.logger = logging.NewDiscardLogger()
	}
	if s.suggester == nil {
		s.suggester = categories.DefaultCatalog()
	}
	if s.debtCategory == "" {
		s.debtCategory = models.CategoryDebts
	}

	state, ok := snapshots.LoadLedger()
	if !ok {
		name := strings.TrimSpace(opts.DefaultPortfolioName)
		if name == "" {
			name = models.DefaultPortfolioName
		}
		p := s.newPortfolio(name)
		state = models.AppState{Portfolios: []models.Portfolio{p}, ActiveID: p.ID}
		s.logger.Debug("No ledger snapshot, starting with default portfolio",
			logging.F(logging.FieldPortfolioID, p.ID))
	} else if _, found := state.Find(state.ActiveID); !found {
		s.logger.Debug("Active portfolio not found, selecting first",
			logging.F(logging.FieldPortfolioID, state.ActiveID))
		state.ActiveID = state.Portfolios[0].ID
	}
	s.state = state
	return s
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() models.AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// ActivePortfolio returns a copy of the active portfolio.
func (s *Store) ActivePortfolio() models.Portfolio {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, _ := s.state.Active()
	return p.Clone()
}

// Portfolios returns copies of all portfolios in creation order.
func (s *Store) Portfolios() []models.Portfolio {
	return s.Snapshot().Portfolios
}

func (s *Store) today() time.Time {
	return dateutils.Midnight(s.now())
}

func (s *Store) newPortfolio(name string) models.Portfolio {
	return models.Portfolio{
		ID:           s.ids.NewID(),
		Name:         name,
		CreatedAt:    dateutils.ToISODate(s.now()),
		Transactions: []models.Transaction{},
		Debts:        []models.Debt{},
	}
}

// updatePortfolio replaces the active portfolio with updater's result and
// persists. Callers must hold s.mu.
func (s *Store) updatePortfolio(op string, updater func(models.Portfolio) models.Portfolio) Result {
	active, _ := s.state.Active()

	portfolios := make([]models.Portfolio, len(s.state.Portfolios))
	for i, p := range s.state.Portfolios {
		if p.ID == active.ID {
			portfolios[i] = updater(p.Clone())
		} else {
			portfolios[i] = p
		}
	}
	return s.replace(op, models.AppState{Portfolios: portfolios, ActiveID: active.ID})
}

// replace installs next as the current state and persists it. Callers must
// hold s.mu.
func (s *Store) replace(op string, next models.AppState) Result {
	s.state = next
	result := Result{State: next.Clone()}

	if err := s.snapshots.SaveLedger(next); err != nil {
		s.logger.WithError(err).Warn("Failed to persist ledger, keeping in-memory state",
			logging.F(logging.FieldOperation, op))
		result.PersistErr = err
		return result
	}
	result.Persisted = true
	return result
}

func (s *Store) done(result Result, message string, fields ...logging.Field) Result {
	result.Notification = models.Success(message)
	s.logger.Debug(message, fields...)
	return result
}
