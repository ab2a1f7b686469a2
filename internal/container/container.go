// Package container provides dependency injection for the financeos application.
// It centralizes the creation and wiring of all application dependencies,
// making them explicit and testable.
package container

import (
	"fmt"
	"io"
	"time"

	"fjacquet/financeos/internal/categories"
	"fjacquet/financeos/internal/config"
	"fjacquet/financeos/internal/export"
	"fjacquet/financeos/internal/idgen"
	"fjacquet/financeos/internal/ledger"
	"fjacquet/financeos/internal/logging"
	"fjacquet/financeos/internal/reminders"
	"fjacquet/financeos/internal/report"
	"fjacquet/financeos/internal/store"
)

// Options overrides collaborators that are normally derived from the
// configuration. Zero values keep the defaults.
type Options struct {
	Logger logging.Logger
	IDs    idgen.Generator
	Clock  func() time.Time
}

// Container holds all application dependencies and provides methods to access them.
//
// Container is immutable after creation - all fields are private and can only
// be accessed through getter methods.
type Container struct {
	logger    logging.Logger
	config    *config.Config
	kv        store.KeyValueStore
	closer    io.Closer
	snapshots *store.SnapshotRepository
	catalog   categories.Catalog
	ledger    *ledger.Store
	reminders *reminders.Book
	exporter  *export.Writer
	reporter  *report.Generator
	clock     func() time.Time
}

// NewContainer creates and wires all application dependencies.
func NewContainer(cfg *config.Config) (*Container, error) {
	return NewContainerWithOptions(cfg, Options{})
}

// NewContainerWithOptions is NewContainer with collaborator overrides.
func NewContainerWithOptions(cfg *config.Config, opts Options) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	// Create logger first as it's needed by other components
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)
	}
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}

	kv, closer, err := store.New(cfg.Storage.Backend, cfg.Storage.Directory, cfg.Storage.SQLitePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}
	snapshots := store.NewSnapshotRepository(kv, logger)

	catalog, err := categories.LoadCatalog(cfg.Categories.File, logger)
	if err != nil {
		_ = closer.Close()
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}

	ledgerStore := ledger.Open(snapshots, ledger.Options{
		IDs:                  opts.IDs,
		Clock:                clock,
		Logger:               logger,
		Suggester:            catalog,
		DefaultPortfolioName: cfg.Ledger.DefaultPortfolioName,
		DebtCategory:         cfg.Ledger.DebtCategory,
	})

	book := reminders.OpenBook(snapshots, reminders.Options{
		IDs:      opts.IDs,
		Clock:    clock,
		Logger:   logger,
		LeadDays: cfg.Reminders.DefaultLeadDays,
	})

	logger.Debug("Container initialized successfully",
		logging.F(logging.FieldBackend, cfg.Storage.Backend),
		logging.F(logging.FieldCount, len(ledgerStore.Portfolios())))

	return &Container{
		logger:    logger,
		config:    cfg,
		kv:        kv,
		closer:    closer,
		snapshots: snapshots,
		catalog:   catalog,
		ledger:    ledgerStore,
		reminders: book,
		exporter:  export.NewWriter(cfg.DelimiterRune(), logger),
		reporter:  report.NewGenerator(logger),
		clock:     clock,
	}, nil
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetStore returns the raw key-value store behind the snapshots.
func (c *Container) GetStore() store.KeyValueStore {
	return c.kv
}

// GetSnapshots returns the snapshot repository shared by ledger and reminders.
func (c *Container) GetSnapshots() *store.SnapshotRepository {
	return c.snapshots
}

// GetCatalog returns the category catalog.
func (c *Container) GetCatalog() categories.Catalog {
	return c.catalog
}

// GetLedger returns the portfolio, transaction and debt store.
func (c *Container) GetLedger() *ledger.Store {
	return c.ledger
}

// GetReminders returns the reminder book.
func (c *Container) GetReminders() *reminders.Book {
	return c.reminders
}

// GetExporter returns the CSV writer.
func (c *Container) GetExporter() *export.Writer {
	return c.exporter
}

// GetReporter returns the report generator.
func (c *Container) GetReporter() *report.Generator {
	return c.reporter
}

// Now returns the container clock's current time.
func (c *Container) Now() time.Time {
	return c.clock()
}

// Close releases the storage backend.
func (c *Container) Close() error {
	if err := c.closer.Close(); err != nil {
		return fmt.Errorf("failed to close storage: %w", err)
	}
	c.logger.Debug("Container closed")
	return nil
}
