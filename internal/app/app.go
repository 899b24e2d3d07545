package app

import (
	"context"
	"fmt"
	"log"

	"hotelreservation/internal/config"
	"hotelreservation/internal/database"
	"hotelreservation/internal/modules/inventory"
	"hotelreservation/internal/modules/reservation"
	"hotelreservation/internal/repository"
)

// Desk is a loaded reservation service together with the store behind it.
type Desk struct {
	Service *reservation.Service
	Store   reservation.Store
	close   func() error
}

// Options carries the collaborators that differ between the terminal and
// HTTP desks.
type Options struct {
	Payments reservation.PaymentProcessor
	Metrics  reservation.Recorder
}

// Open builds the configured store, loads the ledger and reconciles the
// inventory with it.
func Open(ctx context.Context, cfg *config.Config, opts Options) (*Desk, error) {
	store, closeFn, err := NewStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	svc := reservation.NewService(inventory.New(), store, opts.Payments, opts.Metrics)
	if cfg.Store.Autosave {
		svc.EnableAutosave()
	}
	n := svc.Load(ctx)
	log.Printf("ledger_loaded driver=%s store=%s bookings=%d", cfg.Store.Driver, cfg.StoreTarget(), n)

	return &Desk{Service: svc, Store: store, close: closeFn}, nil
}

// Close releases the store. It does not save; callers decide when to save.
func (d *Desk) Close() error {
	if d.close == nil {
		return nil
	}
	return d.close()
}

// NewStore returns the store for cfg.Store.Driver and a function that
// releases it.
func NewStore(ctx context.Context, cfg *config.Config) (reservation.Store, func() error, error) {
	switch cfg.Store.Driver {
	case config.DriverJSON:
		return repository.NewFileStore(cfg.Store.Path), func() error { return nil }, nil

	case config.DriverSQLite, config.DriverPostgres:
		db, err := database.Connect(cfg.StoreTarget())
		if err != nil {
			return nil, nil, fmt.Errorf("connect %s store: %w", cfg.Store.Driver, err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, nil, fmt.Errorf("get sql db: %w", err)
		}

		repo := repository.NewBookingRepository(db)
		if err := repo.Migrate(ctx); err != nil {
			_ = sqlDB.Close()
			return nil, nil, err
		}
		return repo, sqlDB.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}
