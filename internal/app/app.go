package app

import (
	"fmt"
	"io/fs"

	"github.com/sultanbank/teller/internal/config"
	"github.com/sultanbank/teller/internal/service"
	"github.com/sultanbank/teller/internal/store"
)

type App struct {
	Service *service.Service
	Store   store.Repository
}

// NewApp initializes the ledger database and core services, then returns
// the App entity together with its cleanup function.
func NewApp(cfg *config.Config, migrationsFS fs.FS) (*App, func(), error) {
	dbPath := cfg.Database.Path
	if dbPath == "" {
		dbPath = ":memory:"
	}

	dbStore, err := store.NewStore(dbPath, migrationsFS)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	svc := service.NewService(dbStore, cfg)

	if err := svc.Ledger.Seed(); err != nil {
		_ = dbStore.Close()
		return nil, nil, fmt.Errorf("failed to seed accounts: %w", err)
	}

	cleanup := func() {
		if err := dbStore.Close(); err != nil {
			fmt.Printf("Error closing DB: %v\n", err)
		}
	}

	return &App{
		Service: svc,
		Store:   dbStore,
	}, cleanup, nil
}
