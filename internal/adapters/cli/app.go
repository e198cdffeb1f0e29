package cli

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/andrescamacho/fuelplan-go/internal/adapters/persistence"
	"github.com/andrescamacho/fuelplan-go/internal/adapters/poh"
	"github.com/andrescamacho/fuelplan-go/internal/application/common"
	"github.com/andrescamacho/fuelplan-go/internal/application/setup"
	"github.com/andrescamacho/fuelplan-go/internal/domain/flightplan"
	"github.com/andrescamacho/fuelplan-go/internal/domain/shared"
	"github.com/andrescamacho/fuelplan-go/internal/infrastructure/config"
	"github.com/andrescamacho/fuelplan-go/internal/infrastructure/database"
	"github.com/andrescamacho/fuelplan-go/internal/infrastructure/logging"
)

// app is the per-invocation wiring: config, logger, dataset provider,
// optional plan store and the mediator on top
type app struct {
	cfg      *config.Config
	logger   *logging.Logger
	db       *gorm.DB
	datasets *poh.CachedLoader
	mediator common.Mediator
}

// newApp loads configuration and builds the mediator. The plan store is only
// opened when withStore is set, so ad-hoc computations never touch the database.
func newApp(withStore bool) (*app, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	a := &app{
		cfg:      cfg,
		logger:   logger,
		datasets: poh.NewProvider(cfg.Dataset, nil, shared.NewRealClock()),
	}

	var repo flightplan.PlanRepository
	if withStore {
		db, err := database.NewConnection(&cfg.Database)
		if err != nil {
			_ = logger.Close()
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		a.db = db
		repo = persistence.NewGormPlanRepository(db)
	}

	registry := setup.NewHandlerRegistry(repo, a.datasets, a.defaultSource(), cfg.Planner.ToSettings(), shared.NewRealClock())
	a.mediator, err = setup.NewPlanningMediator(registry)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to register handlers: %w", err)
	}

	return a, nil
}

// defaultSource is the dataset used when a request names none
func (a *app) defaultSource() string {
	if datasetSource != "" {
		return datasetSource
	}
	return a.cfg.Dataset.Source
}

// context attaches the logger for application handlers
func (a *app) context(parent context.Context) context.Context {
	if parent == nil {
		parent = context.Background()
	}
	return a.logger.WithContext(parent)
}

// Close releases the database connection and log file
func (a *app) Close() {
	if a.db != nil {
		if sqlDB, err := a.db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	_ = a.logger.Close()
}
