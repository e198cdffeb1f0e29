package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/andrescamacho/fuelplan-go/internal/adapters/api"
	"github.com/andrescamacho/fuelplan-go/internal/adapters/metrics"
	"github.com/andrescamacho/fuelplan-go/internal/adapters/persistence"
	"github.com/andrescamacho/fuelplan-go/internal/adapters/poh"
	"github.com/andrescamacho/fuelplan-go/internal/application/common"
	"github.com/andrescamacho/fuelplan-go/internal/application/setup"
	"github.com/andrescamacho/fuelplan-go/internal/domain/shared"
	"github.com/andrescamacho/fuelplan-go/internal/infrastructure/config"
	"github.com/andrescamacho/fuelplan-go/internal/infrastructure/database"
	"github.com/andrescamacho/fuelplan-go/internal/infrastructure/logging"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "", "Path to config file (default: search ./config.yaml)")
	flag.Parse()

	fmt.Println("fuelplan server")
	fmt.Println("===============")

	// Load configuration
	fmt.Println("Loading configuration...")
	cfg := config.MustLoadConfig(*configPath)

	if err := run(cfg); err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
}

func run(cfg *config.Config) error {
	// 1. Logger
	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Close()

	// 2. Metrics (optional)
	var (
		httpMetrics    *metrics.HTTPMetricsCollector
		requestMetrics *metrics.RequestMetricsCollector
		cacheObserver  poh.CacheObserver
	)
	if cfg.Metrics.Enabled {
		metrics.InitRegistry()

		plannerMetrics := metrics.NewPlannerMetricsCollector()
		if err := plannerMetrics.Register(); err != nil {
			return fmt.Errorf("failed to register planner metrics: %w", err)
		}
		metrics.SetGlobalPlannerCollector(plannerMetrics)

		requestMetrics = metrics.NewRequestMetricsCollector()
		if err := requestMetrics.Register(); err != nil {
			return fmt.Errorf("failed to register request metrics: %w", err)
		}

		httpMetrics = metrics.NewHTTPMetricsCollector()
		if err := httpMetrics.Register(); err != nil {
			return fmt.Errorf("failed to register HTTP metrics: %w", err)
		}

		cacheObserver = metrics.GlobalRecorder{}
		fmt.Printf("Metrics enabled on %s\n", cfg.Metrics.Path)
	}

	// 3. Plan store
	fmt.Printf("Connecting to %s database...\n", cfg.Database.Type)
	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close(db)
	fmt.Println("Database connected")

	// 4. Handbook datasets
	clock := shared.NewRealClock()
	datasets := poh.NewProvider(cfg.Dataset, cacheObserver, clock)
	if _, err := datasets.Load(context.Background(), cfg.Dataset.Source); err != nil {
		// Not fatal: requests can still use --fallback or another source
		logger.Warn("default dataset unavailable", "source", cfg.Dataset.Source, "error", err)
	} else {
		fmt.Printf("Dataset loaded: %s\n", cfg.Dataset.Source)
	}

	// 5. Mediator
	var middlewares []common.Middleware
	if requestMetrics != nil {
		middlewares = append(middlewares, metrics.PrometheusMiddleware(requestMetrics))
	}
	registry := setup.NewHandlerRegistry(
		persistence.NewGormPlanRepository(db),
		datasets,
		cfg.Dataset.Source,
		cfg.Planner.ToSettings(),
		clock,
	)
	med, err := setup.NewPlanningMediator(registry, middlewares...)
	if err != nil {
		return fmt.Errorf("failed to register handlers: %w", err)
	}

	// 6. HTTP server
	router := api.NewRouter(med, api.Options{
		RequestsPerSecond: cfg.Server.RateLimit.Requests,
		Burst:             cfg.Server.RateLimit.Burst,
		MaxBodyBytes:      cfg.Server.MaxBodyBytes,
		Registry:          metrics.GetRegistry(),
		MetricsPath:       cfg.Metrics.Path,
		HTTPMetrics:       httpMetrics,
		Logger:            logger.PlanLogger(),
		AllowedSources:    cfg.Dataset.AllowedSources,
	})
	srv := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.ListenAndServe()
	}()

	fmt.Printf("\n✓ Listening on %s\n", cfg.Server.Address)
	fmt.Println("Press Ctrl+C to stop")

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
	case sig := <-sigChan:
		fmt.Printf("\nReceived %s, shutting down...\n", sig)
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	fmt.Println("Server stopped")
	return nil
}
