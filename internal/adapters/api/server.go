package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/andrescamacho/fuelplan-go/internal/adapters/metrics"
	"github.com/andrescamacho/fuelplan-go/internal/application/common"
)

// Options configures the HTTP router
type Options struct {
	// RequestsPerSecond and Burst size the token bucket shared by all
	// compute endpoints. Zero disables rate limiting.
	RequestsPerSecond float64
	Burst             int

	// MaxBodyBytes caps request bodies; zero means 1 MiB
	MaxBodyBytes int64

	// Registry is served on MetricsPath when set
	Registry    *prometheus.Registry
	MetricsPath string
	HTTPMetrics *metrics.HTTPMetricsCollector

	Logger common.PlanLogger

	// AllowedSources lists the dataset sources a request may name. Requests
	// that name none use the server's default source.
	AllowedSources []string
}

// Server exposes the planner over HTTP. Every request is dispatched to the
// mediator; the server itself holds no planning state.
type Server struct {
	mediator     common.Mediator
	limiter      *rate.Limiter
	maxBodyBytes int64
	httpMetrics  *metrics.HTTPMetricsCollector
	logger       common.PlanLogger
	sources      map[string]bool
}

// NewRouter constructs the HTTP router wired to the mediator
func NewRouter(m common.Mediator, opts Options) http.Handler {
	s := &Server{
		mediator:     m,
		maxBodyBytes: opts.MaxBodyBytes,
		httpMetrics:  opts.HTTPMetrics,
		logger:       opts.Logger,
		sources:      make(map[string]bool, len(opts.AllowedSources)),
	}
	for _, src := range opts.AllowedSources {
		if src = strings.TrimSpace(src); src != "" {
			s.sources[src] = true
		}
	}
	if s.maxBodyBytes <= 0 {
		s.maxBodyBytes = 1 << 20
	}
	if opts.RequestsPerSecond > 0 {
		burst := opts.Burst
		if burst < 1 {
			burst = 1
		}
		s.limiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), burst)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.instrument)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	if opts.Registry != nil {
		path := opts.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		r.Handle(path, promhttp.HandlerFor(opts.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(s.rateLimit)
			r.Post("/plan/compute", s.handleCompute)
			r.Post("/plans/{id}/compute", s.handleComputeSaved)
			r.Get("/cruise", s.handleCruise)
		})

		r.Get("/plans", s.handleListPlans)
		r.Post("/plans", s.handleCreatePlan)
		r.Get("/plans/{id}", s.handleGetPlan)
		r.Delete("/plans/{id}", s.handleDeletePlan)
		r.Put("/plans/{id}/settings", s.handleUpdateSettings)
		r.Post("/plans/{id}/legs", s.handleAddLeg)
		r.Put("/plans/{id}/legs/{legID}", s.handleUpdateLeg)
		r.Delete("/plans/{id}/legs/{legID}", s.handleRemoveLeg)
		r.Put("/plans/{id}/legs", s.handleReorderLegs)
	})

	return r
}
