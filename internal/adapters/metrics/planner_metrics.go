package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// ComputationMode tells whether a plan was computed from handbook tables or
// from the flat fallback figures
type ComputationMode string

const (
	ModeDataset  ComputationMode = "dataset"
	ModeFallback ComputationMode = "fallback"
)

// PlannerMetricsCollector handles plan computation metrics
type PlannerMetricsCollector struct {
	computationsTotal   *prometheus.CounterVec
	computationDuration *prometheus.HistogramVec
	legsPerPlan         prometheus.Histogram
	takeoffFuel         *prometheus.HistogramVec
	datasetCacheTotal   *prometheus.CounterVec
}

// NewPlannerMetricsCollector creates a new planner metrics collector
func NewPlannerMetricsCollector() *PlannerMetricsCollector {
	return &PlannerMetricsCollector{
		computationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "computations_total",
				Help:      "Total number of plan computations by mode",
			},
			[]string{"mode"},
		),

		computationDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "computation_duration_seconds",
				Help:      "Plan computation duration distribution, dataset loading excluded",
				Buckets:   []float64{0.00001, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
			},
			[]string{"mode"},
		),

		legsPerPlan: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "legs_per_plan",
				Help:      "Number of legs in computed plans",
				Buckets:   []float64{1, 2, 3, 5, 8, 13, 21},
			},
		),

		takeoffFuel: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "takeoff_fuel_required_gallons",
				Help:      "Required takeoff fuel of computed plans",
				Buckets:   []float64{5, 10, 20, 30, 40, 50, 60, 75, 90},
			},
			[]string{"mode"},
		),

		datasetCacheTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "dataset_cache_lookups_total",
				Help:      "Performance dataset cache lookups by result",
			},
			[]string{"result"},
		),
	}
}

// Register registers all planner metrics with the Prometheus registry
func (c *PlannerMetricsCollector) Register() error {
	if Registry == nil {
		return nil // Metrics not enabled
	}

	metrics := []prometheus.Collector{
		c.computationsTotal,
		c.computationDuration,
		c.legsPerPlan,
		c.takeoffFuel,
		c.datasetCacheTotal,
	}

	for _, metric := range metrics {
		if err := Registry.Register(metric); err != nil {
			return err
		}
	}

	return nil
}

// RecordPlanComputation records one plan computation
func (c *PlannerMetricsCollector) RecordPlanComputation(
	mode ComputationMode,
	legs int,
	durationSeconds float64,
	takeoffFuelGal float64,
) {
	label := string(mode)
	c.computationsTotal.WithLabelValues(label).Inc()
	c.computationDuration.WithLabelValues(label).Observe(durationSeconds)
	c.legsPerPlan.Observe(float64(legs))
	c.takeoffFuel.WithLabelValues(label).Observe(takeoffFuelGal)
}

// RecordDatasetCacheLookup records a dataset cache hit or miss
func (c *PlannerMetricsCollector) RecordDatasetCacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	c.datasetCacheTotal.WithLabelValues(result).Inc()
}
