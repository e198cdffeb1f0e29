package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const (
	// Namespace for all metrics
	namespace = "fuelplan"
	// Subsystem for planner metrics
	subsystem = "planner"
)

var (
	// Registry is the global Prometheus registry for all metrics
	Registry *prometheus.Registry

	// globalPlannerCollector is set by SetGlobalPlannerCollector when
	// metrics are enabled
	globalPlannerCollector PlannerMetricsRecorder
)

// PlannerMetricsRecorder is used by application handlers to record plan
// computations without depending on Prometheus
type PlannerMetricsRecorder interface {
	RecordPlanComputation(mode ComputationMode, legs int, durationSeconds float64, takeoffFuelGal float64)
	RecordDatasetCacheLookup(hit bool)
}

// InitRegistry initializes the Prometheus registry with the Go runtime and
// process collectors. Should be called once at startup if metrics are enabled.
func InitRegistry() {
	Registry = prometheus.NewRegistry()
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// GetRegistry returns the global Prometheus registry
// Returns nil if metrics are not initialized
func GetRegistry() *prometheus.Registry {
	return Registry
}

// IsEnabled returns true if metrics collection is enabled
func IsEnabled() bool {
	return Registry != nil
}

// Reset drops the registry and global collector (for tests)
func Reset() {
	Registry = nil
	globalPlannerCollector = nil
}

// SetGlobalPlannerCollector sets the global planner metrics collector
func SetGlobalPlannerCollector(collector PlannerMetricsRecorder) {
	globalPlannerCollector = collector
}

// RecordPlanComputation records a plan computation globally
func RecordPlanComputation(mode ComputationMode, legs int, durationSeconds float64, takeoffFuelGal float64) {
	if globalPlannerCollector != nil {
		globalPlannerCollector.RecordPlanComputation(mode, legs, durationSeconds, takeoffFuelGal)
	}
}

// RecordDatasetCacheLookup records a dataset cache hit or miss globally
func RecordDatasetCacheLookup(hit bool) {
	if globalPlannerCollector != nil {
		globalPlannerCollector.RecordDatasetCacheLookup(hit)
	}
}

// GlobalRecorder forwards to whichever planner collector is installed
type GlobalRecorder struct{}

func (GlobalRecorder) RecordPlanComputation(mode ComputationMode, legs int, durationSeconds float64, takeoffFuelGal float64) {
	RecordPlanComputation(mode, legs, durationSeconds, takeoffFuelGal)
}

func (GlobalRecorder) RecordDatasetCacheLookup(hit bool) {
	RecordDatasetCacheLookup(hit)
}
