package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/andrescamacho/fuelplan-go/internal/application/common"
	"github.com/andrescamacho/fuelplan-go/internal/domain/shared"
)

// Outcome labels of fuelplan_planner_requests_total
const (
	StatusSuccess      = "success"
	StatusInvalid      = "invalid"
	StatusNotFound     = "not_found"
	StatusDatasetError = "dataset_error"
	StatusError        = "error"
)

// PrometheusMiddleware creates a mediator middleware that records the
// duration and outcome of every command and query.
// Request names drop the package prefix: "*queries.ComputePlanQuery"
// becomes "ComputePlanQuery".
func PrometheusMiddleware(collector *RequestMetricsCollector) common.Middleware {
	return func(ctx context.Context, request common.Request, next common.HandlerFunc) (common.Response, error) {
		if collector == nil {
			return next(ctx, request)
		}

		start := time.Now()
		response, err := next(ctx, request)
		collector.RecordRequestExecution(common.RequestName(request), time.Since(start).Seconds(), RequestStatus(err))

		return response, err
	}
}

// RequestStatus maps a handler error onto its outcome label
func RequestStatus(err error) string {
	var (
		validationErr *shared.ValidationError
		planErr       *shared.PlanNotFoundError
		legErr        *shared.LegNotFoundError
		datasetErr    *shared.DatasetError
	)
	switch {
	case err == nil:
		return StatusSuccess
	case errors.As(err, &validationErr):
		return StatusInvalid
	case errors.As(err, &planErr), errors.As(err, &legErr):
		return StatusNotFound
	case errors.As(err, &datasetErr):
		return StatusDatasetError
	default:
		return StatusError
	}
}
