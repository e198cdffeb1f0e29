package queries

import (
	"context"
	"fmt"
	"math"

	"github.com/andrescamacho/fuelplan-go/internal/application/common"
	"github.com/andrescamacho/fuelplan-go/internal/application/planning"
	"github.com/andrescamacho/fuelplan-go/internal/domain/performance"
	"github.com/andrescamacho/fuelplan-go/internal/domain/shared"
)

// CruiseLookupQuery looks up cruise performance for one power setting
type CruiseLookupQuery struct {
	AltitudeFt    float64
	RPM           float64  // 0 selects the default RPM
	ManifoldInHg  *float64 // Optional: nil selects the first row
	Band          performance.TempBand
	DatasetSource string
}

// CruiseLookupResponse is the interpolated cruise performance for the
// resolved power setting
type CruiseLookupResponse struct {
	AltitudeFt    float64              `json:"altitudeFt"`
	RPM           float64              `json:"rpm"`
	ManifoldInHg  *float64             `json:"manifoldInHg,omitempty"`
	Band          performance.TempBand `json:"tempBand"`
	KTAS          float64              `json:"ktas"`
	GPH           float64              `json:"gph"`
	DatasetSource string               `json:"datasetSource"`
}

// CruiseLookupHandler handles the CruiseLookup query
type CruiseLookupHandler struct {
	datasets *planning.DatasetSelector
}

// NewCruiseLookupHandler creates a new CruiseLookupHandler
func NewCruiseLookupHandler(datasets *planning.DatasetSelector) *CruiseLookupHandler {
	return &CruiseLookupHandler{datasets: datasets}
}

// Handle executes the CruiseLookup query
func (h *CruiseLookupHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*CruiseLookupQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *CruiseLookupQuery")
	}

	if math.IsNaN(query.AltitudeFt) || math.IsInf(query.AltitudeFt, 0) {
		return nil, shared.NewValidationError("altitudeFt", "must be a finite number")
	}
	band := query.Band
	if band == "" {
		band = performance.TempBandStd
	}
	if !band.IsValid() {
		return nil, shared.NewValidationError("tempBand", fmt.Sprintf("unknown band %q", band))
	}
	rpm := query.RPM
	if rpm <= 0 {
		rpm = performance.DefaultCruiseRPM
	}

	ds, source, err := h.datasets.Select(ctx, query.DatasetSource, false)
	if err != nil {
		return nil, err
	}
	if ds == nil {
		return nil, shared.NewDatasetError(source, fmt.Errorf("no performance dataset configured"))
	}

	q := performance.CruiseQuery{
		AltitudeFt:   math.Max(0, query.AltitudeFt),
		RPM:          rpm,
		ManifoldInHg: query.ManifoldInHg,
		Band:         band,
	}
	perf, ok := performance.CruiseAtAltitude(ds, q)
	if !ok {
		return nil, shared.NewDatasetError(source, fmt.Errorf("no cruise data for %.0f ft at %.0f RPM", q.AltitudeFt, rpm))
	}

	return &CruiseLookupResponse{
		AltitudeFt:    q.AltitudeFt,
		RPM:           rpm,
		ManifoldInHg:  query.ManifoldInHg,
		Band:          band,
		KTAS:          perf.KTAS,
		GPH:           perf.GPH,
		DatasetSource: source,
	}, nil
}
