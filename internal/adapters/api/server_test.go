package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/fuelplan-go/internal/adapters/api"
	"github.com/andrescamacho/fuelplan-go/internal/adapters/metrics"
	"github.com/andrescamacho/fuelplan-go/internal/application/planning/queries"
	"github.com/andrescamacho/fuelplan-go/internal/application/setup"
	"github.com/andrescamacho/fuelplan-go/internal/domain/flightplan"
	"github.com/andrescamacho/fuelplan-go/test/helpers"
)

func newTestRouter(t *testing.T, opts api.Options) (http.Handler, *helpers.MockPlanRepository) {
	t.Helper()
	router, repo, _ := newTestRouterWithProvider(t, opts)
	return router, repo
}

func newTestRouterWithProvider(t *testing.T, opts api.Options) (http.Handler, *helpers.MockPlanRepository, *helpers.MockDatasetProvider) {
	t.Helper()
	repo := helpers.NewMockPlanRepository()
	provider := helpers.NewMockDatasetProvider(helpers.NewC182Dataset())
	registry := setup.NewHandlerRegistry(repo, provider, "builtin", flightplan.DefaultSettings(), nil)
	m, err := setup.NewPlanningMediator(registry)
	require.NoError(t, err)
	return api.NewRouter(m, opts), repo, provider
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

const fallbackBody = `{
  "legs": [
    {"from": "A", "to": "B", "distanceNM": 120, "plannedAltitudeFt": 8000},
    {"from": "B", "to": "C", "distanceNM": 250, "plannedAltitudeFt": 9000}
  ],
  "fallback": true
}`

func TestHealth(t *testing.T) {
	// Arrange
	router, _ := newTestRouter(t, api.Options{})

	// Act
	rec := do(t, router, http.MethodGet, "/health", "")

	// Assert
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestCompute_FallbackExample(t *testing.T) {
	// Arrange
	router, _ := newTestRouter(t, api.Options{})

	// Act
	rec := do(t, router, http.MethodPost, "/api/plan/compute", fallbackBody)

	// Assert
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp queries.ComputePlanResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, metrics.ModeFallback, resp.Mode)
	assert.InDelta(t, 164.44, resp.Result.Summary.TotalTimeMin, 0.01)
	assert.InDelta(t, 50.2, resp.Result.Summary.TakeoffFuelRequiredGal, 0.01)
	assert.Len(t, resp.Profile, 3)
}

func TestCompute_WithDataset(t *testing.T) {
	// Arrange
	router, _ := newTestRouter(t, api.Options{})
	body := `{"legs": [{"from": "A", "to": "B", "distanceNM": 50, "plannedAltitudeFt": 6000}]}`

	// Act
	rec := do(t, router, http.MethodPost, "/api/plan/compute", body)

	// Assert
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp queries.ComputePlanResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, metrics.ModeDataset, resp.Mode)
	require.NotNil(t, resp.Result.Legs[0].Climb)
	require.Len(t, resp.CruiseSettings, 1)
}

func TestCompute_BadRequests(t *testing.T) {
	router, _ := newTestRouter(t, api.Options{MaxBodyBytes: 64})

	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"malformed json", `{"legs": [`, http.StatusBadRequest},
		{"unknown field", `{"legz": []}`, http.StatusBadRequest},
		{"negative distance", `{"legs": [{"from": "A", "to": "B", "distanceNM": -1}]}`, http.StatusBadRequest},
		{"body too large", `{"legs": [` + strings.Repeat(`{"from": "A"},`, 20) + `{}]}`, http.StatusRequestEntityTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			rec := do(t, router, http.MethodPost, "/api/plan/compute", tt.body)

			// Assert
			assert.Equal(t, tt.status, rec.Code, rec.Body.String())
			var errResp api.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
			assert.NotEmpty(t, errResp.Error)
		})
	}
}

func TestPlansLifecycle(t *testing.T) {
	// Arrange
	router, repo := newTestRouter(t, api.Options{})

	// Act - create
	rec := do(t, router, http.MethodPost, "/api/plans", `{"name": "Bay", "legs": [{"from": "KPAO", "to": "KSQL", "distanceNM": 12}]}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created api.PlanDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.Len(t, created.Legs, 1)

	// Act - add leg
	rec = do(t, router, http.MethodPost, "/api/plans/"+created.ID+"/legs", `{"from": "KSQL", "to": "KHAF", "distanceNM": 20}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	// Act - list
	rec = do(t, router, http.MethodGet, "/api/plans", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var list []api.PlanSummaryDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, 2, list[0].Legs)
	assert.Equal(t, 32.0, list[0].TotalDistanceNM)

	// Act - compute saved
	rec = do(t, router, http.MethodPost, "/api/plans/"+created.ID+"/compute", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var computed queries.ComputePlanResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &computed))
	assert.Equal(t, "Bay", computed.PlanName)
	assert.Len(t, computed.Result.Legs, 2)

	// Act - delete
	rec = do(t, router, http.MethodDelete, "/api/plans/"+created.ID, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Zero(t, repo.Count())

	// Assert - gone
	rec = do(t, router, http.MethodGet, "/api/plans/"+created.ID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRemoveUnknownLeg(t *testing.T) {
	// Arrange
	router, _ := newTestRouter(t, api.Options{})
	rec := do(t, router, http.MethodPost, "/api/plans", `{"name": "Bay"}`)
	var created api.PlanDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	// Act
	rec = do(t, router, http.MethodDelete, "/api/plans/"+created.ID+"/legs/ghost", "")

	// Assert
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCruise(t *testing.T) {
	// Arrange
	router, _ := newTestRouter(t, api.Options{})

	// Act
	rec := do(t, router, http.MethodGet, "/api/cruise?alt=6000&rpm=2400&mp=20&band=stdPlus20C", "")
	bad := do(t, router, http.MethodGet, "/api/cruise?alt=high", "")

	// Assert
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp queries.CruiseLookupResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 132.0, resp.KTAS)
	assert.Equal(t, 11.4, resp.GPH)
	assert.Equal(t, http.StatusBadRequest, bad.Code)
}

func TestRateLimit(t *testing.T) {
	// Arrange
	router, _ := newTestRouter(t, api.Options{RequestsPerSecond: 0.001, Burst: 1})

	// Act
	first := do(t, router, http.MethodPost, "/api/plan/compute", fallbackBody)
	second := do(t, router, http.MethodPost, "/api/plan/compute", fallbackBody)
	health := do(t, router, http.MethodGet, "/health", "")

	// Assert
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Equal(t, "1", second.Header().Get("Retry-After"))
	assert.Equal(t, http.StatusOK, health.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	// Arrange
	metrics.InitRegistry()
	t.Cleanup(metrics.Reset)
	httpMetrics := metrics.NewHTTPMetricsCollector()
	require.NoError(t, httpMetrics.Register())
	router, _ := newTestRouter(t, api.Options{Registry: metrics.Registry, HTTPMetrics: httpMetrics})
	do(t, router, http.MethodPost, "/api/plan/compute", fallbackBody)

	// Act
	rec := do(t, router, http.MethodGet, "/metrics", "")

	// Assert
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `fuelplan_http_requests_total{method="POST",route="/api/plan/compute",status_code="200"} 1`)
	assert.True(t, bytes.Contains(rec.Body.Bytes(), []byte("go_goroutines")))
}

func TestDatasetSource_AllowList(t *testing.T) {
	// Arrange
	router, repo, provider := newTestRouterWithProvider(t, api.Options{AllowedSources: []string{"builtin", "https://example.com/c182s.json"}})
	rec := do(t, router, http.MethodPost, "/api/plans", `{"name": "Bay", "legs": [{"from": "A", "to": "B", "distanceNM": 50}]}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created api.PlanDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	leg := `{"legs": [{"from": "A", "to": "B", "distanceNM": 50}], `

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		status int
	}{
		{"compute with file path", http.MethodPost, "/api/plan/compute", leg + `"datasetSource": "/etc/passwd"}`, http.StatusBadRequest},
		{"compute with internal url", http.MethodPost, "/api/plan/compute", leg + `"datasetSource": "http://127.0.0.1:8080/admin"}`, http.StatusBadRequest},
		{"saved compute with file path", http.MethodPost, "/api/plans/" + created.ID + "/compute", `{"datasetSource": "/tmp/secret.json"}`, http.StatusBadRequest},
		{"cruise with file path", http.MethodGet, "/api/cruise?alt=6000&source=/tmp/secret.json", "", http.StatusBadRequest},
		{"compute with allowed url", http.MethodPost, "/api/plan/compute", leg + `"datasetSource": "https://example.com/c182s.json"}`, http.StatusOK},
		{"cruise with allowed source", http.MethodGet, "/api/cruise?alt=6000&source=builtin", "", http.StatusOK},
		{"compute with default source", http.MethodPost, "/api/plan/compute", leg + `"fallback": false}`, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			rec := do(t, router, tt.method, tt.path, tt.body)

			// Assert
			require.Equal(t, tt.status, rec.Code, rec.Body.String())
			if tt.status == http.StatusBadRequest {
				var errResp api.ErrorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
				assert.Equal(t, "datasetSource", errResp.Field)
				assert.NotContains(t, errResp.Error, "/")
			}
		})
	}

	assert.Equal(t, []string{"https://example.com/c182s.json", "builtin", "builtin"}, provider.Sources())
	assert.Equal(t, 1, repo.Count())
}

func TestDatasetSource_NoAllowListAcceptsOnlyDefault(t *testing.T) {
	// Arrange
	router, _, provider := newTestRouterWithProvider(t, api.Options{})

	// Act
	rejected := do(t, router, http.MethodGet, "/api/cruise?alt=6000&source=builtin", "")
	accepted := do(t, router, http.MethodGet, "/api/cruise?alt=6000", "")

	// Assert
	assert.Equal(t, http.StatusBadRequest, rejected.Code)
	assert.Equal(t, http.StatusOK, accepted.Code)
	assert.Equal(t, []string{"builtin"}, provider.Sources())
}

func TestReorderLegs(t *testing.T) {
	// Arrange
	router, _ := newTestRouter(t, api.Options{})
	rec := do(t, router, http.MethodPost, "/api/plans", `{"name": "Bay", "legs": [
		{"id": "a", "from": "KPAO", "to": "KSQL", "distanceNM": 12},
		{"id": "b", "from": "KSQL", "to": "KHAF", "distanceNM": 20}
	]}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created api.PlanDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	path := "/api/plans/" + created.ID + "/legs"

	// Act
	duplicate := do(t, router, http.MethodPut, path, `{"order": ["a", "a"]}`)
	missing := do(t, router, http.MethodPut, path, `{"order": ["b"]}`)
	unknown := do(t, router, http.MethodPut, path, `{"order": ["b", "ghost"]}`)
	reordered := do(t, router, http.MethodPut, path, `{"order": ["b", "a"]}`)

	// Assert
	assert.Equal(t, http.StatusBadRequest, duplicate.Code, duplicate.Body.String())
	assert.Equal(t, http.StatusBadRequest, missing.Code, missing.Body.String())
	assert.Equal(t, http.StatusNotFound, unknown.Code, unknown.Body.String())
	require.Equal(t, http.StatusOK, reordered.Code, reordered.Body.String())

	rec = do(t, router, http.MethodGet, "/api/plans/"+created.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var stored api.PlanDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stored))
	require.Len(t, stored.Legs, 2)
	assert.Equal(t, "b", stored.Legs[0].ID)
	assert.Equal(t, "a", stored.Legs[1].ID)
	assert.Equal(t, 32.0, stored.TotalDistanceNM)
}
