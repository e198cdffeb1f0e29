package api

import (
	"time"

	"github.com/andrescamacho/fuelplan-go/internal/domain/flightplan"
)

// ComputeRequest is the body of POST /api/plan/compute
type ComputeRequest struct {
	Legs          []flightplan.Leg     `json:"legs"`
	Settings      *flightplan.Settings `json:"settings,omitempty"`
	DatasetSource string               `json:"datasetSource,omitempty"`
	Fallback      bool                 `json:"fallback,omitempty"`
}

// ComputeSavedRequest is the optional body of POST /api/plans/{id}/compute
type ComputeSavedRequest struct {
	DatasetSource string `json:"datasetSource,omitempty"`
	Fallback      bool   `json:"fallback,omitempty"`
}

// CreatePlanRequest is the body of POST /api/plans
type CreatePlanRequest struct {
	Name     string               `json:"name"`
	Legs     []flightplan.Leg     `json:"legs"`
	Settings *flightplan.Settings `json:"settings,omitempty"`
}

// ReorderLegsRequest is the body of PUT /api/plans/{id}/legs
type ReorderLegsRequest struct {
	Order []string `json:"order"`
}

// PlanDTO is the JSON form of a saved plan
type PlanDTO struct {
	ID              string              `json:"id"`
	Name            string              `json:"name"`
	Legs            []flightplan.Leg    `json:"legs"`
	Settings        flightplan.Settings `json:"settings"`
	TotalDistanceNM float64             `json:"totalDistanceNM"`
	CreatedAt       time.Time           `json:"createdAt"`
	UpdatedAt       time.Time           `json:"updatedAt"`
}

func toPlanDTO(plan *flightplan.Plan) PlanDTO {
	return PlanDTO{
		ID:              plan.ID(),
		Name:            plan.Name(),
		Legs:            plan.Legs(),
		Settings:        plan.Settings(),
		TotalDistanceNM: plan.TotalDistanceNM(),
		CreatedAt:       plan.CreatedAt(),
		UpdatedAt:       plan.UpdatedAt(),
	}
}

// PlanSummaryDTO is one entry of GET /api/plans
type PlanSummaryDTO struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Legs            int       `json:"legs"`
	TotalDistanceNM float64   `json:"totalDistanceNM"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ErrorResponse is the JSON body of every error reply
type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}
