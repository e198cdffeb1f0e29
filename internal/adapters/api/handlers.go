package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	planCommands "github.com/andrescamacho/fuelplan-go/internal/application/planning/commands"
	planQueries "github.com/andrescamacho/fuelplan-go/internal/application/planning/queries"
	"github.com/andrescamacho/fuelplan-go/internal/domain/flightplan"
	"github.com/andrescamacho/fuelplan-go/internal/domain/performance"
)

// decode reads a JSON body. An empty body is accepted when optional is set.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst interface{}, optional bool) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, s.maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if optional && errors.Is(err, io.EOF) {
			return true
		}
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSONError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return false
		}
		writeJSONError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return false
	}
	return true
}

// allowSource rejects dataset sources outside the configured allow-list.
// Sources are never echoed back.
func (s *Server) allowSource(w http.ResponseWriter, source string) bool {
	source = strings.TrimSpace(source)
	if source == "" || s.sources[source] {
		return true
	}
	writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "dataset source not allowed", Field: "datasetSource"})
	return false
}

func (s *Server) handleCompute(w http.ResponseWriter, r *http.Request) {
	var req ComputeRequest
	if !s.decode(w, r, &req, false) {
		return
	}
	if !s.allowSource(w, req.DatasetSource) {
		return
	}

	resp, err := s.mediator.Send(r.Context(), &planQueries.ComputePlanQuery{
		Legs:          req.Legs,
		Settings:      req.Settings,
		DatasetSource: req.DatasetSource,
		Fallback:      req.Fallback,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleComputeSaved(w http.ResponseWriter, r *http.Request) {
	var req ComputeSavedRequest
	if !s.decode(w, r, &req, true) {
		return
	}
	if !s.allowSource(w, req.DatasetSource) {
		return
	}

	resp, err := s.mediator.Send(r.Context(), &planQueries.ComputeSavedPlanQuery{
		PlanID:        chi.URLParam(r, "id"),
		DatasetSource: req.DatasetSource,
		Fallback:      req.Fallback,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCruise(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := &planQueries.CruiseLookupQuery{
		Band:          performance.TempBand(q.Get("band")),
		DatasetSource: q.Get("source"),
	}
	if !s.allowSource(w, query.DatasetSource) {
		return
	}

	var err error
	if query.AltitudeFt, err = strconv.ParseFloat(q.Get("alt"), 64); err != nil {
		writeJSONError(w, http.StatusBadRequest, "alt must be a number of feet")
		return
	}
	if v := q.Get("rpm"); v != "" {
		if query.RPM, err = strconv.ParseFloat(v, 64); err != nil {
			writeJSONError(w, http.StatusBadRequest, "rpm must be a number")
			return
		}
	}
	if v := q.Get("mp"); v != "" {
		mp, err := strconv.ParseFloat(v, 64)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, "mp must be a number")
			return
		}
		query.ManifoldInHg = &mp
	}

	resp, err := s.mediator.Send(r.Context(), query)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListPlans(w http.ResponseWriter, r *http.Request) {
	resp, err := s.mediator.Send(r.Context(), &planQueries.ListPlansQuery{})
	if err != nil {
		writeError(w, err)
		return
	}

	plans := resp.(*planQueries.ListPlansResponse).Plans
	out := make([]PlanSummaryDTO, 0, len(plans))
	for _, p := range plans {
		out = append(out, PlanSummaryDTO{
			ID:              p.ID(),
			Name:            p.Name(),
			Legs:            len(p.Legs()),
			TotalDistanceNM: p.TotalDistanceNM(),
			UpdatedAt:       p.UpdatedAt(),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreatePlan(w http.ResponseWriter, r *http.Request) {
	var req CreatePlanRequest
	if !s.decode(w, r, &req, false) {
		return
	}

	resp, err := s.mediator.Send(r.Context(), &planCommands.CreatePlanCommand{
		Name:     req.Name,
		Legs:     req.Legs,
		Settings: req.Settings,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toPlanDTO(resp.(*planCommands.CreatePlanResponse).Plan))
}

func (s *Server) handleGetPlan(w http.ResponseWriter, r *http.Request) {
	resp, err := s.mediator.Send(r.Context(), &planQueries.GetPlanQuery{PlanID: chi.URLParam(r, "id")})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toPlanDTO(resp.(*planQueries.GetPlanResponse).Plan))
}

func (s *Server) handleDeletePlan(w http.ResponseWriter, r *http.Request) {
	if _, err := s.mediator.Send(r.Context(), &planCommands.DeletePlanCommand{PlanID: chi.URLParam(r, "id")}); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	var settings flightplan.Settings
	if !s.decode(w, r, &settings, false) {
		return
	}

	resp, err := s.mediator.Send(r.Context(), &planCommands.UpdatePlanSettingsCommand{
		PlanID:   chi.URLParam(r, "id"),
		Settings: settings,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toPlanDTO(resp.(*planCommands.UpdatePlanSettingsResponse).Plan))
}

func (s *Server) handleAddLeg(w http.ResponseWriter, r *http.Request) {
	var leg flightplan.Leg
	if !s.decode(w, r, &leg, false) {
		return
	}
	s.editLegs(w, r, &planCommands.UpdatePlanLegsCommand{Action: planCommands.LegActionAdd, Leg: leg})
}

func (s *Server) handleUpdateLeg(w http.ResponseWriter, r *http.Request) {
	var leg flightplan.Leg
	if !s.decode(w, r, &leg, false) {
		return
	}
	leg.ID = chi.URLParam(r, "legID")
	s.editLegs(w, r, &planCommands.UpdatePlanLegsCommand{Action: planCommands.LegActionUpdate, Leg: leg})
}

func (s *Server) handleRemoveLeg(w http.ResponseWriter, r *http.Request) {
	s.editLegs(w, r, &planCommands.UpdatePlanLegsCommand{
		Action: planCommands.LegActionRemove,
		LegID:  chi.URLParam(r, "legID"),
	})
}

func (s *Server) handleReorderLegs(w http.ResponseWriter, r *http.Request) {
	var req ReorderLegsRequest
	if !s.decode(w, r, &req, false) {
		return
	}
	s.editLegs(w, r, &planCommands.UpdatePlanLegsCommand{Action: planCommands.LegActionReorder, Order: req.Order})
}

func (s *Server) editLegs(w http.ResponseWriter, r *http.Request, cmd *planCommands.UpdatePlanLegsCommand) {
	cmd.PlanID = chi.URLParam(r, "id")
	resp, err := s.mediator.Send(r.Context(), cmd)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toPlanDTO(resp.(*planCommands.UpdatePlanLegsResponse).Plan))
}
