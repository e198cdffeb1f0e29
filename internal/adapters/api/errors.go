package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/andrescamacho/fuelplan-go/internal/domain/shared"
)

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// writeError maps domain errors onto HTTP status codes
func writeError(w http.ResponseWriter, err error) {
	var (
		validationErr *shared.ValidationError
		planNotFound  *shared.PlanNotFoundError
		legNotFound   *shared.LegNotFoundError
		datasetErr    *shared.DatasetError
	)

	switch {
	case errors.As(err, &validationErr):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error(), Field: validationErr.Field})
	case errors.As(err, &planNotFound), errors.As(err, &legNotFound):
		writeJSONError(w, http.StatusNotFound, err.Error())
	case errors.As(err, &datasetErr):
		writeJSONError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		writeJSONError(w, http.StatusInternalServerError, err.Error())
	}
}
