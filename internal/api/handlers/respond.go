package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/crowdship-app/crowdship-api/internal/domain"
)

// Every response uses the uniform envelope: {"success": bool, ...payload} on
// success, {"success": false, "error": "..."} on failure. Callers branch on
// success before trusting the payload.

func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

func respondSuccess(w http.ResponseWriter, status int, fields map[string]any) {
	payload := map[string]any{"success": true}
	for k, v := range fields {
		payload[k] = v
	}
	writeJSON(w, status, payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{"success": false, "error": message})
}

// respondServiceError maps domain errors to HTTP statuses. Unknown errors
// are logged and surfaced as a generic message so nothing internal leaks.
func respondServiceError(w http.ResponseWriter, err error) {
	var validationErr *domain.ValidationError
	switch {
	case errors.Is(err, domain.ErrNotAuthenticated):
		respondError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrInvalidCredentials):
		respondError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrEmailExists):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrNotOwner):
		respondError(w, http.StatusForbidden, err.Error())
	case errors.As(err, &validationErr):
		respondError(w, http.StatusBadRequest, validationErr.Reason)
	case errors.Is(err, domain.ErrStorageUnavailable):
		log.Printf("ERROR [handlers] storage failure: %v", err)
		respondError(w, http.StatusServiceUnavailable, domain.ErrStorageUnavailable.Error())
	default:
		log.Printf("ERROR [handlers] unexpected error: %v", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
	}
}
