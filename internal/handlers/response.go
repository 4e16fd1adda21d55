package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-game-marketplace/internal/logger"
	"github.com/sbilibin2017/gw-game-marketplace/internal/models"
	"github.com/sbilibin2017/gw-game-marketplace/internal/policy"
)

// Response is the envelope of every API response
// swagger:model Response
type Response struct {
	// Whether the request succeeded
	// default: true
	Success bool `json:"success"`

	// Payload of a successful request
	Data any `json:"data,omitempty"`

	// Error message of a failed request
	Error string `json:"error,omitempty"`
}

// ErrorResponse represents a failed request
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Always false
	// default: false
	Success bool `json:"success"`

	// Error message
	// default: not found: listing not found
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, Response{Success: true, Data: data})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, Response{Success: false, Error: msg})
}

// errorStatus maps an error kind to an HTTP status. conflictStatus lets an
// endpoint report conflicts as something other than 409.
func errorStatus(err error, conflictStatus int) int {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, models.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrConflict):
		return conflictStatus
	}
	return http.StatusInternalServerError
}

func writeServiceError(ctx context.Context, w http.ResponseWriter, err error, conflictStatus int) {
	status := errorStatus(err, conflictStatus)
	if status == http.StatusInternalServerError {
		logger.FromContext(ctx).Errorw("internal server error", "error", err)
		writeError(w, status, "Internal server error")
		return
	}
	writeError(w, status, err.Error())
}

// requireActor returns the authenticated actor or writes 401.
func requireActor(w http.ResponseWriter, r *http.Request) (policy.Actor, bool) {
	actor, ok := policy.ActorFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return policy.Actor{}, false
	}
	return actor, true
}

// pathID parses the {id} URL parameter or writes 400.
func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return uuid.Nil, false
	}
	return id, true
}
