// Package respond writes JSON responses and maps service errors onto the
// problem-body taxonomy.
package respond

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync/atomic"

	"github.com/rs/zerolog/log"

	"github.com/actuli/actuli-api/internal/model"
)

// Problem is the JSON error body.
type Problem struct {
	Status int    `json:"status"`
	Title  string `json:"title"`
	Detail string `json:"detail,omitempty"`
}

// includeDetail controls whether problem bodies carry error detail.
// Cleared in production, set everywhere else. Bound once at startup.
var includeDetail atomic.Bool

func init() { includeDetail.Store(true) }

// BindDetailPolicy sets whether problem bodies carry error detail.
func BindDetailPolicy(include bool) { includeDetail.Store(include) }

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// WriteProblem writes a problem body with the given status and title.
func WriteProblem(w http.ResponseWriter, statusCode int, title, detail string) {
	p := Problem{Status: statusCode, Title: title}
	if includeDetail.Load() {
		p.Detail = detail
	}
	WriteJSON(w, statusCode, p)
}

// WriteError maps err onto the error taxonomy and writes the problem body.
func WriteError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrValidation):
		WriteProblem(w, http.StatusBadRequest, "Validation Error", err.Error())
	case errors.Is(err, model.ErrUnauthorized):
		WriteProblem(w, http.StatusUnauthorized, "Unauthorized Access", err.Error())
	case errors.Is(err, model.ErrNotFound):
		WriteProblem(w, http.StatusNotFound, "Resource Not Found", err.Error())
	case errors.Is(err, model.ErrConflict):
		WriteProblem(w, http.StatusConflict, "Invalid Operation", err.Error())
	case errors.Is(err, model.ErrNotImplemented):
		WriteProblem(w, http.StatusNotImplemented, "Feature Not Implemented", err.Error())
	default:
		log.Error().Err(err).Msg("unhandled error reached the HTTP boundary")
		WriteProblem(w, http.StatusInternalServerError, "An Unhandled Error Occurred", err.Error())
	}
}

// WriteBadRequest writes a 400 problem body.
func WriteBadRequest(w http.ResponseWriter, detail string) {
	WriteProblem(w, http.StatusBadRequest, "Validation Error", detail)
}

// WriteNotFound writes a 404 problem body.
func WriteNotFound(w http.ResponseWriter, detail string) {
	WriteProblem(w, http.StatusNotFound, "Resource Not Found", detail)
}
