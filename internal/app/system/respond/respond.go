// Package respond writes JSON responses and maps classified errors onto
// HTTP statuses: validation 400, not found 404, conflict 409, storage
// unavailable 503, everything else 500.
package respond

import (
	"encoding/json"
	"net/http"

	"github.com/cafehubapp/cafehub/internal/app/system/apperr"
	"go.uber.org/zap"
)

type errorBody struct {
	Error string `json:"error"`
}

// JSON writes v with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Err writes err as a JSON error body with the status for its kind.
// Server-side failures are logged; client errors are not.
func Err(w http.ResponseWriter, logger *zap.Logger, msg string, err error) {
	status := http.StatusInternalServerError
	switch {
	case apperr.IsValidation(err):
		status = http.StatusBadRequest
	case apperr.IsNotFound(err):
		status = http.StatusNotFound
	case apperr.IsConflict(err):
		status = http.StatusConflict
	case apperr.IsUnavailable(err):
		status = http.StatusServiceUnavailable
	}
	if status >= 500 {
		logger.Error(msg, zap.Error(err))
	}
	JSON(w, status, errorBody{Error: err.Error()})
}
