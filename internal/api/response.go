package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/erazemk/najdeno/internal/catalog"
)

// jsonResponse writes a JSON response with the given status code.
func jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			slog.Error("failed to encode response", "error", err)
		}
	}
}

// jsonError writes a JSON error response.
func jsonError(w http.ResponseWriter, status int, message string) {
	jsonResponse(w, status, map[string]string{"error": message})
}

// decodeJSON decodes a JSON request body into the given target.
func decodeJSON(r *http.Request, target any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(target)
}

// catalogError maps an engine error to an HTTP response.
func catalogError(w http.ResponseWriter, err error) {
	var verr *catalog.ValidationError
	var pf *catalog.PartialFailureError

	switch {
	case errors.As(err, &verr):
		jsonError(w, http.StatusBadRequest, verr.Error())
	case errors.As(err, &pf):
		// Reported before NotFound: a vanished item mid-transaction still
		// leaves partial progress the caller must know about.
		slog.Error("claim approval partially applied", "stage", pf.Stage, "error", pf.Err)
		jsonResponse(w, http.StatusInternalServerError, map[string]string{
			"error": "approval incomplete, retry the operation",
			"stage": string(pf.Stage),
		})
	case errors.Is(err, catalog.ErrNotFound):
		jsonError(w, http.StatusNotFound, "not found")
	case errors.Is(err, catalog.ErrConflict):
		jsonError(w, http.StatusConflict, "item already claimed")
	default:
		slog.Error("catalog operation failed", "error", err)
		jsonError(w, http.StatusInternalServerError, "internal error")
	}
}
