package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lmartins/servicofacil/internal/repository"
)

// writeJSON writes v as a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps repository errors to HTTP status codes. Anything outside
// the typed taxonomy is an IO-level failure and stays opaque to the client.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrValidation):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, repository.ErrConflict):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, repository.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// decodeAndValidate decodes the JSON request body into v and runs the
// validator over it. It writes the error response itself and reports
// whether the handler may proceed.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return false
	}
	if err := validate.Struct(v); err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return false
	}
	return true
}
