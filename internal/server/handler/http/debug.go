package http

import (
	"context"
	"net/http"

	"github.com/lmartins/servicofacil/internal/repository"
)

// Diagnostics defines the debug operations required by the handlers.
type Diagnostics interface {
	DumpAll(ctx context.Context) (*repository.Dump, error)
	ResetAll(ctx context.Context) error
}

// DebugHandler exposes the diagnostics surface. Dump responses include
// stored passwords, so the router keeps these routes on the local API only.
type DebugHandler struct {
	Service Diagnostics
}

// Dump handles GET /api/debug/dump.
func (h *DebugHandler) Dump(w http.ResponseWriter, r *http.Request) {
	dump, err := h.Service.DumpAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dump)
}

// Reset handles POST /api/debug/reset: wipe and reseed every collection.
func (h *DebugHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.ResetAll(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
