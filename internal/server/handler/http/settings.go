package http

import (
	"context"
	"net/http"

	"github.com/lmartins/servicofacil/internal/models"
	"github.com/lmartins/servicofacil/internal/repository"
)

// SettingsService defines the settings operations required by the handlers.
type SettingsService interface {
	GetSettings(ctx context.Context) (models.Settings, error)
	SaveSettings(ctx context.Context, patch repository.SettingsPatch) error
	ToggleProviderMode(ctx context.Context) (bool, error)
	DeleteAccountData(ctx context.Context) error
}

// SettingsHandler handles the settings singleton and account-data deletion.
type SettingsHandler struct {
	Service SettingsService
}

// Get handles GET /api/settings.
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	settings, err := h.Service.GetSettings(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

// Save handles PUT /api/settings and replies with the merged settings.
func (h *SettingsHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req SettingsRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	patch := repository.SettingsPatch{
		ProviderMode:   req.ProviderMode,
		ActiveUsername: req.ActiveUsername,
	}
	if err := h.Service.SaveSettings(r.Context(), patch); err != nil {
		writeError(w, err)
		return
	}
	settings, err := h.Service.GetSettings(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

// Toggle handles POST /api/settings/provider-mode.
func (h *SettingsHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	mode, err := h.Service.ToggleProviderMode(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ToggleResponse{ProviderMode: mode})
}

// DeleteAccount handles DELETE /api/account: profile and settings reset to
// defaults, everything else preserved.
func (h *SettingsHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeleteAccountData(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
