package http

import (
	"context"
	"net/http"

	"github.com/lmartins/servicofacil/internal/models"
	"github.com/lmartins/servicofacil/internal/repository"
)

// ProfileService defines the profile operations required by the handlers.
type ProfileService interface {
	GetProfile(ctx context.Context) (models.Profile, error)
	SaveProfile(ctx context.Context, patch repository.ProfilePatch) error
}

// ProfileHandler handles the profile singleton.
type ProfileHandler struct {
	Service ProfileService
}

// Get handles GET /api/profile.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	profile, err := h.Service.GetProfile(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// Save handles PUT /api/profile and replies with the merged profile.
func (h *ProfileHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req ProfileRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	patch := repository.ProfilePatch{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Address:    req.Address,
		City:       req.City,
		PostalCode: req.PostalCode,
		BirthDate:  req.BirthDate,
		Bio:        req.Bio,
	}
	if err := h.Service.SaveProfile(r.Context(), patch); err != nil {
		writeError(w, err)
		return
	}
	profile, err := h.Service.GetProfile(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}
