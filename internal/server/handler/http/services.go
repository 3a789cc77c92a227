package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/lmartins/servicofacil/internal/models"
	"github.com/lmartins/servicofacil/internal/repository"
)

// CatalogService defines the catalog query required by the handlers.
type CatalogService interface {
	ListCatalogServices(ctx context.Context, typeFilter models.ServiceType) ([]models.CatalogService, error)
}

// ProviderStore defines the provider-service CRUD required by the handlers.
type ProviderStore interface {
	ListProviderServices(ctx context.Context) ([]models.ProviderService, error)
	CreateProviderService(ctx context.Context, input repository.ProviderServiceInput) (*models.ProviderService, error)
	UpdateProviderService(ctx context.Context, id int, patch repository.ProviderServicePatch) error
	DeleteProviderService(ctx context.Context, id int) error
}

// ServicesHandler handles the catalog listing and the provider-service
// collection.
type ServicesHandler struct {
	Catalog  CatalogService
	Provider ProviderStore
}

// ListCatalog handles GET /api/services?type=N. The filter defaults to
// "any"; non-numeric and out-of-range values are rejected.
func (h *ServicesHandler) ListCatalog(w http.ResponseWriter, r *http.Request) {
	filter := models.AnyService
	if raw := r.URL.Query().Get("type"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || (n != 0 && !models.ServiceType(n).Valid()) {
			http.Error(w, "invalid service type", http.StatusBadRequest)
			return
		}
		filter = models.ServiceType(n)
	}
	services, err := h.Catalog.ListCatalogServices(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, services)
}

// ListProvider handles GET /api/provider/services.
func (h *ServicesHandler) ListProvider(w http.ResponseWriter, r *http.Request) {
	services, err := h.Provider.ListProviderServices(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if services == nil {
		services = []models.ProviderService{}
	}
	writeJSON(w, http.StatusOK, services)
}

// CreateProvider handles POST /api/provider/services.
func (h *ServicesHandler) CreateProvider(w http.ResponseWriter, r *http.Request) {
	var req CreateServiceRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	created, err := h.Provider.CreateProviderService(r.Context(), repository.ProviderServiceInput{
		Name:          req.Name,
		Description:   req.Description,
		Type:          serviceType(req.ServiceType),
		Price:         req.Price,
		EstimatedTime: req.EstimatedTime,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// UpdateProvider handles PUT /api/provider/services/{id}.
func (h *ServicesHandler) UpdateProvider(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid service id", http.StatusBadRequest)
		return
	}
	var req UpdateServiceRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	patch := repository.ProviderServicePatch{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		EstimatedTime: req.EstimatedTime,
	}
	if req.ServiceType != nil {
		t := serviceType(*req.ServiceType)
		patch.Type = &t
	}
	if err := h.Provider.UpdateProviderService(r.Context(), id, patch); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// DeleteProvider handles DELETE /api/provider/services/{id}. Deleting an
// absent id succeeds.
func (h *ServicesHandler) DeleteProvider(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid service id", http.StatusBadRequest)
		return
	}
	if err := h.Provider.DeleteProviderService(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
