package repository

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/lmartins/servicofacil/internal/models"
)

// ProviderServiceInput carries the fields of a new provider service.
type ProviderServiceInput struct {
	Name          string
	Description   string
	Type          models.ServiceType
	Price         string
	EstimatedTime string
}

// ProviderServicePatch carries the provider-service fields to overwrite.
// Nil fields are left untouched.
type ProviderServicePatch struct {
	Name          *string
	Description   *string
	Type          *models.ServiceType
	Price         *string
	EstimatedTime *string
}

// ListProviderServices returns the services offered by this installation,
// in insertion order. The collection is not partitioned per account.
func (r *Repository) ListProviderServices(ctx context.Context) ([]models.ProviderService, error) {
	var services []models.ProviderService
	if _, err := r.load(ctx, keyProvider, r.json, &services); err != nil {
		return nil, err
	}
	return services, nil
}

// CreateProviderService validates and appends a new service, assigning the
// next free id (max existing id plus one, or 1 on an empty collection).
// Blank name or description fails with ErrValidation.
func (r *Repository) CreateProviderService(ctx context.Context, input ProviderServiceInput) (*models.ProviderService, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if strings.TrimSpace(input.Description) == "" {
		return nil, fmt.Errorf("%w: description is required", ErrValidation)
	}

	services, err := r.ListProviderServices(ctx)
	if err != nil {
		return nil, err
	}
	nextID := 1
	for _, s := range services {
		if s.ID >= nextID {
			nextID = s.ID + 1
		}
	}
	ts := r.timestamp()
	created := models.ProviderService{
		ID:            nextID,
		Name:          input.Name,
		Description:   input.Description,
		Type:          input.Type,
		Price:         input.Price,
		EstimatedTime: input.EstimatedTime,
		CreatedAt:     ts,
		UpdatedAt:     ts,
	}
	services = append(services, created)
	if err := r.save(ctx, keyProvider, r.json, services); err != nil {
		return nil, err
	}
	r.log.Info("provider service created", zap.Int("id", created.ID), zap.String("name", created.Name))
	return &created, nil
}

// UpdateProviderService merges patch into the service with the given id and
// refreshes its modification timestamp. A missing id fails with
// ErrNotFound.
func (r *Repository) UpdateProviderService(ctx context.Context, id int, patch ProviderServicePatch) error {
	services, err := r.ListProviderServices(ctx)
	if err != nil {
		return err
	}
	for i := range services {
		if services[i].ID != id {
			continue
		}
		if patch.Name != nil {
			services[i].Name = *patch.Name
		}
		if patch.Description != nil {
			services[i].Description = *patch.Description
		}
		if patch.Type != nil {
			services[i].Type = *patch.Type
		}
		if patch.Price != nil {
			services[i].Price = *patch.Price
		}
		if patch.EstimatedTime != nil {
			services[i].EstimatedTime = *patch.EstimatedTime
		}
		services[i].UpdatedAt = r.timestamp()
		return r.save(ctx, keyProvider, r.json, services)
	}
	return fmt.Errorf("%w: provider service %d", ErrNotFound, id)
}

// DeleteProviderService removes the service with the given id. Deleting an
// absent id is a successful no-op.
func (r *Repository) DeleteProviderService(ctx context.Context, id int) error {
	services, err := r.ListProviderServices(ctx)
	if err != nil {
		return err
	}
	kept := services[:0]
	for _, s := range services {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	if len(kept) == len(services) {
		return nil
	}
	if err := r.save(ctx, keyProvider, r.json, kept); err != nil {
		return err
	}
	r.log.Info("provider service deleted", zap.Int("id", id))
	return nil
}
