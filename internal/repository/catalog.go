package repository

import (
	"context"
	"sort"
	"strings"

	"github.com/lmartins/servicofacil/internal/models"
)

// ListCatalogServices returns the catalog listings, seeding the defaults
// when the collection is empty. When typeFilter is a defined category only
// matching listings are returned; AnyService returns everything.
//
// The result order is part of the contract: rating descending, ties broken
// by name ascending with a case-insensitive compare.
func (r *Repository) ListCatalogServices(ctx context.Context, typeFilter models.ServiceType) ([]models.CatalogService, error) {
	var doc catalogDoc
	if _, err := r.load(ctx, keyCatalog, r.xml, &doc); err != nil {
		return nil, err
	}
	if len(doc.Services) == 0 {
		doc.Services = r.defaultCatalog()
		if err := r.save(ctx, keyCatalog, r.xml, catalogDoc{Services: doc.Services}); err != nil {
			return nil, err
		}
	}

	services := doc.Services
	if typeFilter != models.AnyService {
		filtered := services[:0]
		for _, s := range services {
			if s.Type == typeFilter {
				filtered = append(filtered, s)
			}
		}
		services = filtered
	}

	sort.SliceStable(services, func(i, j int) bool {
		if services[i].Rating != services[j].Rating {
			return services[i].Rating > services[j].Rating
		}
		return strings.ToLower(services[i].Name) < strings.ToLower(services[j].Name)
	})
	return services, nil
}
