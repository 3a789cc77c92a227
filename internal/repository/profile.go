package repository

import (
	"context"

	"github.com/lmartins/servicofacil/internal/models"
)

// ProfilePatch carries the profile fields to overwrite. Nil fields are left
// untouched; set fields replace the stored value, including with "".
type ProfilePatch struct {
	Name       *string
	Email      *string
	Phone      *string
	Address    *string
	City       *string
	PostalCode *string
	BirthDate  *string
	Bio        *string
}

// GetProfile returns the profile singleton, creating the empty default when
// it is absent. Every field of the result is defined; optional fields that
// were never set hold "".
func (r *Repository) GetProfile(ctx context.Context) (models.Profile, error) {
	var doc profileDoc
	found, err := r.load(ctx, keyProfile, r.xml, &doc)
	if err != nil {
		return models.Profile{}, err
	}
	if !found {
		doc.Profile = r.emptyProfile()
		if err := r.save(ctx, keyProfile, r.xml, profileDoc{Profile: doc.Profile}); err != nil {
			return models.Profile{}, err
		}
	}
	return doc.Profile, nil
}

// SaveProfile overwrites the stored profile with the fields set in patch
// and refreshes the modification timestamp. Field-level validation is the
// caller's concern; the repository persists whatever it is handed.
func (r *Repository) SaveProfile(ctx context.Context, patch ProfilePatch) error {
	profile, err := r.GetProfile(ctx)
	if err != nil {
		return err
	}
	apply := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	apply(&profile.Name, patch.Name)
	apply(&profile.Email, patch.Email)
	apply(&profile.Phone, patch.Phone)
	apply(&profile.Address, patch.Address)
	apply(&profile.City, patch.City)
	apply(&profile.PostalCode, patch.PostalCode)
	apply(&profile.BirthDate, patch.BirthDate)
	apply(&profile.Bio, patch.Bio)
	profile.UpdatedAt = r.timestamp()
	return r.save(ctx, keyProfile, r.xml, profileDoc{Profile: profile})
}
