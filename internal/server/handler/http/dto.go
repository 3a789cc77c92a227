package http

import (
	"github.com/go-playground/validator/v10"

	"github.com/lmartins/servicofacil/internal/models"
)

// validate checks the request DTOs below; the tags mirror the repository's
// own field constraints so obviously bad input is rejected at the edge.
var validate = validator.New()

// LoginRequest is the payload for POST /api/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse echoes the matched account without its password.
type LoginResponse struct {
	ID         int    `json:"id"`
	Username   string `json:"username"`
	FirstLogin bool   `json:"first_login"`
}

// ChangePasswordRequest is the payload for POST /api/password.
type ChangePasswordRequest struct {
	Username    string `json:"username" validate:"required"`
	NewPassword string `json:"new_password" validate:"required"`
}

// RenameRequest is the payload for POST /api/username.
type RenameRequest struct {
	Username string `json:"username" validate:"required,min=3"`
}

// ProfileRequest is the payload for PUT /api/profile. Absent fields are
// left untouched; present fields overwrite, including with "".
type ProfileRequest struct {
	Name       *string `json:"name"`
	Email      *string `json:"email"`
	Phone      *string `json:"phone"`
	Address    *string `json:"address"`
	City       *string `json:"city"`
	PostalCode *string `json:"postal_code"`
	BirthDate  *string `json:"birth_date"`
	Bio        *string `json:"bio"`
}

// SettingsRequest is the payload for PUT /api/settings.
type SettingsRequest struct {
	ProviderMode   *bool   `json:"provider_mode"`
	ActiveUsername *string `json:"active_username"`
}

// ToggleResponse reports the provider-mode value after a toggle.
type ToggleResponse struct {
	ProviderMode bool `json:"provider_mode"`
}

// CreateServiceRequest is the payload for POST /api/provider/services.
type CreateServiceRequest struct {
	Name          string `json:"name" validate:"required"`
	Description   string `json:"description" validate:"required"`
	ServiceType   int    `json:"service_type" validate:"omitempty,min=0,max=4"`
	Price         string `json:"price"`
	EstimatedTime string `json:"estimated_time"`
}

// UpdateServiceRequest is the payload for PUT /api/provider/services/{id}.
type UpdateServiceRequest struct {
	Name          *string `json:"name"`
	Description   *string `json:"description"`
	ServiceType   *int    `json:"service_type" validate:"omitempty,min=0,max=4"`
	Price         *string `json:"price"`
	EstimatedTime *string `json:"estimated_time"`
}

// serviceType converts the wire integer into the closed enum.
func serviceType(v int) models.ServiceType {
	return models.ParseServiceType(v)
}
