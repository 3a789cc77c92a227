// Package models defines the core data structures persisted by the local
// marketplace store: accounts, the profile and settings singletons, and the
// two service collections.
package models

import "strconv"

// AdminUsername is the login name of the seeded privileged account.
const AdminUsername = "admin"

// Account represents a local application account with credentials.
type Account struct {
	// ID is the unique identifier for the account.
	ID int `json:"id"`
	// Username is the login name of the account.
	Username string `json:"username"`
	// Password is the stored password. Plaintext, local-only single-user
	// data; see the open questions in DESIGN.md.
	Password string `json:"password"`
	// FirstLogin marks an account that has never changed its password.
	FirstLogin bool `json:"first_login"`
	// CreatedAt is the creation timestamp in RFC 3339 form.
	CreatedAt string `json:"created_at"`
	// UpdatedAt is the last-modification timestamp in RFC 3339 form.
	UpdatedAt string `json:"updated_at"`
}

// Profile is the per-installation user profile singleton. Every field is a
// string; optional fields hold "" when unset so encode/decode stays
// idempotent.
type Profile struct {
	// ID is fixed to 1; the profile is a singleton.
	ID int `json:"id" xml:"id"`
	// Name is the display name of the user.
	Name string `json:"name" xml:"nome"`
	// Email is the contact e-mail address.
	Email string `json:"email" xml:"email"`
	// Phone is the contact phone number, stored verbatim.
	Phone string `json:"phone" xml:"telefone"`
	// Address is the street address.
	Address string `json:"address" xml:"endereco"`
	// City is the city of residence.
	City string `json:"city" xml:"cidade"`
	// PostalCode is the postal code.
	PostalCode string `json:"postal_code" xml:"cep"`
	// BirthDate is the birth date, stored verbatim.
	BirthDate string `json:"birth_date" xml:"dataNascimento"`
	// Bio is a free-form description.
	Bio string `json:"bio" xml:"bio"`
	// CreatedAt is the creation timestamp in RFC 3339 form.
	CreatedAt string `json:"created_at" xml:"criadoEm"`
	// UpdatedAt is the last-modification timestamp in RFC 3339 form.
	UpdatedAt string `json:"updated_at" xml:"atualizadoEm"`
}

// Settings is the per-installation settings singleton.
type Settings struct {
	// ProviderMode switches the UI between consumer and provider mode.
	ProviderMode bool `json:"provider_mode"`
	// ActiveUsername mirrors the current username of the admin account.
	ActiveUsername string `json:"active_username"`
	// InstallationID is a UUID assigned when the settings are first seeded.
	InstallationID string `json:"installation_id"`
	// CreatedAt is the creation timestamp in RFC 3339 form.
	CreatedAt string `json:"created_at"`
	// UpdatedAt is the last-modification timestamp in RFC 3339 form.
	UpdatedAt string `json:"updated_at"`
}

// CatalogService is a read-heavy listing in the browsable service catalog.
// The collection is stored in the legacy XML document format.
type CatalogService struct {
	// ID is unique within the catalog collection.
	ID int `json:"id" xml:"id"`
	// Name is the provider display name, e.g. "João Silva - Eletricista".
	Name string `json:"name" xml:"nome"`
	// Rating is the average rating on a 0–5 scale.
	Rating float64 `json:"rating" xml:"avaliacao"`
	// Description describes the offered service.
	Description string `json:"description" xml:"informacoes"`
	// Type is the service category.
	Type ServiceType `json:"service_type" xml:"tipoServico"`
	// Phone is the provider contact number, stored verbatim. The repository
	// never validates or dials it; deep-link construction is a UI concern.
	Phone string `json:"phone" xml:"telefone"`
	// CreatedAt is the creation timestamp in RFC 3339 form.
	CreatedAt string `json:"created_at" xml:"criadoEm"`
}

// ProviderService is a service offered by the acting account. The collection
// is independent from the catalog and not partitioned per account.
type ProviderService struct {
	// ID is unique within the provider collection.
	ID int `json:"id"`
	// Name is the service title.
	Name string `json:"name"`
	// Description describes the offered service.
	Description string `json:"description"`
	// Type is the service category.
	Type ServiceType `json:"service_type"`
	// Price is an optional free-form price, "" when unset.
	Price string `json:"price"`
	// EstimatedTime is an optional free-form duration, "" when unset.
	EstimatedTime string `json:"estimated_time"`
	// CreatedAt is the creation timestamp in RFC 3339 form.
	CreatedAt string `json:"created_at"`
	// UpdatedAt is the last-modification timestamp in RFC 3339 form.
	UpdatedAt string `json:"updated_at"`
}

// ServiceType is the closed set of service categories.
type ServiceType int

const (
	// AnyService is the zero value and matches every category in filters.
	AnyService ServiceType = 0
	// Electrician covers electrical installation and repair.
	Electrician ServiceType = 1
	// Plumber covers plumbing and hydraulics.
	Plumber ServiceType = 2
	// Photographer covers photography services.
	Photographer ServiceType = 3
	// Mason covers construction and renovation work.
	Mason ServiceType = 4
)

// Valid reports whether t is one of the four defined categories.
func (t ServiceType) Valid() bool {
	return t >= Electrician && t <= Mason
}

// String returns the lower-case category name.
func (t ServiceType) String() string {
	switch t {
	case Electrician:
		return "electrician"
	case Plumber:
		return "plumber"
	case Photographer:
		return "photographer"
	case Mason:
		return "mason"
	case AnyService:
		return "any"
	default:
		return "servicetype(" + strconv.Itoa(int(t)) + ")"
	}
}

// ParseServiceType converts a stored numeric value into a ServiceType.
// Values outside the closed set come back as AnyService so that legacy
// loosely-typed records degrade to "uncategorized" instead of failing.
func ParseServiceType(v int) ServiceType {
	t := ServiceType(v)
	if !t.Valid() {
		return AnyService
	}
	return t
}
