// Package repository implements the entity layer on top of the key-value
// store: named collections with a wire codec each, default seeding, and the
// CRUD/query operations consumed by the UI collaborators.
//
// Every operation is a whole-blob read-modify-write on one key. There is no
// cross-operation locking: two concurrent read-modify-writes on the same key
// interleave and the last write wins. That limitation is part of the
// contract for this single-user local store and is deliberately not hidden
// behind a lock.
package repository

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lmartins/servicofacil/internal/codec"
	"github.com/lmartins/servicofacil/internal/models"
	"github.com/lmartins/servicofacil/internal/store"
)

// Keys of the persisted collections inside the shared namespace. Each
// collection owns exactly one key, so cross-collection writes never collide.
const (
	keyAccounts = "accounts"
	keyProfile  = "profile"
	keySettings = "settings"
	keyCatalog  = "catalog_services"
	keyProvider = "provider_services"
)

// profileDoc is the legacy XML document wrapping the profile singleton.
type profileDoc struct {
	XMLName xml.Name `xml:"perfil"`
	models.Profile
}

// catalogDoc is the legacy XML document wrapping the catalog collection,
// one <prestador> element per listing.
type catalogDoc struct {
	XMLName  xml.Name                `xml:"servicos"`
	Services []models.CatalogService `xml:"prestador"`
}

// Repository exposes the collection operations over a KeyValueStore.
type Repository struct {
	store store.KeyValueStore
	json  codec.Codec
	xml   codec.Codec
	log   *zap.Logger

	// now and newID are swappable for deterministic tests.
	now   func() time.Time
	newID func() string
}

// New constructs a Repository over the given store.
func New(s store.KeyValueStore, log *zap.Logger) *Repository {
	if log == nil {
		log = zap.NewNop()
	}
	return &Repository{
		store: s,
		json:  codec.JSON{},
		xml:   codec.XML{},
		log:   log,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// timestamp returns the current time in the stored RFC 3339 form.
func (r *Repository) timestamp() string {
	return r.now().UTC().Format(time.RFC3339)
}

// load reads and decodes one collection. It reports found=false both for an
// absent key and for a blob that fails to decode: a malformed blob is
// logged and treated as if the collection did not exist, so a decode
// failure never crosses the repository boundary. IO errors propagate.
func (r *Repository) load(ctx context.Context, key string, c codec.Codec, v any) (bool, error) {
	blob, err := r.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, store.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	if err := c.Decode(blob, v); err != nil {
		r.log.Warn("malformed blob, treating collection as absent",
			zap.String("key", key),
			zap.String("codec", c.Name()),
			zap.Error(err))
		return false, nil
	}
	return true, nil
}

// save encodes and writes one collection under its key.
func (r *Repository) save(ctx context.Context, key string, c codec.Codec, v any) error {
	blob, err := c.Encode(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return r.store.Set(ctx, key, blob)
}

// Initialize seeds every collection that is still absent: the admin
// account, the empty profile, and the default catalog. It is idempotent
// and safe to call more than once; concurrent calls are last-writer-wins
// per key. A failed step is logged and skipped so that a partial store
// never blocks the app from starting.
func (r *Repository) Initialize(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := r.seedAccounts(ctx); err != nil {
		r.log.Warn("seeding accounts failed", zap.Error(err))
	}
	if err := r.seedProfile(ctx); err != nil {
		r.log.Warn("seeding profile failed", zap.Error(err))
	}
	if err := r.seedCatalog(ctx); err != nil {
		r.log.Warn("seeding catalog failed", zap.Error(err))
	}
	r.log.Info("local store initialized")
	return nil
}

// seedAccounts creates the privileged admin account when the account
// collection is empty.
func (r *Repository) seedAccounts(ctx context.Context) error {
	var accounts []models.Account
	if _, err := r.load(ctx, keyAccounts, r.json, &accounts); err != nil {
		return err
	}
	if len(accounts) > 0 {
		return nil
	}
	ts := r.timestamp()
	accounts = []models.Account{{
		ID:         1,
		Username:   models.AdminUsername,
		Password:   "admin",
		FirstLogin: true,
		CreatedAt:  ts,
		UpdatedAt:  ts,
	}}
	if err := r.save(ctx, keyAccounts, r.json, accounts); err != nil {
		return err
	}
	r.log.Info("admin account created with default password")
	return nil
}

// seedProfile writes the empty profile singleton when none exists or the
// stored one has neither a name nor an e-mail.
func (r *Repository) seedProfile(ctx context.Context) error {
	var doc profileDoc
	found, err := r.load(ctx, keyProfile, r.xml, &doc)
	if err != nil {
		return err
	}
	if found && (doc.Name != "" || doc.Email != "") {
		return nil
	}
	return r.save(ctx, keyProfile, r.xml, profileDoc{Profile: r.emptyProfile()})
}

// seedCatalog writes the default listings when the catalog is empty.
func (r *Repository) seedCatalog(ctx context.Context) error {
	var doc catalogDoc
	if _, err := r.load(ctx, keyCatalog, r.xml, &doc); err != nil {
		return err
	}
	if len(doc.Services) > 0 {
		return nil
	}
	if err := r.save(ctx, keyCatalog, r.xml, catalogDoc{Services: r.defaultCatalog()}); err != nil {
		return err
	}
	r.log.Info("default catalog seeded")
	return nil
}

// emptyProfile returns the default profile singleton.
func (r *Repository) emptyProfile() models.Profile {
	ts := r.timestamp()
	return models.Profile{ID: 1, CreatedAt: ts, UpdatedAt: ts}
}

// defaultCatalog returns the six seed listings spanning the four service
// categories.
func (r *Repository) defaultCatalog() []models.CatalogService {
	ts := r.timestamp()
	return []models.CatalogService{
		{
			ID:          1,
			Name:        "João Silva - Eletricista",
			Rating:      4.8,
			Description: "Especialista em instalações residenciais e comerciais. 10 anos de experiência.",
			Type:        models.Electrician,
			Phone:       "5511999999991",
			CreatedAt:   ts,
		},
		{
			ID:          2,
			Name:        "Maria Santos - Encanadora",
			Rating:      4.9,
			Description: "Resolve vazamentos e instalações hidráulicas. Atendimento rápido.",
			Type:        models.Plumber,
			Phone:       "5511999999992",
			CreatedAt:   ts,
		},
		{
			ID:          3,
			Name:        "Carlos Oliveira - Fotógrafo",
			Rating:      4.7,
			Description: "Fotografia de eventos, ensaios e produtos. Equipamento profissional.",
			Type:        models.Photographer,
			Phone:       "5511999999993",
			CreatedAt:   ts,
		},
		{
			ID:          4,
			Name:        "Pedro Costa - Pedreiro",
			Rating:      4.6,
			Description: "Construção, reformas e acabamentos. Trabalho garantido.",
			Type:        models.Mason,
			Phone:       "5511999999994",
			CreatedAt:   ts,
		},
		{
			ID:          5,
			Name:        "Ana Pereira - Eletricista",
			Rating:      4.5,
			Description: "Instalações elétricas prediais. Orçamento sem compromisso.",
			Type:        models.Electrician,
			Phone:       "5511999999995",
			CreatedAt:   ts,
		},
		{
			ID:          6,
			Name:        "Roberto Alves - Encanador",
			Rating:      4.4,
			Description: "Especialista em sistemas de água e gás. Atendimento 24h para emergências.",
			Type:        models.Plumber,
			Phone:       "5511999999996",
			CreatedAt:   ts,
		},
	}
}

// Dump is a snapshot of every collection, for diagnostics.
type Dump struct {
	Accounts         []models.Account         `json:"accounts"`
	Profile          models.Profile           `json:"profile"`
	Settings         models.Settings          `json:"settings"`
	Catalog          []models.CatalogService  `json:"catalog"`
	ProviderServices []models.ProviderService `json:"provider_services"`
}

// DumpAll returns the current state of every collection. Absent singletons
// are created on the way, the same as their individual getters.
func (r *Repository) DumpAll(ctx context.Context) (*Dump, error) {
	var accounts []models.Account
	if _, err := r.load(ctx, keyAccounts, r.json, &accounts); err != nil {
		return nil, err
	}
	profile, err := r.GetProfile(ctx)
	if err != nil {
		return nil, err
	}
	settings, err := r.GetSettings(ctx)
	if err != nil {
		return nil, err
	}
	catalog, err := r.ListCatalogServices(ctx, models.AnyService)
	if err != nil {
		return nil, err
	}
	provider, err := r.ListProviderServices(ctx)
	if err != nil {
		return nil, err
	}
	return &Dump{
		Accounts:         accounts,
		Profile:          profile,
		Settings:         settings,
		Catalog:          catalog,
		ProviderServices: provider,
	}, nil
}

// ResetAll wipes every collection and reseeds the defaults.
func (r *Repository) ResetAll(ctx context.Context) error {
	err := r.store.Remove(ctx, keyAccounts, keyProfile, keySettings, keyCatalog, keyProvider)
	if err != nil {
		return err
	}
	if err := r.Initialize(ctx); err != nil {
		return err
	}
	// settings normally seed on first read
	if _, err := r.GetSettings(ctx); err != nil {
		return err
	}
	r.log.Info("store wiped and reseeded")
	return nil
}
