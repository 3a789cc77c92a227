package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/lmartins/servicofacil/internal/middleware"
)

// NewRouter constructs the HTTP handler for the local API. It enforces JSON
// request bodies, logs each request, and mounts the repository operations
// under /api:
//
//	POST   /api/login                      → accounts.Login
//	POST   /api/password                   → accounts.ChangePassword
//	POST   /api/password/reset             → accounts.ResetPassword
//	POST   /api/username                   → accounts.Rename
//	GET    /api/profile                    → profile.Get
//	PUT    /api/profile                    → profile.Save
//	GET    /api/settings                   → settings.Get
//	PUT    /api/settings                   → settings.Save
//	POST   /api/settings/provider-mode     → settings.Toggle
//	DELETE /api/account                    → settings.DeleteAccount
//	GET    /api/services                   → services.ListCatalog
//	GET    /api/provider/services          → services.ListProvider
//	POST   /api/provider/services          → services.CreateProvider
//	PUT    /api/provider/services/{id}     → services.UpdateProvider
//	DELETE /api/provider/services/{id}     → services.DeleteProvider
//	GET    /api/debug/dump                 → debug.Dump
//	POST   /api/debug/reset                → debug.Reset
func NewRouter(
	accounts *AccountHandler,
	profile *ProfileHandler,
	settings *SettingsHandler,
	services *ServicesHandler,
	debug *DebugHandler,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Only allow requests with Content-Type: application/json
	r.Use(chiMiddleware.AllowContentType("application/json"))

	// Log each request and its metadata
	r.Use(middleware.WithRequestLogging(logger))

	r.Route("/api", func(r chi.Router) {
		r.Post("/login", accounts.Login)
		r.Post("/password", accounts.ChangePassword)
		r.Post("/password/reset", accounts.ResetPassword)
		r.Post("/username", accounts.Rename)

		r.Get("/profile", profile.Get)
		r.Put("/profile", profile.Save)

		r.Get("/settings", settings.Get)
		r.Put("/settings", settings.Save)
		r.Post("/settings/provider-mode", settings.Toggle)
		r.Delete("/account", settings.DeleteAccount)

		r.Get("/services", services.ListCatalog)

		r.Route("/provider/services", func(r chi.Router) {
			r.Get("/", services.ListProvider)
			r.Post("/", services.CreateProvider)
			r.Put("/{id}", services.UpdateProvider)
			r.Delete("/{id}", services.DeleteProvider)
		})

		r.Route("/debug", func(r chi.Router) {
			r.Get("/dump", debug.Dump)
			r.Post("/reset", debug.Reset)
		})
	})

	return r
}
