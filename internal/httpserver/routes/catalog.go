package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/mynav/mynav/internal/httpserver/deps"
	"github.com/mynav/mynav/internal/httpserver/handlers"
	"github.com/mynav/mynav/internal/httpserver/mw"
)

func init() { Register(registerCatalog) }

// registerCatalog wires every route that observes or mutates catalog
// content. The whole group sits behind the access gate: while locked,
// none of it is reachable.
func registerCatalog(r chi.Router, d deps.Deps) {
	api := r.With(
		mw.AllowOnlyCIDRS(d.AllowedCIDRS, d.TrustProxy, d.Logger),
		mw.EnforceHost(d.AllowedHosts, d.Logger),
		mw.RequireUnlocked(d.Gate, d.Logger),
	)

	api.Get("/api/links", handlers.ListLinks(d))
	api.Post("/api/links", handlers.AddLink(d))
	api.Delete("/api/links/{id}", handlers.DeleteLink(d))
	api.Post("/api/links/{id}/visit", handlers.RecordVisit(d))

	api.Get("/api/categories", handlers.ListCategories(d))
	api.Post("/api/categories", handlers.AddCategory(d))
	api.Put("/api/categories/{id}", handlers.RenameCategory(d))
	api.Delete("/api/categories/{id}", handlers.DeleteCategory(d))

	api.Get("/api/settings", handlers.GetSettings(d))
	api.Put("/api/settings", handlers.SaveSettings(d))

	api.Get("/api/backup", handlers.ExportBackup(d))
	api.Post("/api/backup", handlers.ImportBackup(d))
}
