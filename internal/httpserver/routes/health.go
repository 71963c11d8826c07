package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/mynav/mynav/internal/httpserver/deps"
	"github.com/mynav/mynav/internal/httpserver/handlers"
	"github.com/mynav/mynav/internal/httpserver/mw"
)

func init() { Register(registerHealth) }

// Health endpoints stay reachable while the gate is locked; they never
// carry catalog content.
func registerHealth(r chi.Router, d deps.Deps) {
	r.With(mw.AllowOnlyCIDRS(d.AllowedCIDRS, d.TrustProxy, d.Logger)).Get("/healthz", handlers.Healthz(d))
	r.With(mw.AllowOnlyCIDRS(d.AllowedCIDRS, d.TrustProxy, d.Logger)).Get("/readyz", handlers.Readyz(d))
}
