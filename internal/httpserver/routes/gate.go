package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/mynav/mynav/internal/httpserver/deps"
	"github.com/mynav/mynav/internal/httpserver/handlers"
	"github.com/mynav/mynav/internal/httpserver/mw"
)

func init() { Register(registerGate) }

// The unlock attempt is the only catalog-adjacent call reachable while
// locked, so it lives outside the RequireUnlocked group.
func registerGate(r chi.Router, d deps.Deps) {
	sub := r.With(
		mw.AllowOnlyCIDRS(d.AllowedCIDRS, d.TrustProxy, d.Logger),
		mw.EnforceHost(d.AllowedHosts, d.Logger),
	)
	sub.Get("/api/gate", handlers.GateState(d))
	sub.Post("/api/unlock", handlers.Unlock(d))
}
