package routes

import (
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mynav/mynav/internal/httpserver/deps"
	"github.com/mynav/mynav/internal/httpserver/handlers"
	"github.com/mynav/mynav/internal/httpserver/mw"
)

func init() { Register(registerAI) }

// AI calls are metered remote calls, so they get a token-bucket rate
// limit on top of the gate. The unlock endpoint is deliberately NOT
// rate-limited: repeated unlock attempts are always allowed.
func registerAI(r chi.Router, d deps.Deps) {
	sub := r.With(
		mw.AllowOnlyCIDRS(d.AllowedCIDRS, d.TrustProxy, d.Logger),
		mw.EnforceHost(d.AllowedHosts, d.Logger),
		mw.RequireUnlocked(d.Gate, d.Logger),
		mw.RateLimit(mw.RateLimitConfig{
			Burst:         5,
			RefillPerMin:  10,
			MaxEntries:    1024,
			SweepInterval: time.Minute,
			IdleTTL:       10 * time.Minute,
			TrustProxy:    d.TrustProxy,
		}),
	)
	sub.Post("/api/ask", handlers.Ask(d))
	sub.Post("/api/image/edit", handlers.EditImage(d))
}
