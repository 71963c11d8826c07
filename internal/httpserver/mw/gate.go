package mw

import (
	"net/http"

	"github.com/mynav/mynav/internal/catalog"
	"github.com/mynav/mynav/internal/logger"
)

// RequireUnlocked rejects every request while the access gate is
// locked. Only the unlock attempt and the health endpoints live
// outside this middleware; no catalog content is reachable through it
// before a successful unlock.
func RequireUnlocked(gate *catalog.Gate, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !gate.Unlocked() {
				log.Debugf("RequireUnlocked: %s %s rejected, gate locked", r.Method, r.URL.Path)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":"catalog is locked"}`))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
