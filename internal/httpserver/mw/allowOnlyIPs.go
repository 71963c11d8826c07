package mw

import (
	"net/http"

	"github.com/mynav/mynav/internal/logger"
	"github.com/mynav/mynav/internal/utils"
)

// AllowOnlyCIDRS restricts access to the listed IPs/CIDRs. An empty
// list does not filter at all, which is the common single-user setup
// where the dashboard sits on a LAN or behind a tunnel.
// trustProxy should be true when running behind a trusted reverse
// proxy/tunnel (e.g., cloudflared).
func AllowOnlyCIDRS(allowed []string, trustProxy bool, log logger.Logger) func(http.Handler) http.Handler {
	m := utils.NewIPMatcher(allowed)
	if m.IsEmpty() {
		return func(next http.Handler) http.Handler { return next }
	}

	log.Debugf("AllowOnlyCIDRS: %d rules, trustProxy=%v", len(allowed), trustProxy)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := utils.ClientIP(r, trustProxy)
			if !m.Allow(ip) {
				log.Warn("request rejected by ip policy",
					logger.String("ip", ip),
					logger.String("path", r.URL.Path))
				w.WriteHeader(http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
