package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/mynav/mynav/internal/httpserver/deps"
)

type healthzResponse struct {
	Status        string  `json:"status"`
	Locked        bool    `json:"locked"`
	UptimeSeconds float64 `json:"uptime_seconds"`
	Version       string  `json:"version,omitempty"`
	Commit        string  `json:"commit,omitempty"`
	BuildDate     string  `json:"build_date,omitempty"`
	GoVersion     string  `json:"go_version,omitempty"`
}

// Healthz is the liveness endpoint. Locked reports the gate state so a
// probe can tell a locked dashboard from a broken one; no catalog
// content crosses this boundary.
func Healthz(d deps.Deps) http.HandlerFunc {
	start := d.StartTime
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(healthzResponse{
			Status:        "ok",
			Locked:        !d.Gate.Unlocked(),
			Version:       d.Version,
			Commit:        d.Commit,
			BuildDate:     d.BuildDate,
			GoVersion:     d.GoVersion,
			UptimeSeconds: time.Since(start).Seconds(),
		})
	}
}
