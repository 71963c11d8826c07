package deps

import (
	"context"
	"time"

	"github.com/mynav/mynav/internal/ai"
	"github.com/mynav/mynav/internal/catalog"
	"github.com/mynav/mynav/internal/logger"
)

type Deps struct {
	Logger       logger.Logger
	StartTime    time.Time
	Version      string
	Commit       string
	BuildDate    string
	GoVersion    string
	TimeNow      func() time.Time                // for testing, defaults to time.Now
	AllowedHosts []string                        // Host headers allowed to access the server
	AllowedCIDRS []string                        // IPs allowed to access the API and health endpoints
	TrustProxy   bool                            // true if running behind a trusted reverse proxy (e.g., cloudflared)
	Ping         func(ctx context.Context) error // readiness probe of the durable substrate, nil skips the check
	Catalog      *catalog.Store                  // Single source of truth for links/categories/settings
	Gate         *catalog.Gate                   // Session access lock in front of the catalog
	AI           *ai.Client                      // Gemini collaborators (text answer, image transform)
}
