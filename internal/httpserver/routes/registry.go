// Package routes assembles the HTTP surface. Each route group lives in
// its own file and self-registers through init(), so the server only
// needs a single RegisterAll call and adding a group never touches the
// server code.
package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mynav/mynav/internal/httpserver/deps"
)

type (
	Registrar  func(r chi.Router, d deps.Deps)
	Middleware = func(http.Handler) http.Handler
)

type entry struct {
	reg Registrar
	mws []Middleware
}

var registry []entry

// Register a registrar with optional per-group middlewares.
func Register(reg Registrar, mws ...Middleware) {
	registry = append(registry, entry{reg: reg, mws: mws})
}

// RegisterAll mounts every registered group. Called once from
// server.New().
func RegisterAll(r chi.Router, d deps.Deps) {
	for _, e := range registry {
		if len(e.mws) == 0 {
			e.reg(r, d)
			continue
		}
		e.reg(r.With(e.mws...), d)
	}
}
