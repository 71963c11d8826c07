package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/mynav/mynav/internal/ai"
	"github.com/mynav/mynav/internal/catalog"
	"github.com/mynav/mynav/internal/domain"
	"github.com/mynav/mynav/internal/httpserver/deps"
	"github.com/mynav/mynav/internal/logger"
	"github.com/mynav/mynav/internal/store/memory"
)

// newTestDeps builds a hydrated catalog over an in-memory substrate.
func newTestDeps(t *testing.T) (deps.Deps, *memory.Store) {
	t.Helper()

	blobs := memory.NewStore()
	store := catalog.NewStore(blobs, logger.Nop())
	err := store.Hydrate(context.Background(), catalog.Seed{
		Links:      domain.DefaultLinks(),
		Categories: domain.DefaultCategories(),
		Settings:   domain.DefaultSettings(),
	})
	require.NoError(t, err)

	d := deps.Deps{
		Logger:  logger.Nop(),
		TimeNow: func() time.Time { return time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC) },
		Catalog: store,
		Gate:    catalog.NewGate(store.Password),
	}
	return d, blobs
}

// newTestRouter mounts the API surface the way the route registry
// does, minus network policy middleware.
func newTestRouter(d deps.Deps) *chi.Mux {
	r := chi.NewRouter()

	r.Get("/api/links", ListLinks(d))
	r.Post("/api/links", AddLink(d))
	r.Delete("/api/links/{id}", DeleteLink(d))
	r.Post("/api/links/{id}/visit", RecordVisit(d))

	r.Get("/api/categories", ListCategories(d))
	r.Post("/api/categories", AddCategory(d))
	r.Put("/api/categories/{id}", RenameCategory(d))
	r.Delete("/api/categories/{id}", DeleteCategory(d))

	r.Get("/api/settings", GetSettings(d))
	r.Put("/api/settings", SaveSettings(d))

	r.Get("/api/gate", GateState(d))
	r.Post("/api/unlock", Unlock(d))

	r.Get("/api/backup", ExportBackup(d))
	r.Post("/api/backup", ImportBackup(d))

	r.Post("/api/ask", Ask(d))
	r.Post("/api/image/edit", EditImage(d))

	return r
}

func doJSON(t *testing.T, r http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

// testAIClient backs the ai handlers with a canned httptest upstream.
func testAIClient(t *testing.T, handler http.HandlerFunc) *ai.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return ai.New(ai.Config{
		APIKey:     "test-key",
		BaseURL:    srv.URL,
		TextModel:  "text-model",
		ImageModel: "image-model",
		Timeout:    5 * time.Second,
	}, logger.Nop())
}
