package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/mynav/mynav/internal/domain"
	"github.com/mynav/mynav/internal/httpserver/deps"
	"github.com/mynav/mynav/internal/logger"
)

type listLinksResponse struct {
	Links []domain.Link `json:"links"`
	Total int           `json:"total"`
}

// ListLinks returns the visible subset for the active category and
// query, in catalog insertion order. With no parameters it returns the
// whole catalog.
func ListLinks(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		activeCategory := strings.TrimSpace(r.URL.Query().Get("category"))
		if activeCategory == "" {
			activeCategory = domain.CategoryAll
		}
		query := r.URL.Query().Get("q")

		links, categories, _ := d.Catalog.Snapshot()
		visible := domain.Visible(links, categories, activeCategory, query)

		writeJSON(w, http.StatusOK, listLinksResponse{
			Links: visible,
			Total: len(links),
		})
	}
}

// AddLink creates a new link from the posted draft.
func AddLink(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var draft domain.LinkDraft
		if err := decodeBody(r, &draft); err != nil {
			writeError(w, d.Logger, err)
			return
		}

		link, err := d.Catalog.AddLink(r.Context(), draft)
		if err != nil {
			writeError(w, d.Logger, err)
			return
		}

		d.Logger.Info("link added",
			logger.String("id", link.ID),
			logger.String("title", link.Title))
		writeJSON(w, http.StatusCreated, link)
	}
}

// DeleteLink removes a link. Unknown IDs still answer 204: deletion is
// a no-op then, not an error.
func DeleteLink(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if err := d.Catalog.DeleteLink(r.Context(), id); err != nil {
			writeError(w, d.Logger, err)
			return
		}

		d.Logger.Info("link deleted", logger.String("id", id))
		w.WriteHeader(http.StatusNoContent)
	}
}

// RecordVisit bumps the visit counter of a link.
func RecordVisit(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if err := d.Catalog.RecordVisit(r.Context(), id); err != nil {
			writeError(w, d.Logger, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
