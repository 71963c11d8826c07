package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mynav/mynav/internal/domain"
	"github.com/mynav/mynav/internal/httpserver/deps"
	"github.com/mynav/mynav/internal/logger"
)

type categoryRequest struct {
	Name string `json:"name"`
}

type listCategoriesResponse struct {
	Categories []domain.Category `json:"categories"`
}

// ListCategories returns all categories in insertion order.
func ListCategories(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, listCategoriesResponse{
			Categories: d.Catalog.Categories(),
		})
	}
}

// AddCategory creates a new category.
func AddCategory(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req categoryRequest
		if err := decodeBody(r, &req); err != nil {
			writeError(w, d.Logger, err)
			return
		}

		cat, err := d.Catalog.AddCategory(r.Context(), req.Name)
		if err != nil {
			writeError(w, d.Logger, err)
			return
		}

		d.Logger.Info("category added",
			logger.String("id", cat.ID),
			logger.String("name", cat.Name))
		writeJSON(w, http.StatusCreated, cat)
	}
}

// RenameCategory replaces a category's display name in place. Links
// referencing the category are untouched.
func RenameCategory(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var req categoryRequest
		if err := decodeBody(r, &req); err != nil {
			writeError(w, d.Logger, err)
			return
		}

		if err := d.Catalog.RenameCategory(r.Context(), id, req.Name); err != nil {
			writeError(w, d.Logger, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// DeleteCategory removes a category. The last remaining category is
// never deletable; links pointing at the removed one keep their
// reference and surface only under "all".
func DeleteCategory(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if err := d.Catalog.DeleteCategory(r.Context(), id); err != nil {
			writeError(w, d.Logger, err)
			return
		}

		d.Logger.Info("category deleted", logger.String("id", id))
		w.WriteHeader(http.StatusNoContent)
	}
}
