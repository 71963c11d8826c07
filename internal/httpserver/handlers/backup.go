package handlers

import (
	"fmt"
	"io"
	"net/http"

	"github.com/mynav/mynav/internal/backup"
	"github.com/mynav/mynav/internal/domain"
	"github.com/mynav/mynav/internal/httpserver/deps"
	"github.com/mynav/mynav/internal/logger"
)

// maxBackupBytes bounds the accepted import payload.
const maxBackupBytes = 8 << 20

// ExportBackup streams the full catalog as a downloadable JSON
// document.
func ExportBackup(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		links, categories, settings := d.Catalog.Snapshot()
		doc := backup.Export(links, categories, settings, d.TimeNow())

		filename := fmt.Sprintf("mynav-backup-%s.json", d.TimeNow().UTC().Format("2006-01-02"))
		w.Header().Set("Content-Disposition", "attachment; filename="+filename)
		writeJSON(w, http.StatusOK, doc)
	}
}

// ImportBackup validates an uploaded backup document and replaces the
// catalog wholesale. The replace is destructive, so it never happens
// silently: the caller must ask for it with confirm=true.
func ImportBackup(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("confirm") != "true" {
			writeJSON(w, http.StatusPreconditionRequired, errorResponse{
				Error: "import overwrites the current catalog; retry with confirm=true",
			})
			return
		}

		data, err := io.ReadAll(io.LimitReader(r.Body, maxBackupBytes))
		if err != nil {
			writeError(w, d.Logger, domain.ErrValidation)
			return
		}

		doc, err := backup.Decode(data)
		if err != nil {
			writeError(w, d.Logger, err)
			return
		}

		if err := backup.Import(r.Context(), d.Catalog, doc); err != nil {
			writeError(w, d.Logger, err)
			return
		}

		d.Logger.Info("backup imported",
			logger.Int("links", len(doc.Links)),
			logger.Int("categories", len(doc.Categories)))
		writeJSON(w, http.StatusOK, map[string]int{
			"links":      len(doc.Links),
			"categories": len(doc.Categories),
		})
	}
}
