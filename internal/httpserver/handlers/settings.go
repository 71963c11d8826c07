package handlers

import (
	"net/http"

	"github.com/mynav/mynav/internal/domain"
	"github.com/mynav/mynav/internal/httpserver/deps"
)

type settingsResponse struct {
	Settings    domain.Settings `json:"settings"`
	HasPassword bool            `json:"hasPassword"`
}

// GetSettings returns the current settings with the password redacted.
// HasPassword lets the presentation layer know a lock is configured
// without ever echoing the password itself.
func GetSettings(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := d.Catalog.Settings()
		writeJSON(w, http.StatusOK, settingsResponse{
			Settings:    s.Redacted(),
			HasPassword: s.Locked(),
		})
	}
}

// SaveSettings replaces the settings record wholesale. The caller must
// send the full desired record; fields left empty are reset, not kept.
func SaveSettings(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var settings domain.Settings
		if err := decodeBody(r, &settings); err != nil {
			writeError(w, d.Logger, err)
			return
		}

		if err := d.Catalog.SaveSettings(r.Context(), settings); err != nil {
			writeError(w, d.Logger, err)
			return
		}

		d.Logger.Info("settings saved")
		writeJSON(w, http.StatusOK, settingsResponse{
			Settings:    d.Catalog.Settings().Redacted(),
			HasPassword: d.Catalog.Settings().Locked(),
		})
	}
}
