package handlers

import (
	"net/http"
	"strings"

	"github.com/mynav/mynav/internal/domain"
	"github.com/mynav/mynav/internal/httpserver/deps"
	"github.com/mynav/mynav/internal/logger"
)

type askRequest struct {
	Query string `json:"query"`
}

type askResponse struct {
	Answer string `json:"answer"`
}

type imageEditRequest struct {
	Image  string `json:"image"` // base64 data URL
	Prompt string `json:"prompt"`
}

type imageEditResponse struct {
	Image string `json:"image,omitempty"` // empty when the model produced no image
}

// Ask forwards a free-text query to the text assistant. The caller's
// policy is to use it when the visible link set came back empty; the
// handler itself does not care. Remote failures arrive here already
// converted to a user-facing answer string, so this always answers 200.
func Ask(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req askRequest
		if err := decodeBody(r, &req); err != nil {
			writeError(w, d.Logger, err)
			return
		}
		query := strings.TrimSpace(req.Query)
		if query == "" {
			writeError(w, d.Logger, domain.ErrValidation)
			return
		}

		d.Logger.Info("ai query", logger.String("query", query))
		answer := d.AI.Ask(r.Context(), query)
		writeJSON(w, http.StatusOK, askResponse{Answer: answer})
	}
}

// EditImage forwards an image plus instruction to the image
// transformer.
func EditImage(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req imageEditRequest
		if err := decodeBody(r, &req); err != nil {
			writeError(w, d.Logger, err)
			return
		}
		if req.Image == "" || strings.TrimSpace(req.Prompt) == "" {
			writeError(w, d.Logger, domain.ErrValidation)
			return
		}

		result, err := d.AI.EditImage(r.Context(), req.Image, req.Prompt)
		if err != nil {
			writeError(w, d.Logger, err)
			return
		}
		writeJSON(w, http.StatusOK, imageEditResponse{Image: result})
	}
}
