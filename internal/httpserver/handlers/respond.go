package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mynav/mynav/internal/domain"
	"github.com/mynav/mynav/internal/logger"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps the catalog error taxonomy onto HTTP statuses:
// validation and backup-format failures are the caller's fault,
// the last-category rule is a conflict, storage failures mean the
// durable substrate is unhealthy.
func writeError(w http.ResponseWriter, log logger.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrBackupFormat):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrLastCategory):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrLocked):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrStorage):
		log.Error("storage failure", logger.Error(err))
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: "storage failure, change was not applied"})
	case errors.Is(err, domain.ErrRemote):
		log.Warn("remote service failure", logger.Error(err))
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: "AI 服务暂时不可用，请稍后再试。"})
	default:
		log.Error("unexpected error", logger.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return domain.ErrValidation
	}
	return nil
}
