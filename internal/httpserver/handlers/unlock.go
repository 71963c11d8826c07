package handlers

import (
	"net/http"

	"github.com/mynav/mynav/internal/httpserver/deps"
)

type unlockRequest struct {
	Password string `json:"password"`
}

type gateResponse struct {
	Unlocked bool `json:"unlocked"`
}

// GateState reports whether the catalog is observable. Reachable while
// locked; carries no catalog content.
func GateState(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, gateResponse{Unlocked: d.Gate.Unlocked()})
	}
}

// Unlock attempts the Locked -> Unlocked transition. A wrong password
// answers 401 and may be retried without limit; a correct one opens
// the gate for the rest of the session.
func Unlock(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req unlockRequest
		if err := decodeBody(r, &req); err != nil {
			writeError(w, d.Logger, err)
			return
		}

		if !d.Gate.AttemptUnlock(req.Password) {
			d.Logger.Warn("unlock attempt rejected")
			writeJSON(w, http.StatusUnauthorized, gateResponse{Unlocked: false})
			return
		}

		d.Logger.Info("catalog unlocked")
		writeJSON(w, http.StatusOK, gateResponse{Unlocked: true})
	}
}
