package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/GayaStar/adaptiveChess/internal/errors"
	"github.com/GayaStar/adaptiveChess/internal/services"
	"github.com/GayaStar/adaptiveChess/internal/session"
)

type Server struct {
	Auth       services.AuthService
	Profiles   services.ProfileService
	Games      services.GameService
	Analysis   services.AnalysisService
	Play       services.PlayService
	Sessions   *session.Store
	SessionTTL time.Duration
}

// writeJSON writes a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// decodeJSON decodes a request body, rejecting unknown fields so client typos
// fail loudly instead of silently defaulting.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.NewBadRequestError("invalid request body: " + err.Error())
	}
	return nil
}
