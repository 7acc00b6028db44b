package api

import (
	"net/http"
)

type playMoveRequest struct {
	FEN string `json:"fen"`
}

func (s *Server) handlePlayMove(w http.ResponseWriter, r *http.Request) {
	var req playMoveRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	user := userFromContext(r.Context())
	move, err := s.Play.Move(r.Context(), user, req.FEN)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, move)
}

// handlePlayStop interrupts the engine's current search, used when the player
// takes a move back while the opponent is still thinking.
func (s *Server) handlePlayStop(w http.ResponseWriter, r *http.Request) {
	if err := s.Play.Stop(r.Context()); err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
