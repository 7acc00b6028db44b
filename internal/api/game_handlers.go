package api

import (
	"net/http"
)

type saveGameRequest struct {
	Moves  []string `json:"moves"`
	Result string   `json:"result"`
}

func (s *Server) handleSaveGame(w http.ResponseWriter, r *http.Request) {
	var req saveGameRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	user := userFromContext(r.Context())
	id, err := s.Games.SaveGame(r.Context(), user, req.Moves, req.Result)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"id": id})
}

func (s *Server) handleUserGames(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())

	stats, err := s.Games.History(r.Context(), user)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handleGameOver(w http.ResponseWriter, r *http.Request) {
	var req saveGameRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	user := userFromContext(r.Context())
	update, err := s.Games.Conclude(r.Context(), user, req.Moves, req.Result)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"rating":         update.New.Rating,
		"stockfishLevel": update.New.Level,
		"stockfishDepth": update.New.Depth,
		"delta":          update.Delta,
		"opponent":       update.Opponent,
	})
}
