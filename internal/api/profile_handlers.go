package api

import (
	"net/http"
)

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, userFromContext(r.Context()))
}

type updateRatingRequest struct {
	Rating int `json:"rating"`
}

func (s *Server) handleUpdateRating(w http.ResponseWriter, r *http.Request) {
	var req updateRatingRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	user := userFromContext(r.Context())
	if err := s.Profiles.UpdateRating(r.Context(), user.Username, req.Rating); err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"rating": req.Rating})
}

type updateStockfishRequest struct {
	Level int `json:"stockfishLevel"`
	Depth int `json:"stockfishDepth"`
}

func (s *Server) handleUpdateStockfish(w http.ResponseWriter, r *http.Request) {
	var req updateStockfishRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	user := userFromContext(r.Context())
	if err := s.Profiles.UpdateDifficulty(r.Context(), user.Username, req.Level, req.Depth); err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"stockfishLevel": req.Level,
		"stockfishDepth": req.Depth,
	})
}
