package api

import (
	"net/http"
)

type analysisRequest struct {
	Moves []string `json:"moves"`
	Side  string   `json:"side"`
}

func (s *Server) handleAnalysis(w http.ResponseWriter, r *http.Request) {
	var req analysisRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}
	if req.Side == "" {
		req.Side = "w"
	}

	report, err := s.Analysis.Analyze(r.Context(), req.Moves, req.Side)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"report": report})
}
