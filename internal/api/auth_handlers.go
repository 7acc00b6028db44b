package api

import (
	"net/http"

	"github.com/GayaStar/adaptiveChess/internal/logger"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	user, token, err := s.Auth.Signup(r.Context(), req.Username, req.Password)
	if err != nil {
		handleError(w, r, err)
		return
	}

	setSessionCookie(w, token, s.SessionTTL)
	writeJSON(w, http.StatusCreated, map[string]any{
		"user":  user,
		"token": token,
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	user, token, err := s.Auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		handleError(w, r, err)
		return
	}

	setSessionCookie(w, token, s.SessionTTL)
	writeJSON(w, http.StatusOK, map[string]any{
		"user":  user,
		"token": token,
	})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	if err := s.Auth.Logout(r.Context(), sessionToken(r)); err != nil {
		handleError(w, r, err)
		return
	}

	clearSessionCookie(w)
	log.Debug("logged out")
	writeJSON(w, http.StatusOK, map[string]any{"status": "logged out"})
}
