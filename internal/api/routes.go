package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)
	r.Use(securityHeadersMiddleware)

	r.Get("/health", s.handleHealth)
	r.Post("/signup", s.handleSignup)
	r.Post("/login", s.handleLogin)

	// Everything below needs a live session.
	r.Group(func(r chi.Router) {
		r.Use(s.authMiddleware)

		r.Post("/logout", s.handleLogout)
		r.Get("/user", s.handleGetUser)
		r.Post("/update_rating", s.handleUpdateRating)
		r.Post("/update_stockfish", s.handleUpdateStockfish)
		r.Post("/save_game", s.handleSaveGame)
		r.Get("/user_games", s.handleUserGames)
		r.Post("/game_over", s.handleGameOver)
		r.Post("/analysis", s.handleAnalysis)
		r.Post("/play/move", s.handlePlayMove)
		r.Post("/play/stop", s.handlePlayStop)
	})

	return r
}
