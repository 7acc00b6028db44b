package models

import "time"

// User is an account row. PasswordHash never leaves the server.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Rating       int       `json:"rating"`
	EngineLevel  int       `json:"stockfishLevel"`
	EngineDepth  int       `json:"stockfishDepth"`
	CreatedAt    time.Time `json:"created_at"`
}

// RatingState is the adaptive-difficulty state carried across games.
type RatingState struct {
	Rating int `json:"rating"`
	Level  int `json:"stockfishLevel"`
	Depth  int `json:"stockfishDepth"`
}

// State extracts the rating state from a user row.
func (u User) State() RatingState {
	return RatingState{Rating: u.Rating, Level: u.EngineLevel, Depth: u.EngineDepth}
}

// Game is a finished game saved to history. Moves are SAN, in play order.
type Game struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Moves     []string  `json:"moves"`
	Result    string    `json:"result"` // "1-0", "0-1" or "1/2-1/2"
	Rating    int       `json:"rating"` // player rating at save time
	CreatedAt time.Time `json:"timestamp"`
}

// GameFilter narrows game history queries.
type GameFilter struct {
	UserID int64
	Result string
	Limit  int
	Offset int
}

// GameStats aggregates a user's saved games for the profile page.
type GameStats struct {
	Total      int         `json:"total"`
	Wins       int         `json:"wins"`
	Losses     int         `json:"losses"`
	Draws      int         `json:"draws"`
	Ratings    []int       `json:"ratings"`
	Timestamps []time.Time `json:"timestamps"`
	Latest     []Game      `json:"latest"`
}
