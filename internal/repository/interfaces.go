package repository

import (
	"context"
	"errors"

	"github.com/GayaStar/adaptiveChess/internal/models"
)

// Sentinel errors shared by all implementations, so callers never depend on
// driver-specific error types.
var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("already exists")
)

// UserRepository handles account data access
type UserRepository interface {
	Create(ctx context.Context, username, passwordHash string) (*models.User, error)
	Get(ctx context.Context, id int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	UpdateRating(ctx context.Context, id int64, rating int) error
	UpdateDifficulty(ctx context.Context, id int64, level, depth int) error
}

// GameRepository handles saved-game data access
type GameRepository interface {
	Insert(ctx context.Context, game models.Game) (int64, error)
	List(ctx context.Context, filter models.GameFilter) ([]models.Game, error)
	CountByResult(ctx context.Context, userID int64, result string) (int, error)
}
