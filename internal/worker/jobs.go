package worker

import (
	"context"

	"github.com/GayaStar/adaptiveChess/internal/repository"
)

// SyncRatingJob persists a player's rating after a game concludes. The
// in-memory state the services hold stays authoritative; a failed write is
// logged by the pool and retried on the next conclusion.
type SyncRatingJob struct {
	Users  repository.UserRepository
	UserID int64
	Rating int
}

func (j *SyncRatingJob) Name() string { return "sync_rating" }

func (j *SyncRatingJob) Run(ctx context.Context) error {
	return j.Users.UpdateRating(ctx, j.UserID, j.Rating)
}

// SyncDifficultyJob persists the engine difficulty settings that the rating
// loop stepped after a decisive game.
type SyncDifficultyJob struct {
	Users  repository.UserRepository
	UserID int64
	Level  int
	Depth  int
}

func (j *SyncDifficultyJob) Name() string { return "sync_difficulty" }

func (j *SyncDifficultyJob) Run(ctx context.Context) error {
	return j.Users.UpdateDifficulty(ctx, j.UserID, j.Level, j.Depth)
}
