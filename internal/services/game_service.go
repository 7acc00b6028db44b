package services

import (
	"context"
	"strings"
	"sync"

	"github.com/GayaStar/adaptiveChess/internal/errors"
	"github.com/GayaStar/adaptiveChess/internal/logger"
	"github.com/GayaStar/adaptiveChess/internal/models"
	"github.com/GayaStar/adaptiveChess/internal/rating"
	"github.com/GayaStar/adaptiveChess/internal/repository"
	"github.com/GayaStar/adaptiveChess/internal/worker"
)

// JobQueue accepts background jobs. Satisfied by *worker.Pool.
type JobQueue interface {
	Submit(worker.Job)
}

// GameService handles saved games and game conclusion
type GameService interface {
	SaveGame(ctx context.Context, user *models.User, moves []string, result string) (int64, error)
	History(ctx context.Context, user *models.User) (*models.GameStats, error)
	Conclude(ctx context.Context, user *models.User, moves []string, result string) (*rating.Update, error)
}

type gameService struct {
	gameRepo repository.GameRepository
	userRepo repository.UserRepository
	jobQueue JobQueue

	// Guards against the same finished game being concluded twice, e.g. a
	// double-submit from the client. Keyed by user, value is the move text
	// of the last concluded game.
	mu        sync.Mutex
	concluded map[int64]string
}

// NewGameService creates a new GameService
func NewGameService(gameRepo repository.GameRepository, userRepo repository.UserRepository, jobQueue JobQueue) GameService {
	return &gameService{
		gameRepo:  gameRepo,
		userRepo:  userRepo,
		jobQueue:  jobQueue,
		concluded: make(map[int64]string),
	}
}

func validResult(result string) bool {
	switch result {
	case "1-0", "0-1", "1/2-1/2":
		return true
	}
	return false
}

func (s *gameService) SaveGame(ctx context.Context, user *models.User, moves []string, result string) (int64, error) {
	log := logger.FromContext(ctx)
	log.Debug("saving game: user_id=%d, moves=%d, result=%s", user.ID, len(moves), result)

	if len(moves) == 0 {
		return 0, errors.NewValidationError("moves", "cannot be empty")
	}
	if !validResult(result) {
		return 0, errors.NewValidationError("result", "must be 1-0, 0-1 or 1/2-1/2")
	}

	id, err := s.gameRepo.Insert(ctx, models.Game{
		UserID: user.ID,
		Moves:  moves,
		Result: result,
		Rating: user.Rating,
	})
	if err != nil {
		log.Error("failed to save game: %v", err)
		return 0, errors.NewInternalError(err)
	}
	log.Info("game saved: id=%d, user_id=%d", id, user.ID)
	return id, nil
}

func (s *gameService) History(ctx context.Context, user *models.User) (*models.GameStats, error) {
	log := logger.FromContext(ctx)
	log.Debug("loading game history: user_id=%d", user.ID)

	games, err := s.gameRepo.List(ctx, models.GameFilter{UserID: user.ID})
	if err != nil {
		log.Error("failed to list games: %v", err)
		return nil, errors.NewInternalError(err)
	}

	stats := &models.GameStats{Total: len(games)}
	for _, g := range games {
		switch g.Result {
		case "1-0":
			stats.Wins++
		case "0-1":
			stats.Losses++
		default:
			stats.Draws++
		}
	}

	// The list arrives newest first; the rating curve reads oldest first.
	for i := len(games) - 1; i >= 0; i-- {
		stats.Ratings = append(stats.Ratings, games[i].Rating)
		stats.Timestamps = append(stats.Timestamps, games[i].CreatedAt)
	}

	latest := games
	if len(latest) > 2 {
		latest = latest[:2]
	}
	stats.Latest = latest

	return stats, nil
}

func (s *gameService) Conclude(ctx context.Context, user *models.User, moves []string, result string) (*rating.Update, error) {
	log := logger.FromContext(ctx)
	log.Debug("concluding game: user_id=%d, result=%s", user.ID, result)

	if len(moves) == 0 {
		return nil, errors.NewValidationError("moves", "cannot be empty")
	}
	outcome, err := rating.OutcomeFromResult(result, true)
	if err != nil {
		return nil, errors.NewValidationError("result", err.Error())
	}

	key := strings.Join(moves, " ") + "|" + result
	s.mu.Lock()
	if s.concluded[user.ID] == key {
		s.mu.Unlock()
		return nil, errors.NewConflictError("game already concluded")
	}
	s.concluded[user.ID] = key
	s.mu.Unlock()

	// The game the player just finished was played against whichever
	// opponent their pre-game rating selected.
	var update rating.Update
	switch rating.OpponentFor(user.Rating) {
	case rating.OpponentPolicy:
		update = rating.VsPolicy(user.State(), outcome)
	default:
		update = rating.VsEngine(user.State(), outcome)
	}

	if _, err := s.gameRepo.Insert(ctx, models.Game{
		UserID: user.ID,
		Moves:  moves,
		Result: result,
		Rating: update.New.Rating,
	}); err != nil {
		log.Error("failed to save concluded game: %v", err)
		return nil, errors.NewInternalError(err)
	}

	// Persistence of the new rating state is fire and forget: the response
	// carries the authoritative state, the writes catch up in background.
	s.jobQueue.Submit(&worker.SyncRatingJob{
		Users:  s.userRepo,
		UserID: user.ID,
		Rating: update.New.Rating,
	})
	if update.New.Level != update.Old.Level || update.New.Depth != update.Old.Depth {
		s.jobQueue.Submit(&worker.SyncDifficultyJob{
			Users:  s.userRepo,
			UserID: user.ID,
			Level:  update.New.Level,
			Depth:  update.New.Depth,
		})
	}

	log.Info("game concluded: user_id=%d, %s vs %s, rating %d -> %d",
		user.ID, update.Outcome, update.Opponent, update.Old.Rating, update.New.Rating)
	return &update, nil
}
