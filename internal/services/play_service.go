package services

import (
	"context"
	"time"

	"github.com/GayaStar/adaptiveChess/internal/analysis"
	"github.com/GayaStar/adaptiveChess/internal/errors"
	"github.com/GayaStar/adaptiveChess/internal/logger"
	"github.com/GayaStar/adaptiveChess/internal/models"
	"github.com/GayaStar/adaptiveChess/internal/policy"
	"github.com/GayaStar/adaptiveChess/internal/rating"
)

// MoveEngine is the interactive engine surface the play service needs.
// Satisfied by *engine.Session.
type MoveEngine interface {
	SetSkillLevel(level int) error
	BestMove(ctx context.Context, fen string, depth int) (string, error)
	Stop() error
}

// PolicyClient asks the learned-policy service for a move. Satisfied by
// *policy.Client.
type PolicyClient interface {
	BestMove(ctx context.Context, fen string, userID int64, elo int) (policy.Move, error)
}

// OpponentMove is the server's reply move in every notation the client needs:
// coordinates to apply, algebraic to log, words to speak.
type OpponentMove struct {
	UCI      string `json:"uci"`
	SAN      string `json:"san"`
	Spoken   string `json:"spoken"`
	FEN      string `json:"fen"`
	Opponent string `json:"opponent"`
	Result   string `json:"result,omitempty"`
}

// PlayService produces opponent moves during a live game
type PlayService interface {
	Move(ctx context.Context, user *models.User, fen string) (*OpponentMove, error)
	Stop(ctx context.Context) error
}

type playService struct {
	engine  MoveEngine
	policy  PolicyClient
	timeout time.Duration
}

// NewPlayService creates a new PlayService
func NewPlayService(eng MoveEngine, pol PolicyClient, timeout time.Duration) PlayService {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &playService{engine: eng, policy: pol, timeout: timeout}
}

// Move picks the opponent's reply in the given position. Players rated under
// 1200 face the learned policy, everyone else faces the engine at the
// difficulty their rating loop has reached.
func (s *playService) Move(ctx context.Context, user *models.User, fen string) (*OpponentMove, error) {
	log := logger.FromContext(ctx)

	if fen == "" {
		return nil, errors.NewValidationError("fen", "cannot be empty")
	}
	if done, err := analysis.Outcome(fen); err != nil {
		return nil, errors.NewValidationError("fen", "not a valid position")
	} else if done != "*" {
		return nil, errors.NewBadRequestError("game is already over")
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	opponent := rating.OpponentFor(user.Rating)
	log.Debug("requesting move: user_id=%d, opponent=%s", user.ID, opponent)

	var uci string
	switch opponent {
	case rating.OpponentPolicy:
		move, err := s.policy.BestMove(ctx, fen, user.ID, user.Rating)
		if err != nil {
			log.Error("policy move failed: %v", err)
			return nil, errors.NewInternalError(err)
		}
		uci = move.UCI()
	default:
		if err := s.engine.SetSkillLevel(user.EngineLevel); err != nil {
			log.Error("failed to set skill level: %v", err)
			return nil, errors.NewInternalError(err)
		}
		move, err := s.engine.BestMove(ctx, fen, user.EngineDepth)
		if err != nil {
			log.Error("engine move failed: %v", err)
			return nil, errors.NewInternalError(err)
		}
		uci = move
	}

	san, nextFEN, err := analysis.ApplyUCI(fen, uci)
	if err != nil {
		log.Error("opponent played an unconvertible move %q: %v", uci, err)
		return nil, errors.NewInternalError(err)
	}

	reply := &OpponentMove{
		UCI:      uci,
		SAN:      san,
		Spoken:   analysis.SpokenSAN(san),
		FEN:      nextFEN,
		Opponent: string(opponent),
	}
	if result, err := analysis.Outcome(nextFEN); err == nil && result != "*" {
		reply.Result = result
	}

	log.Info("opponent (%s) played %s", opponent, san)
	return reply, nil
}

// Stop interrupts the engine's in-flight search when the player takes a move
// back while the opponent is thinking. Policy moves are single HTTP exchanges
// with nothing to interrupt.
func (s *playService) Stop(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if err := s.engine.Stop(); err != nil {
		log.Error("failed to stop engine search: %v", err)
		return errors.NewInternalError(err)
	}
	log.Debug("engine search stopped")
	return nil
}
