package engine

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/GayaStar/adaptiveChess/internal/logger"
)

// Session is a long-lived engine for interactive play. Unlike Client, the
// subprocess stays up between moves so skill-level options persist, and an
// in-flight search can be interrupted with Stop when the user retracts a move.
type Session struct {
	mu  sync.Mutex
	w   *worker
	log *logger.Logger
}

// NewSession starts an interactive engine session.
func NewSession(path string) (*Session, error) {
	w, err := startWorker(path)
	if err != nil {
		return nil, err
	}
	return &Session{w: w, log: logger.Default().WithPrefix("engine-session")}, nil
}

// SetSkillLevel clamps level into [0,20] and applies it together with the
// error-probability options that make low levels actually play weak moves.
func (s *Session) SetSkillLevel(level int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if level < 0 {
		level = 0
	}
	if level > 20 {
		level = 20
	}
	errProb, maxErr := skillOptions(level)

	s.log.Debug("setting skill level %d (err_prob=%d, max_err=%d)", level, errProb, maxErr)
	for _, cmd := range []string{
		fmt.Sprintf("setoption name Skill Level value %d", level),
		fmt.Sprintf("setoption name Skill Level Maximum Error value %d", maxErr),
		fmt.Sprintf("setoption name Skill Level Probability value %d", errProb),
	} {
		if err := s.w.send(cmd); err != nil {
			return err
		}
	}
	return nil
}

// BestMove searches the position to the given depth and returns the engine's
// move in coordinate form.
func (s *Session) BestMove(ctx context.Context, fen string, depth int) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if depth <= 0 {
		depth = 5
	}
	if err := s.w.send("ucinewgame"); err != nil {
		return "", err
	}
	if err := s.w.send("position fen " + fen); err != nil {
		return "", err
	}
	if err := s.w.send(fmt.Sprintf("go depth %d", depth)); err != nil {
		return "", err
	}

	var cancelled bool
	deadline := time.Now().Add(30 * time.Second)
	for {
		if err := ctx.Err(); err != nil && !cancelled {
			// Cut the search short. The engine still answers with a
			// bestmove line, so keep reading until it arrives to leave
			// the stream clean for the next call.
			cancelled = true
			_ = s.w.send("stop")
		}
		if time.Now().After(deadline) {
			return "", fmt.Errorf("engine move timed out")
		}
		line, err := s.w.readLine()
		if err != nil {
			return "", err
		}
		if best, ok := ParseLine(line).(BestMoveEvent); ok {
			if cancelled {
				return "", ctx.Err()
			}
			return best.Move, nil
		}
	}
}

// skillOptions derives the error-probability options for a skill level.
// The probability rounds level*6.35 before the +1 offset.
func skillOptions(level int) (errProb, maxErr int) {
	errProb = int(math.Round(float64(level)*6.35)) + 1
	maxErr = 10 - level/2
	return errProb, maxErr
}

// Stop interrupts an in-flight search, e.g. when the user takes a move back.
func (s *Session) Stop() error {
	return s.w.send("stop")
}

// Close shuts the session's engine down.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.w.close()
}
