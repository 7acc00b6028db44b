package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/GayaStar/adaptiveChess/internal/logger"
)

// Client issues one-shot search queries. Every call starts a fresh engine
// worker and tears it down before returning, so concurrent calls never share
// state.
type Client struct {
	path    string
	timeout time.Duration
}

// NewClient creates a client for the engine binary at path.
func NewClient(path string) *Client {
	return &Client{path: path, timeout: 15 * time.Second}
}

// BestLine returns the last principal variation the engine reported before
// finishing a depth-limited search, truncated to maxMoves UCI moves. An
// engine that never reports a pv yields an empty slice, not an error.
func (c *Client) BestLine(ctx context.Context, fen string, depth, maxMoves int) ([]string, error) {
	log := logger.FromContext(ctx).WithPrefix("engine")

	var pv []string
	err := c.search(ctx, fen, depth, func(ev Event) {
		if info, ok := ev.(InfoEvent); ok && len(info.PV) > 0 {
			pv = info.PV
		}
	})
	if err != nil {
		return nil, err
	}
	if len(pv) > maxMoves {
		pv = pv[:maxMoves]
	}
	log.Debug("best line at depth %d: %v", depth, pv)
	return pv, nil
}

// Score returns the last evaluation the engine reported before finishing a
// depth-limited search. A search that ends without any score resolves with
// Score{OK: false} rather than an error.
func (c *Client) Score(ctx context.Context, fen string, depth int) (Score, error) {
	log := logger.FromContext(ctx).WithPrefix("engine")

	var score Score
	err := c.search(ctx, fen, depth, func(ev Event) {
		if info, ok := ev.(InfoEvent); ok && info.Score != nil {
			score = *info.Score
		}
	})
	if err != nil {
		return Score{}, err
	}
	if !score.OK {
		log.Debug("search finished without a score, treating as no data")
	}
	return score, nil
}

// search runs one position/go exchange against a fresh worker, feeding every
// parsed event to fn until the engine signals bestmove. The worker is closed
// on all paths.
func (c *Client) search(ctx context.Context, fen string, depth int, fn func(Event)) error {
	if fen == "" {
		return errors.New("empty position")
	}
	if depth <= 0 {
		depth = 12
	}

	w, err := startWorker(c.path)
	if err != nil {
		return err
	}
	defer w.close()

	if err := w.send("position fen " + fen); err != nil {
		return err
	}
	if err := w.send(fmt.Sprintf("go depth %d", depth)); err != nil {
		return err
	}

	deadline := time.Now().Add(c.timeout)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("engine timeout after %v", c.timeout)
		}
		line, err := w.readLine()
		if err != nil {
			return err
		}
		ev := ParseLine(line)
		if ev == nil {
			continue
		}
		fn(ev)
		if _, done := ev.(BestMoveEvent); done {
			return nil
		}
	}
}
