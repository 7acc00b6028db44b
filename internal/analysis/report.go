package analysis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/GayaStar/adaptiveChess/internal/engine"
	"github.com/GayaStar/adaptiveChess/internal/logger"
)

// NotAvailable is reported when the engine gave us nothing to show.
const NotAvailable = "Not available"

// Oracle is the search backend the report builder queries once per analyzed
// ply. Implementations must be safe for concurrent calls.
type Oracle interface {
	BestLine(ctx context.Context, fen string, depth, maxMoves int) ([]string, error)
	Score(ctx context.Context, fen string, depth int) (engine.Score, error)
}

// Entry is one analyzed player move. The collected report is a derived,
// disposable view; it is rendered and thrown away, never persisted.
type Entry struct {
	MoveNumber int            `json:"moveNumber"`
	PlayedMove string         `json:"userMove"`
	Label      Classification `json:"label"`
	BestLine   string         `json:"bestMove"`
	Score      string         `json:"score"`
}

// Config tunes the report builder.
type Config struct {
	Depth       int // search depth per oracle query
	PVMoves     int // cap on the best-continuation length
	Concurrency int // plies analyzed in parallel; <=1 means sequential
}

// Builder turns a game's move history into an ordered analysis report.
type Builder struct {
	oracle  Oracle
	depth   int
	pvMoves int
	workers int
}

// NewBuilder creates a Builder using the given oracle.
func NewBuilder(oracle Oracle, cfg Config) *Builder {
	if cfg.Depth <= 0 {
		cfg.Depth = 12
	}
	if cfg.PVMoves <= 0 {
		cfg.PVMoves = 6
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 1
	}
	return &Builder{
		oracle:  oracle,
		depth:   cfg.Depth,
		pvMoves: cfg.PVMoves,
		workers: cfg.Concurrency,
	}
}

// Generate replays the move history and produces one entry per ply the player
// made, ordered by move number. A move that fails to replay truncates the
// report to the plies before it; an oracle transport failure aborts the whole
// batch so the caller reports a single analysis failure instead of a silently
// incomplete one.
func (b *Builder) Generate(ctx context.Context, moves []string, side Side) ([]Entry, error) {
	log := logger.FromContext(ctx).WithPrefix("analysis")

	plies, err := Replay(ctx, moves, side)
	if err != nil {
		var illegal *IllegalMoveError
		if !errors.As(err, &illegal) {
			return nil, err
		}
		// Partial replay is still worth reporting; the bad suffix is dropped.
		log.Warn("analyzing %d plies collected before illegal move", len(plies))
	}
	if len(plies) == 0 {
		return nil, nil
	}

	// Entries land in their ply's slot, so report order is by move index
	// no matter which oracle calls resolve first.
	entries := make([]Entry, len(plies))
	sem := make(chan struct{}, b.workers)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	for i, ply := range plies {
		wg.Add(1)
		go func(slot int, ply Ply) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			mu.Lock()
			failed := firstErr != nil
			mu.Unlock()
			if failed || ctx.Err() != nil {
				return
			}

			entry, err := b.analyzePly(ctx, ply)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = fmt.Errorf("analyze ply %d: %w", ply.Index, err)
				}
				return
			}
			entries[slot] = entry
		}(i, ply)
	}
	wg.Wait()

	if firstErr != nil {
		log.Error("analysis aborted: %v", firstErr)
		return nil, firstErr
	}
	return entries, nil
}

func (b *Builder) analyzePly(ctx context.Context, ply Ply) (Entry, error) {
	entry := Entry{
		MoveNumber: ply.Index/2 + 1,
		PlayedMove: ply.SAN,
		BestLine:   NotAvailable,
		Score:      NotAvailable,
	}

	pv, err := b.oracle.BestLine(ctx, ply.FENBefore, b.depth, b.pvMoves)
	if err != nil {
		return Entry{}, err
	}
	played, err := b.oracle.Score(ctx, ply.FENAfter, b.depth)
	if err != nil {
		return Entry{}, err
	}

	// The best alternative is scored from the position after the pv's first
	// move, the same shape as the played score.
	var best engine.Score
	if len(pv) > 0 {
		if _, fenBest, aerr := ApplyUCI(ply.FENBefore, pv[0]); aerr == nil {
			best, err = b.oracle.Score(ctx, fenBest, b.depth)
			if err != nil {
				return Entry{}, err
			}
		}
		entry.BestLine = renderLine(ply.FENBefore, pv)
	}

	entry.Label = Classify(played, best)
	if played.OK {
		entry.Score = fmt.Sprintf("%.2f pawns", played.Pawns())
	}
	return entry, nil
}

// renderLine renders a coordinate-form pv as algebraic move pairs, e.g.
// "Nf3-Nc6, Bb5-a6". A move that no longer converts cuts the line there.
func renderLine(fen string, pv []string) string {
	var pairs []string
	cur := fen
	for j := 0; j+1 < len(pv); j += 2 {
		san1, next, err := ApplyUCI(cur, pv[j])
		if err != nil {
			break
		}
		san2, next2, err := ApplyUCI(next, pv[j+1])
		if err != nil {
			break
		}
		pairs = append(pairs, san1+"-"+san2)
		cur = next2
	}
	if len(pairs) == 0 {
		return NotAvailable
	}
	return strings.Join(pairs, ", ")
}
