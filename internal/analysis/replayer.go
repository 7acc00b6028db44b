package analysis

import (
	"context"
	"fmt"

	"github.com/GayaStar/adaptiveChess/internal/logger"
	"github.com/corentings/chess/v2"
)

// Side identifies which color the human played, using the same single-letter
// form the frontend sends.
type Side string

const (
	SideWhite Side = "w"
	SideBlack Side = "b"
)

// ParseSide validates a side string from a request.
func ParseSide(s string) (Side, error) {
	switch Side(s) {
	case SideWhite, SideBlack:
		return Side(s), nil
	}
	return "", fmt.Errorf("invalid side %q", s)
}

// owns reports whether the ply at the given zero-based index belongs to the
// side: white owns even indices, black odd ones.
func (s Side) owns(index int) bool {
	if s == SideWhite {
		return index%2 == 0
	}
	return index%2 == 1
}

// Ply is one half-move made by the analyzed player, with the position
// immediately before and after it.
type Ply struct {
	Index     int    // zero-based index into the full move list
	SAN       string // the move as played
	FENBefore string
	FENAfter  string
}

// IllegalMoveError reports the first move that failed to apply during replay.
type IllegalMoveError struct {
	Index int
	Move  string
	Err   error
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("illegal move %q at index %d: %v", e.Move, e.Index, e.Err)
}

func (e *IllegalMoveError) Unwrap() error { return e.Err }

// Replay applies SAN moves in order on a private game seeded at the standard
// starting position and snapshots the positions around every ply the player
// made. An illegal move halts replay immediately; the plies collected so far
// are returned together with an IllegalMoveError.
func Replay(ctx context.Context, moves []string, side Side) ([]Ply, error) {
	log := logger.FromContext(ctx).WithPrefix("replay")

	game := chess.NewGame()
	var plies []Ply
	for i, san := range moves {
		before := game.Position().String()
		if err := game.PushNotationMove(san, chess.AlgebraicNotation{}, nil); err != nil {
			log.Warn("replay halted: move %q at index %d does not apply: %v", san, i, err)
			return plies, &IllegalMoveError{Index: i, Move: san, Err: err}
		}
		if !side.owns(i) {
			continue
		}
		plies = append(plies, Ply{
			Index:     i,
			SAN:       san,
			FENBefore: before,
			FENAfter:  game.Position().String(),
		})
	}
	return plies, nil
}
