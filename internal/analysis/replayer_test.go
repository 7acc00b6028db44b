package analysis_test

import (
	"context"
	"strings"
	"testing"

	"github.com/GayaStar/adaptiveChess/internal/analysis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertPosition compares piece placement and side to move, ignoring the
// clock fields so the tests don't depend on FEN counter formatting.
func assertPosition(t *testing.T, want, fen string) {
	t.Helper()
	assert.True(t, strings.HasPrefix(fen, want), "position %q should start with %q", fen, want)
}

func TestReplay_SpanishOpening(t *testing.T) {
	moves := []string{"e4", "e5", "Nf3", "Nc6", "Bb5"}

	plies, err := analysis.Replay(context.Background(), moves, analysis.SideWhite)
	require.NoError(t, err)
	require.Len(t, plies, 3)

	assert.Equal(t, []int{0, 2, 4}, []int{plies[0].Index, plies[1].Index, plies[2].Index})
	assert.Equal(t, "e4", plies[0].SAN)
	assert.Equal(t, "Nf3", plies[1].SAN)
	assert.Equal(t, "Bb5", plies[2].SAN)

	assertPosition(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w", plies[0].FENBefore)
	assertPosition(t, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b", plies[0].FENAfter)
	assertPosition(t, "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w", plies[1].FENBefore)
	assertPosition(t, "rnbqkbnr/pppp1ppp/8/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R b", plies[1].FENAfter)
	assertPosition(t, "r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w", plies[2].FENBefore)
	assertPosition(t, "r1bqkbnr/pppp1ppp/2n5/1B2p3/4P3/5N2/PPPP1PPP/RNBQK2R b", plies[2].FENAfter)
}

func TestReplay_BlackOwnsOddPlies(t *testing.T) {
	moves := []string{"e4", "e5", "Nf3", "Nc6"}

	plies, err := analysis.Replay(context.Background(), moves, analysis.SideBlack)
	require.NoError(t, err)
	require.Len(t, plies, 2)
	assert.Equal(t, 1, plies[0].Index)
	assert.Equal(t, "e5", plies[0].SAN)
	assert.Equal(t, 3, plies[1].Index)
	assert.Equal(t, "Nc6", plies[1].SAN)
}

func TestReplay_IllegalMoveHaltsWithPartialResult(t *testing.T) {
	// Ra5 is illegal: the a8 rook is blocked by its own pawn.
	moves := []string{"e4", "e5", "Nf3", "Ra5", "Bb5"}

	plies, err := analysis.Replay(context.Background(), moves, analysis.SideWhite)

	var illegal *analysis.IllegalMoveError
	require.ErrorAs(t, err, &illegal)
	assert.Equal(t, 3, illegal.Index)
	assert.Equal(t, "Ra5", illegal.Move)

	// Only the plies strictly before the bad index survive.
	require.Len(t, plies, 2)
	assert.Equal(t, 0, plies[0].Index)
	assert.Equal(t, 2, plies[1].Index)
}

func TestReplay_GarbageFirstMove(t *testing.T) {
	plies, err := analysis.Replay(context.Background(), []string{"zz9"}, analysis.SideWhite)

	var illegal *analysis.IllegalMoveError
	require.ErrorAs(t, err, &illegal)
	assert.Equal(t, 0, illegal.Index)
	assert.Empty(t, plies)
}

func TestReplay_EmptyHistory(t *testing.T) {
	plies, err := analysis.Replay(context.Background(), nil, analysis.SideWhite)
	require.NoError(t, err)
	assert.Empty(t, plies)
}

func TestParseSide(t *testing.T) {
	side, err := analysis.ParseSide("w")
	require.NoError(t, err)
	assert.Equal(t, analysis.SideWhite, side)

	side, err = analysis.ParseSide("b")
	require.NoError(t, err)
	assert.Equal(t, analysis.SideBlack, side)

	_, err = analysis.ParseSide("white")
	assert.Error(t, err)
}
