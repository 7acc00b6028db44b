package engine_test

import (
	"testing"

	"github.com/GayaStar/adaptiveChess/internal/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLine_CPScore(t *testing.T) {
	ev := engine.ParseLine("info depth 12 seldepth 18 score cp 34 nodes 50000 pv e2e4 e7e5 g1f3")

	info, ok := ev.(engine.InfoEvent)
	require.True(t, ok)
	require.NotNil(t, info.Score)
	assert.Equal(t, 34, info.Score.CP)
	assert.False(t, info.Score.Mate)
	assert.True(t, info.Score.OK)
	assert.Equal(t, []string{"e2e4", "e7e5", "g1f3"}, info.PV)
}

func TestParseLine_NegativeCP(t *testing.T) {
	ev := engine.ParseLine("info depth 10 score cp -215 nodes 1234")

	info, ok := ev.(engine.InfoEvent)
	require.True(t, ok)
	require.NotNil(t, info.Score)
	assert.Equal(t, -215, info.Score.CP)
	assert.Empty(t, info.PV)
}

func TestParseLine_MateScores(t *testing.T) {
	tests := []struct {
		name string
		line string
		want int
	}{
		{name: "mate for side to move", line: "info depth 8 score mate 3 pv d1h5", want: engine.MateScore},
		{name: "mate against side to move", line: "info depth 8 score mate -2", want: -engine.MateScore},
		{name: "side to move already mated", line: "info depth 0 score mate 0", want: -engine.MateScore},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := engine.ParseLine(tt.line)
			info, ok := ev.(engine.InfoEvent)
			require.True(t, ok)
			require.NotNil(t, info.Score)
			assert.Equal(t, tt.want, info.Score.CP)
			assert.True(t, info.Score.Mate)
		})
	}
}

func TestParseLine_BestMove(t *testing.T) {
	ev := engine.ParseLine("bestmove e2e4 ponder e7e5")

	best, ok := ev.(engine.BestMoveEvent)
	require.True(t, ok)
	assert.Equal(t, "e2e4", best.Move)
	assert.Equal(t, "e7e5", best.Ponder)
}

func TestParseLine_BestMoveWithoutPonder(t *testing.T) {
	ev := engine.ParseLine("bestmove g8f6")

	best, ok := ev.(engine.BestMoveEvent)
	require.True(t, ok)
	assert.Equal(t, "g8f6", best.Move)
	assert.Empty(t, best.Ponder)
}

func TestParseLine_IgnoredLines(t *testing.T) {
	for _, line := range []string{
		"",
		"   ",
		"uciok",
		"readyok",
		"id name Stockfish 17",
		"info string NNUE evaluation enabled",
		"info depth 1 nodes 20",
		"option name Skill Level type spin default 20 min 0 max 20",
	} {
		assert.Nil(t, engine.ParseLine(line), "line %q should parse to nil", line)
	}
}

func TestParseLine_PVTruncationIsCallerConcern(t *testing.T) {
	ev := engine.ParseLine("info score cp 10 pv a2a3 a7a6 b2b3 b7b6 c2c3 c7c6 d2d3 d7d6")
	info, ok := ev.(engine.InfoEvent)
	require.True(t, ok)
	assert.Len(t, info.PV, 8)
}
