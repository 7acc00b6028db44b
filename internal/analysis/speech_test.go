package analysis_test

import (
	"testing"

	"github.com/GayaStar/adaptiveChess/internal/analysis"
	"github.com/stretchr/testify/assert"
)

func TestSpokenSAN(t *testing.T) {
	tests := []struct {
		san  string
		want string
	}{
		{san: "e4", want: "e4"},
		{san: "Nf3", want: "Knight f3"},
		{san: "Qxd5", want: "Queen takes d5"},
		{san: "exd5", want: "e takes d5"},
		{san: "O-O", want: "Castles kingside"},
		{san: "O-O-O", want: "Castles queenside"},
		{san: "e8=Q", want: "e8 promotes to Queen"},
		{san: "Rxe8+", want: "Rook takes e8 check"},
		{san: "Qh7#", want: "Queen h7 checkmate"},
	}

	for _, tt := range tests {
		t.Run(tt.san, func(t *testing.T) {
			assert.Equal(t, tt.want, analysis.SpokenSAN(tt.san))
		})
	}
}
