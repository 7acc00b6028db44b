package analysis

import "strings"

var speechReplacer = strings.NewReplacer(
	"x", " takes ",
	"=", " promotes to ",
	"K", "King ",
	"Q", "Queen ",
	"R", "Rook ",
	"B", "Bishop ",
	"N", "Knight ",
	"+", " check",
	"#", " checkmate",
)

// SpokenSAN renders an algebraic move as text suitable for speech synthesis,
// which stays on the client; the server only supplies the words.
func SpokenSAN(san string) string {
	if san == "O-O" {
		return "Castles kingside"
	}
	if san == "O-O-O" {
		return "Castles queenside"
	}
	spoken := speechReplacer.Replace(san)
	return strings.Join(strings.Fields(spoken), " ")
}
