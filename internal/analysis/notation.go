package analysis

import (
	"github.com/corentings/chess/v2"
)

// ApplyUCI applies one coordinate-form move to the position in fen, returning
// the move's algebraic form and the resulting position. The conversion needs
// the position as context: the same square pair can be a different (or
// illegal) move depending on the board.
func ApplyUCI(fen, uci string) (san string, nextFEN string, err error) {
	opt, err := chess.FEN(fen)
	if err != nil {
		return "", "", err
	}
	game := chess.NewGame(opt)
	pos := game.Position()

	move, err := chess.UCINotation{}.Decode(pos, uci)
	if err != nil {
		return "", "", err
	}
	san = chess.AlgebraicNotation{}.Encode(pos, move)
	if err := game.Move(move, nil); err != nil {
		return "", "", err
	}
	return san, game.Position().String(), nil
}

// Outcome reports the game result of the position in fen: "1-0", "0-1",
// "1/2-1/2", or "*" while play continues.
func Outcome(fen string) (string, error) {
	opt, err := chess.FEN(fen)
	if err != nil {
		return "", err
	}
	game := chess.NewGame(opt)
	return game.Outcome().String(), nil
}
