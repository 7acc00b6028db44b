package analysis

import "github.com/GayaStar/adaptiveChess/internal/engine"

// Classification buckets a move by how much evaluation it gave away compared
// to the engine's best alternative.
type Classification string

const (
	Good       Classification = "Good"
	Inaccuracy Classification = "Inaccuracy"
	Mistake    Classification = "Mistake"
	Blunder    Classification = "Blunder"
	// Unknown marks plies where the engine produced no usable evaluation;
	// it is reported as-is rather than guessed at.
	Unknown Classification = "Unknown"
)

// ClassifyLoss maps a centipawn-loss magnitude to a bucket. Thresholds are
// strict, so a loss of exactly 30, 75 or 150 lands in the milder bucket.
func ClassifyLoss(loss int) Classification {
	if loss < 0 {
		loss = -loss
	}
	switch {
	case loss > 150:
		return Blunder
	case loss > 75:
		return Mistake
	case loss > 30:
		return Inaccuracy
	default:
		return Good
	}
}

// Classify compares the evaluation reached by the played move against the
// evaluation reachable via the engine's best alternative. Both scores come
// from positions one ply after the same pre-move position, so the same side
// is to move in each and the centipawn values compare directly.
func Classify(played, best engine.Score) Classification {
	if !played.OK || !best.OK {
		return Unknown
	}
	return ClassifyLoss(best.CP - played.CP)
}
