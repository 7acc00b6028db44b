package rating

import (
	"fmt"
	"math"

	"github.com/GayaStar/adaptiveChess/internal/models"
)

// Elo constants for games against the engine.
const (
	kFactor       = 32
	baseOpponent  = 1200 // effective rating of the engine at skill level 0
	perLevel      = 100  // rating added per skill level
	ratingFloor   = 100
	minLevel      = 0
	maxLevel      = 20
	minDepth      = 1
	maxDepth      = 15
	policyWinGain = 25
	policyLossCut = 15
)

// Outcome is a finished game from the player's point of view.
type Outcome int

const (
	Win Outcome = iota
	Loss
	Draw
)

func (o Outcome) String() string {
	switch o {
	case Win:
		return "win"
	case Loss:
		return "loss"
	default:
		return "draw"
	}
}

// Opponent identifies which move source the player faced.
type Opponent string

const (
	OpponentEngine Opponent = "engine"
	OpponentPolicy Opponent = "policy"
)

// OpponentFor picks the move source for a player: weaker players face the
// learned policy, stronger players face the engine.
func OpponentFor(playerRating int) Opponent {
	if playerRating < 1200 {
		return OpponentPolicy
	}
	return OpponentEngine
}

// Update describes one applied rating transition. The functions below are
// pure: they never touch storage, the caller persists New however it likes.
type Update struct {
	Old      models.RatingState
	New      models.RatingState
	Outcome  Outcome
	Opponent Opponent
	Delta    int
}

// EngineRating is the effective Elo assigned to the engine at a skill level.
func EngineRating(level int) int {
	return baseOpponent + clampLevel(level)*perLevel
}

// expectedScore is the standard Elo expectation of the player against an
// opponent rating.
func expectedScore(player, opponent int) float64 {
	return 1 / (1 + math.Pow(10, float64(opponent-player)/400))
}

// VsEngine computes the player's next rating state after a game against the
// engine. Rating moves by a rounded K*32 Elo delta against the engine's
// effective rating; a decisive result also steps the difficulty (skill level
// and search depth) one notch in the player's direction, a draw leaves it.
func VsEngine(state models.RatingState, outcome Outcome) Update {
	next := state
	expected := expectedScore(state.Rating, EngineRating(state.Level))

	var actual float64
	switch outcome {
	case Win:
		actual = 1
		next.Level = clampLevel(state.Level + 1)
		next.Depth = clampDepth(state.Depth + 1)
	case Loss:
		actual = 0
		next.Level = clampLevel(state.Level - 1)
		next.Depth = clampDepth(state.Depth - 1)
	case Draw:
		actual = 0.5
	}

	delta := int(math.Round(kFactor * (actual - expected)))
	next.Rating = floorRating(state.Rating + delta)

	return Update{
		Old:      state,
		New:      next,
		Outcome:  outcome,
		Opponent: OpponentEngine,
		Delta:    next.Rating - state.Rating,
	}
}

// VsPolicy computes the player's next rating state after a game against the
// learned policy: flat +25 for a win, -15 for a loss, unchanged for a draw.
// Difficulty settings only apply to the engine, so they never move here.
func VsPolicy(state models.RatingState, outcome Outcome) Update {
	next := state
	switch outcome {
	case Win:
		next.Rating = floorRating(state.Rating + policyWinGain)
	case Loss:
		next.Rating = floorRating(state.Rating - policyLossCut)
	}

	return Update{
		Old:      state,
		New:      next,
		Outcome:  outcome,
		Opponent: OpponentPolicy,
		Delta:    next.Rating - state.Rating,
	}
}

func clampLevel(level int) int {
	if level < minLevel {
		return minLevel
	}
	if level > maxLevel {
		return maxLevel
	}
	return level
}

func clampDepth(depth int) int {
	if depth < minDepth {
		return minDepth
	}
	if depth > maxDepth {
		return maxDepth
	}
	return depth
}

func floorRating(rating int) int {
	if rating < ratingFloor {
		return ratingFloor
	}
	return rating
}

// OutcomeFromResult maps a PGN-style result tag to the player's outcome.
func OutcomeFromResult(result string, playerIsWhite bool) (Outcome, error) {
	switch result {
	case "1-0":
		if playerIsWhite {
			return Win, nil
		}
		return Loss, nil
	case "0-1":
		if playerIsWhite {
			return Loss, nil
		}
		return Win, nil
	case "1/2-1/2":
		return Draw, nil
	}
	return Draw, fmt.Errorf("unrecognized game result %q", result)
}
