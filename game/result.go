package game

import "fmt"

// Pos addresses a cell by column (X) and row (Y)
type Pos struct {
	X, Y int
}

func (pos Pos) String() string {
	return fmt.Sprintf("(%d, %d)", pos.X, pos.Y)
}

// Outcome tells whether an action was applied, and if not, why it was ignored
type Outcome int

const (
	Applied Outcome = iota
	NoOpGameOver
	NoOpRevealed
	NoOpFlagged
	NoOpNotRevealed
	NoOpFlagMismatch
	NoOpNothingToReveal
)

func (outcome Outcome) IsNoOp() bool {
	return outcome != Applied
}

func (outcome Outcome) String() string {
	switch outcome {
	case Applied:
		return "applied"
	case NoOpGameOver:
		return "game over"
	case NoOpRevealed:
		return "cell already revealed"
	case NoOpFlagged:
		return "cell flagged"
	case NoOpNotRevealed:
		return "cell not revealed"
	case NoOpFlagMismatch:
		return "flag count does not match"
	case NoOpNothingToReveal:
		return "nothing to reveal"
	default:
		return fmt.Sprintf("Outcome(%d)", int(outcome))
	}
}

// Result is returned by every input action. Changed lists the cells whose
// display changed, ordered by row then column; callers re-query them with
// Board.View.
type Result struct {
	Outcome Outcome
	Changed []Pos
	State   GameState

	// Flag state of the targeted cell after the action
	Flagged bool
	// Total number of flagged cells after the action
	NumFlags int
}
