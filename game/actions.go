package game

import (
	"github.com/sirupsen/logrus"
)

// Reveal handles a left click on (x, y). Revealing a cell with no adjacent
// mines also reveals the surrounding empty region and its numbered border.
func (board *Board) Reveal(x, y int) (Result, error) {
	cell, err := board.CellAt(x, y)
	if err != nil {
		return Result{}, err
	}

	switch {
	case board.GameOver():
		return board.noOp(cell, NoOpGameOver), nil
	case cell.isRevealed:
		return board.noOp(cell, NoOpRevealed), nil
	case cell.isFlagged:
		return board.noOp(cell, NoOpFlagged), nil
	}

	board.reveal(cell)
	return board.result(cell), nil
}

// ToggleFlag handles a right click on (x, y)
func (board *Board) ToggleFlag(x, y int) (Result, error) {
	cell, err := board.CellAt(x, y)
	if err != nil {
		return Result{}, err
	}

	switch {
	case board.GameOver():
		return board.noOp(cell, NoOpGameOver), nil
	case cell.isRevealed:
		return board.noOp(cell, NoOpRevealed), nil
	}

	cell.isFlagged = !cell.isFlagged
	if cell.isFlagged {
		board.numFlags++
	} else {
		board.numFlags--
	}
	board.markChanged(cell)

	Log.WithFields(logrus.Fields{
		"cell":    cell.Pos(),
		"flagged": cell.isFlagged,
		"flags":   board.numFlags,
	}).Debug("toggled flag")

	return board.result(cell), nil
}

// Chord handles a double click on (x, y): when a revealed cell has exactly as
// many flagged neighbors as adjacent mines, all its other hidden neighbors
// are revealed. Flags are trusted, so a misplaced flag can lose the game.
func (board *Board) Chord(x, y int) (Result, error) {
	cell, err := board.CellAt(x, y)
	if err != nil {
		return Result{}, err
	}

	switch {
	case board.GameOver():
		return board.noOp(cell, NoOpGameOver), nil
	case !cell.isRevealed:
		return board.noOp(cell, NoOpNotRevealed), nil
	}

	numMines := cell.AdjacentMines()
	numFlags := cell.numFlaggedNeighbors()
	if numFlags != numMines {
		return board.noOp(cell, NoOpFlagMismatch), nil
	}

	hidden := cell.hiddenNeighbors()
	if len(hidden) == 0 {
		return board.noOp(cell, NoOpNothingToReveal), nil
	}

	Log.WithFields(logrus.Fields{
		"cell":   cell.Pos(),
		"mines":  numMines,
		"hidden": len(hidden),
	}).Debug("chording")

	for _, neighbor := range hidden {
		board.reveal(neighbor)
	}
	return board.result(cell), nil
}

func (board *Board) reveal(cell *Cell) {
	if board.GameOver() || cell.isRevealed || cell.isFlagged {
		return
	}

	if cell.isMine {
		cell.isRevealed = true
		cell.isLosingMine = true
		board.markChanged(cell)
		board.lose()
		return
	}

	numRevealed := flood(
		cell,
		func(cell *Cell) bool {
			if cell.isRevealed {
				return false
			}
			cell.isRevealed = true
			board.numHiddenSafe--
			board.markChanged(cell)
			return cell.AdjacentMines() == 0
		},
		func(cell *Cell) []*Cell {
			return cell.floodNeighbors()
		},
	)

	Log.WithFields(logrus.Fields{
		"cell":     cell.Pos(),
		"revealed": numRevealed,
	}).Debug("revealed")

	if board.checkWin() {
		board.win()
	}
}
