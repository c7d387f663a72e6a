package game

import (
	"fmt"
)

type Cell struct {
	board *Board

	x, y int
	idx  int

	isMine, isRevealed, isFlagged bool
	isLosingMine                  bool
	// Unflagged mine shown once the game is over. Never sets isRevealed.
	isExposed bool
}

// CellView is the read-only rendering of a single cell
type CellView struct {
	Revealed bool
	Flagged  bool
	// Only set once the mine is revealed or exposed at the end of the game
	Mine bool
	// Only set for revealed, numbered cells
	AdjacentMines int
	State         CellState
}

func (cell *Cell) String() string {
	return fmt.Sprintf("Cell(%v, %v)", cell.x, cell.y)
}

func (cell *Cell) X() int {
	return cell.x
}

func (cell *Cell) Y() int {
	return cell.y
}

func (cell *Cell) Pos() Pos {
	return Pos{cell.x, cell.y}
}

func (cell *Cell) IsRevealed() bool {
	return cell.isRevealed
}

func (cell *Cell) IsFlagged() bool {
	return cell.isFlagged
}

// AdjacentMines counts the mines in the cell's Moore neighborhood
func (cell *Cell) AdjacentMines() int {
	numMines := 0
	for _, neighbor := range cell.Neighbors() {
		if neighbor.isMine {
			numMines++
		}
	}
	return numMines
}

func (cell *Cell) numFlaggedNeighbors() int {
	numFlags := 0
	for _, neighbor := range cell.Neighbors() {
		if neighbor.isFlagged {
			numFlags++
		}
	}
	return numFlags
}

// Neighbors returns the in-bounds cells surrounding this one
func (cell *Cell) Neighbors() []*Cell {
	board := cell.board
	neighbors := make([]*Cell, 0, 8)

	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if neighbor := board.cellAt(cell.x+dx, cell.y+dy); neighbor != nil {
				neighbors = append(neighbors, neighbor)
			}
		}
	}
	return neighbors
}

// hiddenNeighbors returns the neighbors a chord would reveal
func (cell *Cell) hiddenNeighbors() []*Cell {
	var hidden []*Cell
	for _, neighbor := range cell.Neighbors() {
		if !neighbor.isFlagged && !neighbor.isRevealed {
			hidden = append(hidden, neighbor)
		}
	}
	return hidden
}

// floodNeighbors returns the neighbors a flood fill may spread into
func (cell *Cell) floodNeighbors() []*Cell {
	var next []*Cell
	for _, neighbor := range cell.Neighbors() {
		if !neighbor.isRevealed && !neighbor.isMine && !neighbor.isFlagged {
			next = append(next, neighbor)
		}
	}
	return next
}

func (cell *Cell) State() CellState {
	switch {
	case cell.isLosingMine:
		return MineLosing
	case cell.isRevealed && cell.isMine:
		return Mine
	case cell.isRevealed:
		return CellState(cell.AdjacentMines())
	case cell.isFlagged:
		if cell.board.state == Lost && !cell.isMine {
			return FlagWrong
		}
		return Flag
	case cell.isExposed:
		return MineUnrevealed
	default:
		return Unrevealed
	}
}

func (cell *Cell) View() CellView {
	view := CellView{
		Revealed: cell.isRevealed,
		Flagged:  cell.isFlagged,
		Mine:     cell.isMine && (cell.isRevealed || cell.isExposed),
		State:    cell.State(),
	}
	if view.State.IsNumber() {
		view.AdjacentMines = int(view.State)
	}
	return view
}
