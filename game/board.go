package game

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/they4kman/saper/util/collections"
)

type Board struct {
	size     int // in number of cells, per side
	numMines int
	cells    []Cell

	state    GameState
	numFlags int
	// Unrevealed cells which are not mines; the game is won when this hits 0
	numHiddenSafe int

	seed               int64
	rand               *rand.Rand
	now                func() time.Time
	startTime, endTime time.Time

	onGameEnd func(*Board)

	// Cells whose display changed during the current action
	changed collections.Set[Pos]
}

type BoardConfig struct {
	Size     int
	NumMines int

	// Seed for mine placement. 0 picks a time-based seed. Ignored if Rand is set.
	Seed int64
	Rand *rand.Rand

	// Fixed mine layout. Overrides Size and NumMines.
	Layout *Layout

	// Clock used for elapsed time; defaults to time.Now
	Now func() time.Time

	// Called once, when the game is won or lost
	OnGameEnd func(*Board)
}

// Create builds a board of size×size cells with mineCount randomly placed mines
func Create(size, mineCount int) (*Board, error) {
	return NewBoard(BoardConfig{Size: size, NumMines: mineCount})
}

func NewBoard(config BoardConfig) (*Board, error) {
	var mines []bool
	if config.Layout != nil {
		var err error
		mines, config.Size, err = config.Layout.mines()
		if err != nil {
			return nil, err
		}
		config.NumMines = 0
		for _, isMine := range mines {
			if isMine {
				config.NumMines++
			}
		}
	}

	if err := validate(config.Size, config.NumMines); err != nil {
		return nil, err
	}

	board := createBoard(config)
	if mines == nil {
		board.placeMines()
	} else {
		board.fillMines(mines)
	}

	Log.WithFields(logrus.Fields{
		"size":  board.size,
		"mines": board.numMines,
		"seed":  board.seed,
	}).Debug("created board")

	return board, nil
}

func validate(size, numMines int) error {
	if size < 1 {
		return fmt.Errorf("%w: %d (must be at least 1)", ErrInvalidSize, size)
	}
	if numMines < 0 || numMines >= size*size {
		return fmt.Errorf(
			"%w: %d (must be between 0 and %d for a %dx%d board)",
			ErrInvalidMineCount, numMines, size*size-1, size, size,
		)
	}
	return nil
}

func createBoard(config BoardConfig) *Board {
	board := &Board{
		state:         InProgress,
		size:          config.Size,
		numMines:      config.NumMines,
		cells:         make([]Cell, config.Size*config.Size),
		numHiddenSafe: config.Size*config.Size - config.NumMines,
		seed:          config.Seed,
		rand:          config.Rand,
		now:           config.Now,
		onGameEnd:     config.OnGameEnd,
		changed:       make(collections.Set[Pos]),
	}

	if board.rand == nil {
		if board.seed == 0 {
			board.seed = time.Now().UnixNano()
		}
		board.rand = rand.New(rand.NewSource(board.seed))
	}
	if board.now == nil {
		board.now = time.Now
	}
	board.startTime = board.now()

	for idx := range board.cells {
		cell := &board.cells[idx]
		cell.board = board
		cell.idx = idx
		cell.x, cell.y = idx%board.size, idx/board.size
	}

	return board
}

// placeMines shuffles all cell indexes and marks the first numMines as mines
func (board *Board) placeMines() {
	cellIndexes := make([]int, len(board.cells))
	for i := range cellIndexes {
		cellIndexes[i] = i
	}

	board.rand.Shuffle(len(cellIndexes), func(i, j int) {
		cellIndexes[i], cellIndexes[j] = cellIndexes[j], cellIndexes[i]
	})
	for _, cellIdx := range cellIndexes[:board.numMines] {
		board.cells[cellIdx].isMine = true
	}
}

func (board *Board) fillMines(mines []bool) {
	for idx, isMine := range mines {
		board.cells[idx].isMine = isMine
	}
}

func (board *Board) Size() int {
	return board.size
}

func (board *Board) NumCells() int {
	return len(board.cells)
}

func (board *Board) NumMines() int {
	return board.numMines
}

func (board *Board) NumFlags() int {
	return board.numFlags
}

func (board *Board) State() GameState {
	return board.state
}

func (board *Board) GameOver() bool {
	return board.state.IsTerminal()
}

// Seed returns the seed of the board's random source, or 0 if an explicit
// Rand was supplied
func (board *Board) Seed() int64 {
	return board.seed
}

// Elapsed is the time since the board was created, frozen when the game ends
func (board *Board) Elapsed() time.Duration {
	if board.GameOver() {
		return board.endTime.Sub(board.startTime)
	}
	return board.now().Sub(board.startTime)
}

func (board *Board) cellAt(x, y int) *Cell {
	if x >= 0 && y >= 0 && x < board.size && y < board.size {
		return &board.cells[y*board.size+x]
	}
	return nil
}

// CellAt returns the cell at (x, y), or an error if it lies outside the board
func (board *Board) CellAt(x, y int) (*Cell, error) {
	cell := board.cellAt(x, y)
	if cell == nil {
		return nil, fmt.Errorf(
			"%w: (%d, %d) on a %dx%d board", ErrOutOfBounds, x, y, board.size, board.size,
		)
	}
	return cell, nil
}

func (board *Board) View(x, y int) (CellView, error) {
	cell, err := board.CellAt(x, y)
	if err != nil {
		return CellView{}, err
	}
	return cell.View(), nil
}

func (board *Board) AdjacentMines(x, y int) (int, error) {
	cell, err := board.CellAt(x, y)
	if err != nil {
		return 0, err
	}
	return cell.AdjacentMines(), nil
}

func (board *Board) IsMine(x, y int) (bool, error) {
	cell, err := board.CellAt(x, y)
	if err != nil {
		return false, err
	}
	return cell.isMine, nil
}

func (board *Board) Status() Status {
	return Status{
		NumFlags: board.numFlags,
		NumMines: board.numMines,
		Elapsed:  int(board.Elapsed() / time.Second),
		State:    board.state,
	}
}

func (board *Board) String() string {
	var builder strings.Builder
	for idx := range board.cells {
		builder.WriteString(board.cells[idx].State().String())
		if (idx+1)%board.size == 0 {
			builder.WriteByte('\n')
		}
	}
	return builder.String()
}

// checkWin reports whether every non-mine cell has been revealed
func (board *Board) checkWin() bool {
	return board.numHiddenSafe == 0
}

func (board *Board) win() {
	board.endGame(Won)
}

func (board *Board) lose() {
	board.endGame(Lost)
}

func (board *Board) endGame(state GameState) {
	board.state = state
	board.endTime = board.now()

	for idx := range board.cells {
		cell := &board.cells[idx]
		switch {
		case cell.isMine && !cell.isFlagged && !cell.isRevealed:
			cell.isExposed = true
			board.markChanged(cell)
		case cell.isFlagged && !cell.isMine && state == Lost:
			board.markChanged(cell)
		}
	}

	Log.WithFields(logrus.Fields{
		"state":   state,
		"elapsed": board.Status().Elapsed,
		"flags":   board.numFlags,
		"mines":   board.numMines,
	}).Info("game over")

	if board.onGameEnd != nil {
		board.onGameEnd(board)
	}
}

func (board *Board) markChanged(cell *Cell) {
	board.changed.Add(cell.Pos())
}

// result collects the changes of the action that just ran, and resets them
func (board *Board) result(target *Cell) Result {
	changed := board.changed.Sorted(func(a, b Pos) bool {
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})
	board.changed = make(collections.Set[Pos])

	return Result{
		Outcome:  Applied,
		Changed:  changed,
		State:    board.state,
		Flagged:  target.isFlagged,
		NumFlags: board.numFlags,
	}
}

func (board *Board) noOp(target *Cell, outcome Outcome) Result {
	return Result{
		Outcome:  outcome,
		State:    board.state,
		Flagged:  target.isFlagged,
		NumFlags: board.numFlags,
	}
}
