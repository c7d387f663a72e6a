package game

import (
	"reflect"
	"testing"
)

func mustApply(t *testing.T, action func(x, y int) (Result, error), x, y int) Result {
	t.Helper()

	result, err := action(x, y)
	if err != nil {
		t.Fatalf("(%d, %d): %v", x, y, err)
	}
	return result
}

func revealedPositions(board *Board) []Pos {
	var revealed []Pos
	for idx := range board.cells {
		if board.cells[idx].isRevealed {
			revealed = append(revealed, board.cells[idx].Pos())
		}
	}
	return revealed
}

func columnPositions(size int, columns ...int) []Pos {
	var positions []Pos
	for y := 0; y < size; y++ {
		for _, x := range columns {
			positions = append(positions, Pos{x, y})
		}
	}
	return positions
}

// Mines down the middle column split the board into two regions
func wallBoard(t *testing.T) *Board {
	return layoutBoard(t,
		"..*..",
		"..*..",
		"..*..",
		"..*..",
		"..*..",
	)
}

func TestRevealEmptyBoardCascadesAndWins(t *testing.T) {
	board, err := Create(3, 0)
	if err != nil {
		t.Fatal(err)
	}

	result := mustApply(t, board.Reveal, 1, 1)

	if result.Outcome != Applied {
		t.Fatalf("outcome = %v, want applied", result.Outcome)
	}
	if len(result.Changed) != 9 {
		t.Fatalf("changed %d cells, want 9: %v", len(result.Changed), result.Changed)
	}
	if result.State != Won || board.State() != Won {
		t.Fatalf("state = %v, want won", board.State())
	}
	if board.Status().Message() != "Win" {
		t.Fatalf("message = %q, want Win", board.Status().Message())
	}
}

func TestRevealFloodStopsAtNumberedRing(t *testing.T) {
	board := wallBoard(t)

	result := mustApply(t, board.Reveal, 0, 0)

	want := columnPositions(5, 0, 1)
	if !reflect.DeepEqual(result.Changed, want) {
		t.Fatalf("changed = %v, want %v", result.Changed, want)
	}
	if got := revealedPositions(board); !reflect.DeepEqual(got, want) {
		t.Fatalf("revealed = %v, want %v", got, want)
	}
	if board.State() != InProgress {
		t.Fatalf("state = %v, want in progress", board.State())
	}

	for _, pos := range columnPositions(5, 1) {
		view, _ := board.View(pos.X, pos.Y)
		if !view.State.IsNumber() || view.AdjacentMines == 0 {
			t.Errorf("cell %v = %+v, want a numbered cell", pos, view)
		}
	}
}

func TestRevealNumberedCellDoesNotSpread(t *testing.T) {
	board := wallBoard(t)

	result := mustApply(t, board.Reveal, 1, 2)

	if want := []Pos{{1, 2}}; !reflect.DeepEqual(result.Changed, want) {
		t.Fatalf("changed = %v, want %v", result.Changed, want)
	}
	view, _ := board.View(1, 2)
	if view.AdjacentMines != 3 || view.State != Number3 {
		t.Fatalf("view = %+v, want 3 adjacent mines", view)
	}
}

func TestRevealFloodSkipsFlaggedCells(t *testing.T) {
	board := wallBoard(t)

	mustApply(t, board.ToggleFlag, 0, 4)
	mustApply(t, board.Reveal, 0, 0)

	view, _ := board.View(0, 4)
	if view.Revealed || !view.Flagged {
		t.Fatalf("flagged cell after flood = %+v, want flagged and hidden", view)
	}
}

func TestRevealAlreadyRevealedIsNoOp(t *testing.T) {
	board := wallBoard(t)

	mustApply(t, board.Reveal, 1, 1)
	result := mustApply(t, board.Reveal, 1, 1)

	if result.Outcome != NoOpRevealed {
		t.Fatalf("outcome = %v, want %v", result.Outcome, NoOpRevealed)
	}
	if len(result.Changed) != 0 {
		t.Fatalf("changed = %v, want nothing", result.Changed)
	}
}

func TestRevealFlaggedIsNoOp(t *testing.T) {
	board, err := NewBoard(BoardConfig{Size: 8, NumMines: 10, Seed: 7})
	if err != nil {
		t.Fatal(err)
	}

	mustApply(t, board.ToggleFlag, 3, 4)
	result := mustApply(t, board.Reveal, 3, 4)

	if result.Outcome != NoOpFlagged {
		t.Fatalf("outcome = %v, want %v", result.Outcome, NoOpFlagged)
	}
	view, _ := board.View(3, 4)
	if view.Revealed || !view.Flagged {
		t.Fatalf("view = %+v, want flagged and hidden", view)
	}
	if board.State() != InProgress {
		t.Fatalf("state = %v, want in progress", board.State())
	}
}

func TestRevealMineLoses(t *testing.T) {
	board := wallBoard(t)

	mustApply(t, board.ToggleFlag, 2, 4)
	mustApply(t, board.ToggleFlag, 4, 4)

	result := mustApply(t, board.Reveal, 2, 0)

	if result.State != Lost || board.State() != Lost {
		t.Fatalf("state = %v, want lost", board.State())
	}
	want := []Pos{{2, 0}, {2, 1}, {2, 2}, {2, 3}, {4, 4}}
	if !reflect.DeepEqual(result.Changed, want) {
		t.Fatalf("changed = %v, want %v", result.Changed, want)
	}

	tests := []struct {
		pos      Pos
		state    CellState
		mine     bool
		revealed bool
	}{
		{Pos{2, 0}, MineLosing, true, true},
		{Pos{2, 1}, MineUnrevealed, true, false},
		{Pos{2, 4}, Flag, false, false},
		{Pos{4, 4}, FlagWrong, false, false},
		{Pos{0, 0}, Unrevealed, false, false},
	}
	for _, test := range tests {
		view, _ := board.View(test.pos.X, test.pos.Y)
		if view.State != test.state || view.Mine != test.mine || view.Revealed != test.revealed {
			t.Errorf("view%v = %+v, want state %v, mine %v, revealed %v",
				test.pos, view, test.state, test.mine, test.revealed)
		}
	}
}

func TestNoMutationAfterGameOver(t *testing.T) {
	board := wallBoard(t)

	mustApply(t, board.Reveal, 1, 1)
	mustApply(t, board.Reveal, 2, 2)
	before := board.String()
	flags := board.NumFlags()

	actions := map[string]func(x, y int) (Result, error){
		"reveal": board.Reveal,
		"flag":   board.ToggleFlag,
		"chord":  board.Chord,
	}
	for name, action := range actions {
		for _, pos := range []Pos{{0, 0}, {1, 1}, {4, 4}, {2, 3}} {
			result := mustApply(t, action, pos.X, pos.Y)
			if result.Outcome != NoOpGameOver {
				t.Errorf("%s%v outcome = %v, want %v", name, pos, result.Outcome, NoOpGameOver)
			}
			if result.State != Lost {
				t.Errorf("%s%v state = %v, want lost", name, pos, result.State)
			}
		}
	}

	if after := board.String(); after != before {
		t.Fatalf("board changed after loss:\n%s\nwant\n%s", after, before)
	}
	if board.NumFlags() != flags {
		t.Fatalf("flags changed after loss: %d, want %d", board.NumFlags(), flags)
	}
}

func TestToggleFlag(t *testing.T) {
	board := layoutBoard(t,
		"*..",
		"...",
		"..*",
	)

	result := mustApply(t, board.ToggleFlag, 0, 0)
	if !result.Flagged || result.NumFlags != 1 || result.Outcome != Applied {
		t.Fatalf("first flag = %+v", result)
	}
	if want := []Pos{{0, 0}}; !reflect.DeepEqual(result.Changed, want) {
		t.Fatalf("changed = %v, want %v", result.Changed, want)
	}

	result = mustApply(t, board.ToggleFlag, 0, 0)
	if result.Flagged || result.NumFlags != 0 {
		t.Fatalf("unflag = %+v", result)
	}

	// Flags are not limited by the number of mines
	for _, pos := range []Pos{{0, 0}, {1, 0}, {2, 0}, {0, 1}} {
		result = mustApply(t, board.ToggleFlag, pos.X, pos.Y)
	}
	if result.NumFlags != 4 || board.Status().Flags() != "4/2" {
		t.Fatalf("flags = %d (%s), want 4/2", result.NumFlags, board.Status().Flags())
	}

	mustApply(t, board.Reveal, 1, 1)
	result = mustApply(t, board.ToggleFlag, 1, 1)
	if result.Outcome != NoOpRevealed || result.Flagged {
		t.Fatalf("flag on revealed cell = %+v, want %v", result, NoOpRevealed)
	}

	if board.State() != InProgress {
		t.Fatalf("flagging changed state to %v", board.State())
	}
}

func TestFlagCountMatchesFlaggedCells(t *testing.T) {
	board, err := NewBoard(BoardConfig{Size: 12, NumMines: 25, Seed: 3})
	if err != nil {
		t.Fatal(err)
	}

	for i, pos := range []Pos{{0, 0}, {5, 5}, {0, 0}, {11, 11}, {3, 7}, {5, 5}, {6, 2}} {
		result := mustApply(t, board.ToggleFlag, pos.X, pos.Y)

		numFlagged := 0
		for idx := range board.cells {
			if board.cells[idx].isFlagged {
				numFlagged++
			}
		}
		if result.NumFlags != numFlagged {
			t.Fatalf("step %d: NumFlags = %d, flagged cells = %d", i, result.NumFlags, numFlagged)
		}
	}
}

func TestChord(t *testing.T) {
	board := layoutBoard(t,
		"*..",
		"...",
		"..*",
	)

	result := mustApply(t, board.Chord, 1, 1)
	if result.Outcome != NoOpNotRevealed {
		t.Fatalf("chord on hidden cell = %v, want %v", result.Outcome, NoOpNotRevealed)
	}

	mustApply(t, board.Reveal, 1, 1)

	result = mustApply(t, board.Chord, 1, 1)
	if result.Outcome != NoOpFlagMismatch {
		t.Fatalf("chord without flags = %v, want %v", result.Outcome, NoOpFlagMismatch)
	}

	mustApply(t, board.ToggleFlag, 0, 0)
	result = mustApply(t, board.Chord, 1, 1)
	if result.Outcome != NoOpFlagMismatch {
		t.Fatalf("chord on a 2 with one flag = %v, want %v", result.Outcome, NoOpFlagMismatch)
	}
	if got := revealedPositions(board); !reflect.DeepEqual(got, []Pos{{1, 1}}) {
		t.Fatalf("mismatched chord revealed %v", got)
	}

	mustApply(t, board.ToggleFlag, 2, 2)
	result = mustApply(t, board.Chord, 1, 1)
	if result.Outcome != Applied {
		t.Fatalf("chord = %v, want applied", result.Outcome)
	}
	want := []Pos{{1, 0}, {2, 0}, {0, 1}, {2, 1}, {0, 2}, {1, 2}}
	if !reflect.DeepEqual(result.Changed, want) {
		t.Fatalf("changed = %v, want %v", result.Changed, want)
	}
	if board.State() != Won {
		t.Fatalf("state = %v, want won", board.State())
	}
}

func TestChordTrustsFlags(t *testing.T) {
	board := layoutBoard(t,
		"*.*",
		"...",
		".*.",
	)

	mustApply(t, board.Reveal, 1, 1)
	if view, _ := board.View(1, 1); view.AdjacentMines != 3 {
		t.Fatalf("center shows %d, want 3", view.AdjacentMines)
	}

	mustApply(t, board.ToggleFlag, 0, 0)
	mustApply(t, board.ToggleFlag, 2, 0)
	// Misplaced: the real third mine is at (1, 2)
	mustApply(t, board.ToggleFlag, 0, 2)

	result := mustApply(t, board.Chord, 1, 1)

	if result.Outcome != Applied {
		t.Fatalf("chord = %v, want applied", result.Outcome)
	}
	if result.State != Lost {
		t.Fatalf("state = %v, want lost", result.State)
	}
	if view, _ := board.View(1, 2); view.State != MineLosing {
		t.Fatalf("(1, 2) = %v, want the losing mine", view.State)
	}
	if view, _ := board.View(0, 2); view.State != FlagWrong {
		t.Fatalf("(0, 2) = %v, want a wrong flag", view.State)
	}
}

func TestChordNothingToReveal(t *testing.T) {
	board := wallBoard(t)

	mustApply(t, board.Reveal, 0, 0)
	result := mustApply(t, board.Chord, 0, 0)

	if result.Outcome != NoOpNothingToReveal {
		t.Fatalf("outcome = %v, want %v", result.Outcome, NoOpNothingToReveal)
	}
	if board.State() != InProgress {
		t.Fatalf("state = %v, want in progress", board.State())
	}
}

func TestWinExactlyWhenLastSafeCellRevealed(t *testing.T) {
	board, err := NewBoard(BoardConfig{Size: 8, NumMines: 10, Seed: 1234})
	if err != nil {
		t.Fatal(err)
	}

	for y := 0; y < board.Size(); y++ {
		for x := 0; x < board.Size(); x++ {
			if isMine, _ := board.IsMine(x, y); isMine {
				continue
			}
			if view, _ := board.View(x, y); view.Revealed {
				continue
			}

			if board.State() != InProgress {
				t.Fatalf("state = %v with (%d, %d) still hidden", board.State(), x, y)
			}
			mustApply(t, board.Reveal, x, y)

			allSafeRevealed := len(revealedPositions(board)) == board.NumCells()-board.NumMines()
			if allSafeRevealed != (board.State() == Won) {
				t.Fatalf("after (%d, %d): all safe revealed = %v, state = %v",
					x, y, allSafeRevealed, board.State())
			}
		}
	}

	if board.State() != Won {
		t.Fatalf("state = %v, want won", board.State())
	}
	for y := 0; y < board.Size(); y++ {
		for x := 0; x < board.Size(); x++ {
			if isMine, _ := board.IsMine(x, y); !isMine {
				continue
			}
			view, _ := board.View(x, y)
			if view.Revealed || !view.Mine || view.State != MineUnrevealed {
				t.Errorf("mine (%d, %d) after win = %+v, want exposed but not revealed", x, y, view)
			}
		}
	}
}

func TestViewHidesMinesDuringPlay(t *testing.T) {
	board := wallBoard(t)

	view, _ := board.View(2, 2)
	if view.Mine || view.State != Unrevealed || view.AdjacentMines != 0 {
		t.Fatalf("hidden mine view = %+v", view)
	}
}
