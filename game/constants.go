package game

type CellState int
type GameState int

const (
	Unrevealed CellState = iota - 1
	Empty
	Number1
	Number2
	Number3
	Number4
	Number5
	Number6
	Number7
	Number8
	Flag
	FlagWrong
	Mine
	MineUnrevealed
	MineLosing
)

// IsNumber reports whether the state shows an adjacency number (1-8)
func (state CellState) IsNumber() bool {
	return state >= Number1 && state <= Number8
}

func (state CellState) String() string {
	switch {
	case state == Unrevealed:
		return "#"
	case state == Empty:
		return "."
	case state.IsNumber():
		return string(rune('0' + int(state)))
	case state == Flag:
		return "F"
	case state == FlagWrong:
		return "X"
	case state == Mine, state == MineUnrevealed:
		return "*"
	case state == MineLosing:
		return "@"
	default:
		return "?"
	}
}

const (
	InProgress GameState = iota
	Won
	Lost
)

func (state GameState) String() string {
	switch state {
	case InProgress:
		return "in progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// IsTerminal reports whether no further input is accepted in this state
func (state GameState) IsTerminal() bool {
	return state == Won || state == Lost
}
