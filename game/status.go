package game

import "fmt"

// Status is the feed shown next to the board
type Status struct {
	NumFlags int
	NumMines int
	// Whole seconds since the game started, frozen once it ends
	Elapsed int
	State   GameState
}

// Flags renders the "flags used / total mines" counter
func (status Status) Flags() string {
	return fmt.Sprintf("%d/%d", status.NumFlags, status.NumMines)
}

// Message is "Win" or "Loss" once the game is over, and empty before that
func (status Status) Message() string {
	switch status.State {
	case Won:
		return "Win"
	case Lost:
		return "Loss"
	default:
		return ""
	}
}

func (status Status) String() string {
	str := fmt.Sprintf("Flags: %s  Time: %ds", status.Flags(), status.Elapsed)
	if message := status.Message(); message != "" {
		str += "  " + message
	}
	return str
}
