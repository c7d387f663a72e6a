package random

import (
	"math/rand"

	"github.com/sirupsen/logrus"
	"github.com/they4kman/saper/game"
)

// Action is one kind of input a player can send to a board
type Action int

const (
	Click Action = iota
	RightClick
	DoubleClick
)

func (action Action) String() string {
	switch action {
	case Click:
		return "click"
	case RightClick:
		return "right click"
	case DoubleClick:
		return "double click"
	default:
		return "unknown"
	}
}

// Director plays a board by sending it random input. Mostly it clicks hidden
// cells in a shuffled order, with the occasional flag or chord.
type Director struct {
	board *game.Board
	rand  *rand.Rand
	order []game.Pos
	moves int
}

func New(board *game.Board, r *rand.Rand) *Director {
	director := &Director{
		board: board,
		rand:  r,
		order: make([]game.Pos, 0, board.NumCells()),
	}

	for y := 0; y < board.Size(); y++ {
		for x := 0; x < board.Size(); x++ {
			director.order = append(director.order, game.Pos{X: x, Y: y})
		}
	}
	r.Shuffle(len(director.order), func(i, j int) {
		director.order[i], director.order[j] = director.order[j], director.order[i]
	})

	return director
}

// Move records one input sent by the director and the board's answer
type Move struct {
	Action Action
	Pos    game.Pos
	Result game.Result
}

func (director *Director) Moves() int {
	return director.moves
}

// Act sends a single random input to the board
func (director *Director) Act() (Move, error) {
	action := director.pickAction()
	pos := director.pickCell(action)
	director.moves++

	result, err := director.send(action, pos)
	if err != nil {
		return Move{}, err
	}

	game.Log.WithFields(logrus.Fields{
		"action":  action,
		"cell":    pos,
		"outcome": result.Outcome,
		"changed": len(result.Changed),
	}).Debug("director acted")

	return Move{Action: action, Pos: pos, Result: result}, nil
}

// Play acts until the game ends or maxMoves inputs have been sent
func (director *Director) Play(maxMoves int) (game.GameState, error) {
	for director.moves < maxMoves && !director.board.GameOver() {
		if _, err := director.Act(); err != nil {
			return director.board.State(), err
		}
	}
	return director.board.State(), nil
}

func (director *Director) pickAction() Action {
	switch n := director.rand.Intn(10); {
	case n < 7:
		return Click
	case n < 9:
		return RightClick
	default:
		return DoubleClick
	}
}

func (director *Director) pickCell(action Action) game.Pos {
	if action == Click {
		for _, pos := range director.order {
			view, _ := director.board.View(pos.X, pos.Y)
			if !view.Revealed && !view.Flagged {
				return pos
			}
		}
	}
	return director.order[director.rand.Intn(len(director.order))]
}

func (director *Director) send(action Action, pos game.Pos) (game.Result, error) {
	switch action {
	case RightClick:
		return director.board.ToggleFlag(pos.X, pos.Y)
	case DoubleClick:
		return director.board.Chord(pos.X, pos.Y)
	default:
		return director.board.Reveal(pos.X, pos.Y)
	}
}
