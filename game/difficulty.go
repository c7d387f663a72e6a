package game

import (
	"fmt"
	"strings"
)

type Difficulty struct {
	Name     string
	Size     int
	NumMines int
}

var (
	Easy   = Difficulty{Name: "easy", Size: 8, NumMines: 10}
	Medium = Difficulty{Name: "medium", Size: 12, NumMines: 25}
	Hard   = Difficulty{Name: "hard", Size: 16, NumMines: 40}
)

var Difficulties = []Difficulty{Easy, Medium, Hard}

var DefaultDifficulty = Medium

func (difficulty Difficulty) String() string {
	return difficulty.Name
}

func ParseDifficulty(name string) (Difficulty, error) {
	for _, difficulty := range Difficulties {
		if strings.EqualFold(difficulty.Name, strings.TrimSpace(name)) {
			return difficulty, nil
		}
	}
	return Difficulty{}, fmt.Errorf("%w: %q", ErrUnknownDifficulty, name)
}

// NewGame returns a fresh board for the given difficulty
func NewGame(difficulty Difficulty) (*Board, error) {
	return NewBoard(difficulty.BoardConfig())
}

func (difficulty Difficulty) BoardConfig() BoardConfig {
	return BoardConfig{
		Size:     difficulty.Size,
		NumMines: difficulty.NumMines,
	}
}
