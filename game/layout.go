package game

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v2"
)

const (
	layoutMine = '*'
	layoutSafe = '.'
)

// Layout is a fixed arrangement of mines, one line per row, with '*' for a
// mine and '.' for a safe cell
type Layout struct {
	Board string `yaml:"board"`
}

func (layout *Layout) Serialize() string {
	out, err := yaml.Marshal(layout)
	if err != nil {
		panic(err)
	}

	return string(out)
}

func LoadLayout(in string) (*Layout, error) {
	var layout Layout
	if err := yaml.Unmarshal([]byte(in), &layout); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLayout, err)
	}
	if _, _, err := layout.mines(); err != nil {
		return nil, err
	}
	return &layout, nil
}

// LayoutOf captures the mine positions of a board
func LayoutOf(board *Board) *Layout {
	var builder strings.Builder
	for idx := range board.cells {
		if board.cells[idx].isMine {
			builder.WriteByte(layoutMine)
		} else {
			builder.WriteByte(layoutSafe)
		}
		if (idx+1)%board.size == 0 && idx+1 < len(board.cells) {
			builder.WriteByte('\n')
		}
	}
	return &Layout{Board: builder.String()}
}

// mines parses the layout into row-major mine flags, returning the board size
func (layout *Layout) mines() ([]bool, int, error) {
	rows := strings.Split(strings.TrimSpace(layout.Board), "\n")
	size := len(rows)
	if size == 0 || rows[0] == "" {
		return nil, 0, fmt.Errorf("%w: empty board", ErrInvalidLayout)
	}

	mines := make([]bool, 0, size*size)
	for y, row := range rows {
		row = strings.TrimSpace(row)
		if len(row) != size {
			return nil, 0, fmt.Errorf(
				"%w: row %d has %d cells, want %d", ErrInvalidLayout, y, len(row), size,
			)
		}

		for x, c := range row {
			switch c {
			case layoutMine:
				mines = append(mines, true)
			case layoutSafe:
				mines = append(mines, false)
			default:
				return nil, 0, fmt.Errorf(
					"%w: unexpected %q at (%d, %d)", ErrInvalidLayout, c, x, y,
				)
			}
		}
	}

	return mines, size, nil
}
