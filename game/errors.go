package game

import "errors"

var (
	ErrInvalidSize       = errors.New("invalid board size")
	ErrInvalidMineCount  = errors.New("invalid mine count")
	ErrOutOfBounds       = errors.New("coordinates out of bounds")
	ErrInvalidLayout     = errors.New("invalid layout")
	ErrUnknownDifficulty = errors.New("unknown difficulty")
)
