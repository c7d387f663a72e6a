package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/they4kman/saper/config"
	"github.com/they4kman/saper/game"
)

var errUnknownCommand = errors.New("unknown command")

// Shell reads player commands line by line and forwards them to the board.
// It keeps no cell state of its own; everything printed is re-queried from
// the board after each command.
type Shell struct {
	in      *bufio.Scanner
	out     io.Writer
	config  config.Config
	palette palette

	// Source of seeds for each new game
	seeds *rand.Rand
	board *game.Board
}

func NewShell(in io.Reader, out io.Writer, cfg config.Config) *Shell {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Shell{
		in:      bufio.NewScanner(in),
		out:     out,
		config:  cfg,
		palette: newPalette(out),
		seeds:   rand.New(rand.NewSource(seed)),
	}
}

func (shell *Shell) Board() *game.Board {
	return shell.board
}

func (shell *Shell) Run() error {
	if err := shell.newGame(shell.config); err != nil {
		return err
	}
	shell.render()

	for shell.prompt(); shell.in.Scan(); shell.prompt() {
		quit, err := shell.Handle(shell.in.Text())
		if err != nil {
			fmt.Fprintf(shell.out, "error: %v\n", err)
			continue
		}
		if quit {
			return nil
		}
	}
	return shell.in.Err()
}

// Handle runs a single command line, returning whether the player quit
func (shell *Shell) Handle(line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}

	switch command, args := strings.ToLower(fields[0]), fields[1:]; command {
	case "q", "quit", "exit":
		return true, nil

	case "n", "new":
		cfg := shell.config
		if len(args) > 0 {
			difficulty, err := game.ParseDifficulty(args[0])
			if err != nil {
				return false, err
			}
			cfg = config.Config{Difficulty: difficulty.Name}
		}
		if err := shell.newGame(cfg); err != nil {
			return false, err
		}
		shell.render()
		return false, nil

	case "r", "reveal":
		return false, shell.act(shell.board.Reveal, args)
	case "f", "flag":
		return false, shell.act(shell.board.ToggleFlag, args)
	case "c", "chord":
		return false, shell.act(shell.board.Chord, args)

	default:
		return false, fmt.Errorf("%w: %q", errUnknownCommand, fields[0])
	}
}

func (shell *Shell) act(action func(x, y int) (game.Result, error), args []string) error {
	x, y, err := parseCoords(args)
	if err != nil {
		return err
	}

	result, err := action(x, y)
	if err != nil {
		return err
	}
	if result.Outcome.IsNoOp() {
		fmt.Fprintf(shell.out, "(%s)\n", result.Outcome)
		return nil
	}

	shell.render()
	return nil
}

func (shell *Shell) newGame(cfg config.Config) error {
	boardConfig, err := cfg.BoardConfig()
	if err != nil {
		return err
	}
	boardConfig.Seed = shell.seeds.Int63()
	boardConfig.OnGameEnd = func(board *game.Board) {
		game.Log.WithFields(logrus.Fields{
			"seed":   board.Seed(),
			"layout": game.LayoutOf(board).Board,
		}).Debug("finished board")
	}

	board, err := game.NewBoard(boardConfig)
	if err != nil {
		return err
	}
	shell.board = board
	return nil
}

func (shell *Shell) render() {
	fmt.Fprint(shell.out, shell.palette.renderBoard(shell.board))
	fmt.Fprintln(shell.out, shell.palette.renderStatus(shell.board.Status()))
}

func (shell *Shell) prompt() {
	fmt.Fprint(shell.out, "> ")
}

func parseCoords(args []string) (int, int, error) {
	if len(args) != 2 {
		return 0, 0, fmt.Errorf("expected X and Y, got %d arguments", len(args))
	}

	x, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid X %q", args[0])
	}
	y, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid Y %q", args[1])
	}
	return x, y, nil
}
