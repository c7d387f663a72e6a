package cmd

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/they4kman/saper/config"
	"github.com/they4kman/saper/director/random"
	"github.com/they4kman/saper/game"
)

var monkeyCmd = &cobra.Command{
	Use:   "monkey",
	Short: "Play random games and report how they ended",
	Long: `monkey plays boards by sending random clicks, flags and chords,
then prints how many games were won, lost or left unfinished.

	saper monkey --games 1000 --difficulty easy
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		tally, err := runMonkey(cfg)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "won: %d  lost: %d  unfinished: %d\n",
			tally[game.Won], tally[game.Lost], tally[game.InProgress])
		return nil
	},
}

// runMonkey plays cfg.Games random games, counting them by final state
func runMonkey(cfg config.Config) (map[game.GameState]int, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	seeds := rand.New(rand.NewSource(seed))

	tally := make(map[game.GameState]int)
	for i := 0; i < cfg.Games; i++ {
		boardConfig, err := cfg.BoardConfig()
		if err != nil {
			return nil, err
		}
		boardConfig.Seed = seeds.Int63()

		board, err := game.NewBoard(boardConfig)
		if err != nil {
			return nil, err
		}

		director := random.New(board, rand.New(rand.NewSource(seeds.Int63())))
		state, err := director.Play(cfg.MaxMoves)
		if err != nil {
			return nil, err
		}
		tally[state]++

		game.Log.WithFields(logrus.Fields{
			"game":  i,
			"seed":  board.Seed(),
			"state": state,
			"moves": director.Moves(),
		}).Debug("monkey game finished")
	}

	return tally, nil
}

func init() {
	difficulty := difficultyValue(game.DefaultDifficulty.Name)

	monkeyCmd.Flags().Var(&difficulty, "difficulty", "Board difficulty (easy, medium, hard)")
	monkeyCmd.Flags().Int("size", 0, "Custom board size, in cells per side")
	monkeyCmd.Flags().Int("mines", 0, "Custom number of mines")
	monkeyCmd.Flags().String("layout", "", "YAML file with a fixed mine layout")
	monkeyCmd.Flags().Int("games", 100, "Number of games to play")
	monkeyCmd.Flags().Int("max-moves", 10000, "Give up on a game after this many moves")
}
