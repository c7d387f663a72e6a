package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/they4kman/saper/config"
	"github.com/they4kman/saper/game"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "saper",
	Short: "Play Minesweeper in the terminal",
	Long: `saper is a Minesweeper game played by typing commands.

Run with no arguments to play a medium board
	saper

Pick a difficulty, or a custom board size
	saper --difficulty hard
	saper --size 20 --mines 60

Commands, with zero-based column X and row Y:
	r X Y   reveal a cell
	f X Y   flag or unflag a cell
	c X Y   reveal the neighbors of a numbered cell whose mines are flagged
	n [easy|medium|hard]   start a new game
	q       quit
`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		shell := NewShell(cmd.InOrStdin(), cmd.OutOrStdout(), cfg)
		return shell.Run()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// loadConfig merges the command's flags with the environment and config file,
// and applies the log level
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	v := viper.New()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return config.Config{}, err
	}

	cfg, err := config.Load(v, configPath)
	if err != nil {
		return cfg, err
	}

	level, err := cfg.Level()
	if err != nil {
		return cfg, err
	}
	game.Log.SetLevel(level)
	game.Log.SetOutput(cmd.ErrOrStderr())

	return cfg, nil
}

type difficultyValue string

func (value *difficultyValue) String() string {
	return string(*value)
}

func (value *difficultyValue) Set(name string) error {
	difficulty, err := game.ParseDifficulty(name)
	if err != nil {
		return err
	}
	*value = difficultyValue(difficulty.Name)
	return nil
}

func (value *difficultyValue) Type() string {
	return "difficulty"
}

func init() {
	difficulty := difficultyValue(game.DefaultDifficulty.Name)

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file")
	rootCmd.PersistentFlags().String("log-level", "warning", "Log level (debug, info, warning, error)")
	rootCmd.PersistentFlags().Int64("seed", 0, "Seed for mine placement (0 picks one from the clock)")

	rootCmd.Flags().Var(&difficulty, "difficulty", `Board difficulty:
easy: 8x8 with 10 mines
medium: 12x12 with 25 mines
hard: 16x16 with 40 mines`)
	rootCmd.Flags().Int("size", 0, "Custom board size, in cells per side")
	rootCmd.Flags().Int("mines", 0, "Custom number of mines")
	rootCmd.Flags().String("layout", "", "YAML file with a fixed mine layout")

	rootCmd.AddCommand(monkeyCmd)
}
