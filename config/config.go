package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/they4kman/saper/game"
)

const EnvPrefix = "SAPER"

// Config holds the settings of a saper run. Values come from command-line
// flags, SAPER_* environment variables and an optional YAML file, in that
// order of precedence.
type Config struct {
	Difficulty string `mapstructure:"difficulty"`
	// Custom board dimensions; both must be set to override Difficulty
	Size  int `mapstructure:"size"`
	Mines int `mapstructure:"mines"`

	Seed   int64  `mapstructure:"seed"`
	Layout string `mapstructure:"layout"`

	LogLevel string `mapstructure:"log-level"`

	// Number of random playouts for the monkey command
	Games    int `mapstructure:"games"`
	MaxMoves int `mapstructure:"max-moves"`
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("difficulty", game.DefaultDifficulty.Name)
	v.SetDefault("size", 0)
	v.SetDefault("mines", 0)
	v.SetDefault("seed", 0)
	v.SetDefault("layout", "")
	v.SetDefault("log-level", "warning")
	v.SetDefault("games", 100)
	v.SetDefault("max-moves", 10000)
}

// Load reads the configuration from v, merging in the file at path if given
func Load(v *viper.Viper, path string) (Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	return config, nil
}

func (config Config) Level() (logrus.Level, error) {
	return logrus.ParseLevel(config.LogLevel)
}

// BoardConfig resolves the board settings: a layout file wins over custom
// dimensions, which win over the named difficulty
func (config Config) BoardConfig() (game.BoardConfig, error) {
	boardConfig := game.BoardConfig{Seed: config.Seed}

	switch {
	case config.Layout != "":
		in, err := os.ReadFile(config.Layout)
		if err != nil {
			return boardConfig, err
		}
		layout, err := game.LoadLayout(string(in))
		if err != nil {
			return boardConfig, fmt.Errorf("%s: %w", config.Layout, err)
		}
		boardConfig.Layout = layout

	case config.Size != 0 || config.Mines != 0:
		boardConfig.Size = config.Size
		boardConfig.NumMines = config.Mines

	default:
		difficulty, err := game.ParseDifficulty(config.Difficulty)
		if err != nil {
			return boardConfig, err
		}
		boardConfig.Size = difficulty.Size
		boardConfig.NumMines = difficulty.NumMines
	}

	return boardConfig, nil
}
