package config

import (
	"errors"
	"fmt"
	"os"

	"tictactoe/agent"
	"tictactoe/meta"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config contains every setting of the learner and its experiments. It is
// loaded from YAML over the defaults and then overridden by command flags.
type Config struct {
	// TablePath is where the value table is loaded from and saved to.
	TablePath string `yaml:"table_path"`

	// ExplorationRate is the percent of moves a smart agent plays at random.
	ExplorationRate int `yaml:"exploration_rate"`

	// Seed seeds every random source; 0 picks one from the clock.
	Seed uint64 `yaml:"seed"`

	LogLevel string `yaml:"log_level"`

	Tournament TournamentConfig `yaml:"tournament"`
	Collect    CollectConfig    `yaml:"collect"`

	// RecordsDir receives setup.json and game_records.csv per run when set.
	RecordsDir string `yaml:"records_dir"`
}

type TournamentConfig struct {
	Player1 string `yaml:"player1"`
	Player2 string `yaml:"player2"`
	Games   int    `yaml:"games"`
	Render  bool   `yaml:"render"`
}

type CollectConfig struct {
	Games     int `yaml:"games"`
	Workers   int `yaml:"workers"`
	SaveEvery int `yaml:"save_every"`
}

func Default() Config {
	return Config{
		TablePath:       meta.TABLE_PATH,
		ExplorationRate: meta.EXPLORATION_RATE,
		LogLevel:        zerolog.InfoLevel.String(),
		Tournament: TournamentConfig{
			Player1: agent.Random.String(),
			Player2: agent.Random.String(),
			Games:   meta.TOURNAMENT_GAMES,
			Render:  true,
		},
		Collect: CollectConfig{
			Games:     meta.COLLECT_GAMES,
			Workers:   meta.WORKERS,
			SaveEvery: meta.SAVE_EVERY,
		},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.TablePath == "" {
		errs = append(errs, errors.New("table_path is empty"))
	}
	if c.ExplorationRate < 0 || c.ExplorationRate > 100 {
		errs = append(errs, fmt.Errorf("exploration_rate %d outside [0,100]", c.ExplorationRate))
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log_level: %w", err))
	}
	if _, err := agent.ParseType(c.Tournament.Player1); err != nil {
		errs = append(errs, fmt.Errorf("tournament.player1: %w", err))
	}
	if _, err := agent.ParseType(c.Tournament.Player2); err != nil {
		errs = append(errs, fmt.Errorf("tournament.player2: %w", err))
	}
	if c.Tournament.Games < 1 {
		errs = append(errs, fmt.Errorf("tournament.games %d must be positive", c.Tournament.Games))
	}
	if c.Collect.Games < 1 {
		errs = append(errs, fmt.Errorf("collect.games %d must be positive", c.Collect.Games))
	}
	if c.Collect.Workers < 1 {
		errs = append(errs, fmt.Errorf("collect.workers %d must be positive", c.Collect.Workers))
	}
	if c.Collect.SaveEvery < 0 {
		errs = append(errs, fmt.Errorf("collect.save_every %d must not be negative", c.Collect.SaveEvery))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// Level returns the parsed log level; call after Validate.
func (c Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}
