package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("defaults without a file", func(t *testing.T) {
		cfg, err := Load("")

		require.NoError(t, err)
		require.Equal(t, Default(), cfg)
		require.NoError(t, cfg.Validate())
		require.Equal(t, 30, cfg.ExplorationRate)
		require.Equal(t, "sample.json", cfg.TablePath)
	})

	t.Run("overriding defaults from yaml", func(t *testing.T) {
		path := writeConfig(t, `
table_path: data/table.json
exploration_rate: 10
log_level: debug
tournament:
  player1: smart
  games: 7
collect:
  workers: 4
`)

		cfg, err := Load(path)

		require.NoError(t, err)
		require.Equal(t, "data/table.json", cfg.TablePath)
		require.Equal(t, 10, cfg.ExplorationRate)
		require.Equal(t, "smart", cfg.Tournament.Player1)
		require.Equal(t, "random", cfg.Tournament.Player2)
		require.Equal(t, 7, cfg.Tournament.Games)
		require.Equal(t, 4, cfg.Collect.Workers)
		require.Equal(t, zerolog.DebugLevel, cfg.Level())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "exploration_rate: [oops"))
		require.ErrorIs(t, err, ErrInvalidConfig)
	})
}

func TestValidate(t *testing.T) {
	cases := map[string]func(c *Config){
		"empty table path":       func(c *Config) { c.TablePath = "" },
		"negative exploration":   func(c *Config) { c.ExplorationRate = -1 },
		"exploration above 100":  func(c *Config) { c.ExplorationRate = 101 },
		"unknown log level":      func(c *Config) { c.LogLevel = "loud" },
		"unknown player":         func(c *Config) { c.Tournament.Player2 = "minimax" },
		"no tournament games":    func(c *Config) { c.Tournament.Games = 0 },
		"no collect games":       func(c *Config) { c.Collect.Games = 0 },
		"no workers":             func(c *Config) { c.Collect.Workers = 0 },
		"negative save interval": func(c *Config) { c.Collect.SaveEvery = -1 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(&cfg)

			require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}
