package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"tictactoe/agent"
	"tictactoe/config"
	"tictactoe/display"
	"tictactoe/experiments"
	"tictactoe/game"
	"tictactoe/table"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/exp/rand"
)

var cfg config.Config

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads the configuration file and applies the flags that were
// set explicitly on top of it.
func loadConfig(cmd *cobra.Command) error {
	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("table") {
		cfg.TablePath = tablePath
	}
	if flags.Changed("exploration") {
		cfg.ExplorationRate = explorationRate
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("records") {
		cfg.RecordsDir = recordsDir
	}
	if flags.Changed("player1") {
		cfg.Tournament.Player1 = player1
	}
	if flags.Changed("player2") {
		cfg.Tournament.Player2 = player2
	}
	if flags.Changed("render") {
		cfg.Tournament.Render = render
	}
	if flags.Changed("games") {
		switch cmd.Name() {
		case tournamentCmd.Name():
			cfg.Tournament.Games = games
		case collectCmd.Name():
			cfg.Collect.Games = games
		}
	}
	if flags.Changed("workers") {
		cfg.Collect.Workers = workers
	}
	if flags.Changed("save-every") {
		cfg.Collect.SaveEvery = saveEvery
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	zerolog.SetGlobalLevel(cfg.Level())
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	log.Debug().Uint64("seed", cfg.Seed).Str("table", cfg.TablePath).Msg("configuration loaded")
	return nil
}

func runTournament(cmd *cobra.Command, args []string) error {
	// Validate has already checked both types.
	p1, _ := agent.ParseType(cfg.Tournament.Player1)
	p2, _ := agent.ParseType(cfg.Tournament.Player2)

	tbl, err := table.Load(cfg.TablePath)
	if err != nil {
		return err
	}
	tournament := &experiments.Tournament{
		Player1:         p1,
		Player2:         p2,
		Games:           cfg.Tournament.Games,
		ExplorationRate: cfg.ExplorationRate,
		Rand:            rand.New(rand.NewSource(cfg.Seed)),
		TablePath:       cfg.TablePath,
		In:              cmd.InOrStdin(),
		Out:             cmd.OutOrStdout(),
		Render:          cfg.Tournament.Render,
		RecordsDir:      cfg.RecordsDir,
	}
	standings, err := tournament.Run(tbl)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "player1 %d, player2 %d, draws %d\n", standings.Player1, standings.Player2, standings.Draws)
	return nil
}

func runCollect(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tbl, err := table.Load(cfg.TablePath)
	if err != nil {
		return err
	}
	collection := &experiments.Collection{
		Games:           cfg.Collect.Games,
		Workers:         cfg.Collect.Workers,
		SaveEvery:       cfg.Collect.SaveEvery,
		TablePath:       cfg.TablePath,
		ExplorationRate: cfg.ExplorationRate,
		Seed:            cfg.Seed,
		RecordsDir:      cfg.RecordsDir,
	}
	stats, err := collection.Run(ctx, tbl)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d games: smart won %d, lost %d, drew %d\n", stats.Games, stats.SmartWins, stats.Losses, stats.Draws)
	return nil
}

func runInspect(cmd *cobra.Command, args []string) error {
	tbl, err := table.Load(cfg.TablePath)
	if err != nil {
		return err
	}
	return inspect(cmd.OutOrStdout(), tbl, top)
}

func inspect(w io.Writer, tbl *table.Table, n int) error {
	stats := tbl.Stats()
	fmt.Fprintf(w, "entries: %d\nvisits: %d\nmean value: %.4f\n", stats.Entries, stats.TotalVisits, stats.MeanValue)

	snapshot := tbl.Snapshot()
	keys := make([]game.Key, 0, len(snapshot))
	for k := range snapshot {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := snapshot[keys[i]], snapshot[keys[j]]
		if a.Visits != b.Visits {
			return a.Visits > b.Visits
		}
		return keys[i] < keys[j]
	})
	if n < len(keys) {
		keys = keys[:n]
	}

	renderer := display.NewRenderer(w)
	for _, k := range keys {
		board, err := game.Decode(k)
		if err != nil {
			return err
		}
		e := snapshot[k]
		fmt.Fprintf(w, "\n%s  mean %.4f  visits %d\n", k, e.Mean, e.Visits)
		if err := renderer.Print(board); err != nil {
			return err
		}
	}
	return nil
}
