package main

import (
	"tictactoe/meta"

	"github.com/spf13/cobra"
)

var (
	configPath      string
	tablePath       string
	explorationRate int
	seed            uint64
	logLevel        string
	recordsDir      string

	player1 string
	player2 string
	games   int
	render  bool

	workers   int
	saveEvery int

	top int

	rootCmd = &cobra.Command{
		Use:   "tictactoe",
		Short: "Tic-tac-toe agents that learn board values from self-play",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(cmd)
		},
		SilenceUsage: true,
	}

	tournamentCmd = &cobra.Command{
		Use:   "tournament",
		Short: "Play a series of games between two agents (human, random, smart)",
		RunE:  runTournament,
	}

	collectCmd = &cobra.Command{
		Use:   "collect",
		Short: "Train the value table by playing a smart agent against a random one",
		RunE:  runCollect,
	}

	inspectCmd = &cobra.Command{
		Use:   "inspect",
		Short: "Print statistics and the most visited boards of the value table",
		RunE:  runInspect,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&tablePath, "table", "", "Path of the value table")
	rootCmd.PersistentFlags().IntVar(&explorationRate, "exploration", 0, "Percent of smart moves played at random (0-100)")
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", 0, "Seed of the random sources (0 uses the clock)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&recordsDir, "records", "", "Directory receiving experiment records")
	rootCmd.PersistentFlags().Lookup("records").NoOptDefVal = meta.RECORDS_DIR

	tournamentCmd.Flags().StringVar(&player1, "player1", "", "Type of player 1 (human, random, smart)")
	tournamentCmd.Flags().StringVar(&player2, "player2", "", "Type of player 2 (human, random, smart)")
	tournamentCmd.Flags().IntVarP(&games, "games", "n", 0, "Number of games")
	tournamentCmd.Flags().BoolVar(&render, "render", true, "Print the board after every move")

	collectCmd.Flags().IntVarP(&games, "games", "n", 0, "Number of games")
	collectCmd.Flags().IntVarP(&workers, "workers", "w", 0, "Number of games played concurrently")
	collectCmd.Flags().IntVar(&saveEvery, "save-every", 0, "Games between table saves (0 saves at the end only)")

	inspectCmd.Flags().IntVar(&top, "top", 5, "Number of most visited boards to print")

	rootCmd.AddCommand(tournamentCmd, collectCmd, inspectCmd)
}
