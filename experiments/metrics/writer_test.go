package metrics

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"tictactoe/game"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestWriter(t *testing.T) {
	root := t.TempDir()
	runID := uuid.New()

	w, err := NewWriter(root, "tournament", runID)
	require.NoError(t, err)
	require.Contains(t, w.Dir(), runID.String(), "Run directory should carry the run id")

	t.Run("writing the setup", func(t *testing.T) {
		require.NoError(t, w.WriteSetup(Setup{RunID: runID, Name: "tournament", NumGames: 3}))

		data, err := os.ReadFile(filepath.Join(w.Dir(), "setup.json"))
		require.NoError(t, err)
		var got Setup
		require.NoError(t, json.Unmarshal(data, &got))
		require.Equal(t, runID, got.RunID)
		require.Equal(t, 3, got.NumGames)
	})

	t.Run("writing game records", func(t *testing.T) {
		c := NewCollector()
		c.Start(2)
		c.AddMove(true)
		c.AddMove(false)
		c.AddMove(false)
		metric := c.Complete(2, game.X, game.PrimaryWin)
		require.Equal(t, 3, metric.TotalMoves)
		require.Equal(t, 1, metric.ExploredMoves)

		records := []GameRecord{{ID: 1, Player1: "random", Player2: "smart", GameMetric: metric}}
		require.NoError(t, w.WriteGameRecords(records))

		f, err := os.Open(filepath.Join(w.Dir(), "game_records.csv"))
		require.NoError(t, err)
		defer f.Close()
		rows, err := csv.NewReader(f).ReadAll()
		require.NoError(t, err)
		require.Len(t, rows, 2)
		require.Equal(t, []string{"1", "random", "smart", "2", "2", "X", "win"}, rows[1][:7])
		require.Equal(t, "3", rows[1][10])
	})
}

func TestDummyCollector(t *testing.T) {
	c := NewDummyCollector()
	c.Start(1)
	c.AddMove(true)
	require.Equal(t, GameMetric{}, c.Complete(1, game.X, game.PrimaryWin))
}
