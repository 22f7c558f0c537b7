package table

import (
	"os"
	"path/filepath"
	"testing"

	"tictactoe/game"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("missing file yields an empty table", func(t *testing.T) {
		tbl, err := Load(filepath.Join(t.TempDir(), "missing.json"))

		require.NoError(t, err)
		require.Equal(t, 0, tbl.Len())
	})

	t.Run("reading a table saved by earlier runs", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "sample.json")
		data := `{
    "[_,_,_][_,_,_][_,_,_]": [0.6, 12],
    "[X,_,_][_,_,_][_,_,_]": [1, 1]
}`
		require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

		tbl, err := Load(path)

		require.NoError(t, err)
		got, ok := tbl.Lookup(game.Encode(game.Board{}))
		require.True(t, ok)
		require.Equal(t, Entry{Mean: 0.6, Visits: 12}, got)
		got, _ = tbl.Lookup(game.Encode(game.Board{game.X}))
		require.Equal(t, Entry{Mean: 1, Visits: 1}, got)
	})

	corrupt := map[string]string{
		"truncated json":       `{"[_,_,_][_,_,_][_,_,_]": [0.5,`,
		"not an object":        `[1, 2]`,
		"short entry":          `{"[_,_,_][_,_,_][_,_,_]": [0.5]}`,
		"fractional visits":    `{"[_,_,_][_,_,_][_,_,_]": [0.5, 1.5]}`,
		"zero visits":          `{"[_,_,_][_,_,_][_,_,_]": [0.5, 0]}`,
		"mean out of range":    `{"[_,_,_][_,_,_][_,_,_]": [1.5, 2]}`,
		"undecodable key":      `{"[ , , ][_,_,_][_,_,_]": [0.5, 2]}`,
		"entry is not numeric": `{"[_,_,_][_,_,_][_,_,_]": ["a", "b"]}`,
	}
	for name, data := range corrupt {
		t.Run("rejecting "+name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "sample.json")
			require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

			tbl, err := Load(path)

			require.ErrorIs(t, err, ErrCorruptTable, "Corruption must not be treated as an empty table")
			require.Nil(t, tbl)
		})
	}
}

func TestSave(t *testing.T) {
	t.Run("round-tripping byte for byte", func(t *testing.T) {
		dir := t.TempDir()
		first := filepath.Join(dir, "first.json")
		second := filepath.Join(dir, "nested", "second.json")

		tbl := New()
		tbl.Fold(game.Encode(game.Board{}), 1)
		tbl.Fold(game.Encode(game.Board{}), 0.81)
		tbl.Fold(game.Encode(game.Board{game.X}), 0.9)
		tbl.Fold(game.Encode(game.Board{game.X, game.O}), 0.5)
		require.NoError(t, tbl.Save(first))

		loaded, err := Load(first)
		require.NoError(t, err)
		require.Equal(t, tbl.Snapshot(), loaded.Snapshot())
		require.NoError(t, loaded.Save(second))

		a, err := os.ReadFile(first)
		require.NoError(t, err)
		b, err := os.ReadFile(second)
		require.NoError(t, err)
		require.Equal(t, string(a), string(b))
	})

	t.Run("replacing an existing file without leftovers", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "sample.json")
		require.NoError(t, os.WriteFile(path, []byte("stale"), 0o644))

		tbl := New()
		tbl.Fold(game.Encode(game.Board{}), 0.5)
		require.NoError(t, tbl.Save(path))

		loaded, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, 1, loaded.Len())

		files, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, files, 1, "Temporary file should be renamed away")
	})
}
