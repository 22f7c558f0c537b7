package agent

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"tictactoe/game"
	"tictactoe/table"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestParseType(t *testing.T) {
	for _, want := range []Type{Human, Random, Smart} {
		got, err := ParseType(strings.ToUpper(want.String()))
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	_, err := ParseType("minimax")
	require.Error(t, err)
}

func TestNew(t *testing.T) {
	deps := Deps{
		Table: table.New(),
		Rand:  rand.New(rand.NewSource(1)),
		In:    strings.NewReader(""),
		Out:   io.Discard,
	}
	for _, typ := range []Type{Human, Random, Smart} {
		a, err := New(typ, game.O, deps)
		require.NoError(t, err)
		require.Equal(t, typ, a.Type())
		require.Equal(t, game.O, a.Marker())
		require.Equal(t, typ == Smart, a.UsesTable(), "Only smart agents score against the table")
	}
	_, err := New(Type(42), game.X, deps)
	require.Error(t, err)
}

func TestHumanFindMove(t *testing.T) {
	t.Run("re-prompting until a legal move is entered", func(t *testing.T) {
		board := game.Board{}.With(game.Move{Row: 0, Col: 0}, game.X)
		var out bytes.Buffer
		a := NewHuman(game.O, strings.NewReader("zz\n4A\n1A\n2b\n"), &out)

		got, err := a.FindMove(board)

		require.NoError(t, err)
		require.Equal(t, game.Move{Row: 1, Col: 1}, got)
		require.Equal(t, 3, strings.Count(out.String(), "is invalid"), "Each bad entry should be reported")
	})

	t.Run("failing on end of input", func(t *testing.T) {
		a := NewHuman(game.O, strings.NewReader("9Z\n"), io.Discard)

		_, err := a.FindMove(game.Board{})

		require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	})
}

func TestRandomFindMove(t *testing.T) {
	board := game.Board{
		game.X, game.O, game.X,
		game.O, game.Empty, game.X,
		game.O, game.X, game.Empty,
	}
	a := NewRandom(game.X, rand.New(rand.NewSource(5)))

	for i := 0; i < 100; i++ {
		got, err := a.FindMove(board)
		require.NoError(t, err)
		require.True(t, game.IsMoveLegal(board, got))
	}

	full := board.With(game.Move{Row: 1, Col: 1}, game.O).With(game.Move{Row: 2, Col: 2}, game.O)
	_, err := a.FindMove(full)
	require.Error(t, err)
}

func TestSmartFindMove(t *testing.T) {
	tbl := table.New()
	best := game.Move{Row: 2, Col: 0}
	tbl.Fold(game.Encode(game.Board{}.With(best, game.X)), 1)
	a, err := New(Smart, game.X, Deps{Table: tbl, Rand: rand.New(rand.NewSource(1)), ExplorationRate: 0})
	require.NoError(t, err)

	got, err := a.FindMove(game.Board{})

	require.NoError(t, err)
	require.Equal(t, best, got)
}
