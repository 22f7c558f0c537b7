package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApply(t *testing.T) {
	t.Run("placing a marker leaves the original board untouched", func(t *testing.T) {
		var b Board
		next, err := Apply(b, Move{Row: 1, Col: 2}, X)

		require.NoError(t, err)
		require.Equal(t, X, next[5])
		require.Equal(t, Board{}, b, "Apply should not mutate its input")
	})

	t.Run("rejecting occupied cells", func(t *testing.T) {
		b := Board{}.With(Move{Row: 0, Col: 0}, O)

		_, err := Apply(b, Move{Row: 0, Col: 0}, X)

		require.ErrorIs(t, err, ErrCellOccupied)
		require.False(t, IsMoveLegal(b, Move{Row: 0, Col: 0}))
	})

	t.Run("rejecting out of range moves", func(t *testing.T) {
		_, err := Apply(Board{}, Move{Row: 3, Col: 0}, X)
		require.ErrorIs(t, err, ErrInvalidMoveReference)
		require.False(t, IsMoveLegal(Board{}, Move{Row: 3, Col: 0}))
	})
}

func TestWinner(t *testing.T) {
	t.Run("detecting every line", func(t *testing.T) {
		for _, line := range lines {
			var b Board
			for _, i := range line {
				b[i] = O
			}
			require.True(t, IsWinner(b, O), "Line %v should win", line)
			require.False(t, IsWinner(b, X))
			require.Equal(t, O, Winner(b))
			require.True(t, IsOver(b))
		}
	})

	t.Run("full board without a line is a draw", func(t *testing.T) {
		b := Board{
			X, O, X,
			X, O, O,
			O, X, X,
		}

		require.True(t, IsFull(b))
		require.Equal(t, Empty, Winner(b))
		require.True(t, IsOver(b))
		require.Equal(t, Draw, OutcomeFor(Winner(b), Primary))
	})

	t.Run("empty never wins", func(t *testing.T) {
		require.False(t, IsWinner(Board{}, Empty))
		require.False(t, IsOver(Board{}))
	})
}

func TestLegalMoves(t *testing.T) {
	b := Board{
		X, Empty, O,
		Empty, X, Empty,
		O, Empty, Empty,
	}

	got := LegalMoves(b)

	require.Equal(t, []Move{{0, 1}, {1, 0}, {1, 2}, {2, 1}, {2, 2}}, got, "Moves should be row-major")
	require.Len(t, LegalMoves(Board{}), Cells)
}

func TestOutcomeFor(t *testing.T) {
	require.Equal(t, PrimaryWin, OutcomeFor(X, X))
	require.Equal(t, PrimaryLoss, OutcomeFor(O, X))
	require.Equal(t, Draw, OutcomeFor(Empty, X))
	require.Equal(t, PrimaryWin, OutcomeFor(O, O))
}
