package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMoveToIndex(t *testing.T) {
	t.Run("mapping is a bijection onto the 9 cells", func(t *testing.T) {
		seen := make(map[int]bool)
		for row := 0; row < Size; row++ {
			for col := 0; col < Size; col++ {
				i, err := MoveToIndex(row, col)
				require.NoError(t, err)
				require.False(t, seen[i], "Index %d mapped twice", i)
				seen[i] = true

				require.Equal(t, i, Move{Row: row, Col: col}.Index())
			}
		}
		require.Len(t, seen, Cells)
	})

	t.Run("rejecting out of range references", func(t *testing.T) {
		for _, m := range []Move{{-1, 0}, {0, -1}, {3, 0}, {0, 3}} {
			_, err := MoveToIndex(m.Row, m.Col)
			require.ErrorIs(t, err, ErrInvalidMoveReference, "Move %+v should be rejected", m)
		}
	})
}

func TestParseMove(t *testing.T) {
	t.Run("parsing console notation", func(t *testing.T) {
		cases := map[string]Move{
			"1A":    {Row: 0, Col: 0},
			"2b":    {Row: 1, Col: 1},
			" 3C\n": {Row: 2, Col: 2},
			"1C":    {Row: 0, Col: 2},
		}
		for in, want := range cases {
			got, err := ParseMove(in)
			require.NoError(t, err, "Input %q", in)
			require.Equal(t, want, got, "Input %q", in)
		}
	})

	t.Run("formatting round-trips", func(t *testing.T) {
		for _, m := range LegalMoves(Board{}) {
			got, err := ParseMove(m.String())
			require.NoError(t, err)
			require.Equal(t, m, got)
		}
	})

	t.Run("rejecting malformed input", func(t *testing.T) {
		for _, in := range []string{"", "1", "A1", "4A", "0B", "1D", "12A", "xx"} {
			_, err := ParseMove(in)
			require.ErrorIs(t, err, ErrInvalidMoveReference, "Input %q", in)
		}
	})
}
