package game

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidMoveReference = errors.New("invalid move reference")

// Move references a cell by 0-indexed row and column.
type Move struct {
	Row int
	Col int
}

// MoveToIndex maps a row/column pair to its linear cell index.
func MoveToIndex(row, col int) (int, error) {
	if row < 0 || row >= Size || col < 0 || col >= Size {
		return 0, fmt.Errorf("%w: row %d, column %d", ErrInvalidMoveReference, row, col)
	}
	return row*Size + col, nil
}

// Index returns the linear cell index. The move must be in range.
func (m Move) Index() int {
	return m.Row*Size + m.Col
}

// Valid reports whether the move references a cell on the board.
func (m Move) Valid() bool {
	_, err := MoveToIndex(m.Row, m.Col)
	return err == nil
}

// String prints the move in console notation, e.g. "1A" for the top left cell.
func (m Move) String() string {
	return fmt.Sprintf("%d%c", m.Row+1, 'A'+rune(m.Col))
}

// ParseMove reads console notation: a row digit 1-3 followed by a column
// letter A-C.
func ParseMove(s string) (Move, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) != 2 {
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidMoveReference, s)
	}
	row := int(s[0]) - '1'
	col := int(s[1]) - 'A'
	if _, err := MoveToIndex(row, col); err != nil {
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidMoveReference, s)
	}
	return Move{Row: row, Col: col}, nil
}
