package game

import (
	"errors"
	"fmt"
)

var ErrCellOccupied = errors.New("cell is occupied")

// lines lists the cell indices of every row, column and diagonal.
var lines = [8][Size]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

// IsMoveLegal reports whether the move references an empty cell.
func IsMoveLegal(b Board, m Move) bool {
	return m.Valid() && b.At(m) == Empty
}

// Apply returns a new board with marker placed on the move's cell.
func Apply(b Board, m Move, marker Marker) (Board, error) {
	if !m.Valid() {
		return b, fmt.Errorf("%w: %+v", ErrInvalidMoveReference, m)
	}
	if b.At(m) != Empty {
		return b, fmt.Errorf("%w: %s", ErrCellOccupied, m)
	}
	return b.With(m, marker), nil
}

// IsWinner reports whether marker holds a full row, column or diagonal.
func IsWinner(b Board, marker Marker) bool {
	if marker == Empty {
		return false
	}
	for _, line := range lines {
		if b[line[0]] == marker && b[line[1]] == marker && b[line[2]] == marker {
			return true
		}
	}
	return false
}

// IsFull reports whether no empty cell remains.
func IsFull(b Board) bool {
	for _, m := range b {
		if m == Empty {
			return false
		}
	}
	return true
}

// Winner returns the marker holding a line, or Empty.
func Winner(b Board) Marker {
	switch {
	case IsWinner(b, X):
		return X
	case IsWinner(b, O):
		return O
	}
	return Empty
}

// IsOver reports whether the game has a winner or the board is full.
func IsOver(b Board) bool {
	return Winner(b) != Empty || IsFull(b)
}

// LegalMoves enumerates the empty cells in row-major order. The order is
// fixed so that callers breaking ties by position are reproducible.
func LegalMoves(b Board) []Move {
	moves := make([]Move, 0, Cells)
	for i, m := range b {
		if m == Empty {
			moves = append(moves, Move{Row: i / Size, Col: i % Size})
		}
	}
	return moves
}
