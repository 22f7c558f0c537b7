package game

// Size is the side length of the board.
const Size = 3

// Cells is the number of cells on the board.
const Cells = Size * Size

// Marker is the content of a single cell.
type Marker uint8

const (
	Empty Marker = iota
	X
	O
)

// Primary is the marker the value table is keyed against.
const Primary = X

func (m Marker) String() string {
	switch m {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return "_"
	}
}

// Opponent swaps X and O. Empty stays empty.
func (m Marker) Opponent() Marker {
	switch m {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

// Board holds the cells in row-major order. Boards are values: copying one
// never aliases the cells of another.
type Board [Cells]Marker

// At returns the marker in the given cell.
func (b Board) At(m Move) Marker {
	return b[m.Index()]
}

// With returns a copy of the board with marker placed on the move's cell.
// It does not check legality.
func (b Board) With(m Move, marker Marker) Board {
	b[m.Index()] = marker
	return b
}

// Mirror swaps the X and O markers on every cell.
func (b Board) Mirror() Board {
	for i, m := range b {
		b[i] = m.Opponent()
	}
	return b
}

func (b Board) String() string {
	return string(Encode(b))
}
