package game

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidKey = errors.New("invalid board key")

// Key is the canonical encoding of a board: rows in brackets, cells comma
// separated, "_" for an empty cell, e.g. "[X,_,O][_,X,_][_,_,_]".
type Key string

// keyLen is the length of every valid key: 3 rows of "[c,c,c]".
const keyLen = Size * (2*Size + 1)

// Encode returns the canonical key of a board.
func Encode(b Board) Key {
	var sb strings.Builder
	sb.Grow(keyLen)
	for row := 0; row < Size; row++ {
		sb.WriteByte('[')
		for col := 0; col < Size; col++ {
			if col > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(b[row*Size+col].String())
		}
		sb.WriteByte(']')
	}
	return Key(sb.String())
}

// Decode parses a canonical key back into a board.
func Decode(k Key) (Board, error) {
	var b Board
	if len(k) != keyLen {
		return b, fmt.Errorf("%w: %q", ErrInvalidKey, k)
	}
	for row := 0; row < Size; row++ {
		chunk := k[row*(2*Size+1) : (row+1)*(2*Size+1)]
		if chunk[0] != '[' || chunk[len(chunk)-1] != ']' {
			return b, fmt.Errorf("%w: %q", ErrInvalidKey, k)
		}
		for col := 0; col < Size; col++ {
			if col > 0 && chunk[2*col] != ',' {
				return b, fmt.Errorf("%w: %q", ErrInvalidKey, k)
			}
			m, ok := parseMarker(chunk[2*col+1])
			if !ok {
				return b, fmt.Errorf("%w: %q", ErrInvalidKey, k)
			}
			b[row*Size+col] = m
		}
	}
	return b, nil
}

// Mirror returns the key of the same board seen from the other marker.
func (k Key) Mirror() (Key, error) {
	b, err := Decode(k)
	if err != nil {
		return "", err
	}
	return Encode(b.Mirror()), nil
}

func parseMarker(c byte) (Marker, bool) {
	switch c {
	case 'X':
		return X, true
	case 'O':
		return O, true
	case '_':
		return Empty, true
	}
	return Empty, false
}
