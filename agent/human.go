package agent

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"tictactoe/game"
)

type humanAgent struct {
	marker game.Marker
	in     *bufio.Reader
	out    io.Writer
}

// NewHuman returns an agent that reads moves such as "1A" from in,
// prompting on out until a legal move is entered. Agents sharing one
// *bufio.Reader never lose each other's buffered input.
func NewHuman(marker game.Marker, in io.Reader, out io.Writer) Agent {
	if out == nil {
		out = io.Discard
	}
	return &humanAgent{marker: marker, in: bufio.NewReader(in), out: out}
}

func (a *humanAgent) Marker() game.Marker { return a.marker }
func (a *humanAgent) Type() Type          { return Human }
func (a *humanAgent) UsesTable() bool     { return false }

func (a *humanAgent) FindMove(board game.Board) (game.Move, error) {
	fmt.Fprint(a.out, "Please enter a move, for example 1A: ")
	for {
		line, err := a.in.ReadString('\n')
		if line == "" && err != nil {
			if errors.Is(err, io.EOF) {
				err = io.ErrUnexpectedEOF
			}
			return game.Move{}, fmt.Errorf("failed to read move: %w", err)
		}
		text := strings.TrimSpace(line)
		move, err := game.ParseMove(text)
		if err == nil && !game.IsMoveLegal(board, move) {
			err = game.ErrCellOccupied
		}
		if err == nil {
			return move, nil
		}
		fmt.Fprintf(a.out, "The move %s is invalid, Please enter a move, for example 1A: ", text)
	}
}
