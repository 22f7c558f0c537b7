package display

import (
	"fmt"
	"io"
	"strings"

	"tictactoe/game"

	"github.com/muesli/termenv"
)

// Renderer prints boards as a tab separated grid with row numbers and
// column letters, colouring each marker.
type Renderer struct {
	w   io.Writer
	out *termenv.Output
}

func NewRenderer(w io.Writer, opts ...termenv.OutputOption) *Renderer {
	return &Renderer{w: w, out: termenv.NewOutput(w, opts...)}
}

func (r *Renderer) Render(b game.Board) string {
	var sb strings.Builder
	sb.WriteString(strings.Join([]string{" ", "A", "B", "C"}, "\t"))
	sb.WriteByte('\n')
	for row := 0; row < game.Size; row++ {
		cells := []string{fmt.Sprint(row + 1)}
		for col := 0; col < game.Size; col++ {
			cells = append(cells, r.cell(b.At(game.Move{Row: row, Col: col})))
		}
		sb.WriteString(strings.Join(cells, "\t"))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (r *Renderer) Print(b game.Board) error {
	_, err := io.WriteString(r.w, r.Render(b))
	return err
}

// Printf writes a line of free text, e.g. a game announcement.
func (r *Renderer) Printf(format string, args ...any) error {
	_, err := fmt.Fprintf(r.w, format+"\n", args...)
	return err
}

func (r *Renderer) cell(m game.Marker) string {
	switch m {
	case game.X:
		return r.out.String("X").Foreground(r.out.Color("1")).Bold().String()
	case game.O:
		return r.out.String("O").Foreground(r.out.Color("4")).Bold().String()
	default:
		return " "
	}
}
