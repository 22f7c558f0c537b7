package agent

import (
	"tictactoe/game"
	"tictactoe/learner"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	marker game.Marker
	rand   *rand.Rand
}

// NewRandom returns an agent playing uniformly among the empty cells.
func NewRandom(marker game.Marker, r *rand.Rand) Agent {
	return &randomAgent{marker: marker, rand: r}
}

func (a *randomAgent) Marker() game.Marker { return a.marker }
func (a *randomAgent) Type() Type          { return Random }
func (a *randomAgent) UsesTable() bool     { return false }

func (a *randomAgent) FindMove(board game.Board) (game.Move, error) {
	moves := game.LegalMoves(board)
	if len(moves) == 0 {
		return game.Move{}, learner.ErrNoLegalMoves
	}
	return moves[a.rand.Intn(len(moves))], nil
}
