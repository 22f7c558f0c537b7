package agent

import (
	"tictactoe/game"
	"tictactoe/learner"
	"tictactoe/table"

	"github.com/rs/zerolog/log"
)

type smartAgent struct {
	marker game.Marker
	policy *learner.Policy
	table  *table.Table

	explored bool
}

// NewSmart returns an agent that mixes random exploration with greedy play
// against the value table.
func NewSmart(marker game.Marker, policy *learner.Policy, tbl *table.Table) Agent {
	return &smartAgent{marker: marker, policy: policy, table: tbl}
}

func (a *smartAgent) Marker() game.Marker { return a.marker }
func (a *smartAgent) Type() Type          { return Smart }
func (a *smartAgent) UsesTable() bool     { return true }

// Explored reports whether the last move was played at random.
func (a *smartAgent) Explored() bool { return a.explored }

func (a *smartAgent) FindMove(board game.Board) (game.Move, error) {
	move, explored, err := a.policy.SelectMove(board, a.marker, game.LegalMoves(board), a.table)
	if err != nil {
		return game.Move{}, err
	}
	a.explored = explored
	if explored {
		log.Debug().Stringer("marker", a.marker).Stringer("move", move).Msg("play random")
	} else {
		log.Debug().Stringer("marker", a.marker).Stringer("move", move).Msg("play smart")
	}
	return move, nil
}
