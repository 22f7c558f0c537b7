package engine

import (
	"errors"
	"fmt"

	"tictactoe/agent"
	"tictactoe/game"

	"golang.org/x/exp/rand"
)

// MaxMoves bounds a game: every move fills a cell.
const MaxMoves = game.Cells

var (
	ErrIllegalMove     = errors.New("illegal move")
	ErrDuplicateMarker = errors.New("both agents play the same marker")
)

// DualPrimaryAgentError reports a setup where both agents would score moves
// against the value table from the primary marker's perspective.
type DualPrimaryAgentError struct {
	Player1 agent.Type
	Player2 agent.Type
}

func (e *DualPrimaryAgentError) Error() string {
	return fmt.Sprintf("cannot play %s against %s: only one agent may use the value table", e.Player1, e.Player2)
}

// Setup assigns markers to two agent types. A smart agent always takes the
// primary marker; without one the markers are shuffled.
func Setup(player1, player2 agent.Type, r *rand.Rand) ([2]game.Marker, error) {
	switch {
	case player1 == agent.Smart && player2 == agent.Smart:
		return [2]game.Marker{}, &DualPrimaryAgentError{Player1: player1, Player2: player2}
	case player1 == agent.Smart:
		return [2]game.Marker{game.Primary, game.Primary.Opponent()}, nil
	case player2 == agent.Smart:
		return [2]game.Marker{game.Primary.Opponent(), game.Primary}, nil
	}
	markers := [2]game.Marker{game.O, game.X}
	r.Shuffle(len(markers), func(i, j int) {
		markers[i], markers[j] = markers[j], markers[i]
	})
	return markers, nil
}

// validate rejects agent pairs that cannot share a board and a table.
func validate(agents [2]agent.Agent) error {
	if agents[0] == nil || agents[1] == nil {
		return errors.New("need two agents")
	}
	if agents[0].UsesTable() && agents[1].UsesTable() {
		return &DualPrimaryAgentError{Player1: agents[0].Type(), Player2: agents[1].Type()}
	}
	if agents[0].Marker() == agents[1].Marker() {
		return fmt.Errorf("%w: %s", ErrDuplicateMarker, agents[0].Marker())
	}
	for _, a := range agents {
		if a.Marker() == game.Empty {
			return fmt.Errorf("agent %s has no marker", a.Type())
		}
	}
	return nil
}
