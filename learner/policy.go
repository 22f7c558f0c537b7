package learner

import (
	"errors"
	"fmt"

	"tictactoe/game"
	"tictactoe/table"

	"golang.org/x/exp/rand"
)

var ErrNoLegalMoves = errors.New("no legal moves")

// Policy splits move selection between uniformly random exploration and
// greedy exploitation of a value table.
type Policy struct {
	Primary         game.Marker
	ExplorationRate int // Percent in [0,100]
	Rand            *rand.Rand
}

// NewPolicy returns a policy keyed against game.Primary with the default
// exploration rate.
func NewPolicy(r *rand.Rand) *Policy {
	return &Policy{
		Primary:         game.Primary,
		ExplorationRate: ExplorationRate,
		Rand:            r,
	}
}

// SelectMove picks a move for owner among legal. It reports whether the
// move came from the exploration branch.
func (p *Policy) SelectMove(board game.Board, owner game.Marker, legal []game.Move, tbl *table.Table) (game.Move, bool, error) {
	if len(legal) == 0 {
		return game.Move{}, false, ErrNoLegalMoves
	}

	sample := p.Rand.Intn(100) + 1 // Uniform in [1,100]
	if sample <= p.ExplorationRate {
		return legal[p.Rand.Intn(len(legal))], true, nil
	}

	scores, err := p.ScoreMoves(board, owner, legal, tbl)
	if err != nil {
		return game.Move{}, false, err
	}
	best := 0
	for i, score := range scores[1:] {
		if score > scores[best] {
			best = i + 1
		}
	}
	return legal[best], false, nil
}

// ScoreMoves scores the board that results from owner playing each legal
// move. Boards the table has never seen score 0.
func (p *Policy) ScoreMoves(board game.Board, owner game.Marker, legal []game.Move, tbl *table.Table) ([]float64, error) {
	scores := make([]float64, len(legal))
	for i, move := range legal {
		key := game.Encode(board.With(move, owner))
		entry, ok, err := tbl.MirroredLookup(key, owner, p.Primary)
		if err != nil {
			return nil, fmt.Errorf("failed to score move %s: %w", move, err)
		}
		if ok {
			scores[i] = entry.Mean
		}
	}
	return scores, nil
}
