package learner

import (
	"errors"

	"tictactoe/game"
	"tictactoe/table"
)

var ErrEmptyEpisode = errors.New("episode has no states")

// Assigner folds the outcome of a finished episode back over every state
// visited, discounting by Gamma per step away from the end.
type Assigner struct {
	Gamma float64
}

func NewAssigner() *Assigner {
	return &Assigner{Gamma: Gamma}
}

// Credit is a single reward destined for one key.
type Credit struct {
	Key    game.Key
	Reward float64
}

// Credits returns the folds Assign would perform, in fold order: the
// terminal state first, the initial state last.
func (a *Assigner) Credits(history []game.Key, outcome game.Outcome) ([]Credit, error) {
	if len(history) == 0 {
		return nil, ErrEmptyEpisode
	}

	credits := make([]Credit, 0, len(history))
	reward := RewardFor(outcome)
	credits = append(credits, Credit{Key: history[len(history)-1], Reward: reward})
	for i := len(history) - 2; i >= 0; i-- {
		reward *= a.Gamma
		credits = append(credits, Credit{Key: history[i], Reward: reward})
	}
	return credits, nil
}

// Assign folds every state of history into tbl exactly once.
func (a *Assigner) Assign(tbl *table.Table, history []game.Key, outcome game.Outcome) error {
	credits, err := a.Credits(history, outcome)
	if err != nil {
		return err
	}
	Apply(tbl, credits)
	return nil
}

// Apply folds precomputed credits into tbl in order.
func Apply(tbl *table.Table, credits []Credit) {
	for _, c := range credits {
		tbl.Fold(c.Key, c.Reward)
	}
}
