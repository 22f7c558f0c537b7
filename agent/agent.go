package agent

import (
	"fmt"
	"io"
	"strings"

	"tictactoe/game"
	"tictactoe/learner"
	"tictactoe/table"

	"golang.org/x/exp/rand"
)

type Agent interface {
	// FindMove returns the move this agent plays on board
	FindMove(board game.Board) (game.Move, error)
	Marker() game.Marker
	Type() Type
	// UsesTable reports whether moves are scored against the value table
	// from the primary marker's perspective
	UsesTable() bool
}

// Explorer is implemented by agents that sometimes play at random.
type Explorer interface {
	Explored() bool
}

// Type identifies how an agent chooses its moves.
type Type int

const (
	Human Type = iota + 1
	Random
	Smart
)

func (t Type) String() string {
	switch t {
	case Human:
		return "human"
	case Random:
		return "random"
	case Smart:
		return "smart"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// ParseType reads an agent type by name.
func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "human":
		return Human, nil
	case "random":
		return Random, nil
	case "smart":
		return Smart, nil
	}
	return 0, fmt.Errorf("unknown agent type %q", s)
}

// Deps carries what the different agent types need.
type Deps struct {
	Table           *table.Table
	Rand            *rand.Rand
	ExplorationRate int
	In              io.Reader // Human input
	Out             io.Writer // Human prompts
}

// New creates an agent of type t playing marker.
func New(t Type, marker game.Marker, deps Deps) (Agent, error) {
	switch t {
	case Human:
		return NewHuman(marker, deps.In, deps.Out), nil
	case Random:
		return NewRandom(marker, deps.Rand), nil
	case Smart:
		policy := learner.NewPolicy(deps.Rand)
		policy.ExplorationRate = deps.ExplorationRate
		return NewSmart(marker, policy, deps.Table), nil
	}
	return nil, fmt.Errorf("unknown agent type %v", t)
}
