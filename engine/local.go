package engine

import (
	"fmt"
	"io"

	"tictactoe/agent"
	"tictactoe/display"
	"tictactoe/experiments/metrics"
	"tictactoe/game"
	"tictactoe/learner"
	"tictactoe/table"

	"github.com/rs/zerolog/log"
)

type Option func(e *Engine)

// WithRenderer prints the board to w after every move.
func WithRenderer(w io.Writer) Option {
	return func(e *Engine) {
		if w != nil {
			e.renderer = display.NewRenderer(w)
		}
	}
}

// WithDeferredCredit leaves the value table untouched at the end of the
// game. The caller folds Result.History itself.
func WithDeferredCredit() Option {
	return func(e *Engine) {
		e.deferCredit = true
	}
}

func WithMetrics(collector metrics.Collector) Option {
	return func(e *Engine) {
		if collector != nil {
			e.metrics = collector
		}
	}
}

type Engine struct {
	Board  game.Board
	Agents [2]agent.Agent

	table       *table.Table
	assigner    *learner.Assigner
	renderer    *display.Renderer
	deferCredit bool
	metrics     metrics.Collector
}

type Result struct {
	Winner       game.Marker // Empty for a draw
	WinnerPlayer int         // 1 or 2, 0 for a draw
	Outcome      game.Outcome
	History      []game.Key // One key per state, empty board first
	Moves        []game.Move
	Metric       metrics.GameMetric
}

// LocalEngine prepares a game between two agents. The setup is rejected
// before any move is played if the agents cannot share the value table.
func LocalEngine(agents [2]agent.Agent, tbl *table.Table, assigner *learner.Assigner, options ...Option) (*Engine, error) {
	if err := validate(agents); err != nil {
		return nil, err
	}
	e := &Engine{ // Default values
		Agents:   agents,
		table:    tbl,
		assigner: assigner,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(e)
	}
	if e.assigner == nil {
		e.assigner = learner.NewAssigner()
	}
	if e.table == nil && !e.deferCredit {
		return nil, fmt.Errorf("a value table is required unless credit is deferred")
	}
	return e, nil
}

// Run plays the game to the end, X moving first, and folds the episode into
// the value table.
func (e *Engine) Run() (Result, error) {
	current := 0
	if e.Agents[1].Marker() == game.X {
		current = 1
	}

	log.Debug().Msgf("player %d (%s, %s) is starting", current+1, e.Agents[current].Type(), e.Agents[current].Marker())
	e.metrics.Start(current + 1)
	e.print()

	history := []game.Key{game.Encode(e.Board)}
	moves := make([]game.Move, 0, MaxMoves)
	winner := game.Empty
	for winner == game.Empty && !game.IsFull(e.Board) && len(moves) < MaxMoves {
		a := e.Agents[current]
		move, err := a.FindMove(e.Board)
		if err != nil {
			return Result{}, fmt.Errorf("player %d failed to move: %w", current+1, err)
		}
		next, err := game.Apply(e.Board, move, a.Marker())
		if err != nil {
			return Result{}, fmt.Errorf("%w: player %d played %s: %w", ErrIllegalMove, current+1, move, err)
		}
		e.Board = next
		moves = append(moves, move)
		history = append(history, game.Encode(e.Board))
		explored := false
		if x, ok := a.(agent.Explorer); ok {
			explored = x.Explored()
		}
		e.metrics.AddMove(explored)

		log.Debug().Int("player", current+1).Stringer("marker", a.Marker()).Stringer("move", move).Msg("move played")
		e.print()

		if game.IsWinner(e.Board, a.Marker()) {
			winner = a.Marker()
			break
		}
		current = 1 - current
	}

	result := Result{
		Winner:  winner,
		Outcome: game.OutcomeFor(winner, game.Primary),
		History: history,
		Moves:   moves,
	}
	if winner != game.Empty {
		result.WinnerPlayer = current + 1
	}
	result.Metric = e.metrics.Complete(result.WinnerPlayer, winner, result.Outcome)

	if !e.deferCredit {
		if err := e.assigner.Assign(e.table, history, result.Outcome); err != nil {
			return result, fmt.Errorf("failed to assign credit: %w", err)
		}
	}

	log.Debug().Int("winner", result.WinnerPlayer).Stringer("outcome", result.Outcome).Int("moves", len(moves)).Msg("game over")
	return result, nil
}

func (e *Engine) print() {
	if e.renderer == nil {
		return
	}
	if err := e.renderer.Print(e.Board); err != nil {
		log.Warn().Err(err).Msg("failed to print board")
	}
}
