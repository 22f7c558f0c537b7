package experiments

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"tictactoe/agent"
	"tictactoe/display"
	"tictactoe/engine"
	"tictactoe/experiments/metrics"
	"tictactoe/learner"
	"tictactoe/table"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Tournament plays a series of games between two agent types, sharing and
// training one value table.
type Tournament struct {
	Player1         agent.Type
	Player2         agent.Type
	Games           int
	ExplorationRate int
	Rand            *rand.Rand

	// TablePath, when set, receives the table after every game.
	TablePath string
	// In feeds human agents; Out receives prompts and, if Render is set,
	// the board after every move.
	In     io.Reader
	Out    io.Writer
	Render bool
	// RecordsDir, when set, receives setup.json and game_records.csv.
	RecordsDir string
}

type Standings struct {
	Player1 int
	Player2 int
	Draws   int
	Records []metrics.GameRecord
}

// Leader names the player ahead on points: "player1", "player2" or "no".
func (s Standings) Leader() string {
	switch {
	case s.Player1 > s.Player2:
		return "player1"
	case s.Player2 > s.Player1:
		return "player2"
	default:
		return "no"
	}
}

// Run plays every game of the tournament against tbl.
func (t *Tournament) Run(tbl *table.Table) (Standings, error) {
	var standings Standings
	if t.Player1 == agent.Smart && t.Player2 == agent.Smart {
		return standings, &engine.DualPrimaryAgentError{Player1: t.Player1, Player2: t.Player2}
	}
	if (t.Player1 == agent.Human || t.Player2 == agent.Human) && t.In == nil {
		return standings, fmt.Errorf("a human player needs an input")
	}
	if t.Rand == nil {
		t.Rand = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}

	runID := uuid.New()
	start := time.Now()
	var in *bufio.Reader
	if t.In != nil {
		in = bufio.NewReader(t.In)
	}

	var announcer *display.Renderer
	if t.Render && t.Out != nil {
		announcer = display.NewRenderer(t.Out)
	}

	log.Info().Str("run", runID.String()).Msgf("the tournament begins: %s vs %s, %d games", t.Player1, t.Player2, t.Games)
	for i := 0; i < t.Games; i++ {
		log.Info().Msgf("game number: %d", i+1)
		if announcer != nil {
			announcer.Printf("Game %d of %d", i+1, t.Games)
		}

		result, err := t.playGame(tbl, in)
		if err != nil {
			return standings, fmt.Errorf("game %d: %w", i+1, err)
		}

		switch result.WinnerPlayer {
		case 1:
			standings.Player1++
		case 2:
			standings.Player2++
		default:
			standings.Draws++
		}
		standings.Records = append(standings.Records, metrics.GameRecord{
			ID:         i + 1,
			Player1:    t.Player1.String(),
			Player2:    t.Player2.String(),
			GameMetric: result.Metric,
		})

		if t.TablePath != "" {
			if err := tbl.Save(t.TablePath); err != nil {
				return standings, err
			}
		}
		if announcer != nil {
			announcer.Printf("%s, score %d-%d, %d draws", announcement(result), standings.Player1, standings.Player2, standings.Draws)
		}
		log.Info().Msgf("%s leads. Scoring mode: Player 1- %d, Player 2- %d", standings.Leader(), standings.Player1, standings.Player2)
	}

	if t.RecordsDir != "" {
		setup := metrics.Setup{
			RunID:           runID,
			Name:            "tournament",
			Player1:         t.Player1.String(),
			Player2:         t.Player2.String(),
			NumGames:        t.Games,
			ExplorationRate: t.ExplorationRate,
			Gamma:           learner.Gamma,
			TablePath:       t.TablePath,
			StartTime:       start,
			EndTime:         time.Now(),
		}
		setup.Duration = setup.EndTime.Sub(start)
		if err := writeRecords(t.RecordsDir, setup, standings.Records); err != nil {
			return standings, err
		}
	}
	return standings, nil
}

func (t *Tournament) playGame(tbl *table.Table, in *bufio.Reader) (engine.Result, error) {
	markers, err := engine.Setup(t.Player1, t.Player2, t.Rand)
	if err != nil {
		return engine.Result{}, err
	}
	deps := agent.Deps{
		Table:           tbl,
		Rand:            t.Rand,
		ExplorationRate: t.ExplorationRate,
		Out:             t.Out,
	}
	if in != nil {
		deps.In = in
	}

	var agents [2]agent.Agent
	for i, typ := range []agent.Type{t.Player1, t.Player2} {
		agents[i], err = agent.New(typ, markers[i], deps)
		if err != nil {
			return engine.Result{}, err
		}
		log.Info().Msgf("the shape of player %d of type %s is %s", i+1, typ, markers[i])
	}

	options := []engine.Option{engine.WithMetrics(metrics.NewCollector())}
	if t.Render {
		options = append(options, engine.WithRenderer(t.Out))
	}
	e, err := engine.LocalEngine(agents, tbl, learner.NewAssigner(), options...)
	if err != nil {
		return engine.Result{}, err
	}
	result, err := e.Run()
	if err != nil {
		return result, err
	}
	if result.WinnerPlayer == 0 {
		log.Info().Msg("the game ended in a draw")
	} else {
		log.Info().Msgf("%s is the winner", result.Winner)
	}
	return result, nil
}

func announcement(result engine.Result) string {
	if result.WinnerPlayer == 0 {
		return "Draw"
	}
	return fmt.Sprintf("Player %d (%s) wins", result.WinnerPlayer, result.Winner)
}

func writeRecords(dir string, setup metrics.Setup, records []metrics.GameRecord) error {
	writer, err := metrics.NewWriter(dir, setup.Name, setup.RunID)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteSetup(setup); err != nil {
		return fmt.Errorf("failed to store setup: %w", err)
	}
	log.Info().Msg("stored setup")
	if err := writer.WriteGameRecords(records); err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Str("dir", writer.Dir()).Msg("stored game records")
	return nil
}
