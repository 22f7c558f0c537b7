package experiments

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"tictactoe/agent"
	"tictactoe/engine"
	"tictactoe/experiments/metrics"
	"tictactoe/learner"
	"tictactoe/table"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
)

// Collection trains the value table by playing a smart agent against a
// random one for many games.
type Collection struct {
	Games           int
	Workers         int
	SaveEvery       int // Games between table saves; 0 saves only at the end
	TablePath       string
	ExplorationRate int
	Seed            uint64
	RecordsDir      string
}

type CollectStats struct {
	Games     int // Games folded into the table
	Played    int // Games played, including any left unfolded after a failure
	SmartWins int
	Losses    int
	Draws     int
	Duration  time.Duration
}

// Run plays the collection games. With more than one worker, games run
// concurrently against the shared table while a single writer folds each
// finished episode, so no fold is lost. Cancelling ctx stops collection
// early; the table is saved either way.
func (c *Collection) Run(ctx context.Context, tbl *table.Table) (CollectStats, error) {
	if c.Seed == 0 {
		c.Seed = uint64(time.Now().UnixNano())
	}
	workers := max(c.Workers, 1)
	runID := uuid.New()
	start := time.Now()

	log.Info().Str("run", runID.String()).Msgf("collecting %d games with %d workers", c.Games, workers)

	var stats CollectStats
	var records []metrics.GameRecord
	assigner := learner.NewAssigner()
	record := func(result engine.Result) error {
		if err := assigner.Assign(tbl, result.History, result.Outcome); err != nil {
			return fmt.Errorf("failed to assign credit: %w", err)
		}
		stats.Games++
		switch result.WinnerPlayer {
		case 1:
			stats.SmartWins++
		case 2:
			stats.Losses++
		default:
			stats.Draws++
		}
		if c.RecordsDir != "" {
			records = append(records, metrics.GameRecord{
				ID:         stats.Games,
				Player1:    agent.Smart.String(),
				Player2:    agent.Random.String(),
				GameMetric: result.Metric,
			})
		}
		if c.SaveEvery > 0 && stats.Games%c.SaveEvery == 0 {
			log.Info().Msgf("completed %d of %d games", stats.Games, c.Games)
			return c.save(tbl)
		}
		return nil
	}

	var err error
	var played atomic.Int64
	if workers == 1 {
		err = c.sequential(ctx, tbl, &played, record)
	} else {
		err = c.parallel(ctx, tbl, workers, &played, record)
	}
	stats.Played = int(played.Load())
	stats.Duration = time.Since(start)

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		log.Warn().Msgf("collection interrupted after %d games", stats.Games)
		err = nil
	}
	if saveErr := c.save(tbl); saveErr != nil {
		return stats, errors.Join(err, saveErr)
	}
	if err != nil {
		return stats, err
	}

	log.Info().Msgf("completed collection: %d games, smart won %d, lost %d, drew %d in %s",
		stats.Games, stats.SmartWins, stats.Losses, stats.Draws, stats.Duration)

	if c.RecordsDir != "" {
		setup := metrics.Setup{
			RunID:           runID,
			Name:            "collect",
			Player1:         agent.Smart.String(),
			Player2:         agent.Random.String(),
			NumGames:        stats.Games,
			ExplorationRate: c.ExplorationRate,
			Gamma:           learner.Gamma,
			TablePath:       c.TablePath,
			StartTime:       start,
			EndTime:         start.Add(stats.Duration),
			Duration:        stats.Duration,
		}
		if err := writeRecords(c.RecordsDir, setup, records); err != nil {
			return stats, err
		}
	}
	return stats, nil
}

func (c *Collection) sequential(ctx context.Context, tbl *table.Table, played *atomic.Int64, record func(engine.Result) error) error {
	r := rand.New(rand.NewSource(c.Seed))
	for i := 0; i < c.Games; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		result, err := c.playGame(tbl, r)
		if err != nil {
			return err
		}
		played.Add(1)
		if err := record(result); err != nil {
			return err
		}
	}
	return nil
}

func (c *Collection) parallel(ctx context.Context, tbl *table.Table, workers int, played *atomic.Int64, record func(engine.Result) error) error {
	// Cancelled by the writer when recording fails, so workers stop playing
	// games whose results would be thrown away.
	pctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(pctx)
	tasks := make(chan int)
	episodes := make(chan engine.Result, workers)

	g.Go(func() error {
		defer close(tasks)
		for i := 0; i < c.Games; i++ {
			select {
			case tasks <- i:
			case <-gctx.Done():
				return nil
			}
		}
		return nil
	})

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		r := rand.New(rand.NewSource(c.Seed + uint64(w)))
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()

			for range tasks {
				if gctx.Err() != nil {
					return nil
				}
				result, err := c.playGame(tbl, r)
				if err != nil {
					return err
				}
				played.Add(1)
				select {
				case episodes <- result:
				case <-gctx.Done():
					return nil
				}
			}
			return nil
		})
	}
	go func() {
		wg.Wait()
		close(episodes)
	}()

	// Single writer: every fold into the table happens here.
	var recordErr error
	for result := range episodes {
		if recordErr != nil {
			continue // Drain so workers can exit
		}
		if err := record(result); err != nil {
			recordErr = err
			cancel()
		}
	}
	if err := g.Wait(); err != nil {
		return err
	}
	if recordErr != nil {
		return recordErr
	}
	return ctx.Err()
}

func (c *Collection) playGame(tbl *table.Table, r *rand.Rand) (engine.Result, error) {
	deps := agent.Deps{Table: tbl, Rand: r, ExplorationRate: c.ExplorationRate}
	markers, err := engine.Setup(agent.Smart, agent.Random, r)
	if err != nil {
		return engine.Result{}, err
	}
	smart, err := agent.New(agent.Smart, markers[0], deps)
	if err != nil {
		return engine.Result{}, err
	}
	random, err := agent.New(agent.Random, markers[1], deps)
	if err != nil {
		return engine.Result{}, err
	}
	e, err := engine.LocalEngine([2]agent.Agent{smart, random}, tbl, nil,
		engine.WithDeferredCredit(), engine.WithMetrics(metrics.NewCollector()))
	if err != nil {
		return engine.Result{}, err
	}
	return e.Run()
}

func (c *Collection) save(tbl *table.Table) error {
	if c.TablePath == "" {
		return nil
	}
	return tbl.Save(c.TablePath)
}
