package metrics

import (
	"time"

	"tictactoe/game"
)

type GameMetric struct {
	StartingPlayer int    // Player number moving first
	Winner         int    // Player number, 0 for a draw
	WinnerMarker   string // "X", "O" or "_" for a draw
	Outcome        string // From the primary marker's perspective
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
	ExploredMoves  int // Moves a smart agent played at random
}

type Collector interface {
	Start(startingPlayer int)
	AddMove(explored bool)
	Complete(winner int, marker game.Marker, outcome game.Outcome) GameMetric
}

type collector struct {
	startingPlayer int
	startTime      time.Time
	moves          int
	explored       int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(startingPlayer int) {
	m.startingPlayer = startingPlayer
	m.startTime = time.Now()
	m.moves = 0
	m.explored = 0
}

func (m *collector) AddMove(explored bool) {
	m.moves++
	if explored {
		m.explored++
	}
}

func (m *collector) Complete(winner int, marker game.Marker, outcome game.Outcome) GameMetric {
	end := time.Now()
	return GameMetric{
		StartingPlayer: m.startingPlayer,
		Winner:         winner,
		WinnerMarker:   marker.String(),
		Outcome:        outcome.String(),
		StartTime:      m.startTime,
		EndTime:        end,
		Duration:       end.Sub(m.startTime),
		TotalMoves:     m.moves,
		ExploredMoves:  m.explored,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(startingPlayer int) {}
func (m *dummyCollector) AddMove(explored bool)    {}
func (m *dummyCollector) Complete(winner int, marker game.Marker, outcome game.Outcome) GameMetric {
	return GameMetric{}
}
