package table

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"tictactoe/game"
)

// Entry is the running mean of every reward folded into a board key.
type Entry struct {
	Mean   float64
	Visits int
}

// MarshalJSON writes the entry as the two-element array [mean, visits].
func (e Entry) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{e.Mean, e.Visits})
}

func (e *Entry) UnmarshalJSON(data []byte) error {
	var pair []float64
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("expected [mean, visits], got %d elements", len(pair))
	}
	visits := int(pair[1])
	if float64(visits) != pair[1] {
		return fmt.Errorf("visit count %v is not an integer", pair[1])
	}
	e.Mean, e.Visits = pair[0], visits
	return nil
}

// Table maps board keys, stored from the primary marker's perspective, to
// their value estimates. It is safe for concurrent use; callers that need a
// read and a fold to be atomic together must serialize them themselves.
type Table struct {
	mu      sync.RWMutex
	entries map[game.Key]Entry
}

func New() *Table {
	return &Table{entries: make(map[game.Key]Entry)}
}

// Lookup returns the entry for key, if any reward was ever folded into it.
func (t *Table) Lookup(key game.Key) (Entry, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	e, ok := t.entries[key]
	return e, ok
}

// Fold adds reward to the running mean of key.
func (t *Table) Fold(key game.Key, reward float64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	e, ok := t.entries[key]
	if !ok {
		t.entries[key] = Entry{Mean: reward, Visits: 1}
		return
	}
	n := float64(e.Visits)
	e.Mean = (e.Mean*n + reward) / (n + 1)
	e.Visits++
	t.entries[key] = e
}

// MirroredLookup looks key up on behalf of owner. Keys seen by the other
// marker are mirrored into the primary's perspective first.
func (t *Table) MirroredLookup(key game.Key, owner, primary game.Marker) (Entry, bool, error) {
	if owner == primary {
		e, ok := t.Lookup(key)
		return e, ok, nil
	}
	mirrored, err := key.Mirror()
	if err != nil {
		return Entry{}, false, err
	}
	e, ok := t.Lookup(mirrored)
	return e, ok, nil
}

// Len returns the number of distinct keys.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.entries)
}

// Snapshot returns a copy of every entry.
func (t *Table) Snapshot() map[game.Key]Entry {
	t.mu.RLock()
	defer t.mu.RUnlock()

	snapshot := make(map[game.Key]Entry, len(t.entries))
	for k, e := range t.entries {
		snapshot[k] = e
	}
	return snapshot
}

// Stats summarizes the table.
type Stats struct {
	Entries     int
	TotalVisits int
	MeanValue   float64 // Visit-weighted mean over all entries
}

func (t *Table) Stats() Stats {
	t.mu.RLock()
	defer t.mu.RUnlock()

	s := Stats{Entries: len(t.entries)}
	weighted := 0.0
	for _, e := range t.entries {
		s.TotalVisits += e.Visits
		weighted += e.Mean * float64(e.Visits)
	}
	if s.TotalVisits > 0 {
		s.MeanValue = weighted / float64(s.TotalVisits)
	}
	return s
}

var errInvalidEntry = errors.New("invalid entry")

func validate(key game.Key, e Entry) error {
	if _, err := game.Decode(key); err != nil {
		return err
	}
	if e.Visits < 1 {
		return fmt.Errorf("%w: %s has %d visits", errInvalidEntry, key, e.Visits)
	}
	if e.Mean < 0 || e.Mean > 1 {
		return fmt.Errorf("%w: %s has mean %v outside [0,1]", errInvalidEntry, key, e.Mean)
	}
	return nil
}
