package table

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"tictactoe/game"

	"github.com/rs/zerolog/log"
)

var ErrCorruptTable = errors.New("corrupt value table")

// Load reads a table from path. A missing file yields an empty table; any
// other read or decode failure is returned so that learned data is never
// silently replaced by an empty table.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		log.Info().Str("path", path).Msg("no value table found, starting empty")
		return New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read value table %s: %w", path, err)
	}

	t, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Info().Str("path", path).Int("entries", t.Len()).Msg("loaded value table")
	return t, nil
}

// Decode parses the persisted form: a JSON object mapping board keys to
// [mean, visits] arrays.
func Decode(data []byte) (*Table, error) {
	entries := make(map[game.Key]Entry)
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptTable, err)
	}
	for k, e := range entries {
		if err := validate(k, e); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCorruptTable, err)
		}
	}
	return &Table{entries: entries}, nil
}

// Encode returns the persisted form with keys in sorted order.
func (t *Table) Encode() ([]byte, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	data, err := json.MarshalIndent(t.entries, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode value table: %w", err)
	}
	return append(data, '\n'), nil
}

// Save writes the table to path atomically: the data goes to a temporary
// file in the same directory which is then renamed over path.
func (t *Table) Save(path string) error {
	data, err := t.Encode()
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	f, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmp := f.Name()
	defer os.Remove(tmp) // No-op after a successful rename

	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("failed to write value table: %w", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("failed to sync value table: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close value table: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to replace value table %s: %w", path, err)
	}

	log.Debug().Str("path", path).Int("entries", t.Len()).Msg("saved value table")
	return nil
}
