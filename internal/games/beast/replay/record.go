package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
)

// Version is written into every record.
const Version = "1"

// Record is a saved game: who played which mode with which seed, and the
// per-level logs needed to verify it.
type Record struct {
	Version       string     `json:"version"`
	ID            string     `json:"id"`
	Mode          string     `json:"mode"`
	Seed          int64      `json:"seed"`
	Deterministic bool       `json:"deterministic"`
	Name          string     `json:"name,omitempty"`
	Score         int        `json:"score"`
	CreatedAt     time.Time  `json:"created_at"`
	Levels        []LevelLog `json:"levels"`
}

// NewRecord wraps the logs of a finished game with a fresh ID.
func NewRecord(mode string, seed int64, deterministic bool, score int, levels []LevelLog) Record {
	return Record{
		Version:       Version,
		ID:            uuid.NewString(),
		Mode:          mode,
		Seed:          seed,
		Deterministic: deterministic,
		Score:         score,
		CreatedAt:     time.Now().UTC(),
		Levels:        levels,
	}
}

// Encode returns the record as indented JSON.
func (r Record) Encode() ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("replay: encode: %w", err)
	}
	return data, nil
}

// Decode parses a record and checks its ID and version.
func Decode(data []byte) (Record, error) {
	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return Record{}, fmt.Errorf("replay: decode: %w", err)
	}
	if r.Version != Version {
		return Record{}, fmt.Errorf("replay: unsupported version %q", r.Version)
	}
	if _, err := uuid.Parse(r.ID); err != nil {
		return Record{}, fmt.Errorf("replay: bad id %q: %w", r.ID, err)
	}
	return r, nil
}

// Save writes the record to path.
func (r Record) Save(path string) error {
	data, err := r.Encode()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("replay: save %s: %w", path, err)
	}
	return nil
}

// Load reads a record from path.
func Load(path string) (Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Record{}, fmt.Errorf("replay: load %s: %w", path, err)
	}
	return Decode(data)
}
