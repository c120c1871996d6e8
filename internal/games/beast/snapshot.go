package beast

import (
	"time"

	"github.com/vovakirdan/beast-arcade/internal/games/beast/board"
)

// Snapshot captures the complete engine state for determinism testing.
type Snapshot struct {
	State     State
	Level     int
	Beat      Beat
	Position  board.Coord
	Lives     int
	Score     int
	Killed    int
	Moved     int
	Distance  int
	Commons   int
	Supers    int
	Eggs      int
	Hatched   int
	Remaining time.Duration
	Entries   int
	Matrix    [][]board.Tile
}

// Snapshot returns the current engine snapshot.
func (e *Engine) Snapshot() Snapshot {
	entries := 0
	for _, l := range e.logs {
		entries += len(l.Entries)
	}
	return Snapshot{
		State:     e.state,
		Level:     e.level,
		Beat:      e.beat,
		Position:  e.player.Position,
		Lives:     e.player.Lives,
		Score:     e.player.Score,
		Killed:    e.player.BeastsKilled,
		Moved:     e.player.BlocksMoved,
		Distance:  e.player.DistanceTraveled,
		Commons:   len(e.roster.Commons),
		Supers:    len(e.roster.Supers),
		Eggs:      len(e.roster.Eggs),
		Hatched:   len(e.roster.Hatched),
		Remaining: e.remaining(e.now()),
		Entries:   entries,
		Matrix:    e.board.Matrix(),
	}
}

// Snapshot returns the engine snapshot, or the zero value before Reset.
func (g *Game) Snapshot() Snapshot {
	if g.engine == nil {
		return Snapshot{}
	}
	return g.engine.Snapshot()
}
