package beasts

import (
	"time"

	"github.com/vovakirdan/beast-arcade/internal/games/beast/board"
)

// HatchingState is the lifecycle stage of an egg.
type HatchingState int

const (
	Incubating HatchingState = iota
	Hatching
	Hatched
)

func (s HatchingState) String() string {
	switch s {
	case Incubating:
		return "incubating"
	case Hatching:
		return "hatching"
	case Hatched:
		return "hatched"
	}
	return "unknown"
}

// hatchingThreshold is the fraction of the hatch time after which the egg
// starts visibly hatching.
const hatchingThreshold = 0.8

// Egg sits still until it hatches into a HatchedBeast.
type Egg struct {
	Pos     board.Coord   `json:"position"`
	Instant time.Time     `json:"instant"`
	State   HatchingState `json:"state"`
}

// NewEgg creates an egg laid at instant.
func NewEgg(pos board.Coord, instant time.Time) *Egg {
	return &Egg{Pos: pos, Instant: instant}
}

// Position returns the egg's cell.
func (e *Egg) Position() board.Coord {
	return e.Pos
}

// Score is awarded for squishing the egg.
func (e *Egg) Score() int {
	return EggScore
}

// Hatch advances the egg's state from the elapsed time. It returns the egg's
// state and whether this call changed it. Hatched is terminal.
func (e *Egg) Hatch(now time.Time, hatchTime time.Duration) (HatchingState, bool) {
	if e.State == Hatched {
		return Hatched, false
	}
	prev := e.State
	elapsed := now.Sub(e.Instant)
	switch {
	case elapsed >= hatchTime:
		e.State = Hatched
	case float64(elapsed) >= float64(hatchTime)*hatchingThreshold:
		e.State = Hatching
	}
	return e.State, e.State != prev
}
