package beasts

import (
	"math/rand"
	"slices"
	"time"

	"github.com/vovakirdan/beast-arcade/internal/games/beast/board"
)

// Roster owns the enemies of one level, one slice per kind. Slices keep
// their order when an entity is removed, so indexes recorded in a log stay
// meaningful.
type Roster struct {
	Commons []*CommonBeast
	Supers  []*SuperBeast
	Eggs    []*Egg
	Hatched []*HatchedBeast
}

// NewRoster builds the entities terrain generation placed. Common beasts
// share rng; eggs are laid at laid.
func NewRoster(p board.Placement, rng *rand.Rand, laid time.Time) *Roster {
	r := &Roster{}
	for _, c := range p.CommonBeasts {
		r.Commons = append(r.Commons, NewCommonBeast(c, rng))
	}
	for _, c := range p.SuperBeasts {
		r.Supers = append(r.Supers, NewSuperBeast(c))
	}
	for _, c := range p.Eggs {
		r.Eggs = append(r.Eggs, NewEgg(c, laid))
	}
	return r
}

// RosterFromBoard rebuilds the entities from the tiles of b in row-major
// order.
func RosterFromBoard(b *board.Board, rng *rand.Rand) *Roster {
	r := &Roster{}
	for row := 0; row < board.Height; row++ {
		for col := 0; col < board.Width; col++ {
			c := board.C(col, row)
			switch b.Get(c) {
			case board.CommonBeast:
				r.Commons = append(r.Commons, NewCommonBeast(c, rng))
			case board.SuperBeast:
				r.Supers = append(r.Supers, NewSuperBeast(c))
			case board.Egg:
				r.Eggs = append(r.Eggs, NewEgg(c, time.Time{}))
			case board.EggHatching:
				r.Eggs = append(r.Eggs, &Egg{Pos: c, State: Hatching})
			case board.HatchedBeast:
				r.Hatched = append(r.Hatched, NewHatchedBeast(c))
			}
		}
	}
	return r
}

// Remaining counts every enemy including unhatched eggs.
func (r *Roster) Remaining() int {
	return len(r.Commons) + len(r.Supers) + len(r.Eggs) + len(r.Hatched)
}

// Moving counts the enemies that walk.
func (r *Roster) Moving() int {
	return len(r.Commons) + len(r.Supers) + len(r.Hatched)
}

// Remove drops whichever entity stands at c. It reports false when there is
// none.
func (r *Roster) Remove(c board.Coord) bool {
	var ok bool
	if r.Commons, ok = removeAt(r.Commons, c); ok {
		return true
	}
	if r.Supers, ok = removeAt(r.Supers, c); ok {
		return true
	}
	if r.Eggs, ok = removeAt(r.Eggs, c); ok {
		return true
	}
	r.Hatched, ok = removeAt(r.Hatched, c)
	return ok
}

// StartHatching marks the incubating egg at c as hatching, on the board
// too.
func (r *Roster) StartHatching(b *board.Board, c board.Coord) bool {
	i := slices.IndexFunc(r.Eggs, func(e *Egg) bool { return e.Pos == c })
	if i < 0 || r.Eggs[i].State != Incubating {
		return false
	}
	r.Eggs[i].State = Hatching
	b.Set(c, board.EggHatching)
	return true
}

// Hatch replaces the egg at c with a hatched beast, on the board too.
func (r *Roster) Hatch(b *board.Board, c board.Coord) (*HatchedBeast, bool) {
	var ok bool
	if r.Eggs, ok = removeAt(r.Eggs, c); !ok {
		return nil, false
	}
	hb := NewHatchedBeast(c)
	r.Hatched = append(r.Hatched, hb)
	b.Set(c, board.HatchedBeast)
	return hb, true
}

func removeAt[T interface{ Position() board.Coord }](list []T, c board.Coord) ([]T, bool) {
	i := slices.IndexFunc(list, func(e T) bool { return e.Position() == c })
	if i < 0 {
		return list, false
	}
	return slices.Delete(list, i, i+1), true
}
