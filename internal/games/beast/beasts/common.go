package beasts

import (
	"math/rand"

	"github.com/vovakirdan/beast-arcade/internal/games/beast/board"
)

// CommonBeast walks greedily toward the player with a little randomness
// between equally ranked side steps.
type CommonBeast struct {
	Pos board.Coord `json:"position"`
	rng *rand.Rand
}

// NewCommonBeast creates a common beast. rng drives the side-step shuffle;
// nil falls back to a fixed-seed source.
func NewCommonBeast(pos board.Coord, rng *rand.Rand) *CommonBeast {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &CommonBeast{Pos: pos, rng: rng}
}

// Position returns the beast's cell.
func (cb *CommonBeast) Position() board.Coord {
	return cb.Pos
}

// Score is awarded for squishing the beast.
func (cb *CommonBeast) Score() int {
	return CommonBeastScore
}

// Advance steps into the first Empty or Player neighbor. The side pairs of
// the priority list are each shuffled so the beast does not move in lockstep
// with its neighbors; the first and last entries keep their place.
func (cb *CommonBeast) Advance(b *board.Board, player board.Coord) Action {
	candidates := WalkableCoords(b, cb.Pos, player, false)
	shufflePairs(candidates, cb.rng)

	for _, c := range candidates {
		if action := stepInto(b, &cb.Pos, c, board.CommonBeast); action != Stayed {
			return action
		}
	}
	return Stayed
}

// AdvanceTo re-applies a recorded step.
func (cb *CommonBeast) AdvanceTo(b *board.Board, _ board.Coord, to board.Coord) (Action, error) {
	return applyRecordedStep(b, &cb.Pos, to, board.CommonBeast)
}

// shufflePairs shuffles the ranges [1,3), [3,5) and [5,7) independently.
func shufflePairs(list []board.Coord, rng *rand.Rand) {
	for start := 1; start+1 < len(list) && start < 7; start += 2 {
		end := min(start+2, len(list))
		part := list[start:end]
		rng.Shuffle(len(part), func(i, j int) {
			part[i], part[j] = part[j], part[i]
		})
	}
}
