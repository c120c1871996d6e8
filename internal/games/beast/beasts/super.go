package beasts

import (
	"github.com/vovakirdan/beast-arcade/internal/games/beast/board"
)

// SuperBeast hunts the player with A* over walkable cells.
type SuperBeast struct {
	Pos board.Coord `json:"position"`
}

// NewSuperBeast creates a super beast at pos.
func NewSuperBeast(pos board.Coord) *SuperBeast {
	return &SuperBeast{Pos: pos}
}

// Position returns the beast's cell.
func (sb *SuperBeast) Position() board.Coord {
	return sb.Pos
}

// Score is awarded for squishing the beast.
func (sb *SuperBeast) Score() int {
	return SuperBeastScore
}

// Advance takes one step along the shortest path to the player. When the
// player is unreachable it still closes in greedily.
func (sb *SuperBeast) Advance(b *board.Board, player board.Coord) Action {
	path, ok := FindPath(sb.Pos, player, func(c board.Coord) []Step {
		coords := WalkableCoords(b, c, player, true)
		steps := make([]Step, len(coords))
		for i, n := range coords {
			steps[i] = Step{To: n}
		}
		return steps
	})
	if !ok {
		return greedyStep(b, &sb.Pos, player, board.SuperBeast)
	}
	if len(path) > 1 {
		return stepInto(b, &sb.Pos, path[1], board.SuperBeast)
	}
	return Stayed
}

// AdvanceTo re-applies a recorded step.
func (sb *SuperBeast) AdvanceTo(b *board.Board, _ board.Coord, to board.Coord) (Action, error) {
	return applyRecordedStep(b, &sb.Pos, to, board.SuperBeast)
}
