// Package beasts implements the enemy behaviors of the beast game.
//
// Every moving beast decides its own step from the board and the player's
// position (Advance) and can re-apply a previously recorded step without
// deciding it again (AdvanceTo). The neighbor ordering, heuristic and path
// search are shared free functions so the variants cannot drift apart.
package beasts

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/beast-arcade/internal/games/beast/board"
)

// Action is the result of a beast's turn.
type Action int

const (
	Stayed Action = iota
	Moved
	PlayerKilled
)

func (a Action) String() string {
	switch a {
	case Stayed:
		return "stayed"
	case Moved:
		return "moved"
	case PlayerKilled:
		return "player_killed"
	}
	return "unknown"
}

// Scores awarded to the player for squishing each kind.
const (
	CommonBeastScore  = 2
	SuperBeastScore   = 6
	HatchedBeastScore = 2
	EggScore          = 1
)

// ErrInvalidMovement is returned by AdvanceTo when a recorded destination
// cannot be reconciled with the current board.
var ErrInvalidMovement = errors.New("invalid movement")

// Beast is the capability set shared by the moving enemy kinds.
type Beast interface {
	// Position returns the beast's current cell.
	Position() board.Coord
	// Advance decides and applies one step toward the player.
	Advance(b *board.Board, player board.Coord) Action
	// AdvanceTo re-applies a recorded step to the given cell.
	AdvanceTo(b *board.Board, player, to board.Coord) (Action, error)
	// Score is awarded when the player squishes the beast.
	Score() int
}

// moveOnBoard moves a beast tile from *pos to to and updates *pos, keeping the
// board and the entity in sync.
func moveOnBoard(b *board.Board, pos *board.Coord, to board.Coord, tile board.Tile) {
	b.Set(*pos, board.Empty)
	b.Set(to, tile)
	*pos = to
}

// stepInto moves into an Empty or Player cell. Any other tile leaves the
// beast in place.
func stepInto(b *board.Board, pos *board.Coord, to board.Coord, tile board.Tile) Action {
	switch b.Get(to) {
	case board.Player:
		moveOnBoard(b, pos, to, tile)
		return PlayerKilled
	case board.Empty:
		moveOnBoard(b, pos, to, tile)
		return Moved
	}
	return Stayed
}

// greedyStep takes the first walkable neighbor in priority order.
func greedyStep(b *board.Board, pos *board.Coord, player board.Coord, tile board.Tile) Action {
	for _, c := range WalkableCoords(b, *pos, player, true) {
		if action := stepInto(b, pos, c, tile); action != Stayed {
			return action
		}
	}
	return Stayed
}

// applyRecordedStep is the AdvanceTo logic shared by beasts that never push.
func applyRecordedStep(b *board.Board, pos *board.Coord, to board.Coord, tile board.Tile) (Action, error) {
	if to == *pos {
		return Stayed, nil
	}
	if Heuristic(*pos, to) != 1 {
		return Stayed, fmt.Errorf("%w: %v is not adjacent to %v", ErrInvalidMovement, to, *pos)
	}
	switch b.Get(to) {
	case board.Empty:
		moveOnBoard(b, pos, to, tile)
		return Moved, nil
	case board.Player:
		moveOnBoard(b, pos, to, tile)
		return PlayerKilled, nil
	}
	return Stayed, fmt.Errorf("%w: %v cannot step onto %v at %v", ErrInvalidMovement, tile, b.Get(to), to)
}
