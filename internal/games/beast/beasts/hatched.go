package beasts

import (
	"fmt"

	"github.com/vovakirdan/beast-arcade/internal/games/beast/board"
)

// killBonus is subtracted from the heuristic of a step that would squish the
// player, so the search prefers lethal pushes.
const killBonus = 10

// HatchedBeast hunts the player like a SuperBeast but can also push block
// chains, including onto the player.
type HatchedBeast struct {
	Pos board.Coord `json:"position"`
}

// NewHatchedBeast creates a hatched beast at pos.
func NewHatchedBeast(pos board.Coord) *HatchedBeast {
	return &HatchedBeast{Pos: pos}
}

// Position returns the beast's cell.
func (hb *HatchedBeast) Position() board.Coord {
	return hb.Pos
}

// Score is awarded for squishing the beast.
func (hb *HatchedBeast) Score() int {
	return HatchedBeastScore
}

// Advance runs the hatched beast's decision cascade:
//  1. step onto an adjacent player;
//  2. push an adjacent chain onto a player who cannot yield;
//  3. follow an A* path that may push chains, taking its first step;
//  4. close in greedily.
//
// It never squishes other beasts.
func (hb *HatchedBeast) Advance(b *board.Board, player board.Coord) Action {
	for _, c := range WalkableCoords(b, hb.Pos, player, true) {
		if b.Get(c) == board.Player {
			moveOnBoard(b, &hb.Pos, c, board.HatchedBeast)
			return PlayerKilled
		}
	}

	for _, dir := range board.Dirs {
		first, ok := board.NextCoord(hb.Pos, dir)
		if !ok || b.Get(first) != board.Block {
			continue
		}
		end, _, ok := board.EndOfBlockChain(b, first, dir)
		if ok && b.Get(end) == board.Player && cannotYield(b, end, dir) {
			hb.push(b, first, end)
			return PlayerKilled
		}
	}

	if path, ok := FindPath(hb.Pos, player, func(c board.Coord) []Step {
		return pushingSteps(b, c, player)
	}); ok && len(path) > 1 {
		if action := hb.takeStep(b, path[1]); action != Stayed {
			return action
		}
	}

	return greedyStep(b, &hb.Pos, player, board.HatchedBeast)
}

// takeStep executes the first step of a path, pushing when it leads into a
// block chain.
func (hb *HatchedBeast) takeStep(b *board.Board, next board.Coord) Action {
	switch b.Get(next) {
	case board.Player, board.Empty:
		return stepInto(b, &hb.Pos, next, board.HatchedBeast)
	case board.Block:
		dir, ok := board.DirBetween(hb.Pos, next)
		if !ok {
			return Stayed
		}
		end, _, ok := board.EndOfBlockChain(b, next, dir)
		if !ok {
			return Stayed
		}
		switch b.Get(end) {
		case board.Empty:
			hb.push(b, next, end)
			return Moved
		case board.Player:
			if cannotYield(b, end, dir) {
				hb.push(b, next, end)
				return PlayerKilled
			}
		}
	}
	return Stayed
}

// AdvanceTo re-applies a recorded step, including cardinal pushes.
func (hb *HatchedBeast) AdvanceTo(b *board.Board, _ board.Coord, to board.Coord) (Action, error) {
	if to == hb.Pos || b.Get(to) != board.Block {
		return applyRecordedStep(b, &hb.Pos, to, board.HatchedBeast)
	}

	dir, ok := board.DirBetween(hb.Pos, to)
	if !ok {
		return Stayed, fmt.Errorf("%w: hatched beast cannot push diagonally from %v to %v", ErrInvalidMovement, hb.Pos, to)
	}
	end, _, ok := board.EndOfBlockChain(b, to, dir)
	if !ok {
		return Stayed, fmt.Errorf("%w: block chain at %v runs off the board", ErrInvalidMovement, to)
	}
	switch b.Get(end) {
	case board.Empty:
		hb.push(b, to, end)
		return Moved, nil
	case board.Player:
		if cannotYield(b, end, dir) {
			hb.push(b, to, end)
			return PlayerKilled, nil
		}
	}
	return Stayed, fmt.Errorf("%w: block chain at %v cannot be pushed onto %v", ErrInvalidMovement, to, b.Get(end))
}

func (hb *HatchedBeast) push(b *board.Board, first, end board.Coord) {
	board.Push(b, hb.Pos, first, end, board.HatchedBeast)
	hb.Pos = first
}

// pushingSteps lists the search edges from c: walkable neighbors plus
// cardinal block chains that end on an Empty cell or on a trapped player.
func pushingSteps(b *board.Board, c, player board.Coord) []Step {
	var steps []Step
	for _, n := range WalkableCoords(b, c, player, false) {
		switch b.Get(n) {
		case board.Empty, board.Player:
			steps = append(steps, Step{To: n})
		case board.Block:
			dir, ok := board.DirBetween(c, n)
			if !ok {
				continue
			}
			end, _, ok := board.EndOfBlockChain(b, n, dir)
			if !ok {
				continue
			}
			switch b.Get(end) {
			case board.Empty:
				steps = append(steps, Step{To: n})
			case board.Player:
				if cannotYield(b, end, dir) {
					steps = append(steps, Step{To: n, Bonus: killBonus})
				}
			}
		}
	}
	return steps
}

// cannotYield reports whether the player at c has no room to be pushed
// further in dir: the next cell is off the board or holds a block.
func cannotYield(b *board.Board, c board.Coord, dir board.Dir) bool {
	next, ok := board.NextCoord(c, dir)
	return !ok || b.Get(next).IsBlocking()
}
