package beasts

import (
	"github.com/vovakirdan/beast-arcade/internal/games/beast/board"
)

// neighbor slots: column (left/middle/right) x row (top/middle/bottom).
type slot uint8

const (
	lt slot = iota
	mt
	rt
	lm
	rm
	lb
	mb
	rb
)

// neighborOrder lists the eight neighbor slots from "straight toward the
// player" to "straight away", indexed by the signs of the player offset.
var neighborOrder = map[[2]int][8]slot{
	{0, 1}:   {mb, lb, rb, lm, rm, lt, rt, mt},
	{0, -1}:  {mt, lt, rt, lm, rm, lb, rb, mb},
	{-1, 0}:  {lm, lt, lb, mt, mb, rt, rb, rm},
	{1, 0}:   {rm, rt, rb, mt, mb, lt, lb, lm},
	{1, 1}:   {rb, mb, rm, lb, rt, lm, mt, lt},
	{1, -1}:  {rt, mt, rm, lt, rb, lm, mb, lb},
	{-1, 1}:  {lb, lm, mb, lt, rb, rm, mt, rt},
	{-1, -1}: {lt, lm, mt, lb, rt, mb, rm, rb},
}

// IsWalkable reports whether a beast may step onto the tile.
func IsWalkable(t board.Tile) bool {
	return t == board.Empty || t == board.Player
}

// WalkableCoords returns the neighbors of pos ordered by priority toward the
// player. Neighbors are clamped to the board edges and duplicates produced by
// clamping are dropped, keeping the first occurrence. With checkTiles set only
// walkable neighbors are returned, in the same order; otherwise the caller
// validates the tiles itself.
//
// pos and player must differ.
func WalkableCoords(b *board.Board, pos, player board.Coord, checkTiles bool) []board.Coord {
	key := [2]int{sign(player.Column - pos.Column), sign(player.Row - pos.Row)}
	order, ok := neighborOrder[key]
	if !ok {
		panic("beasts: neighbor ordering requested for the player's own position")
	}

	left := max(pos.Column-1, 0)
	right := min(pos.Column+1, board.Width-1)
	top := max(pos.Row-1, 0)
	bottom := min(pos.Row+1, board.Height-1)

	slots := [8]board.Coord{
		lt: board.C(left, top),
		mt: board.C(pos.Column, top),
		rt: board.C(right, top),
		lm: board.C(left, pos.Row),
		rm: board.C(right, pos.Row),
		lb: board.C(left, bottom),
		mb: board.C(pos.Column, bottom),
		rb: board.C(right, bottom),
	}

	out := make([]board.Coord, 0, 8)
	for _, s := range order {
		c := slots[s]
		if containsCoord(out, c) {
			continue
		}
		out = append(out, c)
	}

	if !checkTiles {
		return out
	}

	walkable := out[:0]
	for _, c := range out {
		if IsWalkable(b.Get(c)) {
			walkable = append(walkable, c)
		}
	}
	return walkable
}

// Heuristic is the Chebyshev distance between two cells, which is exact for
// unit-cost eight-directional movement on an empty board.
func Heuristic(a, b board.Coord) int {
	return max(abs(a.Column-b.Column), abs(a.Row-b.Row))
}

func containsCoord(list []board.Coord, c board.Coord) bool {
	for _, existing := range list {
		if existing == c {
			return true
		}
	}
	return false
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
