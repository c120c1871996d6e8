package board

import (
	"fmt"
	"math/rand"
	"sort"
)

// Layout holds the counts terrain generation needs from a level config.
type Layout struct {
	Blocks                int
	StaticBlocks          int
	CommonBeasts          int
	SuperBeasts           int
	Eggs                  int
	BeastStartingDistance int
}

// Placement lists where generation put each entity kind.
type Placement struct {
	CommonBeasts []Coord
	SuperBeasts  []Coord
	Eggs         []Coord
}

// Fits reports whether generation can place every entity of the layout.
func (l Layout) Fits() error {
	free := Width*Height - 1 - l.Blocks - l.StaticBlocks
	if l.Blocks < 0 || l.StaticBlocks < 0 || l.CommonBeasts < 0 || l.SuperBeasts < 0 || l.Eggs < 0 {
		return fmt.Errorf("board: negative entity count")
	}
	if free < 0 {
		return fmt.Errorf("board: %d blocks do not fit on the board", l.Blocks+l.StaticBlocks)
	}
	beasts := l.CommonBeasts + l.SuperBeasts + l.Eggs
	if beasts == 0 {
		return nil
	}
	stride := l.BeastStartingDistance
	if stride < 1 {
		return fmt.Errorf("board: beast starting distance must be at least 1")
	}
	if (beasts-1)*stride >= free {
		return fmt.Errorf("board: %d beasts at distance %d need more than %d free cells", beasts, stride, free)
	}
	return nil
}

// Generate builds a fresh board for the layout. The player is placed at
// PlayerStart, blocks and static blocks are scattered at random, and beasts
// are spread out from the top-right corner every BeastStartingDistance cells
// of the distance-sorted free list: super beasts first, then eggs, then
// common beasts.
//
// Generate panics when the layout cannot be placed; use Layout.Fits to
// validate configs up front.
func Generate(l Layout, rng *rand.Rand) (*Board, Placement) {
	b := New()
	b.Set(PlayerStart, Player)

	positions := make([]Coord, 0, Width*Height-1)
	for row := 0; row < Height; row++ {
		for col := 0; col < Width; col++ {
			c := C(col, row)
			if c == PlayerStart {
				continue
			}
			positions = append(positions, c)
		}
	}

	rng.Shuffle(len(positions), func(i, j int) {
		positions[i], positions[j] = positions[j], positions[i]
	})

	scattered := l.Blocks + l.StaticBlocks
	if scattered > len(positions) {
		panic("board: could not find a free spot to place all blocks")
	}
	for i, c := range positions[:scattered] {
		if i < l.Blocks {
			b.Set(c, Block)
		} else {
			b.Set(c, StaticBlock)
		}
	}
	free := positions[scattered:]

	corner := C(Width-1, 0)
	sort.SliceStable(free, func(i, j int) bool {
		return distanceSquared(free[i], corner) < distanceSquared(free[j], corner)
	})

	var p Placement
	total := l.CommonBeasts + l.SuperBeasts + l.Eggs
	stride := max(l.BeastStartingDistance, 1)
	for i, placed := 0, 0; placed < total; i += stride {
		if i >= len(free) {
			panic("board: could not find a free spot to place all beasts")
		}
		c := free[i]
		switch {
		case len(p.SuperBeasts) < l.SuperBeasts:
			p.SuperBeasts = append(p.SuperBeasts, c)
			b.Set(c, SuperBeast)
		case len(p.Eggs) < l.Eggs:
			p.Eggs = append(p.Eggs, c)
			b.Set(c, Egg)
		default:
			p.CommonBeasts = append(p.CommonBeasts, c)
			b.Set(c, CommonBeast)
		}
		placed++
	}

	return b, p
}

func distanceSquared(a, b Coord) int {
	dc, dr := a.Column-b.Column, a.Row-b.Row
	return dc*dc + dr*dr
}
