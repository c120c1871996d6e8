package board

// NextCoord returns the neighbor of c one step in dir, or false when the
// step would leave the board.
func NextCoord(c Coord, dir Dir) (Coord, bool) {
	dc, dr := dir.Delta()
	next := c.Add(dc, dr)
	if !next.InBounds() {
		return Coord{}, false
	}
	return next, true
}

// EndOfBlockChain walks from start in dir across consecutive Block tiles and
// returns the first non-Block coordinate together with the number of Blocks
// stepped over. The start cell itself is not counted. It returns false when
// the chain runs off the board.
func EndOfBlockChain(b *Board, start Coord, dir Dir) (Coord, int, bool) {
	current := start
	count := 0
	for {
		next, ok := NextCoord(current, dir)
		if !ok {
			return Coord{}, 0, false
		}
		if b.Get(next) != Block {
			return next, count, true
		}
		count++
		current = next
	}
}

// Push moves the chain that starts at first one step in dir, ending at end.
// Only the leading and trailing cells change kind: first becomes mover and
// end becomes Block. from is cleared.
func Push(b *Board, from, first, end Coord, mover Tile) {
	b.Set(from, Empty)
	b.Set(first, mover)
	b.Set(end, Block)
}

// DirBetween returns the cardinal direction of a single step from a to b.
// Diagonal or non-adjacent pairs report false.
func DirBetween(a, b Coord) (Dir, bool) {
	dc, dr := b.Column-a.Column, b.Row-a.Row
	switch {
	case dc == 0 && dr == -1:
		return Up, true
	case dc == 1 && dr == 0:
		return Right, true
	case dc == 0 && dr == 1:
		return Down, true
	case dc == -1 && dr == 0:
		return Left, true
	}
	return 0, false
}
