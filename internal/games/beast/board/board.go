package board

import (
	"fmt"
	"strings"
)

// Board is the authoritative spatial state of a level.
type Board struct {
	cells [Height][Width]Tile
}

// New creates an empty board.
func New() *Board {
	return &Board{}
}

// Get returns the tile at c. Out-of-bounds coordinates read as StaticBlock.
func (b *Board) Get(c Coord) Tile {
	if !c.InBounds() {
		return StaticBlock
	}
	return b.cells[c.Row][c.Column]
}

// Set places a tile at c. Out-of-bounds writes are ignored.
func (b *Board) Set(c Coord, t Tile) {
	if !c.InBounds() {
		return
	}
	b.cells[c.Row][c.Column] = t
}

// Count returns how many cells hold the given tile.
func (b *Board) Count(t Tile) int {
	n := 0
	for row := range b.cells {
		for _, cell := range b.cells[row] {
			if cell == t {
				n++
			}
		}
	}
	return n
}

// Find returns all coordinates holding the tile, in row-major order.
func (b *Board) Find(t Tile) []Coord {
	var out []Coord
	for row := range b.cells {
		for col, cell := range b.cells[row] {
			if cell == t {
				out = append(out, C(col, row))
			}
		}
	}
	return out
}

// FirstEmpty returns the first Empty cell in row-major order.
func (b *Board) FirstEmpty() (Coord, bool) {
	for row := range b.cells {
		for col, cell := range b.cells[row] {
			if cell == Empty {
				return C(col, row), true
			}
		}
	}
	return Coord{}, false
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	cp := *b
	return &cp
}

// Equal reports whether two boards hold identical tiles.
func (b *Board) Equal(other *Board) bool {
	if other == nil {
		return false
	}
	return b.cells == other.cells
}

// Matrix returns a row-major copy of the board suitable for serialization.
func (b *Board) Matrix() [][]Tile {
	m := make([][]Tile, Height)
	for row := range b.cells {
		m[row] = make([]Tile, Width)
		copy(m[row], b.cells[row][:])
	}
	return m
}

// FromMatrix rebuilds a board from a matrix produced by Matrix.
func FromMatrix(m [][]Tile) (*Board, error) {
	if len(m) != Height {
		return nil, fmt.Errorf("board: matrix has %d rows, want %d", len(m), Height)
	}
	b := New()
	for row := range m {
		if len(m[row]) != Width {
			return nil, fmt.Errorf("board: matrix row %d has %d columns, want %d", row, len(m[row]), Width)
		}
		for col, t := range m[row] {
			if !t.Valid() {
				return nil, fmt.Errorf("board: invalid tile %d at (%d,%d)", t, col, row)
			}
			b.cells[row][col] = t
		}
	}
	return b, nil
}

// String renders the board with tile glyphs, one line per row.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(Height * (Width*2*3 + 1))
	for row := range b.cells {
		for _, cell := range b.cells[row] {
			sb.WriteString(cell.Symbol())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
