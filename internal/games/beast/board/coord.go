// Package board holds the grid model of the beast game: coordinates, tiles,
// directions, the board matrix, the push-chain primitives and terrain generation.
// It has no dependencies on rendering or input.
package board

import "fmt"

// Board dimensions in cells.
const (
	Width  = 50
	Height = 30
)

// Coord is a cell position on the board.
type Coord struct {
	Column int `json:"column" msgpack:"c"`
	Row    int `json:"row" msgpack:"r"`
}

// PlayerStart is where the player enters every level (bottom-left corner).
var PlayerStart = Coord{Column: 0, Row: Height - 1}

// C is a shorthand constructor for Coord.
func C(column, row int) Coord {
	return Coord{Column: column, Row: row}
}

// InBounds reports whether the coordinate lies on the board.
func (c Coord) InBounds() bool {
	return c.Column >= 0 && c.Column < Width && c.Row >= 0 && c.Row < Height
}

// Add returns c translated by (dc, dr).
func (c Coord) Add(dc, dr int) Coord {
	return Coord{Column: c.Column + dc, Row: c.Row + dr}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Column, c.Row)
}
