package board

import "fmt"

// Tile is the occupant kind of one grid cell.
//
// Eggs keep their creation instant on the Egg entity rather than on the tile,
// so the board stays a plain comparable matrix.
type Tile uint8

const (
	Empty Tile = iota
	Block
	StaticBlock
	Player
	CommonBeast
	SuperBeast
	Egg
	EggHatching
	HatchedBeast

	tileCount
)

var tileNames = [tileCount]string{
	Empty:        "empty",
	Block:        "block",
	StaticBlock:  "static_block",
	Player:       "player",
	CommonBeast:  "common_beast",
	SuperBeast:   "super_beast",
	Egg:          "egg",
	EggHatching:  "egg_hatching",
	HatchedBeast: "hatched_beast",
}

var tileSymbols = [tileCount]string{
	Empty:        "  ",
	Block:        "░░",
	StaticBlock:  "▓▓",
	Player:       "◀▶",
	CommonBeast:  "├┤",
	SuperBeast:   "╟╢",
	Egg:          "○○",
	EggHatching:  "○○",
	HatchedBeast: "╬╬",
}

func (t Tile) String() string {
	if t >= tileCount {
		return "invalid"
	}
	return tileNames[t]
}

// Symbol returns the two-character glyph used to draw the tile.
func (t Tile) Symbol() string {
	if t >= tileCount {
		return "??"
	}
	return tileSymbols[t]
}

// ParseTile is the inverse of Tile.String.
func ParseTile(s string) (Tile, error) {
	for t, name := range tileNames {
		if name == s {
			return Tile(t), nil
		}
	}
	return Empty, fmt.Errorf("board: unknown tile %q", s)
}

// MarshalText encodes the tile by name, so board matrices serialize as
// readable JSON arrays instead of base64.
func (t Tile) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("board: invalid tile %d", uint8(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText decodes a tile name.
func (t *Tile) UnmarshalText(text []byte) error {
	parsed, err := ParseTile(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Valid reports whether t is a known tile kind.
func (t Tile) Valid() bool {
	return t < tileCount
}

// IsBeast reports whether the tile is an enemy or an egg.
func (t Tile) IsBeast() bool {
	switch t {
	case CommonBeast, SuperBeast, Egg, EggHatching, HatchedBeast:
		return true
	}
	return false
}

// IsBlocking reports whether the tile stops a push (Block or StaticBlock).
func (t Tile) IsBlocking() bool {
	return t == Block || t == StaticBlock
}
