package board

import "fmt"

// Dir is one of the four cardinal movement directions.
type Dir uint8

const (
	Up Dir = iota
	Right
	Down
	Left
)

// Dirs lists the cardinal directions in the order beasts try them.
var Dirs = [4]Dir{Up, Right, Down, Left}

// Delta returns the column and row offsets of a single step.
func (d Dir) Delta() (int, int) {
	switch d {
	case Up:
		return 0, -1
	case Right:
		return 1, 0
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	}
	return 0, 0
}

// Opposite returns the reverse direction.
func (d Dir) Opposite() Dir {
	return (d + 2) % 4
}

func (d Dir) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	}
	return "unknown"
}

// ParseDir parses the lowercase name produced by String.
func ParseDir(s string) (Dir, error) {
	for _, d := range Dirs {
		if d.String() == s {
			return d, nil
		}
	}
	return 0, fmt.Errorf("board: unknown direction %q", s)
}

// MarshalText encodes the direction by name so replay files stay readable.
func (d Dir) MarshalText() ([]byte, error) {
	if d > Left {
		return nil, fmt.Errorf("board: invalid direction %d", d)
	}
	return []byte(d.String()), nil
}

// UnmarshalText decodes a direction name.
func (d *Dir) UnmarshalText(text []byte) error {
	parsed, err := ParseDir(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
