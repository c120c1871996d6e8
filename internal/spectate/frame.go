// Package spectate streams live beast games to viewers. Players publish a
// Frame after every poll; a Hub fans each frame out to the viewers of that
// session and a Server exposes the feed over WebSocket.
package spectate

import (
	"fmt"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/beast-arcade/internal/games/beast"
	"github.com/vovakirdan/beast-arcade/internal/games/beast/board"
)

// SessionID identifies a live game.
type SessionID string

// Frame is one picture of a live game.
type Frame struct {
	Session   SessionID `msgpack:"session"`
	User      string    `msgpack:"user"`
	State     string    `msgpack:"state"`
	Level     int       `msgpack:"level"`
	Beasts    int       `msgpack:"beasts"`
	Lives     int       `msgpack:"lives"`
	Score     int       `msgpack:"score"`
	Remaining int64     `msgpack:"remaining_ms"`
	// Tiles holds one byte per tile code, row by row.
	Tiles [][]byte `msgpack:"tiles"`
}

// NewFrame captures the engine's current state.
func NewFrame(id SessionID, user string, e *beast.Engine) Frame {
	f := e.Footer()
	m := e.Matrix()
	tiles := make([][]byte, len(m))
	for y, row := range m {
		tiles[y] = make([]byte, len(row))
		for x, t := range row {
			tiles[y][x] = byte(t)
		}
	}
	return Frame{
		Session:   id,
		User:      user,
		State:     e.State().String(),
		Level:     f.Level,
		Beasts:    f.Beasts,
		Lives:     f.Lives,
		Score:     f.Score,
		Remaining: f.Remaining.Milliseconds(),
		Tiles:     tiles,
	}
}

// RemainingTime returns the level time left as a duration.
func (f Frame) RemainingTime() time.Duration {
	return time.Duration(f.Remaining) * time.Millisecond
}

// Tile returns the tile at c, or board.Empty when c is outside the frame.
func (f Frame) Tile(c board.Coord) board.Tile {
	if c.Row < 0 || c.Row >= len(f.Tiles) || c.Column < 0 || c.Column >= len(f.Tiles[c.Row]) {
		return board.Empty
	}
	return board.Tile(f.Tiles[c.Row][c.Column])
}

// Encode serializes the frame with msgpack.
func (f Frame) Encode() ([]byte, error) {
	data, err := msgpack.Marshal(&f)
	if err != nil {
		return nil, fmt.Errorf("spectate: encode frame: %w", err)
	}
	return data, nil
}

// DecodeFrame parses a frame produced by Encode.
func DecodeFrame(data []byte) (Frame, error) {
	var f Frame
	if err := msgpack.Unmarshal(data, &f); err != nil {
		return Frame{}, fmt.Errorf("spectate: decode frame: %w", err)
	}
	return f, nil
}
