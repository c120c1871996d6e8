// Package replay holds the per-level action log of the beast game, the
// replay file format and a verifier that re-executes a log against the
// level's starting board.
package replay

import (
	"fmt"

	"github.com/vovakirdan/beast-arcade/internal/games/beast/board"
)

// EntryKind tags a log record.
type EntryKind string

const (
	PlayerMoved       EntryKind = "player_moved"
	CommonBeastMoved  EntryKind = "common_beast_moved"
	SuperBeastMoved   EntryKind = "super_beast_moved"
	HatchedBeastMoved EntryKind = "hatched_beast_moved"
	EggHatching       EntryKind = "egg_hatching"
	EggHatched        EntryKind = "egg_hatched"
)

// LogEntry is one recorded move. Which fields are meaningful depends on Kind:
//   - PlayerMoved: Dir
//   - CommonBeastMoved, SuperBeastMoved: From, To
//   - HatchedBeastMoved: Index (into the hatched beasts in hatch order), To
//   - EggHatching, EggHatched: To (the egg's cell)
type LogEntry struct {
	Kind  EntryKind   `json:"kind"`
	Dir   board.Dir   `json:"dir,omitzero"`
	From  board.Coord `json:"from,omitzero"`
	To    board.Coord `json:"to,omitzero"`
	Index int         `json:"index,omitzero"`
}

// PlayerMove records a key press, including ones that did not move the player.
func PlayerMove(dir board.Dir) LogEntry {
	return LogEntry{Kind: PlayerMoved, Dir: dir}
}

// CommonMove records a common beast's turn. From == To when it stayed.
func CommonMove(from, to board.Coord) LogEntry {
	return LogEntry{Kind: CommonBeastMoved, From: from, To: to}
}

// SuperMove records a super beast's turn.
func SuperMove(from, to board.Coord) LogEntry {
	return LogEntry{Kind: SuperBeastMoved, From: from, To: to}
}

// HatchedMove records the turn of the index-th hatched beast.
func HatchedMove(index int, to board.Coord) LogEntry {
	return LogEntry{Kind: HatchedBeastMoved, Index: index, To: to}
}

// HatchStart records an egg starting to hatch.
func HatchStart(at board.Coord) LogEntry {
	return LogEntry{Kind: EggHatching, To: at}
}

// EggHatch records an egg turning into a hatched beast.
func EggHatch(at board.Coord) LogEntry {
	return LogEntry{Kind: EggHatched, To: at}
}

func (e LogEntry) String() string {
	switch e.Kind {
	case PlayerMoved:
		return fmt.Sprintf("%s %s", e.Kind, e.Dir)
	case CommonBeastMoved, SuperBeastMoved:
		return fmt.Sprintf("%s %v->%v", e.Kind, e.From, e.To)
	case HatchedBeastMoved:
		return fmt.Sprintf("%s #%d->%v", e.Kind, e.Index, e.To)
	}
	return fmt.Sprintf("%s %v", e.Kind, e.To)
}

// LevelLog is everything needed to re-execute one level: its number, the
// board as generated, and the ordered moves.
type LevelLog struct {
	Level   int            `json:"level"`
	Board   [][]board.Tile `json:"board"`
	Entries []LogEntry     `json:"entries"`
}

// Append adds an entry to the log.
func (l *LevelLog) Append(e LogEntry) {
	l.Entries = append(l.Entries, e)
}
