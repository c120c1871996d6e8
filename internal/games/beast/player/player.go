// Package player implements the player's movement and block pushing.
package player

import (
	"math/rand"

	"github.com/vovakirdan/beast-arcade/internal/games/beast/beasts"
	"github.com/vovakirdan/beast-arcade/internal/games/beast/board"
)

// StartingLives is the number of lives a new player gets.
const StartingLives = 5

// OutcomeKind tells the caller what a move did besides moving.
type OutcomeKind int

const (
	None OutcomeKind = iota
	KilledCommonBeast
	KilledSuperBeast
	KilledEgg
	KilledHatchedBeast
	Killed
)

func (k OutcomeKind) String() string {
	switch k {
	case None:
		return "none"
	case KilledCommonBeast:
		return "killed_common_beast"
	case KilledSuperBeast:
		return "killed_super_beast"
	case KilledEgg:
		return "killed_egg"
	case KilledHatchedBeast:
		return "killed_hatched_beast"
	case Killed:
		return "player_killed"
	}
	return "unknown"
}

// Outcome is the result of one Advance. At is the squished cell for the
// Killed* kinds; the caller removes the entity found there.
type Outcome struct {
	Kind OutcomeKind
	At   board.Coord
}

// Squished reports whether the move destroyed a beast or an egg.
func (o Outcome) Squished() bool {
	return o.Kind != None && o.Kind != Killed
}

// Player holds the player's position and counters.
type Player struct {
	Position         board.Coord `json:"position"`
	Lives            int         `json:"lives"`
	Score            int         `json:"score"`
	BeastsKilled     int         `json:"beasts_killed"`
	BlocksMoved      int         `json:"blocks_moved"`
	DistanceTraveled int         `json:"distance_traveled"`
}

// New returns a player at PlayerStart with the given number of lives.
func New(lives int) *Player {
	if lives <= 0 {
		lives = StartingLives
	}
	return &Player{Position: board.PlayerStart, Lives: lives}
}

// Advance moves the player one cell in dir, pushing any block chain in the
// way. Walking into a beast costs a life and respawns the player through
// Respawn with rng.
func (p *Player) Advance(b *board.Board, dir board.Dir, rng *rand.Rand) Outcome {
	next, ok := board.NextCoord(p.Position, dir)
	if !ok {
		return Outcome{}
	}

	switch b.Get(next) {
	case board.Empty:
		b.Set(p.Position, board.Empty)
		b.Set(next, board.Player)
		p.Position = next
		p.DistanceTraveled++
		return Outcome{}

	case board.Block:
		return p.push(b, next, dir)

	case board.CommonBeast, board.SuperBeast, board.HatchedBeast:
		p.Lives--
		p.Respawn(b, rng)
		return Outcome{Kind: Killed}
	}

	// eggs, static blocks
	return Outcome{}
}

func (p *Player) push(b *board.Board, first board.Coord, dir board.Dir) Outcome {
	end, count, ok := board.EndOfBlockChain(b, first, dir)
	if !ok {
		return Outcome{}
	}

	endTile := b.Get(end)
	switch endTile {
	case board.Empty:
		p.shove(b, first, end, count)
		return Outcome{}

	case board.CommonBeast, board.HatchedBeast, board.Egg, board.EggHatching:
		beyond, ok := board.NextCoord(end, dir)
		if ok && !b.Get(beyond).IsBlocking() {
			return Outcome{}
		}

	case board.SuperBeast:
		beyond, ok := board.NextCoord(end, dir)
		if !ok || b.Get(beyond) != board.StaticBlock {
			return Outcome{}
		}

	default:
		// static block or another player cell
		return Outcome{}
	}

	p.shove(b, first, end, count)
	p.BeastsKilled++
	kind, score := squishScore(endTile)
	p.Score += score
	return Outcome{Kind: kind, At: end}
}

// shove moves the player onto first and the chain's tail onto end.
func (p *Player) shove(b *board.Board, first, end board.Coord, count int) {
	board.Push(b, p.Position, first, end, board.Player)
	p.Position = first
	p.DistanceTraveled++
	p.BlocksMoved += count + 1
}

func squishScore(t board.Tile) (OutcomeKind, int) {
	switch t {
	case board.CommonBeast:
		return KilledCommonBeast, beasts.CommonBeastScore
	case board.SuperBeast:
		return KilledSuperBeast, beasts.SuperBeastScore
	case board.HatchedBeast:
		return KilledHatchedBeast, beasts.HatchedBeastScore
	}
	return KilledEgg, beasts.EggScore
}

// Respawn relocates the player. With rng it picks a uniformly random Empty
// cell. Without one it uses PlayerStart, or the first Empty cell in row-major
// order when PlayerStart is taken, so replays reproduce the same cell. The old
// cell is cleared only if it still shows the player.
func (p *Player) Respawn(b *board.Board, rng *rand.Rand) {
	target := board.PlayerStart
	if rng != nil {
		empty := b.Find(board.Empty)
		if len(empty) > 0 {
			target = empty[rng.Intn(len(empty))]
		}
	} else if b.Get(target) != board.Empty && b.Get(target) != board.Player {
		if c, ok := b.FirstEmpty(); ok {
			target = c
		}
	}

	if b.Get(p.Position) == board.Player {
		b.Set(p.Position, board.Empty)
	}
	b.Set(target, board.Player)
	p.Position = target
}
