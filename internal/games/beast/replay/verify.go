package replay

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/beast-arcade/internal/config"
	"github.com/vovakirdan/beast-arcade/internal/games/beast/beasts"
	"github.com/vovakirdan/beast-arcade/internal/games/beast/board"
	"github.com/vovakirdan/beast-arcade/internal/games/beast/player"
)

var (
	// ErrBoardMismatch means a level's starting board cannot have been
	// generated from its config.
	ErrBoardMismatch = errors.New("board does not match level config")
	// ErrNotCleared means a level other than the last one ended with beasts
	// left or without lives.
	ErrNotCleared = errors.New("level not cleared")
	// ErrUnknownEntity means an entry names a beast or egg that is not there.
	ErrUnknownEntity = errors.New("no such beast")
	// ErrNotRanked means the game respawned the player at random, which a
	// log cannot reproduce.
	ErrNotRanked = errors.New("replay was not recorded with deterministic respawn")
	// ErrScoreMismatch means the claimed score cannot come from the log.
	ErrScoreMismatch = errors.New("score does not match the log")
)

// Result is what a verified log proves.
type Result struct {
	// Score counts squished beasts and the completion score of every level
	// entered after the first. The bonus for time left is not part of the
	// log and is excluded.
	Score         int
	LevelsCleared int
	// Completed reports whether the last logged level was cleared too.
	Completed    bool
	Lives        int
	BeastsKilled int
	// MaxTimeBonus is the most the time bonus could have added.
	MaxTimeBonus int
	// Board is the last logged level as the log leaves it.
	Board *board.Board
}

// Verify re-executes the logs against their starting boards. Levels must be
// consecutive. Every level except the last must be cleared; the last one may
// end the game.
func Verify(set config.LevelSet, levels []LevelLog) (Result, error) {
	if len(levels) == 0 {
		return Result{}, errors.New("replay: no levels")
	}

	p := player.New(set.Lives)
	var res Result
	for i, l := range levels {
		if i > 0 && l.Level != levels[0].Level+i {
			return res, fmt.Errorf("replay: level %d follows level %d", l.Level, levels[i-1].Level)
		}
		cfg, ok := set.Level(l.Level)
		if !ok {
			return res, fmt.Errorf("replay: level %d: %w: no such level", l.Level, ErrBoardMismatch)
		}

		b, err := startingBoard(l, cfg)
		if err != nil {
			return res, fmt.Errorf("replay: level %d: %w", l.Level, err)
		}
		roster := beasts.RosterFromBoard(b, nil)
		p.Position = board.PlayerStart
		if i > 0 {
			p.Score += cfg.CompletionScore
		}
		res.Board = b

		for j, entry := range l.Entries {
			if err := apply(b, p, roster, entry); err != nil {
				return res, fmt.Errorf("replay: level %d entry %d: %w", l.Level, j, err)
			}
		}

		if roster.Remaining() > 0 || p.Lives <= 0 {
			if i < len(levels)-1 {
				return res, fmt.Errorf("replay: level %d: %w", l.Level, ErrNotCleared)
			}
			break
		}
		res.LevelsCleared++
		res.MaxTimeBonus += cfg.TimeSecs / 10
		res.Completed = i == len(levels)-1
	}

	res.Score = p.Score
	res.Lives = max(p.Lives, 0)
	res.BeastsKilled = p.BeastsKilled
	return res, nil
}

// Verify checks a saved record: it must be deterministic, its logs must
// replay, and its score must be the verified score plus at most the time
// bonus of the cleared levels.
func (r Record) Verify(set config.LevelSet) (Result, error) {
	if !r.Deterministic {
		return Result{}, ErrNotRanked
	}
	res, err := Verify(set, r.Levels)
	if err != nil {
		return res, err
	}
	if r.Score < res.Score || r.Score > res.Score+res.MaxTimeBonus {
		return res, fmt.Errorf("replay: %w: claimed %d, verified %d (+%d time bonus)", ErrScoreMismatch, r.Score, res.Score, res.MaxTimeBonus)
	}
	return res, nil
}

// startingBoard rebuilds the level's first board and checks it holds
// exactly what the config places.
func startingBoard(l LevelLog, cfg config.LevelConfig) (*board.Board, error) {
	b, err := board.FromMatrix(l.Board)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBoardMismatch, err)
	}

	want := []struct {
		tile  board.Tile
		count int
	}{
		{board.Player, 1},
		{board.Block, cfg.Blocks},
		{board.StaticBlock, cfg.StaticBlocks},
		{board.CommonBeast, cfg.CommonBeasts},
		{board.SuperBeast, cfg.SuperBeasts},
		{board.Egg, cfg.Eggs},
		{board.EggHatching, 0},
		{board.HatchedBeast, 0},
	}
	for _, w := range want {
		if got := b.Count(w.tile); got != w.count {
			return nil, fmt.Errorf("%w: %d %s tiles, want %d", ErrBoardMismatch, got, w.tile, w.count)
		}
	}
	if b.Get(board.PlayerStart) != board.Player {
		return nil, fmt.Errorf("%w: player does not start at %v", ErrBoardMismatch, board.PlayerStart)
	}
	return b, nil
}

func apply(b *board.Board, p *player.Player, roster *beasts.Roster, e LogEntry) error {
	switch e.Kind {
	case PlayerMoved:
		out := p.Advance(b, e.Dir, nil)
		if out.Squished() && !roster.Remove(out.At) {
			return fmt.Errorf("%w: squished at %v", ErrUnknownEntity, out.At)
		}
		return nil

	case CommonBeastMoved:
		for _, cb := range roster.Commons {
			if cb.Position() == e.From {
				return applyBeast(b, p, cb, e.To)
			}
		}
		return fmt.Errorf("%w: common beast at %v", ErrUnknownEntity, e.From)

	case SuperBeastMoved:
		for _, sb := range roster.Supers {
			if sb.Position() == e.From {
				return applyBeast(b, p, sb, e.To)
			}
		}
		return fmt.Errorf("%w: super beast at %v", ErrUnknownEntity, e.From)

	case HatchedBeastMoved:
		if e.Index < 0 || e.Index >= len(roster.Hatched) {
			return fmt.Errorf("%w: hatched beast #%d of %d", ErrUnknownEntity, e.Index, len(roster.Hatched))
		}
		return applyBeast(b, p, roster.Hatched[e.Index], e.To)

	case EggHatching:
		if !roster.StartHatching(b, e.To) {
			return fmt.Errorf("%w: incubating egg at %v", ErrUnknownEntity, e.To)
		}
		return nil

	case EggHatched:
		if _, ok := roster.Hatch(b, e.To); !ok {
			return fmt.Errorf("%w: egg at %v", ErrUnknownEntity, e.To)
		}
		return nil
	}
	return fmt.Errorf("unknown entry kind %q", e.Kind)
}

func applyBeast(b *board.Board, p *player.Player, beast beasts.Beast, to board.Coord) error {
	action, err := beast.AdvanceTo(b, p.Position, to)
	if err != nil {
		return err
	}
	if action == beasts.PlayerKilled {
		p.Lives--
		p.Respawn(b, nil)
	}
	return nil
}
