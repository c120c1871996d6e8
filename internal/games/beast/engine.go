// Package beast implements the beast game: a level state machine driving the
// board, the player and the beasts, plus its registry.Game adapter and
// renderer.
package beast

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/beast-arcade/internal/config"
	"github.com/vovakirdan/beast-arcade/internal/core"
	"github.com/vovakirdan/beast-arcade/internal/games/beast/beasts"
	"github.com/vovakirdan/beast-arcade/internal/games/beast/board"
	"github.com/vovakirdan/beast-arcade/internal/games/beast/player"
	"github.com/vovakirdan/beast-arcade/internal/games/beast/replay"
)

// TickDuration is the length of one beat. Beasts move every fifth beat.
const TickDuration = 200 * time.Millisecond

// eggJitter spreads egg laying times so eggs of a level do not hatch in
// the same instant.
const eggJitter = 3 * time.Second

// Options configure a new Engine.
type Options struct {
	Levels     config.LevelSet
	StartLevel int // 1-based; out of range means 1
	Seed       int64
	// DeterministicRespawn respawns the player at PlayerStart instead of a
	// random cell, so a verifier can re-execute the log.
	DeterministicRespawn bool
	Clock                Clock
}

// Footer holds the counters shown under the board.
type Footer struct {
	Beasts    int
	Level     int
	Remaining time.Duration
	Lives     int
	Score     int
}

// Engine runs one game. It is not safe for concurrent use.
type Engine struct {
	opts  Options
	clock Clock
	rng   *rand.Rand

	board  *board.Board
	player *player.Player
	roster *beasts.Roster

	state      State
	beat       Beat
	flashBeat  Beat
	helpPage   HelpPage
	helpReturn State

	level      int
	levelStart time.Time
	lastTick   time.Time
	pausedAt   time.Time

	logs []replay.LevelLog
}

// New creates an engine showing the intro of the start level.
func New(opts Options) *Engine {
	if len(opts.Levels.Levels) == 0 {
		opts.Levels = config.DefaultLevels()
	}
	if opts.StartLevel < 1 || opts.StartLevel > len(opts.Levels.Levels) {
		opts.StartLevel = 1
	}
	if opts.Clock == nil {
		opts.Clock = SystemClock
	}

	e := &Engine{
		opts:  opts,
		clock: opts.Clock,
		rng:   rand.New(rand.NewSource(opts.Seed)),
		state: StateIntro,
	}
	e.player = player.New(opts.Levels.Lives)
	e.loadLevel(opts.StartLevel)
	return e
}

// Restart begins a new game from the start level with fresh stats.
func (e *Engine) Restart() {
	e.player = player.New(e.opts.Levels.Lives)
	e.logs = nil
	e.loadLevel(e.opts.StartLevel)
	e.setState(StatePlaying)
}

func (e *Engine) loadLevel(n int) {
	cfg, _ := e.opts.Levels.Level(n)
	b, placement := board.Generate(cfg.Layout(), e.rng)

	now := e.clock.Now()
	e.board = b
	e.level = n
	e.levelStart = now
	e.lastTick = now
	if !e.state.Active() {
		e.pausedAt = now
	}

	e.roster = beasts.NewRoster(placement, e.rng, now)
	for _, egg := range e.roster.Eggs {
		egg.Instant = now.Add(-time.Duration(e.rng.Int63n(int64(eggJitter))))
	}

	e.player.Position = board.PlayerStart
	e.beat = BeatOne
	e.flashBeat = BeatOne
	e.logs = append(e.logs, replay.LevelLog{Level: n, Board: b.Matrix()})
}

func (e *Engine) nextLevel() {
	if e.level >= len(e.opts.Levels.Levels) {
		e.setState(StateWon)
		return
	}
	e.loadLevel(e.level + 1)
	e.player.Score += e.levelConfig().CompletionScore
	e.setState(StatePlaying)
}

// now is the level clock. It stands still outside of play.
func (e *Engine) now() time.Time {
	if e.state.Active() {
		return e.clock.Now()
	}
	return e.pausedAt
}

// setState switches state, freezing the level clock when play stops and
// shifting every level instant by the pause when it resumes.
func (e *Engine) setState(s State) {
	switch {
	case e.state.Active() && !s.Active():
		e.pausedAt = e.clock.Now()
	case !e.state.Active() && s.Active():
		e.shiftClock(e.clock.Now().Sub(e.pausedAt))
	}
	e.state = s
}

func (e *Engine) shiftClock(d time.Duration) {
	if d <= 0 {
		return
	}
	e.levelStart = e.levelStart.Add(d)
	e.lastTick = e.lastTick.Add(d)
	for _, egg := range e.roster.Eggs {
		egg.Instant = egg.Instant.Add(d)
	}
}

// Handle applies one input action.
func (e *Engine) Handle(a core.Action) {
	if a == core.ActionQuit {
		e.setState(StateQuit)
		return
	}

	switch e.state {
	case StateIntro:
		switch a {
		case core.ActionConfirm:
			e.setState(StatePlaying)
		case core.ActionHelp:
			e.openHelp()
		}

	case StatePlaying, StateDying, StateKilling:
		if dir, ok := actionDir(a); ok {
			e.movePlayer(dir)
		} else if a == core.ActionHelp {
			e.openHelp()
		}

	case StateHelp:
		switch a {
		case core.ActionConfirm, core.ActionHelp:
			if e.helpReturn == StateIntro {
				e.setState(StatePlaying)
			} else {
				e.setState(e.helpReturn)
			}
		case core.ActionLeft:
			e.helpPage = e.helpPage.Prev()
		case core.ActionRight:
			e.helpPage = e.helpPage.Next()
		}

	case StateLevelComplete:
		if a == core.ActionConfirm {
			e.nextLevel()
		}

	case StateGameOver, StateWon:
		switch a {
		case core.ActionConfirm:
			e.Restart()
		case core.ActionHelp:
			e.openHelp()
		}
	}
}

func (e *Engine) openHelp() {
	e.helpReturn = e.state
	e.helpPage = HelpGeneral
	e.setState(StateHelp)
}

func actionDir(a core.Action) (board.Dir, bool) {
	switch a {
	case core.ActionUp:
		return board.Up, true
	case core.ActionRight:
		return board.Right, true
	case core.ActionDown:
		return board.Down, true
	case core.ActionLeft:
		return board.Left, true
	}
	return 0, false
}

// respawnRNG is nil in deterministic mode so the player reappears at a
// fixed cell.
func (e *Engine) respawnRNG() *rand.Rand {
	if e.opts.DeterministicRespawn {
		return nil
	}
	return e.rng
}

func (e *Engine) currentLog() *replay.LevelLog {
	return &e.logs[len(e.logs)-1]
}

func (e *Engine) movePlayer(dir board.Dir) {
	out := e.player.Advance(e.board, dir, e.respawnRNG())
	e.currentLog().Append(replay.PlayerMove(dir))

	switch {
	case out.Squished():
		e.roster.Remove(out.At)
		e.state = StateKilling
		e.flashBeat = BeatOne
	case out.Kind == player.Killed:
		e.state = StateDying
		e.flashBeat = BeatOne
	}
}

// Poll advances the level to the current instant: eggs hatch, the beat
// advances every TickDuration and beasts move on beat Five.
func (e *Engine) Poll() {
	if !e.state.Active() {
		return
	}
	now := e.now()

	if e.player.Lives <= 0 || e.remaining(now) <= 0 {
		e.setState(StateGameOver)
		return
	}

	e.hatchEggs(now)

	if now.Sub(e.lastTick) >= TickDuration {
		e.lastTick = now
		e.advanceFlash()
		if e.beat == BeatFive {
			e.moveBeasts()
		}
		e.beat = e.beat.Next()

		if e.player.Lives <= 0 {
			e.setState(StateGameOver)
			return
		}
	}

	if e.roster.Remaining() == 0 {
		e.player.Score += int(e.remaining(now)/time.Second) / 10
		e.setState(StateLevelComplete)
	}
}

func (e *Engine) hatchEggs(now time.Time) {
	hatchTime := e.levelConfig().HatchTime()
	// iterate over a copy; hatched eggs leave the slice
	for _, egg := range append([]*beasts.Egg(nil), e.roster.Eggs...) {
		state, changed := egg.Hatch(now, hatchTime)
		if !changed {
			continue
		}
		switch state {
		case beasts.Hatching:
			e.board.Set(egg.Pos, board.EggHatching)
			e.currentLog().Append(replay.HatchStart(egg.Pos))
		case beasts.Hatched:
			e.roster.Hatch(e.board, egg.Pos)
			e.currentLog().Append(replay.EggHatch(egg.Pos))
		}
	}
}

// advanceFlash ends the Killing flash after one beat and the Dying flash
// after two.
func (e *Engine) advanceFlash() {
	if e.state != StateDying && e.state != StateKilling {
		return
	}
	if e.state == StateDying && e.flashBeat == BeatOne {
		e.flashBeat = BeatTwo
		return
	}
	e.state = StatePlaying
	e.flashBeat = BeatOne
}

// moveBeasts gives every beast one turn: common beasts first, then super
// beasts, then hatched beasts. A kill respawns the player before the next
// beast moves.
func (e *Engine) moveBeasts() {
	log := e.currentLog()
	for _, cb := range e.roster.Commons {
		from := cb.Position()
		action := cb.Advance(e.board, e.player.Position)
		log.Append(replay.CommonMove(from, cb.Position()))
		e.afterBeastMove(action)
	}
	for _, sb := range e.roster.Supers {
		from := sb.Position()
		action := sb.Advance(e.board, e.player.Position)
		log.Append(replay.SuperMove(from, sb.Position()))
		e.afterBeastMove(action)
	}
	for i, hb := range e.roster.Hatched {
		action := hb.Advance(e.board, e.player.Position)
		log.Append(replay.HatchedMove(i, hb.Position()))
		e.afterBeastMove(action)
	}
}

func (e *Engine) afterBeastMove(action beasts.Action) {
	if action != beasts.PlayerKilled {
		return
	}
	e.player.Lives--
	e.player.Respawn(e.board, e.respawnRNG())
	e.state = StateDying
	e.flashBeat = BeatOne
}

func (e *Engine) levelConfig() config.LevelConfig {
	cfg, _ := e.opts.Levels.Level(e.level)
	return cfg
}

func (e *Engine) remaining(now time.Time) time.Duration {
	left := e.levelConfig().TimeLimit() - now.Sub(e.levelStart)
	return max(left, 0)
}

// State returns the current state.
func (e *Engine) State() State { return e.state }

// Level returns the 1-based level being played.
func (e *Engine) Level() int { return e.level }

// LevelCount returns the number of levels in the campaign.
func (e *Engine) LevelCount() int { return len(e.opts.Levels.Levels) }

// HelpPage returns the help page on display.
func (e *Engine) HelpPage() HelpPage { return e.helpPage }

// Seed returns the seed the engine was created with.
func (e *Engine) Seed() int64 { return e.opts.Seed }

// Deterministic reports whether the player respawns at a fixed cell.
func (e *Engine) Deterministic() bool { return e.opts.DeterministicRespawn }

// Board returns a copy of the board.
func (e *Engine) Board() *board.Board { return e.board.Clone() }

// Matrix returns the board as rows of tiles.
func (e *Engine) Matrix() [][]board.Tile { return e.board.Matrix() }

// Player returns a copy of the player.
func (e *Engine) Player() player.Player { return *e.player }

// Footer returns the counters shown under the board. Eggs are not counted
// as beasts.
func (e *Engine) Footer() Footer {
	return Footer{
		Beasts:    e.roster.Moving(),
		Level:     e.level,
		Remaining: e.remaining(e.now()),
		Lives:     e.player.Lives,
		Score:     e.player.Score,
	}
}

// Logs returns a copy of the per-level logs played so far.
func (e *Engine) Logs() []replay.LevelLog {
	out := make([]replay.LevelLog, len(e.logs))
	for i, l := range e.logs {
		out[i] = replay.LevelLog{
			Level:   l.Level,
			Board:   l.Board,
			Entries: append([]replay.LogEntry(nil), l.Entries...),
		}
	}
	return out
}
