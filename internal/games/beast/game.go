package beast

import (
	"github.com/vovakirdan/beast-arcade/internal/config"
	"github.com/vovakirdan/beast-arcade/internal/core"
	"github.com/vovakirdan/beast-arcade/internal/registry"
)

// Mode selects how a game is played.
type Mode string

const (
	ModeClassic Mode = "classic"
	// ModeRanked respawns deterministically and ignores the difficulty and
	// start level settings, so every ranked run can be verified.
	ModeRanked Mode = "ranked"
)

// Package-level settings applied on the next Reset, set by the CLI and menus.
var (
	levelSet           = config.DefaultLevels()
	difficultyPreset   = config.DifficultyNormal
	selectedStartLevel int
)

// SetLevels sets the campaign used by new games.
func SetLevels(set config.LevelSet) {
	levelSet = set
}

// Levels returns the campaign used by new games.
func Levels() config.LevelSet {
	return levelSet
}

// SetDifficultyPreset sets the preset applied to classic games.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// SetStartLevel sets the starting level. 0 means start from the beginning.
func SetStartLevel(level int) {
	selectedStartLevel = level
}

// Game adapts Engine to registry.Game.
type Game struct {
	mode   Mode
	clock  Clock
	engine *Engine
	screen struct{ w, h int }
}

// NewGame creates a classic game.
func NewGame() *Game {
	return &Game{mode: ModeClassic, clock: SystemClock}
}

// NewRanked creates a ranked game.
func NewRanked() *Game {
	return &Game{mode: ModeRanked, clock: SystemClock}
}

func init() {
	registry.Register("beast", func() registry.Game {
		return NewGame()
	})
	registry.Register("beast_ranked", func() registry.Game {
		return NewRanked()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeRanked {
		return "beast_ranked"
	}
	return "beast"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeRanked {
		return "Beast (Ranked)"
	}
	return "Beast"
}

// Mode returns the game mode.
func (g *Game) Mode() Mode { return g.mode }

// SetClock replaces the wall clock. It takes effect on the next Reset.
func (g *Game) SetClock(c Clock) { g.clock = c }

// Reset starts a new game at the intro screen.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.screen.w, g.screen.h = cfg.ScreenW, cfg.ScreenH

	opts := Options{
		Levels:     config.ApplyPreset(levelSet, difficultyPreset),
		StartLevel: selectedStartLevel,
		Seed:       cfg.Seed,
		Clock:      g.clock,
	}
	if g.mode == ModeRanked {
		opts.Levels = levelSet
		opts.StartLevel = 1
		opts.DeterministicRespawn = true
	}
	g.engine = New(opts)
}

// Step applies the frame's actions in order, then polls the level clock.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	for _, a := range in.Actions {
		g.engine.Handle(a)
	}
	g.engine.Poll()
	return core.StepResult{State: g.State()}
}

// State maps the engine state onto the platform's game state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}
	s := g.engine.State()
	return core.GameState{
		Score:    g.engine.Player().Score,
		Level:    g.engine.Level(),
		GameOver: s == StateGameOver || s == StateWon,
		Won:      s == StateWon,
		Paused:   s == StateIntro || s == StateHelp || s == StateLevelComplete,
		Quit:     s == StateQuit,
	}
}

// Engine exposes the running engine for replays and spectators.
func (g *Game) Engine() *Engine { return g.engine }
