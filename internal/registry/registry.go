// Package registry maps game mode IDs to factories. Modes register
// themselves in init(), so the CLI, the menu and the SSH server can list and
// start them without importing each mode directly.
package registry

import (
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/beast-arcade/internal/core"
)

// Game is what the platform drives: a fixed-step simulation that renders into
// a core.Screen. Games never import Bubble Tea; the platform maps keys to
// actions, owns the timer and paints the screen.
type Game interface {
	// ID is the mode identifier used by the CLI and the score store
	// (e.g. "beast", "beast_ranked").
	ID() string

	// Title is the name shown in menus.
	Title() string

	// Reset starts a new game. The RuntimeConfig carries the screen size and
	// the RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step applies the frame's actions and advances the game clock.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into dst.
	Render(dst *core.Screen)

	// State reports score, level and the end/pause/quit flags.
	State() core.GameState
}

// GameInfo describes a registered mode.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a fresh game.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
)

// Register adds a mode. It panics on a duplicate ID.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered modes sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}
	slices.SortFunc(result, func(a, b GameInfo) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	})
	return result
}

// Create instantiates the mode with the given ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists reports whether a mode is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// Title returns the display name of a mode, or the ID itself when unknown.
func Title(id string) string {
	mu.RLock()
	defer mu.RUnlock()

	if t, ok := titles[id]; ok {
		return t
	}
	return id
}
