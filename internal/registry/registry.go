// Package registry keeps the game variants the binary can run.
// Variants register a factory from an init function; the CLI and menus
// discover them by ID.
package registry

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/tui-dodge/internal/core"
)

// ErrUnknownGame is returned for an unregistered game ID.
var ErrUnknownGame = errors.New("registry: unknown game")

// Game is the interface every game variant implements.
// Implementations hold simulation logic only; the platform maps input,
// drives the tick and draws the screen.
type Game interface {
	// ID returns a unique identifier (e.g., "dodge").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset starts a fresh run. Called once at start and on every restart.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into a pre-cleared screen.
	Render(dst *core.Screen)

	// State returns score, game over and pause flags.
	State() core.GameState
}

// Describer is implemented by games that provide a one-line summary.
type Describer interface {
	Description() string
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID          string
	Title       string
	Description string
}

// Factory creates a new instance of a game.
type Factory func() Game

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a game factory. Metadata is read from one throwaway
// instance. Panics on a duplicate or mismatched ID.
func Register(id string, f Factory) {
	g := f()
	if g.ID() != id {
		panic(fmt.Sprintf("registry: factory for %q builds game %q", id, g.ID()))
	}
	info := GameInfo{ID: id, Title: g.Title()}
	if d, ok := g.(Describer); ok {
		info.Description = d.Description()
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{info: info, factory: f}
}

// List returns all registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}
	slices.SortFunc(result, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return result
}

// Lookup returns the metadata for id.
func Lookup(id string) (GameInfo, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	if !ok {
		return GameInfo{}, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return e.info, nil
}

// Create instantiates a new game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return e.factory(), nil
}

// Exists reports whether a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
