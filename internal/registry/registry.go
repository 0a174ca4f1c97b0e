// Package registry maps rule-set ids to game factories. Rule sets register
// themselves from init, so front ends only need a blank import.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/columns/internal/core"
	"github.com/vovakirdan/columns/internal/render"
)

// Game is one falling-columns rule set. Implementations hold pure game
// logic: front ends feed them actions, advance them one tick at a time and
// draw whatever Frame describes.
type Game interface {
	// ID is the stable name used by the CLI and the score store.
	ID() string
	// Title is the display name.
	Title() string
	// Reset starts a new game from the tick rate and seed in cfg.
	Reset(cfg core.RuntimeConfig)
	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult
	// Frame describes everything visible after the last tick.
	Frame() render.Frame
	// State returns score, pause and game-over flags.
	State() core.GameState
}

// GameInfo describes a registered rule set.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a fresh game.
type Factory func() Game

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = map[string]entry{}
)

// Register adds a rule set. The title is read from a throwaway instance.
// It panics on a duplicate id.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{
		info:    GameInfo{ID: id, Title: f().Title()},
		factory: f,
	}
}

// List returns every registered rule set ordered by id.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.info)
	}
	slices.SortFunc(out, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return out
}

// Create returns a new game for id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
