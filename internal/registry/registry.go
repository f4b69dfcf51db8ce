// Package registry maps variant IDs to game factories.
// Each difficulty variant registers from its package's init, and the same ID
// keys its scores in storage.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/gulati8/SharkShark/internal/core"
)

// Game is what the terminal and SSH front ends drive. Implementations hold
// no terminal state; the platform feeds them input frames and elapsed time.
type Game interface {
	// ID is the variant ID, e.g. "sharkshark_hard".
	ID() string

	// Title is the menu label, e.g. "SharkShark (Hard)".
	Title() string

	// Reset starts a fresh run seeded from cfg.Seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances by dt seconds of play. Finished is set on the tick a
	// run ends.
	Step(in core.InputFrame, dt float64) core.StepResult

	// Render draws into a cleared screen sized to the terminal.
	Render(dst *core.Screen)

	// State reports score and run mode.
	State() core.GameState
}

// GameInfo is a list entry for menus and the list command.
type GameInfo struct {
	ID    string
	Title string
}

// Factory builds a fresh game for one variant.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a variant. Registering an ID twice panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	titles[id] = f().Title()
}

// List returns every registered variant sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create builds the game for a variant ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
