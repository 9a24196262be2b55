// Package registry defines the game contract the terminal platform drives and
// a small factory registry. Scenes register themselves in init() functions,
// so the director can switch between them by name without hardcoding them.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/coastrun/internal/core"
)

// Game is the interface the platform drives.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "coastrun").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	// The RuntimeConfig provides screen dimensions and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by dt seconds of wall-clock time.
	// Input is abstracted to platform-level actions (Jump, Pause, etc.).
	Step(in core.InputFrame, dt float64) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// Factory builds a T from an environment E.
type Factory[T, E any] func(env E) T

// Registry maps IDs to factories.
type Registry[T, E any] struct {
	mu        sync.RWMutex
	factories map[string]Factory[T, E]
}

// New creates an empty registry.
func New[T, E any]() *Registry[T, E] {
	return &Registry[T, E]{factories: make(map[string]Factory[T, E])}
}

// Register adds a factory to the registry.
// Typically called from an init() function.
// Panics if the ID is already registered.
func (r *Registry[T, E]) Register(id string, f Factory[T, E]) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[id]; exists {
		panic(fmt.Sprintf("registry: %q already registered", id))
	}
	r.factories[id] = f
}

// Create instantiates the entry registered under id.
// Returns an error if the ID is not registered.
func (r *Registry[T, E]) Create(id string, env E) (T, error) {
	r.mu.RLock()
	f, ok := r.factories[id]
	r.mu.RUnlock()

	if !ok {
		var zero T
		return zero, fmt.Errorf("registry: unknown id %q", id)
	}
	return f(env), nil
}

// IDs returns all registered IDs, sorted.
func (r *Registry[T, E]) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.factories))
	for id := range r.factories {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Exists checks if an ID is registered.
func (r *Registry[T, E]) Exists(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.factories[id]
	return ok
}
