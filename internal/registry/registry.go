// Package registry provides a global registry for slider controllers.
// Controllers register themselves in init() functions, allowing the
// simulator to offer them by name without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/slider-pong/internal/pong"
)

// Options carries the tunables controllers may use.
type Options struct {
	Step        int     // Raw units per keyboard nudge
	CPUSkill    float64 // CPU reaction (0-1, 1 = perfect)
	CPUSpeed    float64 // CPU paddle speed in pixels per tick
	SweepPeriod int     // Ticks per full sweep
}

// DefaultOptions returns the stock controller tunables.
func DefaultOptions() Options {
	return Options{
		Step:        4096,
		CPUSkill:    0.75,
		CPUSpeed:    2.0,
		SweepPeriod: 120,
	}
}

// Factory creates a controller for one side. The state is shared read-only
// with controllers that react to the ball.
type Factory func(side pong.Side, state *pong.GameState, opts Options) pong.AnalogInput

// ControllerInfo contains metadata about a registered controller.
type ControllerInfo struct {
	ID    string
	Title string
}

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a controller factory to the registry.
// Typically called from an init() function.
// Panics if a controller with the same ID is already registered.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: controller %q already registered", id))
	}

	factories[id] = f
	titles[id] = title
}

// List returns information about all registered controllers, sorted by ID.
func List() []ControllerInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]ControllerInfo, 0, len(factories))
	for id := range factories {
		result = append(result, ControllerInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a controller by its ID.
// Returns an error if the ID is not registered.
func Create(id string, side pong.Side, state *pong.GameState, opts Options) (pong.AnalogInput, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown controller %q", id)
	}

	return f(side, state, opts), nil
}

// Exists checks if a controller with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
