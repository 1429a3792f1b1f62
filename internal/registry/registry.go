// Package registry maps variant ids to game factories. Variants register
// themselves from init(), so the CLI only needs a blank import.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ghostmaze/internal/config"
	"github.com/vovakirdan/ghostmaze/internal/core"
)

// Game is a variant the platform can run. It holds no Bubble Tea state:
// the host maps keys to actions, ticks Step and hands Render a cleared screen.
type Game interface {
	ID() string
	Title() string

	// Reset starts a fresh game. Called once at start and on restart.
	Reset(cfg core.RuntimeConfig)

	// Step advances one tick with the actions collected since the last one.
	Step(in core.InputFrame) core.StepResult

	Render(dst *core.Screen)
	State() core.GameState
}

// Configurable is implemented by games that take a rules configuration
// and a logger before Reset.
type Configurable interface {
	Configure(cfg config.GameConfig, logger *log.Logger)
}

// GameInfo describes a registered variant.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new game instance.
type Factory func() Game

type entry struct {
	factory Factory
	title   string
}

// Registry holds variant factories. The zero value is ready to use.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]entry
}

var std Registry

// Register adds f under id. The title is read from one throwaway instance.
// It panics when id is already taken.
func (r *Registry) Register(id string, f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	if r.entries == nil {
		r.entries = make(map[string]entry)
	}
	r.entries[id] = entry{factory: f, title: f().Title()}
}

// List returns every variant sorted by id.
func (r *Registry) List() []GameInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]GameInfo, 0, len(r.entries))
	for id, e := range r.entries {
		out = append(out, GameInfo{ID: id, Title: e.title})
	}
	slices.SortFunc(out, func(a, b GameInfo) int { return strings.Compare(a.ID, b.ID) })
	return out
}

// Create instantiates the variant registered under id.
func (r *Registry) Create(id string) (Game, error) {
	r.mu.RLock()
	e, ok := r.entries[id]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func (r *Registry) Exists(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.entries[id]
	return ok
}

// CreateConfigured instantiates a game and, when it is Configurable, hands
// it the rules configuration and logger.
func (r *Registry) CreateConfigured(id string, cfg config.GameConfig, logger *log.Logger) (Game, error) {
	g, err := r.Create(id)
	if err != nil {
		return nil, err
	}
	if c, ok := g.(Configurable); ok {
		c.Configure(cfg, logger)
	}
	return g, nil
}

// Register adds f to the package registry.
func Register(id string, f Factory) { std.Register(id, f) }

// List returns the variants in the package registry.
func List() []GameInfo { return std.List() }

// Create instantiates a variant from the package registry.
func Create(id string) (Game, error) { return std.Create(id) }

// Exists reports whether the package registry knows id.
func Exists(id string) bool { return std.Exists(id) }

// CreateConfigured creates and configures a variant from the package registry.
func CreateConfigured(id string, cfg config.GameConfig, logger *log.Logger) (Game, error) {
	return std.CreateConfigured(id, cfg, logger)
}
