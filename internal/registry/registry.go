// Package registry keeps the games of one process keyed by id.
//
// The registry is safe for concurrent use at the map level only: it hands
// out *game.Game values, and callers serialize access to each game.
package registry

import (
	"sync"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessgame-go/internal/config"
	"github.com/lgbarn/chessgame-go/internal/errors"
	"github.com/lgbarn/chessgame-go/internal/game"
)

// Registry maps game ids to games.
type Registry struct {
	cfg   *config.Config
	mu    sync.RWMutex
	games map[string]*game.Game
}

// New creates an empty registry. Games it creates share cfg.
func New(cfg *config.Config) *Registry {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &Registry{
		cfg:   cfg,
		games: make(map[string]*game.Game),
	}
}

// Create registers a new game with a generated id.
func (r *Registry) Create() *game.Game {
	g := game.New(game.WithConfig(r.cfg))

	r.mu.Lock()
	defer r.mu.Unlock()
	r.games[g.ID()] = g
	r.cfg.Logf(2, "registry: created game %s", g.ID())
	return g
}

// CreateWithID registers a new game under id. It fails with
// ErrDuplicateGame if id is taken.
func (r *Registry) CreateWithID(id string) (*game.Game, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.games[id]; ok {
		return nil, &errors.GameError{Err: errors.ErrDuplicateGame, GameID: id}
	}
	g := game.New(game.WithID(id), game.WithConfig(r.cfg))
	r.games[id] = g
	r.cfg.Logf(2, "registry: created game %s", id)
	return g, nil
}

// Get returns the game registered under id.
func (r *Registry) Get(id string) (*game.Game, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	g, ok := r.games[id]
	return g, ok
}

// MustGet returns the game registered under id, or ErrGameNotFound.
func (r *Registry) MustGet(id string) (*game.Game, error) {
	if g, ok := r.Get(id); ok {
		return g, nil
	}
	return nil, &errors.GameError{Err: errors.ErrGameNotFound, GameID: id}
}

// Delete removes id and reports whether it was present.
func (r *Registry) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.games[id]; !ok {
		return false
	}
	delete(r.games, id)
	return true
}

// IDs returns the registered ids in sorted order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	ids := maps.Keys(r.games)
	r.mu.RUnlock()
	slices.Sort(ids)
	return ids
}

// Clear removes every game.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	maps.Clear(r.games)
}

// Len returns the number of registered games.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.games)
}
