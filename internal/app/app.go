// Package app wires together the catalog, the watcher and the access check.
// It provides lifecycle management for the gate: create, start, stop.
package app

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/corey/ridecheck/defaults"
	"github.com/corey/ridecheck/internal/adapters/catalog"
	fsw "github.com/corey/ridecheck/internal/adapters/fsnotify"
	"github.com/corey/ridecheck/internal/domain/access"
	"github.com/corey/ridecheck/internal/ports"
)

// ErrUnknownAttraction is returned by Check when the catalog has no such attraction.
var ErrUnknownAttraction = errors.New("unknown attraction")

// Config holds initialization parameters for the Gate.
type Config struct {
	CatalogPath string          // YAML catalog file (default: embedded catalog)
	Watch       bool            // reload CatalogPath when it changes
	OnReload    func(err error) // optional: called after every watch-triggered reload
	Watcher     ports.Watcher   // optional: defaults to the fsnotify watcher
}

// Gate evaluates visitors against the current catalog.
// The catalog is swapped atomically, so Check is safe during reloads.
type Gate struct {
	catalog  atomic.Pointer[ports.Catalog]
	path     string
	watch    bool
	watcher  ports.Watcher
	onReload func(error)

	mu      sync.Mutex // serializes reloads
	reloads int
}

// New creates a Gate with its catalog loaded. Does not start watching.
func New(cfg Config) (*Gate, error) {
	if cfg.Watch && cfg.CatalogPath == "" {
		return nil, fmt.Errorf("watch requires a catalog file")
	}
	g := &Gate{
		watch:    cfg.Watch,
		watcher:  cfg.Watcher,
		onReload: cfg.OnReload,
	}
	if cfg.CatalogPath != "" {
		abs, err := filepath.Abs(cfg.CatalogPath)
		if err != nil {
			return nil, fmt.Errorf("catalog path: %w", err)
		}
		g.path = abs
	}

	c, err := g.load()
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	g.catalog.Store(&c)
	return g, nil
}

// load reads the configured catalog source.
func (g *Gate) load() (ports.Catalog, error) {
	if g.path == "" {
		return catalog.LoadFS(defaults.FS, defaults.Dir)
	}
	return catalog.LoadFile(g.path)
}

// Source describes where the catalog comes from.
func (g *Gate) Source() string {
	if g.path == "" {
		return "embedded:" + defaults.Dir
	}
	return g.path
}

// Catalog returns the catalog currently in use.
func (g *Gate) Catalog() ports.Catalog {
	return *g.catalog.Load()
}

// Reloads returns how many successful reloads have happened since New.
func (g *Gate) Reloads() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.reloads
}

// Reload re-reads the catalog. On failure the previous catalog stays active.
func (g *Gate) Reload() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	c, err := g.load()
	if err != nil {
		return err
	}
	g.catalog.Store(&c)
	g.reloads++
	return nil
}

// Check evaluates v against the named attraction.
func (g *Gate) Check(attraction string, v access.Visitor) (access.Verdict, error) {
	a, ok := g.Catalog().Lookup(attraction)
	if !ok {
		return access.Verdict{}, fmt.Errorf("%w: %q", ErrUnknownAttraction, attraction)
	}
	return access.Evaluate(a, v), nil
}

// Start begins watching the catalog file when configured to.
func (g *Gate) Start() error {
	if !g.watch {
		return nil
	}
	if g.watcher == nil {
		w, err := fsw.NewWatcher()
		if err != nil {
			return fmt.Errorf("create watcher: %w", err)
		}
		g.watcher = w
	}
	if err := g.watcher.Watch(g.path, g.onCatalogChanged); err != nil {
		return fmt.Errorf("watch catalog: %w", err)
	}
	return nil
}

// Stop releases the watcher. Safe to call without Start.
func (g *Gate) Stop() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Stop()
}

func (g *Gate) onCatalogChanged(string) {
	err := g.Reload()
	if g.onReload != nil {
		g.onReload(err)
	}
}
