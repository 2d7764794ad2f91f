package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/haryoiro/ytfront/internal/logger"
	"github.com/haryoiro/ytfront/internal/store"
	"github.com/haryoiro/ytfront/internal/structures"
)

// Result is what a background load delivers
type Result struct {
	Catalog structures.Catalog
	Err     error
}

// Loader fetches the catalog once and overlays persisted state on it
type Loader struct {
	fetcher Fetcher
	store   *store.Store
}

// NewLoader creates a loader
func NewLoader(fetcher Fetcher, st *store.Store) *Loader {
	return &Loader{fetcher: fetcher, store: st}
}

// Decode parses a catalog resource. Missing collections become empty.
func Decode(data []byte) (structures.Catalog, error) {
	var c structures.Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return structures.EmptyCatalog(), fmt.Errorf("decode catalog: %w", err)
	}

	if c.Videos == nil {
		c.Videos = []structures.Video{}
	}
	if c.Sidebar == nil {
		c.Sidebar = []structures.SidebarItem{}
	}
	if c.Notifications == nil {
		c.Notifications = []structures.Notification{}
	}
	return c, nil
}

// Load fetches and decodes the catalog, then replaces notifications and
// user with their persisted versions when those are present and readable.
// On failure the empty catalog is returned alongside the error.
func (l *Loader) Load(ctx context.Context) (structures.Catalog, error) {
	data, err := l.fetcher.Fetch(ctx)
	if err != nil {
		return structures.EmptyCatalog(), fmt.Errorf("fetch catalog: %w", err)
	}

	c, err := Decode(data)
	if err != nil {
		return c, err
	}

	if saved, ok, err := store.Read[[]structures.Notification](l.store, store.NotificationsKey); err == nil && ok && saved != nil {
		c.Notifications = saved
	} else if err != nil {
		logger.Debug("catalog: ignoring persisted notifications: %v", err)
	}

	if saved, ok, err := store.Read[structures.User](l.store, store.UserKey); err == nil && ok {
		c.User = saved
	} else if err != nil {
		logger.Debug("catalog: ignoring persisted user: %v", err)
	}

	return c, nil
}

// Start runs Load in the background and hands the result to apply.
// Once stop returns, apply is not called, so a slow response can never
// land on a view that has already gone away. apply must not block.
func (l *Loader) Start(ctx context.Context, apply func(Result)) (stop func()) {
	ctx, cancel := context.WithCancel(ctx)

	var (
		mu      sync.Mutex
		stopped bool
	)

	go func() {
		c, err := l.Load(ctx)
		if err != nil {
			logger.Error("Failed to load catalog: %v", err)
		}

		mu.Lock()
		defer mu.Unlock()
		if stopped {
			logger.Debug("catalog: discarding result for stopped view")
			return
		}
		apply(Result{Catalog: c, Err: err})
	}()

	return func() {
		mu.Lock()
		stopped = true
		mu.Unlock()
		cancel()
	}
}
