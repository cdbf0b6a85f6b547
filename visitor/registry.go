package visitor

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"zoo-web/repository"
)

// Registry hands out one Context per visitor id.
// A context is created from the persisted session and theme on first use;
// in-memory state (cart, selections) lives until the context is swept.
type Registry struct {
	mu       sync.Mutex
	contexts map[string]*Context
	store    repository.SessionStoreInterface
	logger   *zap.Logger
	now      func() time.Time
}

// NewRegistry creates an empty registry
func NewRegistry(store repository.SessionStoreInterface, logger *zap.Logger) *Registry {
	return &Registry{
		contexts: map[string]*Context{},
		store:    store,
		logger:   logger,
		now:      time.Now,
	}
}

// Get returns the visitor's context, loading it from the store if needed
func (r *Registry) Get(ctx context.Context, visitorID string) (*Context, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c, ok := r.contexts[visitorID]; ok {
		c.touch(r.now())
		return c, nil
	}

	session, err := r.store.LoadSession(ctx, visitorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	theme, err := r.store.LoadTheme(ctx, visitorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load theme: %w", err)
	}

	c := newContext(visitorID, r.store, session, theme)
	c.lastSeen = r.now()
	r.contexts[visitorID] = c

	r.logger.Debug("visitor context created",
		zap.String("visitor", visitorID),
		zap.Bool("signedIn", session != nil),
		zap.String("theme", theme),
	)
	return c, nil
}

// Len returns the number of live contexts
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.contexts)
}

// Sweep drops contexts idle for longer than maxIdle. Persisted session and
// theme survive; the next request reloads them.
func (r *Registry) Sweep(maxIdle time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-maxIdle)
	dropped := 0
	for id, c := range r.contexts {
		if c.idleSince().Before(cutoff) {
			delete(r.contexts, id)
			dropped++
		}
	}
	if dropped > 0 {
		r.logger.Info("swept idle visitors", zap.Int("dropped", dropped), zap.Int("remaining", len(r.contexts)))
	}
	return dropped
}

// RunSweeper calls Sweep every interval until ctx is done
func (r *Registry) RunSweeper(ctx context.Context, interval, maxIdle time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			r.Sweep(maxIdle)
		}
	}
}
