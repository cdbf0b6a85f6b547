// Package visitor keeps the state of each browsing visitor: session, theme,
// cart, listing selections and the sign-up wizard.
package visitor

import (
	"context"
	"fmt"
	"sync"
	"time"

	"zoo-web/cart"
	"zoo-web/listing"
	"zoo-web/models"
	"zoo-web/repository"
	"zoo-web/wizard"
)

// Actions guarded against duplicate submission
const (
	ActionLogin    = "login"
	ActionRegister = "register"
	ActionProfile  = "profile"
	ActionCheckout = "checkout"
)

// State is the mutable part of a visitor context. It is only reachable
// through Context.Update, which holds the context lock.
type State struct {
	Cart       *cart.Ledger
	Animals    *listing.View
	Shop       *listing.View
	Highlights *listing.HighlightView
	LastOrder  *models.OrderConfirmation
}

// Context is one visitor's application state
type Context struct {
	ID string

	mu           sync.Mutex
	store        repository.SessionStoreInterface
	session      *models.Session
	theme        string
	state        State
	registration *wizard.Wizard
	busy         map[string]bool
	lastSeen     time.Time
}

func newContext(id string, store repository.SessionStoreInterface, session *models.Session, theme string) *Context {
	return &Context{
		ID:      id,
		store:   store,
		session: session,
		theme:   theme,
		state: State{
			Cart:       cart.NewLedger(),
			Animals:    listing.NewView(""),
			Shop:       listing.NewView(listing.SortFeatured),
			Highlights: listing.NewHighlightView(),
		},
		busy:     map[string]bool{},
		lastSeen: time.Now(),
	}
}

// Update runs fn with exclusive access to the visitor's state
func (c *Context) Update(fn func(s *State)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn(&c.state)
}

// Session returns a copy of the signed-in user, or nil
func (c *Context) Session() *models.Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session == nil {
		return nil
	}
	s := *c.session
	return &s
}

// SetSession stores the user in memory and in the key-value store
func (c *Context) SetSession(ctx context.Context, s *models.Session) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.store.SaveSession(ctx, c.ID, s); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	copied := *s
	c.session = &copied
	return nil
}

// ClearSession signs the visitor out
func (c *Context) ClearSession(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.store.DeleteSession(ctx, c.ID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	c.session = nil
	return nil
}

// Theme returns the current theme mode
func (c *Context) Theme() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.theme
}

// ToggleTheme flips between light and dark and persists the result
func (c *Context) ToggleTheme(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := models.ThemeDark
	if c.theme == models.ThemeDark {
		next = models.ThemeLight
	}
	if err := c.store.SaveTheme(ctx, c.ID, next); err != nil {
		return c.theme, fmt.Errorf("failed to persist theme: %w", err)
	}
	c.theme = next
	return next, nil
}

// Begin marks action as in flight. ok is false when it already is; otherwise
// done must be called once the action finishes.
func (c *Context) Begin(action string) (done func(), ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.busy[action] {
		return nil, false
	}
	c.busy[action] = true

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.busy, action)
			c.mu.Unlock()
		})
	}, true
}

// Busy reports whether action is in flight
func (c *Context) Busy(action string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.busy[action]
}

// Registration returns the visitor's sign-up wizard, creating it with
// newWizard on first use
func (c *Context) Registration(newWizard func() *wizard.Wizard) *wizard.Wizard {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.registration == nil {
		c.registration = newWizard()
	}
	return c.registration
}

// ResetRegistration discards the sign-up wizard
func (c *Context) ResetRegistration() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.registration = nil
}

func (c *Context) touch(now time.Time) {
	c.mu.Lock()
	c.lastSeen = now
	c.mu.Unlock()
}

func (c *Context) idleSince() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastSeen
}
