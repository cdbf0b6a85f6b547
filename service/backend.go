package service

import (
	"context"
	"errors"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"zoo-web/models"
)

var (
	// ErrEmptyCart is returned by Checkout when there is nothing to buy
	ErrEmptyCart = errors.New("cart is empty")
	// ErrNotAuthenticated is returned for profile operations without a session
	ErrNotAuthenticated = errors.New("not authenticated")
)

// BackendInterface is the remote backend the site talks to.
// Every call may block and honors context cancellation.
type BackendInterface interface {
	Login(ctx context.Context, email, password string) (*models.Session, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.Session, error)
	UpdateProfile(ctx context.Context, current *models.Session, patch models.ProfilePatch) (*models.Session, error)
	Checkout(ctx context.Context, lines []models.CartLine) (*models.OrderConfirmation, error)
}

// MockBackend answers every call successfully after a fixed delay
type MockBackend struct {
	delay  time.Duration
	after  func(time.Duration) <-chan time.Time
	now    func() time.Time
	logger *zap.Logger
}

// MockOption configures a MockBackend
type MockOption func(*MockBackend)

// WithAfter replaces the timer used to simulate latency
func WithAfter(after func(time.Duration) <-chan time.Time) MockOption {
	return func(b *MockBackend) { b.after = after }
}

// WithClock replaces the clock used for order timestamps
func WithClock(now func() time.Time) MockOption {
	return func(b *MockBackend) { b.now = now }
}

// NewMockBackend creates a MockBackend that waits delay before answering
func NewMockBackend(delay time.Duration, logger *zap.Logger, opts ...MockOption) *MockBackend {
	b := &MockBackend{
		delay:  delay,
		after:  time.After,
		now:    time.Now,
		logger: logger,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Ensure MockBackend implements BackendInterface
var _ BackendInterface = (*MockBackend)(nil)

func (b *MockBackend) wait(ctx context.Context) error {
	if b.delay <= 0 {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-b.after(b.delay):
		return nil
	}
}

// Login signs in any email and password
func (b *MockBackend) Login(ctx context.Context, email, password string) (*models.Session, error) {
	if err := b.wait(ctx); err != nil {
		return nil, err
	}

	b.logger.Info("mock login", zap.String("email", email))
	return &models.Session{
		ID:             "user-1",
		Email:          strings.TrimSpace(email),
		FirstName:      "Zoo",
		LastName:       "Visitor",
		MembershipType: "standard",
	}, nil
}

// Register creates a user with a random id
func (b *MockBackend) Register(ctx context.Context, req models.RegisterRequest) (*models.Session, error) {
	if err := b.wait(ctx); err != nil {
		return nil, err
	}

	s := &models.Session{
		ID:             "user-" + randomSuffix(9),
		Email:          strings.TrimSpace(req.Email),
		FirstName:      strings.TrimSpace(req.FirstName),
		LastName:       strings.TrimSpace(req.LastName),
		MembershipType: "standard",
	}
	b.logger.Info("mock register", zap.String("user", s.ID), zap.String("email", s.Email))
	return s, nil
}

// UpdateProfile merges the non-empty fields of patch into current
func (b *MockBackend) UpdateProfile(ctx context.Context, current *models.Session, patch models.ProfilePatch) (*models.Session, error) {
	if current == nil {
		return nil, ErrNotAuthenticated
	}
	if err := b.wait(ctx); err != nil {
		return nil, err
	}

	updated := *current
	if v := strings.TrimSpace(patch.FirstName); v != "" {
		updated.FirstName = v
	}
	if v := strings.TrimSpace(patch.LastName); v != "" {
		updated.LastName = v
	}
	if v := strings.TrimSpace(patch.Email); v != "" {
		updated.Email = v
	}
	if v := strings.TrimSpace(patch.Avatar); v != "" {
		updated.Avatar = v
	}

	b.logger.Info("mock profile update", zap.String("user", updated.ID))
	return &updated, nil
}

// Checkout accepts the order and returns a confirmation
func (b *MockBackend) Checkout(ctx context.Context, lines []models.CartLine) (*models.OrderConfirmation, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}
	if err := b.wait(ctx); err != nil {
		return nil, err
	}

	order := NewOrderConfirmation(lines, b.now())
	b.logger.Info("mock checkout",
		zap.String("order", order.OrderNumber),
		zap.Int("items", order.ItemCount),
		zap.Int64("subtotal", order.Subtotal),
	)
	return order, nil
}

const idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

func randomSuffix(n int) string {
	var b strings.Builder
	b.Grow(n)
	for range n {
		b.WriteByte(idAlphabet[rand.IntN(len(idAlphabet))])
	}
	return b.String()
}

// newOrderNumber returns an order number like "ZOO-3F2A9C1B"
func newOrderNumber() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "ZOO-" + strings.ToUpper(id[:8])
}
