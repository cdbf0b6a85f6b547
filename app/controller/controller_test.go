package controller

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"zoo-web/cart"
	"zoo-web/catalog"
	"zoo-web/models"
	"zoo-web/service"
	"zoo-web/visitor"
)

type memoryStore struct {
	mu       sync.Mutex
	sessions map[string]*models.Session
}

func (m *memoryStore) LoadSession(_ context.Context, id string) (*models.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sessions[id], nil
}

func (m *memoryStore) SaveSession(_ context.Context, id string, s *models.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[id] = s
	return nil
}

func (m *memoryStore) DeleteSession(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

func (m *memoryStore) LoadTheme(context.Context, string) (string, error) {
	return models.ThemeLight, nil
}

func (m *memoryStore) SaveTheme(context.Context, string, string) error {
	return nil
}

// failingBackend rejects every call
type failingBackend struct{}

var errUnavailable = errors.New("backend unavailable")

func (failingBackend) Login(context.Context, string, string) (*models.Session, error) {
	return nil, errUnavailable
}

func (failingBackend) Register(context.Context, models.RegisterRequest) (*models.Session, error) {
	return nil, errUnavailable
}

func (failingBackend) UpdateProfile(context.Context, *models.Session, models.ProfilePatch) (*models.Session, error) {
	return nil, errUnavailable
}

func (failingBackend) Checkout(context.Context, []models.CartLine) (*models.OrderConfirmation, error) {
	return nil, errUnavailable
}

// gatedBackend holds Checkout until release is closed
type gatedBackend struct {
	failingBackend
	entered chan struct{}
	release chan struct{}
}

func (g gatedBackend) Checkout(ctx context.Context, lines []models.CartLine) (*models.OrderConfirmation, error) {
	close(g.entered)
	<-g.release
	return service.NewOrderConfirmation(lines, time.Now()), nil
}

func newVisitor(t *testing.T) *visitor.Context {
	t.Helper()
	reg := visitor.NewRegistry(&memoryStore{sessions: map[string]*models.Session{}}, zap.NewNop())
	vc, err := reg.Get(context.Background(), "visitor-1")
	require.NoError(t, err)
	return vc
}

func request(vc *visitor.Context, method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	return req.WithContext(visitor.WithContext(req.Context(), vc))
}

func TestSummary(t *testing.T) {
	assert.Equal(t, "Showing 9 of 12 animals", summary(9, 12, "animals"))
	assert.Equal(t, "No products found", summary(0, 0, "products"))
}

func TestParseList(t *testing.T) {
	got := parseList([]string{"Food, Restroom", "Food", "", "Gift Shop"})
	if diff := cmp.Diff([]string{"Food", "Restroom", "Gift Shop"}, got); diff != "" {
		t.Errorf("parseList mismatch (-want +got):\n%s", diff)
	}
}

func TestFilterAreas_RequiresEveryFacility(t *testing.T) {
	areas := catalog.NewStore().MapAreas()

	assert.Len(t, filterAreas(areas, nil), len(areas))

	var got []string
	for _, a := range filterAreas(areas, []string{"Restroom", "Gift Shop"}) {
		got = append(got, a.ID)
	}
	assert.Equal(t, []string{"af", "aq"}, got)
}

func TestCheckout_BackendFailureKeepsCart(t *testing.T) {
	store := catalog.NewStore()
	c := NewShopController(store, failingBackend{}, nil, nil, zap.NewNop())
	vc := newVisitor(t)

	product, ok := store.FindProduct(1)
	require.True(t, ok)
	vc.Update(func(s *visitor.State) { s.Cart.AddItem(product, 2) })

	rec := httptest.NewRecorder()
	c.Checkout(rec, request(vc, http.MethodPost, "/api/cart/checkout", ""))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.JSONEq(t, `{"error":"Checkout failed. Please try again."}`, rec.Body.String())
	vc.Update(func(s *visitor.State) { assert.Equal(t, 2, s.Cart.LineCount()) })
	assert.False(t, vc.Busy(visitor.ActionCheckout))
}

func TestCheckout_RejectsDuplicateSubmission(t *testing.T) {
	c := NewShopController(catalog.NewStore(), failingBackend{}, nil, nil, zap.NewNop())
	vc := newVisitor(t)

	done, ok := vc.Begin(visitor.ActionCheckout)
	require.True(t, ok)
	defer done()

	rec := httptest.NewRecorder()
	c.Checkout(rec, request(vc, http.MethodPost, "/api/cart/checkout", ""))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCheckout_KeepsItemsAddedDuringCheckout(t *testing.T) {
	store := catalog.NewStore()
	backend := gatedBackend{entered: make(chan struct{}), release: make(chan struct{})}
	c := NewShopController(store, backend, nil, nil, zap.NewNop())
	vc := newVisitor(t)

	rec := httptest.NewRecorder()
	c.AddToCart(rec, request(vc, http.MethodPost, "/api/cart/items", `{"productId": 1, "quantity": 2}`))
	require.Equal(t, http.StatusOK, rec.Code)

	checkout := httptest.NewRecorder()
	finished := make(chan struct{})
	go func() {
		defer close(finished)
		c.Checkout(checkout, request(vc, http.MethodPost, "/api/cart/checkout", ""))
	}()
	<-backend.entered

	rec = httptest.NewRecorder()
	c.AddToCart(rec, request(vc, http.MethodPost, "/api/cart/items", `{"productId": 2, "quantity": 1}`))
	require.Equal(t, http.StatusOK, rec.Code)

	close(backend.release)
	<-finished

	require.Equal(t, http.StatusOK, checkout.Code)
	assert.Contains(t, checkout.Body.String(), `"itemCount":2`)
	vc.Update(func(s *visitor.State) {
		lines := s.Cart.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, 2, lines[0].ProductID)
		assert.Equal(t, 1, lines[0].Quantity)
	})
}

func TestCart_RejectsOversizedQuantities(t *testing.T) {
	c := NewShopController(catalog.NewStore(), failingBackend{}, nil, nil, zap.NewNop())
	vc := newVisitor(t)

	rec := httptest.NewRecorder()
	c.AddToCart(rec, request(vc, http.MethodPost, "/api/cart/items", `{"productId": 1, "quantity": 9223372036854775807}`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	c.AddToCart(rec, request(vc, http.MethodPost, "/api/cart/items", `{"productId": 1, "quantity": 99}`))
	require.Equal(t, http.StatusOK, rec.Code)

	req := request(vc, http.MethodPatch, "/api/cart/items/1", `{"delta": 1000}`)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("productId", "1")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	rec = httptest.NewRecorder()
	c.UpdateCartLine(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	vc.Update(func(s *visitor.State) {
		assert.Equal(t, cart.MaxQuantity, s.Cart.LineCount())
	})
}

func TestRegistration_RejectsConcurrentStep(t *testing.T) {
	c := NewAuthController(catalog.NewStore(), failingBackend{}, zap.NewNop())
	vc := newVisitor(t)

	done, ok := vc.Begin(visitor.ActionRegister)
	require.True(t, ok)
	defer done()

	rec := httptest.NewRecorder()
	c.NextRegistrationStep(rec, request(vc, http.MethodPost, "/api/register/next", ""))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), `"step":0`)
}

func TestLogin_BackendFailure(t *testing.T) {
	c := NewAuthController(catalog.NewStore(), failingBackend{}, zap.NewNop())
	vc := newVisitor(t)

	rec := httptest.NewRecorder()
	c.Login(rec, request(vc, http.MethodPost, "/api/auth/login", `{"email":"a@b.co","password":"x"}`))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.JSONEq(t, `{"error":"Failed to log in. Please check your credentials."}`, rec.Body.String())
	assert.Nil(t, vc.Session())
}

func TestRegistration_SubmitFailureKeepsWizard(t *testing.T) {
	c := NewAuthController(catalog.NewStore(), failingBackend{}, zap.NewNop())
	vc := newVisitor(t)

	rec := httptest.NewRecorder()
	c.UpdateRegistration(rec, request(vc, http.MethodPut, "/api/register",
		`{"firstName":"Ana","lastName":"Gómez","email":"ana@example.com","password":"longenough","confirmPassword":"longenough"}`))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	c.NextRegistrationStep(rec, request(vc, http.MethodPost, "/api/register/next", ""))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	c.NextRegistrationStep(rec, request(vc, http.MethodPost, "/api/register/next", ""))
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), `"submitError":"Registration failed. Please try again."`)
	assert.Contains(t, rec.Body.String(), `"step":1`)
	assert.Nil(t, vc.Session())
}

func TestControllersWithoutVisitorContext(t *testing.T) {
	c := NewThemeController(zap.NewNop())
	rec := httptest.NewRecorder()
	c.GetTheme(rec, httptest.NewRequest(http.MethodGet, "/api/theme", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
