package pricing

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"zoo-web/models"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine("", zap.NewNop())
	require.NoError(t, err)
	e.now = func() time.Time { return time.Date(2025, 7, 4, 9, 0, 0, 0, time.UTC) }
	return e
}

func TestQuote_Standard(t *testing.T) {
	e := newTestEngine(t)

	q, err := e.Quote(models.TicketQuoteRequest{Adults: 2, Children: 1, Seniors: 1, Toddlers: 1})
	require.NoError(t, err)

	assert.Equal(t, models.PackageStandard, q.Package)
	assert.Equal(t, int64(2*2999+1999+2499), q.Total)
	assert.Equal(t, "$104.96", q.TotalLabel)
	assert.Empty(t, q.AppliedRules)
	require.Len(t, q.Lines, 4)
	assert.Equal(t, models.TicketToddler, q.Lines[3].TicketType)
	assert.Zero(t, q.Lines[3].LineTotal)
}

func TestQuote_Premium(t *testing.T) {
	e := newTestEngine(t)

	q, err := e.Quote(models.TicketQuoteRequest{Adults: 1, Children: 1, Seniors: 1, Package: "premium"})
	require.NoError(t, err)

	assert.Equal(t, int64(4499+2999+3499), q.Total)
	assert.Equal(t, []string{"PREMIUM_EXHIBITS"}, q.AppliedRules)
}

func TestQuote_FamilyNeedsTwoAdultsAndTwoChildren(t *testing.T) {
	e := newTestEngine(t)

	q, err := e.Quote(models.TicketQuoteRequest{Adults: 2, Children: 2, Seniors: 1, Package: "family"})
	require.NoError(t, err)
	assert.Equal(t, int64(2*2500+2*1500+2499), q.Total)
	assert.Equal(t, []string{"FAMILY_2A2C"}, q.AppliedRules)

	q, err = e.Quote(models.TicketQuoteRequest{Adults: 2, Children: 1, Package: "family"})
	require.NoError(t, err)
	assert.Equal(t, int64(2*2999+1999), q.Total)
	assert.Empty(t, q.AppliedRules)
}

func TestQuote_NegativeCountsClampToZero(t *testing.T) {
	e := newTestEngine(t)

	q, err := e.Quote(models.TicketQuoteRequest{Adults: -3, Children: 1})
	require.NoError(t, err)

	assert.Equal(t, 0, q.Lines[0].Qty)
	assert.Equal(t, int64(1999), q.Total)
}

func TestQuote_UnknownPackage(t *testing.T) {
	e := newTestEngine(t)

	_, err := e.Quote(models.TicketQuoteRequest{Adults: 1, Package: "vip"})
	assert.ErrorIs(t, err, ErrUnknownPackage)
}

func TestQuote_VisitDateLabel(t *testing.T) {
	e := newTestEngine(t)

	q, err := e.Quote(models.TicketQuoteRequest{Adults: 1})
	require.NoError(t, err)
	assert.Equal(t, "2025-07-04", q.VisitDate)
	assert.Equal(t, "Friday, July 4, 2025", q.VisitDateLabel)

	q, err = e.Quote(models.TicketQuoteRequest{Adults: 1, VisitDate: "next tuesday"})
	require.NoError(t, err)
	assert.Equal(t, InvalidDateLabel, q.VisitDateLabel)
}

func TestNewEngine_FileOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pricebook.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
currency: USD
pricebook: {adult: 1000, child: 500, senior: 800, toddler: 0}
packages: [standard]
`), 0o644))

	e, err := NewEngine(path, zap.NewNop())
	require.NoError(t, err)

	q, err := e.Quote(models.TicketQuoteRequest{Adults: 1, Children: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(1500), q.Total)

	_, err = e.Quote(models.TicketQuoteRequest{Package: "premium"})
	assert.ErrorIs(t, err, ErrUnknownPackage)
}

func TestNewEngineFromBytes_Invalid(t *testing.T) {
	tests := map[string]string{
		"no currency":    "pricebook: {adult: 1}\npackages: [standard]\n",
		"no pricebook":   "currency: USD\npackages: [standard]\n",
		"bad rule type":  "currency: USD\npricebook: {adult: 1}\npackages: [standard]\nrules: [{id: X, type: nope}]\n",
		"unknown ticket": "currency: USD\npricebook: {adult: 1}\npackages: [standard]\nrules: [{id: X, type: surcharge, action: {pet: 5}}]\n",
		"not yaml":       "::::",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := NewEngineFromBytes([]byte(doc))
			assert.Error(t, err)
		})
	}
}
