package cart

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zoo-web/models"
)

var (
	plush = models.Product{ID: 1, Name: "Plush Elephant", Price: 2499, InStock: true}
	guide = models.Product{ID: 2, Name: "Wildlife Field Guide", Price: 1899, InStock: true}
)

func TestLedger_AddSameProductTwice(t *testing.T) {
	l := NewLedger()

	l.AddItem(plush, 1)
	l.AddItem(plush, 1)

	lines := l.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, 2, l.LineCount())
	assert.Equal(t, int64(4998), l.Subtotal())
}

func TestLedger_AddDefaultsToOneUnit(t *testing.T) {
	l := NewLedger()

	line := l.AddItem(plush, 0)

	assert.Equal(t, 1, line.Quantity)
}

func TestLedger_UpdateQuantityClampsAtOne(t *testing.T) {
	l := NewLedger()
	l.AddItem(plush, 2)

	line, ok := l.UpdateQuantity(plush.ID, -5)

	require.True(t, ok)
	assert.Equal(t, 1, line.Quantity)
	assert.False(t, l.CanDecrement(plush.ID))

	line, _ = l.UpdateQuantity(plush.ID, 3)
	assert.Equal(t, 4, line.Quantity)
	assert.True(t, l.CanDecrement(plush.ID))
}

func TestLedger_UnknownProductIsNoop(t *testing.T) {
	l := NewLedger()
	l.AddItem(plush, 1)

	_, ok := l.UpdateQuantity(99, 1)
	assert.False(t, ok)
	assert.False(t, l.RemoveItem(99))
	assert.False(t, l.CanDecrement(99))
	assert.Equal(t, 1, l.LineCount())
}

func TestLedger_UnitPriceIsFrozen(t *testing.T) {
	l := NewLedger()
	l.AddItem(plush, 1)

	repriced := plush
	repriced.Price = 9999
	l.AddItem(repriced, 1)

	lines := l.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, int64(2499), lines[0].UnitPrice)
	assert.Equal(t, int64(4998), l.Subtotal())
}

func TestLedger_RemoveKeepsOrder(t *testing.T) {
	l := NewLedger()
	third := models.Product{ID: 3, Name: "Eco-Friendly Water Bottle", Price: 2999}
	l.AddItem(plush, 1)
	l.AddItem(guide, 2)
	l.AddItem(third, 1)

	require.True(t, l.RemoveItem(guide.ID))

	lines := l.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, plush.ID, lines[0].ProductID)
	assert.Equal(t, third.ID, lines[1].ProductID)
	assert.Equal(t, int64(2499+2999), l.Subtotal())
}

func TestLedger_SubtotalMatchesLines(t *testing.T) {
	l := NewLedger()
	l.AddItem(plush, 3)
	l.AddItem(guide, 2)
	l.UpdateQuantity(plush.ID, -1)

	var sum int64
	count := 0
	for _, line := range l.Lines() {
		assert.GreaterOrEqual(t, line.Quantity, 1)
		sum += int64(line.Quantity) * line.UnitPrice
		count += line.Quantity
	}
	assert.Equal(t, sum, l.Subtotal())
	assert.Equal(t, count, l.LineCount())
}

func TestLedger_Clear(t *testing.T) {
	l := NewLedger()
	l.AddItem(plush, 1)

	l.Clear()

	assert.True(t, l.IsEmpty())
	assert.Zero(t, l.Subtotal())
	assert.Empty(t, l.Lines())
}

func TestLedger_LinesIsACopy(t *testing.T) {
	l := NewLedger()
	l.AddItem(plush, 1)

	lines := l.Lines()
	lines[0].Quantity = 50

	assert.Equal(t, 1, l.LineCount())
}

func TestLedger_QuantitySaturates(t *testing.T) {
	l := NewLedger()

	l.AddItem(plush, math.MaxInt)
	line := l.AddItem(plush, 1)
	assert.Equal(t, MaxQuantity, line.Quantity)

	line, ok := l.UpdateQuantity(plush.ID, math.MaxInt)
	require.True(t, ok)
	assert.Equal(t, MaxQuantity, line.Quantity)

	line, _ = l.UpdateQuantity(plush.ID, math.MinInt)
	assert.Equal(t, 1, line.Quantity)

	l.AddItem(plush, MaxQuantity)
	assert.Equal(t, MaxQuantity, l.LineCount())
	assert.Equal(t, int64(MaxQuantity)*plush.Price, l.Subtotal())
}

func TestLedger_SettleKeepsLaterAdditions(t *testing.T) {
	l := NewLedger()
	l.AddItem(plush, 2)
	ordered := l.Lines()

	// added while the order was being placed
	l.AddItem(plush, 1)
	l.AddItem(guide, 1)

	l.Settle(ordered)

	lines := l.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, models.CartLine{ProductID: 1, Name: "Plush Elephant", Quantity: 1, UnitPrice: 2499}, lines[0])
	assert.Equal(t, guide.ID, lines[1].ProductID)

	l.Settle(l.Lines())
	assert.True(t, l.IsEmpty())
}
