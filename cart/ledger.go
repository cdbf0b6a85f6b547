// Package cart keeps a visitor's shopping cart.
package cart

import (
	"slices"

	"zoo-web/models"
)

// MaxQuantity is the most units a single line can hold
const MaxQuantity = 99

// Ledger is an ordered set of cart lines keyed by product id.
// Unit prices are frozen when a line is created, so later catalog price
// changes never reach an existing line.
// A Ledger is not safe for concurrent use; its owner serializes access.
type Ledger struct {
	lines []models.CartLine
}

// NewLedger creates an empty cart
func NewLedger() *Ledger {
	return &Ledger{}
}

// AddItem adds qty units of a product, creating the line on first add.
// A qty below 1 adds a single unit; a line saturates at MaxQuantity.
// Stock is checked by the caller.
func (l *Ledger) AddItem(product models.Product, qty int) models.CartLine {
	qty = min(max(qty, 1), MaxQuantity)

	if i := l.index(product.ID); i >= 0 {
		l.lines[i].Quantity = min(l.lines[i].Quantity+qty, MaxQuantity)
		return l.lines[i]
	}

	line := models.CartLine{
		ProductID: product.ID,
		Name:      product.Name,
		Image:     product.Image,
		Quantity:  qty,
		UnitPrice: product.Price,
	}
	l.lines = append(l.lines, line)
	return line
}

// UpdateQuantity changes a line's quantity by delta, staying within
// [1, MaxQuantity]. Unknown product ids are ignored.
func (l *Ledger) UpdateQuantity(productID, delta int) (models.CartLine, bool) {
	i := l.index(productID)
	if i < 0 {
		return models.CartLine{}, false
	}
	delta = min(max(delta, -MaxQuantity), MaxQuantity)
	l.lines[i].Quantity = min(max(l.lines[i].Quantity+delta, 1), MaxQuantity)
	return l.lines[i], true
}

// RemoveItem deletes a line; unknown product ids are ignored
func (l *Ledger) RemoveItem(productID int) bool {
	i := l.index(productID)
	if i < 0 {
		return false
	}
	l.lines = slices.Delete(l.lines, i, i+1)
	return true
}

// CanDecrement reports whether the line's quantity can still go down
func (l *Ledger) CanDecrement(productID int) bool {
	i := l.index(productID)
	return i >= 0 && l.lines[i].Quantity > 1
}

// LineCount returns the total number of units in the cart
func (l *Ledger) LineCount() int {
	n := 0
	for _, line := range l.lines {
		n += line.Quantity
	}
	return n
}

// Subtotal returns the sum of quantity * unit price, in cents
func (l *Ledger) Subtotal() int64 {
	var total int64
	for _, line := range l.lines {
		total += line.LineTotal()
	}
	return total
}

// Lines returns a copy of the lines in insertion order
func (l *Ledger) Lines() []models.CartLine {
	return slices.Clone(l.lines)
}

// IsEmpty reports whether the cart has no lines
func (l *Ledger) IsEmpty() bool {
	return len(l.lines) == 0
}

// Settle takes ordered lines out of the cart. Each ordered quantity is
// subtracted from the matching line, and a line left with nothing is removed.
// Units added after the order was taken stay in the cart.
func (l *Ledger) Settle(ordered []models.CartLine) {
	for _, o := range ordered {
		i := l.index(o.ProductID)
		if i < 0 {
			continue
		}
		if l.lines[i].Quantity <= o.Quantity {
			l.lines = slices.Delete(l.lines, i, i+1)
			continue
		}
		l.lines[i].Quantity -= o.Quantity
	}
}

// Clear empties the cart
func (l *Ledger) Clear() {
	l.lines = nil
}

func (l *Ledger) index(productID int) int {
	return slices.IndexFunc(l.lines, func(line models.CartLine) bool {
		return line.ProductID == productID
	})
}
