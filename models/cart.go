package models

// CartLine represents one product's quantity entry in the shopping cart
type CartLine struct {
	ProductID int    `json:"productId"`
	Name      string `json:"name"`
	Image     string `json:"image"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unitPrice"` // Cents, frozen when the line was created
}

// LineTotal returns quantity * unit price in cents
func (l CartLine) LineTotal() int64 {
	return int64(l.Quantity) * l.UnitPrice
}

// AddToCartRequest represents the request body for adding a product
// Example: {"productId": 1, "quantity": 1}
type AddToCartRequest struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

// UpdateCartLineRequest represents a relative quantity change
// Example: {"delta": -1}
type UpdateCartLineRequest struct {
	Delta int `json:"delta"`
}

// CartLineView is a cart line as rendered in the cart drawer
type CartLineView struct {
	CartLine
	LineTotal      int64  `json:"lineTotal"`
	UnitPriceLabel string `json:"unitPriceLabel"`
	CanDecrement   bool   `json:"canDecrement"`
}

// CartResponse represents the cart drawer
// Example response:
// {
//   "lines": [{"productId": 1, "name": "Plush Elephant", "quantity": 2, "unitPrice": 2499, "lineTotal": 4998, ...}],
//   "count": 2,
//   "subtotal": 4998,
//   "subtotalLabel": "$49.98"
// }
type CartResponse struct {
	Lines         []CartLineView `json:"lines"`
	Count         int            `json:"count"`
	Subtotal      int64          `json:"subtotal"`
	SubtotalLabel string         `json:"subtotalLabel"`
}
