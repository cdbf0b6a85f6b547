package models

import "time"

// OrderConfirmation is returned by the mock checkout
type OrderConfirmation struct {
	OrderNumber   string     `json:"orderNumber"`
	Lines         []CartLine `json:"lines"`
	ItemCount     int        `json:"itemCount"`
	Subtotal      int64      `json:"subtotal"`
	SubtotalLabel string     `json:"subtotalLabel"`
	PlacedAt      time.Time  `json:"placedAt"`
}
