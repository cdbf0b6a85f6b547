package models

// Product represents an item sold in the zoo shop
type Product struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"` // Price in cents
	Image       string `json:"image"`
	Category    string `json:"category"`
	InStock     bool   `json:"inStock"`
	Bestseller  bool   `json:"bestseller"`
}

// ProductView is a product as rendered on a shop card
type ProductView struct {
	Product
	PriceLabel string `json:"priceLabel"` // e.g. "$24.99"
}
