package service

import (
	"slices"
	"time"

	"zoo-web/models"
	"zoo-web/utils"
)

// NewOrderConfirmation totals the lines into a confirmation stamped at placedAt
func NewOrderConfirmation(lines []models.CartLine, placedAt time.Time) *models.OrderConfirmation {
	order := &models.OrderConfirmation{
		OrderNumber: newOrderNumber(),
		Lines:       slices.Clone(lines),
		PlacedAt:    placedAt,
	}
	for _, line := range lines {
		order.ItemCount += line.Quantity
		order.Subtotal += line.LineTotal()
	}
	order.SubtotalLabel = utils.FormatUSD(order.Subtotal)
	return order
}
