package service

import (
	"context"

	"zoo-web/models"
)

// RenderServiceInterface defines the printable-page operations used by the controllers
type RenderServiceInterface interface {
	RenderMapHTML(m models.ZooMapResponse) ([]byte, error)
	RenderReceiptHTML(order *models.OrderConfirmation) ([]byte, error)
	PDFFromURL(ctx context.Context, path string) ([]byte, error)
	PDFFromHTML(ctx context.Context, html []byte) ([]byte, error)
}

var _ RenderServiceInterface = (*RenderService)(nil)
