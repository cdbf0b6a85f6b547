package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"zoo-web/cart"
	"zoo-web/catalog"
	"zoo-web/listing"
	"zoo-web/models"
	"zoo-web/service"
	"zoo-web/utils"
	"zoo-web/visitor"
)

// CheckoutFailedMessage is returned when the backend rejects a checkout
const CheckoutFailedMessage = "Checkout failed. Please try again."

// ShopController handles the shop listing, the cart drawer and checkout
type ShopController struct {
	store   *catalog.Store
	backend service.BackendInterface
	render  service.RenderServiceInterface
	images  *service.ImageOptimizer
	logger  *zap.Logger
}

// NewShopController creates a new ShopController
func NewShopController(
	store *catalog.Store,
	backend service.BackendInterface,
	render service.RenderServiceInterface,
	images *service.ImageOptimizer,
	logger *zap.Logger,
) *ShopController {
	return &ShopController{
		store:   store,
		backend: backend,
		render:  render,
		images:  images,
		logger:  logger,
	}
}

// ListProducts handles GET /api/products?search=&category=&sort=featured|priceLow|priceHigh&page=
func (c *ShopController) ListProducts(w http.ResponseWriter, r *http.Request) {
	vc, ok := currentVisitor(w, r, c.logger)
	if !ok {
		return
	}

	q := r.URL.Query()
	sort := q.Get("sort")
	if sort != "" && !listing.ValidProductSort(sort) {
		writeError(w, c.logger, http.StatusBadRequest,
			fmt.Sprintf("Invalid sort. Valid values: %s", strings.Join(listing.ProductSortKeys, ", ")))
		return
	}

	selections := map[string]string{}
	for _, dim := range listing.ProductDimensions {
		if q.Has(dim) {
			selections[dim] = q.Get(dim)
		}
	}

	var (
		page      listing.Page[models.Product]
		filters   map[string]string
		activeKey string
		cartCount int
		err       error
	)
	vc.Update(func(s *visitor.State) {
		if q.Get("reset") == "true" {
			s.Shop.Reset(listing.SortFeatured)
		}
		s.Shop.Apply(selections, sort, queryInt(r, "page"))
		page, err = listing.ProductPage(c.store.Products(), s.Shop)
		filters = s.Shop.Filters()
		activeKey = s.Shop.Sort()
		cartCount = s.Cart.LineCount()
	})
	if err != nil {
		c.logger.Error("ListProducts: failed to paginate", zap.Error(err))
		writeError(w, c.logger, http.StatusInternalServerError, "failed to list products")
		return
	}

	views := make([]models.ProductView, 0, len(page.Items))
	for _, p := range page.Items {
		views = append(views, models.ProductView{Product: p, PriceLabel: utils.FormatUSD(p.Price)})
	}
	viewPage := listing.Page[models.ProductView]{
		Number:     page.Number,
		Size:       page.Size,
		TotalItems: page.TotalItems,
		TotalPages: page.TotalPages,
		Items:      views,
	}

	writeJSON(w, c.logger, http.StatusOK, models.ShopResponse{
		ListingPage: listingPage(viewPage, filters, activeKey, summary(len(views), page.TotalItems, "products")),
		Categories:  c.store.Categories(),
		SortKeys:    listing.ProductSortKeys,
		CartCount:   cartCount,
	})
}

// ProductImage handles GET /api/products/{id}/image?size=thumb|medium
func (c *ShopController) ProductImage(w http.ResponseWriter, r *http.Request) {
	product, ok := c.findProduct(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, c.logger, http.StatusNotFound, "product not found")
		return
	}
	serveImage(w, r, c.images, c.logger, service.KindProduct, product.ID, product.Image)
}

// GetCart handles GET /api/cart
func (c *ShopController) GetCart(w http.ResponseWriter, r *http.Request) {
	vc, ok := currentVisitor(w, r, c.logger)
	if !ok {
		return
	}
	writeJSON(w, c.logger, http.StatusOK, cartResponse(vc))
}

// AddToCart handles POST /api/cart/items
// Request body: {"productId": 1, "quantity": 1}
func (c *ShopController) AddToCart(w http.ResponseWriter, r *http.Request) {
	vc, ok := currentVisitor(w, r, c.logger)
	if !ok {
		return
	}

	var req models.AddToCartRequest
	if err := decodeJSON(r, &req); err != nil {
		c.logger.Debug("AddToCart: failed to decode request body", zap.Error(err))
		writeError(w, c.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Quantity > cart.MaxQuantity {
		writeError(w, c.logger, http.StatusBadRequest, fmt.Sprintf("quantity must be at most %d", cart.MaxQuantity))
		return
	}

	product, found := c.store.FindProduct(req.ProductID)
	if !found {
		writeError(w, c.logger, http.StatusNotFound, "product not found")
		return
	}
	if !product.InStock {
		writeError(w, c.logger, http.StatusConflict, "product is out of stock")
		return
	}

	vc.Update(func(s *visitor.State) {
		s.Cart.AddItem(product, req.Quantity)
	})
	c.logger.Debug("cart line added",
		zap.String("visitor", vc.ID),
		zap.Int("product", product.ID),
		zap.Int("quantity", req.Quantity),
	)
	writeJSON(w, c.logger, http.StatusOK, cartResponse(vc))
}

// UpdateCartLine handles PATCH /api/cart/items/{productId}
// Request body: {"delta": -1}. Quantities never drop below 1.
func (c *ShopController) UpdateCartLine(w http.ResponseWriter, r *http.Request) {
	vc, ok := currentVisitor(w, r, c.logger)
	if !ok {
		return
	}

	productID, err := strconv.Atoi(chi.URLParam(r, "productId"))
	if err != nil {
		writeError(w, c.logger, http.StatusBadRequest, "invalid product id")
		return
	}

	var req models.UpdateCartLineRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, c.logger, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Delta > cart.MaxQuantity || req.Delta < -cart.MaxQuantity {
		writeError(w, c.logger, http.StatusBadRequest, fmt.Sprintf("delta must be between -%d and %d", cart.MaxQuantity, cart.MaxQuantity))
		return
	}

	var found bool
	vc.Update(func(s *visitor.State) {
		_, found = s.Cart.UpdateQuantity(productID, req.Delta)
	})
	if !found {
		writeError(w, c.logger, http.StatusNotFound, "cart line not found")
		return
	}
	writeJSON(w, c.logger, http.StatusOK, cartResponse(vc))
}

// RemoveCartLine handles DELETE /api/cart/items/{productId}
func (c *ShopController) RemoveCartLine(w http.ResponseWriter, r *http.Request) {
	vc, ok := currentVisitor(w, r, c.logger)
	if !ok {
		return
	}

	productID, err := strconv.Atoi(chi.URLParam(r, "productId"))
	if err != nil {
		writeError(w, c.logger, http.StatusBadRequest, "invalid product id")
		return
	}

	var removed bool
	vc.Update(func(s *visitor.State) {
		removed = s.Cart.RemoveItem(productID)
	})
	if !removed {
		writeError(w, c.logger, http.StatusNotFound, "cart line not found")
		return
	}
	writeJSON(w, c.logger, http.StatusOK, cartResponse(vc))
}

// Checkout handles POST /api/cart/checkout
// Ordered lines leave the cart only when the backend confirms the order;
// anything added meanwhile stays.
func (c *ShopController) Checkout(w http.ResponseWriter, r *http.Request) {
	vc, ok := currentVisitor(w, r, c.logger)
	if !ok {
		return
	}

	done, ok := vc.Begin(visitor.ActionCheckout)
	if !ok {
		writeError(w, c.logger, http.StatusConflict, "checkout already in progress")
		return
	}
	defer done()

	var lines []models.CartLine
	vc.Update(func(s *visitor.State) {
		lines = s.Cart.Lines()
	})
	if len(lines) == 0 {
		writeError(w, c.logger, http.StatusBadRequest, "cart is empty")
		return
	}

	order, err := c.backend.Checkout(r.Context(), lines)
	if errors.Is(err, service.ErrEmptyCart) {
		writeError(w, c.logger, http.StatusBadRequest, "cart is empty")
		return
	}
	if err != nil {
		c.logger.Warn("checkout failed", zap.String("visitor", vc.ID), zap.Error(err))
		writeError(w, c.logger, http.StatusBadGateway, CheckoutFailedMessage)
		return
	}

	vc.Update(func(s *visitor.State) {
		s.Cart.Settle(lines)
		s.LastOrder = order
	})
	c.logger.Info("order placed", zap.String("visitor", vc.ID), zap.String("order", order.OrderNumber))
	writeJSON(w, c.logger, http.StatusOK, order)
}

// Receipt handles GET /api/orders/last/receipt?format=html|pdf
func (c *ShopController) Receipt(w http.ResponseWriter, r *http.Request) {
	vc, ok := currentVisitor(w, r, c.logger)
	if !ok {
		return
	}

	format := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("format")))
	if format == "" {
		format = "html"
	}
	if format != "html" && format != "pdf" {
		writeError(w, c.logger, http.StatusBadRequest, "Invalid format. Valid formats: html, pdf")
		return
	}

	var order *models.OrderConfirmation
	vc.Update(func(s *visitor.State) {
		order = s.LastOrder
	})
	if order == nil {
		writeError(w, c.logger, http.StatusNotFound, "no order placed yet")
		return
	}

	html, err := c.render.RenderReceiptHTML(order)
	if err != nil {
		c.logger.Error("Receipt: failed to render", zap.Error(err))
		writeError(w, c.logger, http.StatusInternalServerError, "failed to render receipt")
		return
	}

	if format == "html" {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(html); err != nil {
			c.logger.Warn("Receipt: failed to write response", zap.Error(err))
		}
		return
	}

	pdf, err := c.render.PDFFromHTML(r.Context(), html)
	if err != nil {
		c.logger.Error("Receipt: failed to generate PDF", zap.Error(err))
		writeError(w, c.logger, http.StatusInternalServerError, "failed to generate PDF")
		return
	}
	writePDF(w, c.logger, fmt.Sprintf("receipt_%s.pdf", order.OrderNumber), pdf)
}

func (c *ShopController) findProduct(raw string) (models.Product, bool) {
	id, err := strconv.Atoi(raw)
	if err != nil {
		return models.Product{}, false
	}
	return c.store.FindProduct(id)
}

func cartResponse(vc *visitor.Context) models.CartResponse {
	var resp models.CartResponse
	vc.Update(func(s *visitor.State) {
		lines := s.Cart.Lines()
		resp.Lines = make([]models.CartLineView, 0, len(lines))
		for _, l := range lines {
			resp.Lines = append(resp.Lines, models.CartLineView{
				CartLine:       l,
				LineTotal:      l.LineTotal(),
				UnitPriceLabel: utils.FormatUSD(l.UnitPrice),
				CanDecrement:   s.Cart.CanDecrement(l.ProductID),
			})
		}
		resp.Count = s.Cart.LineCount()
		resp.Subtotal = s.Cart.Subtotal()
	})
	resp.SubtotalLabel = utils.FormatUSD(resp.Subtotal)
	return resp
}

func writePDF(w http.ResponseWriter, logger *zap.Logger, filename string, data []byte) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		logger.Warn("failed to write PDF response", zap.Error(err))
	}
}
