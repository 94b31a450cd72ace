package handlers

import (
	"fmt"
	"net/http"

	"eventify/models"
	"eventify/services/cart"
	"eventify/services/planner"
	"eventify/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CartHandler serves the checkout screen. Items are referenced by catalog id
// so prices always come from the catalog.
type CartHandler struct {
	CartSvc cart.CartService
	Catalog planner.ServiceLookup
}

func NewCartHandler(cartSvc cart.CartService, lookup planner.ServiceLookup) *CartHandler {
	return &CartHandler{CartSvc: cartSvc, Catalog: lookup}
}

type cartResponse struct {
	Items []models.Service `json:"items"`
	Total string           `json:"total"`
}

func (h *CartHandler) render(c *gin.Context, items []models.Service) {
	if items == nil {
		items = []models.Service{}
	}
	c.JSON(http.StatusOK, cartResponse{
		Items: items,
		Total: h.CartSvc.Total(items).String(),
	})
}

func (h *CartHandler) lookup(ids ...string) ([]models.Service, error) {
	items := make([]models.Service, 0, len(ids))
	for _, id := range ids {
		svc, ok := h.Catalog.FindService(id)
		if !ok {
			return nil, fmt.Errorf("%w: %s", errServiceNotInCatalog, id)
		}
		items = append(items, svc)
	}
	return items, nil
}

// GetCart handles GET /api/cart.
func (h *CartHandler) GetCart(c *gin.Context) {
	items, err := h.CartSvc.Get(c.Request.Context(), utils.UserID(c))
	if err != nil {
		respondError(c, "failed to load cart", err)
		return
	}
	h.render(c, items)
}

// CheckoutPackage handles PUT /api/cart.
func (h *CartHandler) CheckoutPackage(c *gin.Context) {
	var body struct {
		ServiceIDs []string `json:"serviceIds" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err)
		return
	}
	items, err := h.lookup(body.ServiceIDs...)
	if err != nil {
		respondError(c, "unknown service", err)
		return
	}
	cartItems, err := h.CartSvc.CheckoutPackage(c.Request.Context(), utils.UserID(c), items)
	if err != nil {
		respondError(c, "failed to checkout package", err)
		return
	}
	h.render(c, cartItems)
}

// AddItem handles POST /api/cart/items.
func (h *CartHandler) AddItem(c *gin.Context) {
	var body struct {
		ServiceID string `json:"serviceId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err)
		return
	}
	items, err := h.lookup(body.ServiceID)
	if err != nil {
		respondError(c, "unknown service", err)
		return
	}
	cartItems, err := h.CartSvc.Add(c.Request.Context(), utils.UserID(c), items[0])
	if err != nil {
		respondError(c, "failed to add item", err)
		return
	}
	h.render(c, cartItems)
}

// RemoveItem handles DELETE /api/cart/items/:serviceID.
func (h *CartHandler) RemoveItem(c *gin.Context) {
	items, err := h.CartSvc.Remove(c.Request.Context(), utils.UserID(c), c.Param("serviceID"))
	if err != nil {
		respondError(c, "failed to remove item", err)
		return
	}
	h.render(c, items)
}

// ClearCart handles DELETE /api/cart.
func (h *CartHandler) ClearCart(c *gin.Context) {
	if err := h.CartSvc.Clear(c.Request.Context(), utils.UserID(c)); err != nil {
		respondError(c, "failed to clear cart", err)
		return
	}
	h.render(c, nil)
}

// Pay handles POST /api/cart/pay.
func (h *CartHandler) Pay(c *gin.Context) {
	userID := utils.UserID(c)
	invoice, err := h.CartSvc.Pay(c.Request.Context(), userID)
	if err != nil {
		respondError(c, "payment failed", err)
		return
	}
	getLogger(c).Info("cart paid", zap.String("userID", userID), zap.String("invoiceID", invoice.InvoiceID))
	c.JSON(http.StatusCreated, invoice)
}
