// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/faraz365/storefront-backend/internal/domain/cart"
	"github.com/faraz365/storefront-backend/internal/store"
)

// CartHandler handles cart endpoints
type CartHandler struct {
	cartService *cart.Service
}

// NewCartHandler creates a new cart handler
func NewCartHandler(st store.Store) *CartHandler {
	return &CartHandler{
		cartService: cart.NewService(st),
	}
}

// Get handles GET /api/cart/:userId
func (h *CartHandler) Get(c *gin.Context) {
	userID, ok := paramID(c, "userId")
	if !ok {
		return
	}

	crt, err := h.cartService.Get(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, crt)
}

// AddItem handles POST /api/cart/:userId
func (h *CartHandler) AddItem(c *gin.Context) {
	userID, ok := paramID(c, "userId")
	if !ok {
		return
	}

	var req cart.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	crt, err := h.cartService.AddItem(c.Request.Context(), userID, req.ProductID, req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, crt)
}

// RemoveItem handles DELETE /api/cart/:userId/:productId
func (h *CartHandler) RemoveItem(c *gin.Context) {
	userID, ok := paramID(c, "userId")
	if !ok {
		return
	}
	productID, ok := paramID(c, "productId")
	if !ok {
		return
	}

	crt, err := h.cartService.RemoveItem(c.Request.Context(), userID, productID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, crt)
}
