// internal/interfaces/http/handlers/order.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/faraz365/storefront-backend/internal/domain/order"
	"github.com/faraz365/storefront-backend/internal/store"
)

// OrderHandler handles order endpoints
type OrderHandler struct {
	orderService *order.Service
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(st store.Store, seq *store.Sequencer) *OrderHandler {
	return &OrderHandler{
		orderService: order.NewService(st, seq),
	}
}

// userIDQuery parses the optional ?user_id filter.
func userIDQuery(c *gin.Context) (*int64, bool) {
	raw := c.Query("user_id")
	if raw == "" {
		return nil, true
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user_id"})
		return nil, false
	}
	return &id, true
}

// List handles GET /api/orders
func (h *OrderHandler) List(c *gin.Context) {
	userID, ok := userIDQuery(c)
	if !ok {
		return
	}

	orders, err := h.orderService.List(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, orders)
}

// Get handles GET /api/orders/:id
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	o, err := h.orderService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, o)
}

// Create handles POST /api/orders
func (h *OrderHandler) Create(c *gin.Context) {
	var req order.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	o, err := h.orderService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":      o.ID,
		"message": "Order placed successfully",
	})
}

// UpdateStatus handles PUT /api/orders/:id
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req order.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	o, err := h.orderService.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, o)
}
