// internal/interfaces/http/handlers/product.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/faraz365/storefront-backend/internal/domain/catalog"
	"github.com/faraz365/storefront-backend/internal/realtime"
	"github.com/faraz365/storefront-backend/internal/store"
)

// ProductHandler handles product endpoints
type ProductHandler struct {
	productService *catalog.ProductService
}

// NewProductHandler creates a new product handler
func NewProductHandler(st store.Store, seq *store.Sequencer, hub *realtime.Hub) *ProductHandler {
	return &ProductHandler{
		productService: catalog.NewProductService(st, seq, hub),
	}
}

// List handles GET /api/products
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.productService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, products)
}

// Get handles GET /api/products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	p, err := h.productService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

// Create handles POST /api/products
func (h *ProductHandler) Create(c *gin.Context) {
	var req catalog.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	p, err := h.productService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, p)
}

// Update handles PUT /api/products/:id
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req catalog.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	p, err := h.productService.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

// Delete handles DELETE /api/products/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.productService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
