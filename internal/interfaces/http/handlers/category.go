// internal/interfaces/http/handlers/category.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/faraz365/storefront-backend/internal/domain/catalog"
	"github.com/faraz365/storefront-backend/internal/pkg/apperr"
	"github.com/faraz365/storefront-backend/internal/realtime"
	"github.com/faraz365/storefront-backend/internal/store"
)

// CategoryHandler handles category endpoints
type CategoryHandler struct {
	categoryService *catalog.CategoryService
	productService  *catalog.ProductService
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(st store.Store, seq *store.Sequencer, hub *realtime.Hub) *CategoryHandler {
	return &CategoryHandler{
		categoryService: catalog.NewCategoryService(st, seq, hub),
		productService:  catalog.NewProductService(st, seq, hub),
	}
}

// List handles GET /api/categories
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categoryService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, categories)
}

// Get handles GET /api/categories/:id, returning the category together
// with the products referencing it.
func (h *CategoryHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	category, err := h.categoryService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	products, err := h.productService.ListByCategory(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"category": category,
		"products": products,
	})
}

// Create handles POST /api/categories
func (h *CategoryHandler) Create(c *gin.Context) {
	var req catalog.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	category, err := h.categoryService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, category)
}

// Update handles PUT /api/categories/:id
func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req catalog.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	category, err := h.categoryService.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, category)
}

// Delete handles DELETE /api/categories/:id. Deletion is refused while any
// product still references the category; the response reports how many.
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	blocking, err := h.categoryService.Delete(c.Request.Context(), id)
	if err != nil {
		if blocking > 0 {
			_ = c.Error(err)
			c.JSON(apperr.HTTPStatus(err), gin.H{
				"message":       apperr.MessageOf(err),
				"product_count": blocking,
			})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}
