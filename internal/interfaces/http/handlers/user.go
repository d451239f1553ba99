// internal/interfaces/http/handlers/user.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/faraz365/storefront-backend/internal/domain/user"
	"github.com/faraz365/storefront-backend/internal/store"
)

// UserHandler handles user administration endpoints
type UserHandler struct {
	userService *user.Service
}

// NewUserHandler creates a new user handler
func NewUserHandler(st store.Store, seq *store.Sequencer) *UserHandler {
	return &UserHandler{
		userService: user.NewService(st, seq),
	}
}

// List handles GET /api/users. Passwords never appear in the output.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// UpdateRole handles PUT /api/users/:id. Only the role can be changed.
func (h *UserHandler) UpdateRole(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req struct {
		Role string `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	u, err := h.userService.UpdateRole(c.Request.Context(), id, req.Role)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, u)
}
