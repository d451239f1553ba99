// internal/interfaces/http/handlers/auth.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/faraz365/storefront-backend/internal/domain/user"
	"github.com/faraz365/storefront-backend/internal/store"
)

// AuthHandler handles signup and login endpoints
type AuthHandler struct {
	userService *user.Service
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(st store.Store, seq *store.Sequencer) *AuthHandler {
	return &AuthHandler{
		userService: user.NewService(st, seq),
	}
}

// Signup handles POST /api/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req user.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	u, err := h.userService.Signup(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": u})
}

// Login handles POST /api/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req user.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	u, err := h.userService.Login(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": u})
}
