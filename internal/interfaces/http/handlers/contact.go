// internal/interfaces/http/handlers/contact.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/faraz365/storefront-backend/internal/domain/contact"
	"github.com/faraz365/storefront-backend/internal/store"
)

// ContactHandler handles the contact form endpoint
type ContactHandler struct {
	contactService *contact.Service
}

// NewContactHandler creates a new contact handler
func NewContactHandler(st store.Store, seq *store.Sequencer) *ContactHandler {
	return &ContactHandler{
		contactService: contact.NewService(st, seq),
	}
}

// Create handles POST /api/contact
func (h *ContactHandler) Create(c *gin.Context) {
	var req contact.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	if _, err := h.contactService.Create(c.Request.Context(), &req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Message sent successfully"})
}
