// internal/interfaces/http/handlers/transaction.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/faraz365/storefront-backend/internal/domain/transaction"
	"github.com/faraz365/storefront-backend/internal/store"
)

// TransactionHandler handles the legacy transaction endpoints
type TransactionHandler struct {
	transactionService *transaction.Service
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(st store.Store, seq *store.Sequencer) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transaction.NewService(st, seq),
	}
}

// List handles GET /api/transactions
func (h *TransactionHandler) List(c *gin.Context) {
	userID, ok := userIDQuery(c)
	if !ok {
		return
	}

	transactions, err := h.transactionService.List(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, transactions)
}

// Create handles POST /api/transactions
func (h *TransactionHandler) Create(c *gin.Context) {
	var req transaction.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	t, err := h.transactionService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, t)
}

// UpdateStatus handles PUT /api/transactions/:id
func (h *TransactionHandler) UpdateStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req transaction.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	t, err := h.transactionService.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, t)
}
