// internal/interfaces/http/handlers/analytics.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/faraz365/storefront-backend/internal/domain/analytics"
	"github.com/faraz365/storefront-backend/internal/store"
)

// AnalyticsHandler handles the dashboard analytics endpoint
type AnalyticsHandler struct {
	analyticsService *analytics.Service
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(st store.Store) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analytics.NewService(st),
	}
}

// Get handles GET /api/analytics
func (h *AnalyticsHandler) Get(c *gin.Context) {
	rng := c.DefaultQuery("range", "6months")
	c.JSON(http.StatusOK, h.analyticsService.Get(c.Request.Context(), rng))
}
