// internal/interfaces/http/handlers/handlers.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/faraz365/storefront-backend/internal/pkg/apperr"
)

// respondError writes the classified status and client-safe message for
// err. The full error is attached to the context so the request logger
// records it; internal details never reach the response body.
func respondError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(apperr.HTTPStatus(err), gin.H{
		"message": apperr.MessageOf(err),
	})
}

// bindError reports a malformed or incomplete request body.
func bindError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(http.StatusBadRequest, gin.H{
		"message": "Invalid request data",
	})
}

// paramID parses an integer path parameter, answering 400 on failure.
func paramID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid " + name,
		})
		return 0, false
	}
	return id, true
}
