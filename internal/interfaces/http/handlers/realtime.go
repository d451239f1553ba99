// internal/interfaces/http/handlers/realtime.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/faraz365/storefront-backend/internal/realtime"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// RealtimeHandler upgrades clients onto the broadcast channel
type RealtimeHandler struct {
	hub *realtime.Hub
}

// NewRealtimeHandler creates a new realtime handler
func NewRealtimeHandler(hub *realtime.Hub) *RealtimeHandler {
	return &RealtimeHandler{hub: hub}
}

// Subscribe handles GET /ws. The server only pushes; inbound frames are
// read and discarded until the client goes away.
func (h *RealtimeHandler) Subscribe(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	h.hub.Register(conn)
	defer h.hub.Unregister(conn)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
