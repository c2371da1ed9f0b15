package handler

import (
	"log"
	"net/http"

	"auctionlytics/internal/model"
	"auctionlytics/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// WSHandler serves the chat exchange over a websocket: one ChatQuery in,
// one response envelope out, until the client disconnects.
type WSHandler struct {
	analytics *service.Analytics
	upgrader  websocket.Upgrader
}

// NewWSHandler creates a new websocket chat handler
func NewWSHandler(analytics *service.Analytics) *WSHandler {
	return &WSHandler{
		analytics: analytics,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			// Demo service behind permissive CORS; the HTTP layer owns origin policy
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Serve handles GET /api/chat/ws
func (h *WSHandler) Serve(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	for {
		var query model.ChatQuery
		if err := conn.ReadJSON(&query); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("Websocket read error: %v", err)
			}
			return
		}

		response := h.analytics.Respond(c.Request.Context(), query.Message)
		if err := conn.WriteJSON(response); err != nil {
			log.Printf("Websocket write error: %v", err)
			return
		}
	}
}
