package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/viejosabroso/restaurant-orders/metrics"
	"github.com/viejosabroso/restaurant-orders/realtime"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type WSController struct {
	Hub *realtime.Hub
}

func NewWSController(hub *realtime.Hub) *WSController {
	return &WSController{Hub: hub}
}

// Feed upgrades the connection and registers it with the hub. Every surface
// (customer menu, kitchen display, admin panel) uses the same feed; the
// client picks the events it cares about.
func (wc *WSController) Feed(c *gin.Context) {
	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	wc.Hub.Register(ws)
	metrics.WSClients.Inc()

	// Clients don't send anything; the read loop only detects disconnects.
	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			break
		}
	}

	wc.Hub.Unregister(ws)
	metrics.WSClients.Dec()
}
