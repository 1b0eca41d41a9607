package handler

import (
	"net/http"
	"time"

	"campusbuild/internal/realtime"
	"campusbuild/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

const (
	writeWait  = 10 * time.Second
	pingPeriod = 30 * time.Second
)

type SubscribeHandler struct {
	Hub *realtime.Hub
}

// Subscribe upgrades the connection and streams change events for one
// collection until the client disconnects.
func (h *SubscribeHandler) Subscribe(c *gin.Context) {
	collection := c.Param("collection")
	if !realtime.ValidCollection(collection) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown collection"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	sub, err := h.Hub.Subscribe(collection)
	if err != nil {
		return
	}
	defer sub.Close()

	// Reader exists only to detect the close; inbound frames are discarded.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-sub.C:
			if !ok {
				return
			}
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(ev); err != nil {
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
