package relay

import (
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10

	maxMessageSize = 64 * 1024

	sendBufferSize = 256
)

// Conn wraps one websocket peer. Reads and writes run on separate
// goroutines; the send channel is the only way to write to the socket.
type Conn struct {
	id       string
	ws       *websocket.Conn
	send     chan []byte
	registry *Registry
}

// readPump reads messages from the socket and hands each one to the
// registry for fan-out. It runs until the peer disconnects or errors,
// then removes the connection from the registry.
func (c *Conn) readPump() {
	defer func() {
		c.registry.remove(c.id)
		c.ws.Close()
	}()

	c.ws.SetReadLimit(maxMessageSize)
	c.ws.SetReadDeadline(time.Now().Add(pongWait))
	c.ws.SetPongHandler(func(string) error {
		return c.ws.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, payload, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				zap.L().Warn("relay read failed", zap.String("conn_id", c.id), zap.Error(err))
			}

			return
		}

		c.registry.Broadcast(c.id, payload)
	}
}

// writePump drains the send channel onto the socket and keeps the
// connection alive with periodic pings. It exits when the send channel
// is closed by the registry or a write fails.
func (c *Conn) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.ws.Close()
	}()

	for {
		select {
		case payload, ok := <-c.send:
			c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.ws.WriteMessage(websocket.CloseMessage, []byte{})

				return
			}

			if err := c.ws.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
