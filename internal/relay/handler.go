package relay

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Clients connect from whatever origin the storefront is served on,
	// so the relay accepts all origins. Access control belongs to the
	// reverse proxy in front of it.
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Handler upgrades the request to a websocket and registers the
// connection with reg.
func Handler(reg *Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			zap.L().Error("relay upgrade failed", zap.Error(err))

			return
		}

		conn := &Conn{
			id:       uuid.NewString(),
			ws:       ws,
			send:     make(chan []byte, sendBufferSize),
			registry: reg,
		}
		reg.add(conn)

		go conn.writePump()
		go conn.readPump()
	}
}
