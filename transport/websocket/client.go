package websocket

import (
	"log/slog"

	"github.com/gorilla/websocket"
)

const sendBufferSize = 32

// client is one live connection. Writes go through the send channel so a
// single goroutine owns the socket writer.
type client struct {
	id   string
	conn *websocket.Conn
	send chan []byte
}

func newClient(id string, conn *websocket.Conn) *client {
	return &client{
		id:   id,
		conn: conn,
		send: make(chan []byte, sendBufferSize),
	}
}

// writePump drains the send channel onto the socket until the channel is
// closed on unregister.
func (that *client) writePump(logger *slog.Logger) {
	for data := range that.send {
		if err := that.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			logger.Error("failed to write message", "connID", that.id, "error", err)
			return
		}
	}
}
