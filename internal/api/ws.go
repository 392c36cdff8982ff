package api

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"comanda/internal/orders"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// WebSocket upgrader configuration
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for development
	},
}

// wsClient maintains one display's connection. It forwards order-book
// changes; the display re-reads the relevant endpoint on each one.
type wsClient struct {
	conn    *websocket.Conn
	changes <-chan orders.Change
	book    *orders.Book
}

// handleWebSocket upgrades the connection and streams order-book
// change notifications until the client disconnects.
func (s *Server) handleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Failed to upgrade connection: %v", err)
		return
	}

	client := &wsClient{
		conn:    conn,
		changes: s.book.Subscribe(),
		book:    s.book,
	}

	go client.writePump()
	go client.readPump()
}

// readPump drains incoming frames so pings are answered and a close is
// noticed; the feed is one-way.
func (c *wsClient) readPump() {
	defer func() {
		c.book.Unsubscribe(c.changes)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(512)
	c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error: %v", err)
			}
			break
		}
	}
}

// writePump forwards change notifications and keeps the connection
// alive with periodic pings.
func (c *wsClient) writePump() {
	ticker := time.NewTicker(30 * time.Second)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case change, ok := <-c.changes:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			data, err := json.Marshal(change)
			if err != nil {
				log.Printf("Error marshaling change: %v", err)
				continue
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
