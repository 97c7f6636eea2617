package web

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rileyhilliard/logogen/internal/logger"
)

const (
	// sendBuffer is how many previews may queue for one client before it is
	// considered too slow and dropped.
	sendBuffer = 8

	wsWriteWait = 10 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
}

// client is one live-preview WebSocket.
type client struct {
	conn *websocket.Conn
	send chan []byte
}

// hub fans rendered previews out to connected clients.
type hub struct {
	mu      sync.Mutex
	clients map[*client]struct{}
	closed  bool
	log     logger.Logger

	unsubscribe func()
	closeOnce   sync.Once
}

func newHub(log logger.Logger) *hub {
	return &hub{
		clients: make(map[*client]struct{}),
		log:     log,
	}
}

// add registers c. When first is set its message is queued before c is
// registered, with broadcasts held off, so a concurrent edit lands after it
// rather than being missed. add reports false once the hub is closed.
func (h *hub) add(c *client, first func() ([]byte, error)) (bool, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false, nil
	}
	if first != nil {
		msg, err := first()
		if err != nil {
			return false, err
		}
		c.send <- msg
	}
	h.clients[c] = struct{}{}
	h.log.Debug("preview client connected (%d total)", len(h.clients))
	return true, nil
}

// remove unregisters c and closes its send channel. Safe to call twice.
func (h *hub) remove(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	close(c.send)
	h.log.Debug("preview client disconnected (%d left)", len(h.clients))
}

// broadcast queues msg for every client, dropping clients whose queue is full.
func (h *hub) broadcast(msg []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		select {
		case c.send <- msg:
		default:
			h.log.Warn("dropping slow preview client")
			delete(h.clients, c)
			close(c.send)
		}
	}
}

// count returns the number of connected clients.
func (h *hub) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// close disconnects every client and stops accepting new ones.
func (h *hub) close() {
	h.closeOnce.Do(func() {
		if h.unsubscribe != nil {
			h.unsubscribe()
		}
		h.mu.Lock()
		defer h.mu.Unlock()
		h.closed = true
		for c := range h.clients {
			delete(h.clients, c)
			close(c.send)
		}
	})
}

// handleWebSocket upgrades the request and streams previews: the current
// logo first, then one message per store change.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written an HTTP error.
		s.log.Debug("websocket upgrade failed: %v", err)
		return
	}

	c := &client{conn: conn, send: make(chan []byte, sendBuffer)}
	ok, err := s.hub.add(c, func() ([]byte, error) {
		return s.fragment(s.store.Snapshot())
	})
	if err != nil {
		s.log.Error("render live preview: %v", err)
	}
	if !ok {
		conn.Close()
		return
	}

	go c.writePump()
	c.readPump(s.hub)
}

// writePump writes queued messages until the send channel is closed.
func (c *client) writePump() {
	defer c.conn.Close()
	for msg := range c.send {
		_ = c.conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			// Closing the conn ends readPump, which unregisters the client.
			return
		}
	}
	_ = c.conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
	_ = c.conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

// readPump discards incoming messages and unregisters the client when the
// connection goes away.
func (c *client) readPump(h *hub) {
	defer h.remove(c)
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}
