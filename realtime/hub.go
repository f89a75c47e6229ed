// File: /realtime/hub.go
package realtime

import (
	"github.com/rs/zerolog"
)

// push targets one user's live connections.
type push struct {
	userID  string
	payload []byte
}

// Hub tracks live websocket clients per user and fans notification payloads
// out to them. All client-map access happens on the Run loop.
type Hub struct {
	clients    map[string]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	pushes     chan push
	logger     zerolog.Logger
}

func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		clients:    make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		pushes:     make(chan push, 256),
		logger:     logger,
	}
}

// Run processes registrations and pushes until the process exits. Call it in
// its own goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.add(client)
		case client := <-h.unregister:
			h.remove(client)
		case p := <-h.pushes:
			h.deliver(p)
		}
	}
}

func (h *Hub) add(client *Client) {
	conns, ok := h.clients[client.UserID]
	if !ok {
		conns = make(map[*Client]bool)
		h.clients[client.UserID] = conns
	}
	conns[client] = true
	h.logger.Debug().Str("user_id", client.UserID).Msg("websocket client connected")
}

func (h *Hub) remove(client *Client) {
	conns, ok := h.clients[client.UserID]
	if !ok {
		return
	}
	if _, ok := conns[client]; ok {
		delete(conns, client)
		close(client.send)
		if len(conns) == 0 {
			delete(h.clients, client.UserID)
		}
	}
}

func (h *Hub) deliver(p push) {
	conns := h.clients[p.userID]
	for client := range conns {
		select {
		case client.send <- p.payload:
		default:
			// Slow consumer, drop the connection.
			delete(conns, client)
			close(client.send)
		}
	}
	if len(conns) == 0 {
		delete(h.clients, p.userID)
	}
}

// Push queues a payload for every live connection of userID. It never blocks
// the caller; payloads are dropped if the hub is saturated.
func (h *Hub) Push(userID string, payload []byte) {
	select {
	case h.pushes <- push{userID: userID, payload: payload}:
	default:
		h.logger.Warn().Str("user_id", userID).Msg("hub push queue full, dropping event")
	}
}

// Register attaches a client and starts its pumps.
func (h *Hub) Register(client *Client) {
	h.register <- client
	go client.writePump()
	go client.readPump()
}
