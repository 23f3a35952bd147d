package ws

import (
	"log"
	"sync"

	"github.com/google/uuid"
)

// Hub owns the live websocket sessions, keyed by recipient identity. A user
// may hold several connections (multiple tabs); a push goes to all of them.
type Hub struct {
	mutex   sync.RWMutex
	clients map[uuid.UUID]map[*Client]struct{}
	logger  *log.Logger
}

func NewHub(logger *log.Logger) *Hub {
	if logger == nil {
		logger = log.Default()
	}
	return &Hub{
		clients: make(map[uuid.UUID]map[*Client]struct{}),
		logger:  logger,
	}
}

func (h *Hub) Register(client *Client) {
	if h == nil || client == nil {
		return
	}
	h.mutex.Lock()
	set, ok := h.clients[client.userID]
	if !ok {
		set = make(map[*Client]struct{})
		h.clients[client.userID] = set
	}
	set[client] = struct{}{}
	total := h.totalLocked()
	h.mutex.Unlock()

	h.logger.Printf("WS connected | user=%s total_clients=%d", client.userID, total)
}

func (h *Hub) Unregister(client *Client) {
	if h == nil || client == nil {
		return
	}
	h.mutex.Lock()
	if set, ok := h.clients[client.userID]; ok {
		if _, present := set[client]; present {
			delete(set, client)
			close(client.send)
		}
		if len(set) == 0 {
			delete(h.clients, client.userID)
		}
	}
	total := h.totalLocked()
	h.mutex.Unlock()

	h.logger.Printf("WS disconnected | user=%s total_clients=%d", client.userID, total)
}

// Push delivers a payload to every live connection of the recipient. A slow
// client whose buffer is full is dropped rather than blocking the caller.
//
// Sends happen under the read lock: Unregister closes the send channel under
// the write lock, so a channel is never closed while a send is in flight.
func (h *Hub) Push(recipient uuid.UUID, payload []byte) {
	if h == nil {
		return
	}
	var dropped []*Client
	h.mutex.RLock()
	for client := range h.clients[recipient] {
		select {
		case client.send <- payload:
		default:
			dropped = append(dropped, client)
		}
	}
	h.mutex.RUnlock()

	for _, client := range dropped {
		h.logger.Printf("WS push dropped | user=%s reason=buffer_full", recipient)
		h.Unregister(client)
	}
}

func (h *Hub) ClientCount() int {
	if h == nil {
		return 0
	}
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return h.totalLocked()
}

func (h *Hub) totalLocked() int {
	total := 0
	for _, set := range h.clients {
		total += len(set)
	}
	return total
}
