// Package server tracks the clients connected to one process so they can
// be told about, and waited on during, a shutdown. Every client plays its
// own independent session; nothing about play is shared here.
package server

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Registry is the interface clients use to announce themselves.
// Decouples the Client from the concrete Hub, enabling testing.
type Registry interface {
	RegisterClient(username string) *ClientHandle
	UnregisterClient(clientID int)
}

// Hub keeps the set of connected clients.
type Hub struct {
	clients      map[int]*ClientHandle
	nextClientID int
	mu           sync.RWMutex
	logger       *log.Logger
}

// Compile-time check that Hub implements Registry.
var _ Registry = (*Hub)(nil)

// ClientHandle represents a client's connection to the hub.
type ClientHandle struct {
	ID        int
	SessionID string // Unique per connection, for correlating log lines
	Username  string
	EventsCh  chan ClientEvent // Events sent to client
}

// ClientEvent represents an event sent from the hub to a client.
type ClientEvent struct {
	Type ClientEventType
}

// ClientEventType identifies the type of client event.
type ClientEventType int

const (
	EventServerShutdown ClientEventType = iota
)

// NewHub creates an empty hub. A nil logger discards output.
func NewHub(logger *log.Logger) *Hub {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Hub{
		clients:      make(map[int]*ClientHandle),
		nextClientID: 1,
		logger:       logger,
	}
}

// RegisterClient registers a new client with the given username and returns its handle.
func (h *Hub) RegisterClient(username string) *ClientHandle {
	h.mu.Lock()
	defer h.mu.Unlock()

	handle := &ClientHandle{
		ID:        h.nextClientID,
		SessionID: uuid.NewString(),
		Username:  username,
		EventsCh:  make(chan ClientEvent, 16),
	}
	h.nextClientID++
	h.clients[handle.ID] = handle

	h.logger.Debug("client registered", "id", handle.ID, "session", handle.SessionID, "user", username, "clients", len(h.clients))
	return handle
}

// UnregisterClient removes a client and closes its event channel.
// Unknown ids are ignored.
func (h *Hub) UnregisterClient(clientID int) {
	h.mu.Lock()
	defer h.mu.Unlock()

	handle, ok := h.clients[clientID]
	if !ok {
		return
	}
	close(handle.EventsCh)
	delete(h.clients, clientID)

	h.logger.Debug("client unregistered", "id", clientID, "session", handle.SessionID, "clients", len(h.clients))
}

// Count returns the number of connected clients.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Shutdown notifies all connected clients about the shutdown and waits for
// them to disconnect (up to the given timeout). Returns the number of
// clients still connected when it gave up.
func (h *Hub) Shutdown(timeout time.Duration) int {
	h.mu.RLock()
	for _, handle := range h.clients {
		select {
		case handle.EventsCh <- ClientEvent{Type: EventServerShutdown}:
		default:
		}
	}
	h.mu.RUnlock()

	deadline := time.After(timeout)
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	for {
		remaining := h.Count()
		if remaining == 0 {
			return 0
		}
		select {
		case <-deadline:
			h.logger.Warn("shutdown timed out", "remaining", remaining)
			return remaining
		case <-ticker.C:
		}
	}
}
