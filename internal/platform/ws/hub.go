// Package ws pushes booking events to connected clients. A Hub fans an
// event out to every open WebSocket connection; delivery is best-effort
// with no replay, so reconnecting clients must re-query booked slots.
package ws

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

// EventSlotBooked is emitted once after every successful booking commit.
const EventSlotBooked = "slot_booked"

// Event is the wire payload pushed to clients.
type Event struct {
	Type      string    `json:"type"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	DoctorID  string    `json:"doctor_id"`
	Timestamp time.Time `json:"timestamp"`
}

// SlotBooked builds the event for a committed booking.
func SlotBooked(date, slotTime, doctorID string) Event {
	return Event{
		Type:      EventSlotBooked,
		Date:      date,
		Time:      slotTime,
		DoctorID:  doctorID,
		Timestamp: time.Now().UTC(),
	}
}

// Publisher is the capability handed to the booking service. A failed
// publish never fails the booking that triggered it.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// Client represents one connected WebSocket peer.
type Client struct {
	ID   string
	Send chan []byte
}

// Hub tracks connected clients and broadcasts events to all of them.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*Client]struct{})}
}

// Register adds a client to the hub.
func (h *Hub) Register(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[client] = struct{}{}
}

// Unregister removes a client and closes its Send channel.
func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[client]; !ok {
		return
	}
	delete(h.clients, client)
	close(client.Send)
}

// Broadcast sends an event to every connected client. Clients with a full
// send buffer are skipped rather than blocking the caller.
func (h *Hub) Broadcast(event Event) {
	data, err := json.Marshal(event)
	if err != nil {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients {
		select {
		case client.Send <- data:
		default:
		}
	}
}

// Publish implements Publisher by broadcasting in-process.
func (h *Hub) Publish(_ context.Context, event Event) error {
	h.Broadcast(event)
	return nil
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
