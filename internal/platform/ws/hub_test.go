package ws

import (
	"context"
	"encoding/json"
	"testing"
	"time"
)

func newTestClient() *Client {
	return &Client{ID: "test", Send: make(chan []byte, 8)}
}

func TestHub_BroadcastReachesAllClients(t *testing.T) {
	hub := NewHub()
	first := newTestClient()
	second := newTestClient()
	hub.Register(first)
	hub.Register(second)

	hub.Broadcast(SlotBooked("2024-06-01", "09:20", "doc-1"))

	for _, client := range []*Client{first, second} {
		select {
		case data := <-client.Send:
			var event Event
			if err := json.Unmarshal(data, &event); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if event.Type != EventSlotBooked {
				t.Errorf("expected type %s, got %s", EventSlotBooked, event.Type)
			}
			if event.Date != "2024-06-01" || event.Time != "09:20" || event.DoctorID != "doc-1" {
				t.Errorf("unexpected payload: %+v", event)
			}
		default:
			t.Fatal("client did not receive the event")
		}
	}
}

func TestHub_UnregisterStopsDelivery(t *testing.T) {
	hub := NewHub()
	client := newTestClient()
	hub.Register(client)
	hub.Unregister(client)

	if hub.ClientCount() != 0 {
		t.Errorf("expected 0 clients, got %d", hub.ClientCount())
	}
	if _, open := <-client.Send; open {
		t.Error("expected send channel to be closed")
	}

	// Broadcasting after the last client left must not panic.
	hub.Broadcast(SlotBooked("2024-06-01", "09:20", "doc-1"))
}

func TestHub_UnregisterTwiceIsSafe(t *testing.T) {
	hub := NewHub()
	client := newTestClient()
	hub.Register(client)
	hub.Unregister(client)
	hub.Unregister(client)
}

func TestHub_SlowClientDoesNotBlock(t *testing.T) {
	hub := NewHub()
	// No goroutine ever reads from Send, so the unbuffered channel models
	// a client that stopped draining its queue.
	slow := &Client{ID: "slow", Send: make(chan []byte)}
	hub.Register(slow)

	done := make(chan struct{})
	go func() {
		hub.Broadcast(SlotBooked("2024-06-01", "09:20", "doc-1"))
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("broadcast blocked on a client that never receives")
	}

	select {
	case data := <-slow.Send:
		t.Errorf("skipped client unexpectedly received %s", data)
	default:
	}
}

func TestHub_PublishBroadcasts(t *testing.T) {
	hub := NewHub()
	client := newTestClient()
	hub.Register(client)

	if err := hub.Publish(context.Background(), SlotBooked("2024-06-01", "10:00", "doc-2")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	select {
	case <-client.Send:
	default:
		t.Fatal("publish did not reach the client")
	}
}
