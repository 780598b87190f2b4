// Package realtime fans row-level change events out to subscribers: the SSE
// order-tracking stream in process, and optionally a RabbitMQ exchange for
// external consumers. Delivery is fire-and-forget; consumers must reconcile
// by re-fetching and never assume an event arrives.
package realtime

import (
	"sync"

	"go.uber.org/zap"
)

type Action string

const (
	ActionInsert Action = "insert"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Event is one row-level change notification.
type Event struct {
	Table   string `json:"table"`
	Action  Action `json:"action"`
	RowID   string `json:"row_id"`
	Payload any    `json:"payload,omitempty"`
}

// Broadcaster forwards events to an external transport.
type Broadcaster interface {
	Broadcast(Event) error
}

type subscription struct {
	table string
	rowID string // empty matches every row of the table
	ch    chan Event
}

// Hub is the in-process subscription registry.
type Hub struct {
	mu           sync.Mutex
	subs         map[int]*subscription
	nextID       int
	broadcasters []Broadcaster
	log          *zap.Logger
}

func NewHub(log *zap.Logger) *Hub {
	return &Hub{subs: make(map[int]*subscription), log: log}
}

// Attach registers an external broadcaster that receives every event.
func (h *Hub) Attach(b Broadcaster) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.broadcasters = append(h.broadcasters, b)
}

// Subscribe returns a channel of events for a table, optionally filtered to
// a single row, plus an unsubscribe handle. Unsubscribe closes the channel.
func (h *Hub) Subscribe(table, rowID string) (<-chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextID
	h.nextID++
	sub := &subscription{table: table, rowID: rowID, ch: make(chan Event, 16)}
	h.subs[id] = sub

	unsubscribe := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if s, ok := h.subs[id]; ok {
			delete(h.subs, id)
			close(s.ch)
		}
	}
	return sub.ch, unsubscribe
}

// Publish delivers an event to matching subscribers and all attached
// broadcasters. Subscribers with a full buffer miss the event; they are
// expected to re-fetch on reconnect. Channel sends happen under the lock:
// unsubscribe closes the channel under the same lock, so a send can never
// race a close. The sends are non-blocking, so the lock is never held on a
// full buffer.
func (h *Hub) Publish(ev Event) {
	h.mu.Lock()
	for _, s := range h.subs {
		if s.table != ev.Table || (s.rowID != "" && s.rowID != ev.RowID) {
			continue
		}
		select {
		case s.ch <- ev:
		default:
			h.log.Debug("dropping event for slow subscriber",
				zap.String("table", ev.Table), zap.String("row_id", ev.RowID))
		}
	}
	broadcasters := append([]Broadcaster(nil), h.broadcasters...)
	h.mu.Unlock()

	for _, b := range broadcasters {
		if err := b.Broadcast(ev); err != nil {
			h.log.Error("broadcast failed", zap.Error(err))
		}
	}
}
