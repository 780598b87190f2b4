package realtime

import (
	"testing"

	"go.uber.org/zap"
)

func TestSubscribeReceivesMatchingEvents(t *testing.T) {
	hub := NewHub(zap.NewNop())
	ch, unsubscribe := hub.Subscribe("orders", "order-1")
	defer unsubscribe()

	hub.Publish(Event{Table: "orders", Action: ActionUpdate, RowID: "order-1"})
	hub.Publish(Event{Table: "orders", Action: ActionUpdate, RowID: "order-2"})
	hub.Publish(Event{Table: "menu_items", Action: ActionUpdate, RowID: "order-1"})

	select {
	case ev := <-ch:
		if ev.RowID != "order-1" || ev.Table != "orders" {
			t.Errorf("unexpected event %+v", ev)
		}
	default:
		t.Fatal("expected a buffered event")
	}
	select {
	case ev := <-ch:
		t.Errorf("unexpected second event %+v", ev)
	default:
	}
}

func TestSubscribeAllRowsOfTable(t *testing.T) {
	hub := NewHub(zap.NewNop())
	ch, unsubscribe := hub.Subscribe("orders", "")
	defer unsubscribe()

	hub.Publish(Event{Table: "orders", Action: ActionInsert, RowID: "a"})
	hub.Publish(Event{Table: "orders", Action: ActionInsert, RowID: "b"})

	for _, want := range []string{"a", "b"} {
		select {
		case ev := <-ch:
			if ev.RowID != want {
				t.Errorf("row id = %s, want %s", ev.RowID, want)
			}
		default:
			t.Fatalf("missing event for row %s", want)
		}
	}
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	hub := NewHub(zap.NewNop())
	ch, unsubscribe := hub.Subscribe("orders", "")
	unsubscribe()

	if _, open := <-ch; open {
		t.Error("channel should be closed after unsubscribe")
	}

	// Publishing after unsubscribe must not panic
	hub.Publish(Event{Table: "orders", Action: ActionUpdate, RowID: "x"})

	// Double unsubscribe is a no-op
	unsubscribe()
}

func TestPublishRacingUnsubscribe(t *testing.T) {
	hub := NewHub(zap.NewNop())

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 5000; i++ {
			hub.Publish(Event{Table: "orders", Action: ActionUpdate, RowID: "order-1"})
		}
	}()

	// Subscribers come and go while events are in flight. A send must never
	// land on a channel that unsubscribe has already closed.
	for i := 0; i < 500; i++ {
		_, unsubscribe := hub.Subscribe("orders", "order-1")
		unsubscribe()
	}
	<-done
}

type captureBroadcaster struct{ events []Event }

func (c *captureBroadcaster) Broadcast(ev Event) error {
	c.events = append(c.events, ev)
	return nil
}

func TestBroadcasterReceivesEveryEvent(t *testing.T) {
	hub := NewHub(zap.NewNop())
	sink := &captureBroadcaster{}
	hub.Attach(sink)

	hub.Publish(Event{Table: "orders", Action: ActionInsert, RowID: "a"})
	hub.Publish(Event{Table: "menu_items", Action: ActionDelete, RowID: "b"})

	if len(sink.events) != 2 {
		t.Fatalf("broadcaster saw %d events, want 2", len(sink.events))
	}
}
