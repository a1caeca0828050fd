package events

import (
	"testing"
	"time"
)

type capturingHandler struct {
	handled []Event
	types   map[string]bool
}

func newCapturingHandler(eventTypes ...string) *capturingHandler {
	types := make(map[string]bool, len(eventTypes))
	for _, t := range eventTypes {
		types[t] = true
	}
	return &capturingHandler{types: types}
}

func (h *capturingHandler) Handle(event Event) error {
	h.handled = append(h.handled, event)
	return nil
}

func (h *capturingHandler) CanHandle(eventType string) bool {
	return h.types[eventType]
}

func TestInMemoryEventStore_AppendVersionsPerRun(t *testing.T) {
	store := NewInMemoryEventStore()
	now := time.Now()

	if err := store.AppendEvent("run-a", NewOrderPlacedEvent("run-a", now, 2)); err != nil {
		t.Fatalf("Expected append to succeed: %v", err)
	}
	if err := store.AppendEvent("run-a", NewDeliveryArrivedEvent("run-a", now, 60000)); err != nil {
		t.Fatalf("Expected append to succeed: %v", err)
	}
	if err := store.AppendEvent("run-b", NewOrderPlacedEvent("run-b", now, 1)); err != nil {
		t.Fatalf("Expected append to succeed: %v", err)
	}

	eventsA, err := store.ReadEvents("run-a", 1)
	if err != nil {
		t.Fatalf("Expected read to succeed: %v", err)
	}
	if len(eventsA) != 2 {
		t.Fatalf("Expected 2 events in run-a, got %d", len(eventsA))
	}
	if eventsA[0].Version() != 1 || eventsA[1].Version() != 2 {
		t.Errorf("Expected versions 1 and 2, got %d and %d",
			eventsA[0].Version(), eventsA[1].Version())
	}

	eventsB, err := store.ReadEvents("run-b", 1)
	if err != nil {
		t.Fatalf("Expected read to succeed: %v", err)
	}
	if len(eventsB) != 1 || eventsB[0].Version() != 1 {
		t.Errorf("Expected run-b to version independently, got %+v", eventsB)
	}
}

func TestInMemoryEventStore_ReadFromVersion(t *testing.T) {
	store := NewInMemoryEventStore()
	now := time.Now()
	for i := 0; i < 3; i++ {
		if err := store.AppendEvent("run", NewOrderPlacedEvent("run", now, i+1)); err != nil {
			t.Fatalf("Expected append to succeed: %v", err)
		}
	}

	tail, err := store.ReadEvents("run", 3)
	if err != nil {
		t.Fatalf("Expected read to succeed: %v", err)
	}
	if len(tail) != 1 || tail[0].Version() != 3 {
		t.Errorf("Expected only version 3, got %+v", tail)
	}

	past, err := store.ReadEvents("run", 4)
	if err != nil {
		t.Fatalf("Expected read to succeed: %v", err)
	}
	if len(past) != 0 {
		t.Errorf("Expected no events past the stream head, got %d", len(past))
	}

	missing, err := store.ReadEvents("unknown-run", 1)
	if err != nil {
		t.Fatalf("Expected read of unknown run to succeed: %v", err)
	}
	if len(missing) != 0 {
		t.Errorf("Expected empty stream for unknown run, got %d events", len(missing))
	}
}

func TestInMemoryEventStore_SubscribeAndUnsubscribe(t *testing.T) {
	store := NewInMemoryEventStore()
	handler := newCapturingHandler(OrderPlacedEvent)
	now := time.Now()

	if err := store.Subscribe([]string{OrderPlacedEvent}, handler); err != nil {
		t.Fatalf("Expected subscribe to succeed: %v", err)
	}

	store.AppendEvent("run", NewOrderPlacedEvent("run", now, 2))
	store.AppendEvent("run", NewDeliveryArrivedEvent("run", now, 60000))

	if len(handler.handled) != 1 {
		t.Fatalf("Expected handler to see only order events, got %d", len(handler.handled))
	}
	if handler.handled[0].Type() != OrderPlacedEvent {
		t.Errorf("Expected %s, got %s", OrderPlacedEvent, handler.handled[0].Type())
	}

	if err := store.Unsubscribe(handler); err != nil {
		t.Fatalf("Expected unsubscribe to succeed: %v", err)
	}
	store.AppendEvent("run", NewOrderPlacedEvent("run", now, 1))
	if len(handler.handled) != 1 {
		t.Errorf("Expected no notifications after unsubscribe, got %d", len(handler.handled))
	}
}

func TestRecorder_AppendsSimulationEvents(t *testing.T) {
	store := NewInMemoryEventStore()
	recorder := NewRecorder(store)

	orderDate := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	deliveryDate := orderDate.AddDate(0, 0, 5)

	recorder.OrderPlaced("run", orderDate, 2)
	recorder.DeliveryScheduled("run", orderDate, deliveryDate, 60000)
	recorder.DeliveryArrived("run", deliveryDate, 60000)

	recorded, err := store.ReadEvents("run", 1)
	if err != nil {
		t.Fatalf("Expected read to succeed: %v", err)
	}
	if len(recorded) != 3 {
		t.Fatalf("Expected 3 events, got %d", len(recorded))
	}

	expectedTypes := []string{OrderPlacedEvent, DeliveryScheduledEvent, DeliveryArrivedEvent}
	for i, eventType := range expectedTypes {
		if recorded[i].Type() != eventType {
			t.Errorf("Expected event %d to be %s, got %s", i, eventType, recorded[i].Type())
		}
	}

	payload, ok := recorded[0].Data().(OrderPlaced)
	if !ok {
		t.Fatalf("Expected OrderPlaced payload, got %T", recorded[0].Data())
	}
	if payload.Railcars != 2 || !payload.Date.Equal(orderDate) {
		t.Errorf("Unexpected order payload: %+v", payload)
	}
}
