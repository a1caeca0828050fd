package events

import (
	"sync"
)

// InMemoryEventStore keeps per-run event streams in memory. Notification is
// synchronous so a CLI run sees every event before it exits; handlers are
// expected to be fast.
type InMemoryEventStore struct {
	runs        map[string][]Event
	subscribers map[string][]EventHandler
	mutex       sync.RWMutex
	allEvents   []Event
}

// NewInMemoryEventStore creates an empty store.
func NewInMemoryEventStore() *InMemoryEventStore {
	return &InMemoryEventStore{
		runs:        make(map[string][]Event),
		subscribers: make(map[string][]EventHandler),
		allEvents:   make([]Event, 0),
	}
}

func (s *InMemoryEventStore) AppendEvent(runID string, event Event) error {
	s.mutex.Lock()

	versioned := BaseEvent{
		EventType:    event.Type(),
		Run:          runID,
		EventData:    event.Data(),
		EventTime:    event.Timestamp(),
		EventVersion: len(s.runs[runID]) + 1,
	}

	s.runs[runID] = append(s.runs[runID], versioned)
	s.allEvents = append(s.allEvents, versioned)
	handlers := append([]EventHandler(nil), s.subscribers[versioned.EventType]...)
	s.mutex.Unlock()

	for _, handler := range handlers {
		if handler.CanHandle(versioned.EventType) {
			// Handler errors do not fail the append; the run's record is
			// already durable in the stream.
			_ = handler.Handle(versioned)
		}
	}

	return nil
}

func (s *InMemoryEventStore) ReadEvents(runID string, fromVersion int) ([]Event, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	events, exists := s.runs[runID]
	if !exists {
		return []Event{}, nil
	}

	if fromVersion < 1 {
		fromVersion = 1
	}
	if fromVersion > len(events) {
		return []Event{}, nil
	}

	return events[fromVersion-1:], nil
}

func (s *InMemoryEventStore) ReadAllEvents(fromPosition int) ([]Event, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if fromPosition < 0 {
		fromPosition = 0
	}
	if fromPosition >= len(s.allEvents) {
		return []Event{}, nil
	}

	return s.allEvents[fromPosition:], nil
}

func (s *InMemoryEventStore) Subscribe(eventTypes []string, handler EventHandler) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for _, eventType := range eventTypes {
		s.subscribers[eventType] = append(s.subscribers[eventType], handler)
	}

	return nil
}

func (s *InMemoryEventStore) Unsubscribe(handler EventHandler) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for eventType, handlers := range s.subscribers {
		kept := make([]EventHandler, 0, len(handlers))
		for _, h := range handlers {
			if h != handler {
				kept = append(kept, h)
			}
		}
		s.subscribers[eventType] = kept
	}

	return nil
}
