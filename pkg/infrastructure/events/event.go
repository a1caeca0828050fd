package events

import (
	"time"
)

// Event is a single recorded occurrence within a simulation run.
type Event interface {
	Type() string
	RunID() string
	Data() interface{}
	Timestamp() time.Time
	Version() int
}

// EventHandler consumes events as they are appended.
type EventHandler interface {
	Handle(event Event) error
	CanHandle(eventType string) bool
}

// EventStore records events per run and fans them out to subscribers.
type EventStore interface {
	AppendEvent(runID string, event Event) error
	ReadEvents(runID string, fromVersion int) ([]Event, error)
	ReadAllEvents(fromPosition int) ([]Event, error)
	Subscribe(eventTypes []string, handler EventHandler) error
	Unsubscribe(handler EventHandler) error
}

// BaseEvent is the default Event implementation.
type BaseEvent struct {
	EventType    string
	Run          string
	EventData    interface{}
	EventTime    time.Time
	EventVersion int
}

func (e BaseEvent) Type() string {
	return e.EventType
}

func (e BaseEvent) RunID() string {
	return e.Run
}

func (e BaseEvent) Data() interface{} {
	return e.EventData
}

func (e BaseEvent) Timestamp() time.Time {
	return e.EventTime
}

func (e BaseEvent) Version() int {
	return e.EventVersion
}

// NewEvent builds an event with the current timestamp.
func NewEvent(eventType, runID string, data interface{}) Event {
	return BaseEvent{
		EventType:    eventType,
		Run:          runID,
		EventData:    data,
		EventTime:    time.Now(),
		EventVersion: 1,
	}
}
