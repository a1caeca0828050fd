package events

import "time"

// Recorder bridges simulation runs to an event store. It satisfies the
// application layer's RunObserver interface.
type Recorder struct {
	store EventStore
}

// NewRecorder creates a recorder writing to the given store.
func NewRecorder(store EventStore) *Recorder {
	return &Recorder{store: store}
}

func (r *Recorder) OrderPlaced(runID string, date time.Time, railcars int) {
	_ = r.store.AppendEvent(runID, NewOrderPlacedEvent(runID, date, railcars))
}

func (r *Recorder) DeliveryScheduled(runID string, orderDate, deliveryDate time.Time, amount float64) {
	_ = r.store.AppendEvent(runID, NewDeliveryScheduledEvent(runID, orderDate, deliveryDate, amount))
}

func (r *Recorder) DeliveryArrived(runID string, date time.Time, amount float64) {
	_ = r.store.AppendEvent(runID, NewDeliveryArrivedEvent(runID, date, amount))
}
