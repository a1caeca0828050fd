package events

import "time"

const (
	OrderPlacedEvent       = "order.placed"
	DeliveryScheduledEvent = "delivery.scheduled"
	DeliveryArrivedEvent   = "delivery.arrived"
)

type OrderPlaced struct {
	Date     time.Time `json:"date"`
	Railcars int       `json:"railcars"`
}

type DeliveryScheduled struct {
	OrderDate    time.Time `json:"order_date"`
	DeliveryDate time.Time `json:"delivery_date"`
	Amount       float64   `json:"amount"`
}

type DeliveryArrived struct {
	Date   time.Time `json:"date"`
	Amount float64   `json:"amount"`
}

func NewOrderPlacedEvent(runID string, date time.Time, railcars int) Event {
	return NewEvent(OrderPlacedEvent, runID, OrderPlaced{Date: date, Railcars: railcars})
}

func NewDeliveryScheduledEvent(runID string, orderDate, deliveryDate time.Time, amount float64) Event {
	return NewEvent(DeliveryScheduledEvent, runID, DeliveryScheduled{
		OrderDate:    orderDate,
		DeliveryDate: deliveryDate,
		Amount:       amount,
	})
}

func NewDeliveryArrivedEvent(runID string, date time.Time, amount float64) Event {
	return NewEvent(DeliveryArrivedEvent, runID, DeliveryArrived{Date: date, Amount: amount})
}
