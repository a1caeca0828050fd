package entities

import "time"

// PendingDelivery is an in-transit shipment the simulator is waiting on.
type PendingDelivery struct {
	DeliveryDay int     // absolute day index within the run
	Amount      float64 // gallons
}

// DaySnapshot records one simulated day.
type DaySnapshot struct {
	Date              time.Time `json:"date"`
	Inventory         float64   `json:"inventory"`
	RailcarsInTransit int       `json:"railcars_in_transit"` // distinct pending deliveries
	ReorderPoint      float64   `json:"reorder_point"`
	Incoming          float64   `json:"incoming"` // total gallons still in transit
}

// TimeSeries is the day-by-day record of a completed simulation run.
type TimeSeries []DaySnapshot

// OrderEvent records railcars ordered on a given date.
type OrderEvent struct {
	Date     time.Time `json:"date"`
	Railcars int       `json:"railcars"`
}

// OrderLog is the ordered sequence of orders placed during a run.
type OrderLog []OrderEvent

// TotalRailcars sums the railcars across every order in the log.
func (l OrderLog) TotalRailcars() int {
	total := 0
	for _, o := range l {
		total += o.Railcars
	}
	return total
}

// ScenarioMetrics summarizes a completed simulation run for presentation.
type ScenarioMetrics struct {
	AverageInventory int64 `json:"average_inventory"`
	TotalRailcars    int   `json:"total_railcars"`
	NearStockoutDays int   `json:"near_stockout_days"`
}
