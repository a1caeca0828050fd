package services

import (
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/tankfarm/reorder/pkg/domain/entities"
	"github.com/tankfarm/reorder/pkg/domain/services"
)

// RunObserver is notified as a simulation run processes orders and
// deliveries. Observers must not mutate run state; they exist so callers can
// record or log events without the simulator knowing about storage.
type RunObserver interface {
	OrderPlaced(runID string, date time.Time, railcars int)
	DeliveryScheduled(runID string, orderDate, deliveryDate time.Time, amount float64)
	DeliveryArrived(runID string, date time.Time, amount float64)
}

// SimulatorOptions configure a single simulation run.
type SimulatorOptions struct {
	// Days is the run horizon; must be at least 1.
	Days int
	// StartDate anchors day 0. Zero value means today.
	StartDate time.Time
	// Seed fixes the run's random stream. Zero means a time-derived seed.
	Seed uint64
	// RunID labels observer notifications. Optional.
	RunID string
	// Observer receives order/delivery notifications. Optional.
	Observer RunObserver
}

// SimulationState carries the mutable state of one run between day steps.
// It is initialized at simulation start, mutated once per simulated day and
// discarded when the run completes.
type SimulationState struct {
	Day       int
	Inventory float64
	Pending   []entities.PendingDelivery
}

// NewSimulationState seeds a run's state. Starting inventory sits exactly at
// the reorder point: deliberate policy, so tight-margin scenarios surface
// reorder pressure from day one.
func NewSimulationState(reorderPoint float64) SimulationState {
	return SimulationState{Inventory: reorderPoint}
}

// Simulator replays the terminal's ordering policy against one scenario,
// day by day. Each simulator owns its own random stream, so concurrent runs
// never share generator state.
type Simulator struct {
	params       *entities.SiteParameters
	reorderPoint float64
	scenario     entities.Scenario
	opts         SimulatorOptions

	demand   distuv.Normal
	leadTime distuv.Normal
}

// NewSimulator validates the inputs and prepares a run.
func NewSimulator(
	params *entities.SiteParameters,
	reorderPoint float64,
	scenario entities.Scenario,
	opts SimulatorOptions,
) (*Simulator, error) {
	if params == nil {
		return nil, &entities.InvalidParameterError{Field: "params", Reason: "must not be nil"}
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if opts.Days < 1 {
		return nil, &entities.InvalidParameterError{
			Field:  "days",
			Reason: "must be at least 1",
		}
	}

	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	if opts.StartDate.IsZero() {
		opts.StartDate = time.Now()
	}
	src := rand.NewSource(seed)

	leadMean, leadStd := scenario.LeadTimeDistribution(params.DeliveryProfile)

	return &Simulator{
		params:       params,
		reorderPoint: reorderPoint,
		scenario:     scenario,
		opts:         opts,
		demand: distuv.Normal{
			Mu:    params.TypicalDailyUsage * scenario.DemandMultiplier(),
			Sigma: params.UsageVariability,
			Src:   src,
		},
		leadTime: distuv.Normal{
			Mu:    leadMean,
			Sigma: leadStd,
			Src:   src,
		},
	}, nil
}

// Run executes the configured horizon and returns the daily time series and
// order log. Both are immutable once the run completes.
func (s *Simulator) Run() (entities.TimeSeries, entities.OrderLog) {
	state := NewSimulationState(s.reorderPoint)
	series := make(entities.TimeSeries, 0, s.opts.Days)
	log := entities.OrderLog{}

	for state.Day < s.opts.Days {
		snapshot, order := s.Step(&state)
		series = append(series, snapshot)
		if order != nil {
			log = append(log, *order)
		}
	}
	return series, log
}

// Step advances the state by one simulated day and returns that day's
// snapshot, plus the order placed (nil when none). The per-day sequence is
// fixed: deliveries arrive, weekday demand is consumed, projected coverage
// is checked against the reorder point, and any new order is scheduled.
func (s *Simulator) Step(state *SimulationState) (entities.DaySnapshot, *entities.OrderEvent) {
	date := s.opts.StartDate.AddDate(0, 0, state.Day)

	// Deliveries due today are applied in full. The comparison is <= so a
	// zero-day lead time cannot strand a shipment in the pending set.
	var stillPending []entities.PendingDelivery
	for _, d := range state.Pending {
		if d.DeliveryDay <= state.Day {
			state.Inventory += d.Amount
			if s.opts.Observer != nil {
				s.opts.Observer.DeliveryArrived(s.opts.RunID, date, d.Amount)
			}
		} else {
			stillPending = append(stillPending, d)
		}
	}
	state.Pending = stillPending

	// Demand only lands on workdays. Unmet demand above current stock is
	// capped, not backlogged: inventory never goes negative.
	if wd := date.Weekday(); wd != time.Saturday && wd != time.Sunday {
		demand := s.demand.Rand()
		if demand < 0 {
			demand = 0
		}
		if demand > state.Inventory {
			demand = state.Inventory
		}
		state.Inventory -= demand
	}

	// Continuous-review policy evaluated once per day: order whenever
	// projected coverage (on hand plus in transit) falls below the reorder
	// point, enough whole railcars to close the shortage.
	incoming := 0.0
	for _, d := range state.Pending {
		incoming += d.Amount
	}

	var order *entities.OrderEvent
	if state.Inventory+incoming < s.reorderPoint {
		shortage := s.reorderPoint - (state.Inventory + incoming)
		railcars := int(services.RailcarsToCover(shortage, s.params.RailcarCapacity))
		if railcars < 1 {
			railcars = 1
		}

		leadDays := s.drawLeadTime()
		amount := float64(railcars) * s.params.RailcarCapacity
		state.Pending = append(state.Pending, entities.PendingDelivery{
			DeliveryDay: state.Day + leadDays,
			Amount:      amount,
		})
		incoming += amount
		order = &entities.OrderEvent{Date: date, Railcars: railcars}

		if s.opts.Observer != nil {
			s.opts.Observer.OrderPlaced(s.opts.RunID, date, railcars)
			s.opts.Observer.DeliveryScheduled(
				s.opts.RunID, date, date.AddDate(0, 0, leadDays), amount)
		}
	}

	snapshot := entities.DaySnapshot{
		Date:              date,
		Inventory:         state.Inventory,
		RailcarsInTransit: len(state.Pending),
		ReorderPoint:      s.reorderPoint,
		Incoming:          incoming,
	}
	state.Day++
	return snapshot, order
}

// drawLeadTime samples a scenario-conditioned delivery lead time, clamped to
// the profile bounds and truncated to whole days.
func (s *Simulator) drawLeadTime() int {
	draw := s.leadTime.Rand()
	profile := s.params.DeliveryProfile
	if draw < profile.MinDays {
		draw = profile.MinDays
	}
	if draw > profile.MaxDays {
		draw = profile.MaxDays
	}
	return int(draw)
}
