package dto

import (
	"time"

	"github.com/tankfarm/reorder/pkg/domain/entities"
)

// ScenarioOutcome carries one scenario's simulation artifacts for
// presentation layers.
type ScenarioOutcome struct {
	Scenario string                   `json:"scenario"`
	RunID    string                   `json:"run_id"`
	Metrics  entities.ScenarioMetrics `json:"metrics"`
	Series   entities.TimeSeries      `json:"series"`
	Orders   entities.OrderLog        `json:"orders"`
}

// PlanningResult aggregates calculator targets and per-scenario simulation
// results. Everything here is in-memory and regenerated per session.
type PlanningResult struct {
	Parameters  *entities.SiteParameters `json:"parameters"`
	Targets     *entities.ReorderTargets `json:"targets"`
	Scenarios   []ScenarioOutcome        `json:"scenarios"`
	GeneratedAt time.Time                `json:"generated_at"`
}
