package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/tankfarm/reorder/pkg/application/dto"
	appservices "github.com/tankfarm/reorder/pkg/application/services"
	"github.com/tankfarm/reorder/pkg/domain/entities"
	domainservices "github.com/tankfarm/reorder/pkg/domain/services"
	"github.com/tankfarm/reorder/pkg/infrastructure/config"
	"github.com/tankfarm/reorder/pkg/infrastructure/events"
	"github.com/tankfarm/reorder/pkg/interfaces/cli/output"
)

// Config holds configuration for the plan command
type Config struct {
	ConfigFile string
	Days       int
	Seed       uint64
	Scenario   string
	Format     string
	OutputDir  string
	Threshold  float64
	Verbose    bool
	Help       bool
}

// PlanCommand computes reorder targets and simulates the ordering policy.
type PlanCommand struct {
	config Config
	log    zerolog.Logger
}

// NewPlanCommand creates a new plan command with the given configuration
func NewPlanCommand(cfg Config) *PlanCommand {
	level := zerolog.WarnLevel
	if cfg.Verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	return &PlanCommand{config: cfg, log: logger}
}

// Execute runs the plan command
func (c *PlanCommand) Execute(ctx context.Context) error {
	if c.config.Help {
		c.showHelp()
		return nil
	}

	if c.config.ConfigFile == "" {
		return fmt.Errorf("a config file is required (-config)")
	}

	file, err := config.Load(c.config.ConfigFile)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", c.config.ConfigFile, err)
	}

	params, err := file.SiteParameters()
	if err != nil {
		return fmt.Errorf("invalid site configuration: %w", err)
	}

	c.log.Debug().
		Str("priority", params.BusinessPriority.String()).
		Float64("daily_usage", params.TypicalDailyUsage).
		Float64("railcar_capacity", params.RailcarCapacity).
		Msg("loaded site parameters")

	targets, err := domainservices.CalculateReorderTargets(params)
	if err != nil {
		return fmt.Errorf("failed to calculate reorder targets: %w", err)
	}

	c.log.Debug().
		Float64("reorder_point", targets.ReorderPoint).
		Float64("safety_stock", targets.SafetyStock).
		Int("recommended_railcars", targets.RecommendedRailcars).
		Msg("calculated reorder targets")

	store := events.NewInMemoryEventStore()
	if c.config.Verbose {
		if err := store.Subscribe(
			[]string{events.OrderPlacedEvent, events.DeliveryScheduledEvent, events.DeliveryArrivedEvent},
			&eventLogger{log: c.log},
		); err != nil {
			return fmt.Errorf("failed to subscribe event logger: %w", err)
		}
	}

	opts := appservices.RunnerOptions{
		Days:              c.daysOrDefault(file),
		Seed:              c.seedOrDefault(file),
		LowStockThreshold: c.thresholdOrDefault(file),
		Observer:          events.NewRecorder(store),
	}

	runner := appservices.NewScenarioRunner()
	startTime := time.Now()

	var results []*appservices.ScenarioResult
	if c.config.Scenario == "" || c.config.Scenario == "all" {
		byScenario, err := runner.RunAll(ctx, params, targets.ReorderPoint, opts)
		if err != nil {
			return fmt.Errorf("failed to run scenarios: %w", err)
		}
		for _, scenario := range entities.Scenarios() {
			results = append(results, byScenario[scenario])
		}
	} else {
		scenario, err := entities.ParseScenario(c.config.Scenario)
		if err != nil {
			return err
		}
		result, err := runner.RunOne(params, targets.ReorderPoint, scenario, opts)
		if err != nil {
			return fmt.Errorf("failed to run scenario %s: %w", scenario, err)
		}
		results = append(results, result)
	}
	elapsed := time.Since(startTime)

	c.log.Debug().
		Int("scenarios", len(results)).
		Dur("elapsed", elapsed).
		Msg("simulation complete")

	planning := &dto.PlanningResult{
		Parameters:  params,
		Targets:     targets,
		GeneratedAt: time.Now(),
	}
	for _, result := range results {
		planning.Scenarios = append(planning.Scenarios, dto.ScenarioOutcome{
			Scenario: result.Scenario.String(),
			RunID:    result.RunID,
			Metrics:  result.Metrics,
			Series:   result.Series,
			Orders:   result.Orders,
		})
	}

	if err := output.Generate(planning, output.Config{
		Format:    c.config.Format,
		OutputDir: c.config.OutputDir,
		Verbose:   c.config.Verbose,
		Elapsed:   elapsed,
	}); err != nil {
		return fmt.Errorf("error generating output: %w", err)
	}

	return nil
}

func (c *PlanCommand) daysOrDefault(file *config.File) int {
	if c.config.Days > 0 {
		return c.config.Days
	}
	return file.Days()
}

func (c *PlanCommand) seedOrDefault(file *config.File) uint64 {
	if c.config.Seed != 0 {
		return c.config.Seed
	}
	return file.Simulation.Seed
}

func (c *PlanCommand) thresholdOrDefault(file *config.File) float64 {
	if c.config.Threshold > 0 {
		return c.config.Threshold
	}
	return file.Simulation.LowStockThreshold
}

// eventLogger streams simulation events to the command's logger.
type eventLogger struct {
	log zerolog.Logger
}

func (l *eventLogger) Handle(event events.Event) error {
	l.log.Debug().
		Str("run_id", event.RunID()).
		Str("type", event.Type()).
		Int("version", event.Version()).
		Interface("data", event.Data()).
		Msg("simulation event")
	return nil
}

func (l *eventLogger) CanHandle(eventType string) bool {
	switch eventType {
	case events.OrderPlacedEvent, events.DeliveryScheduledEvent, events.DeliveryArrivedEvent:
		return true
	default:
		return false
	}
}

// showHelp displays the help message
func (c *PlanCommand) showHelp() {
	fmt.Printf(`Terminal Reorder Planner - reorder points and inventory simulation for fuel terminals

USAGE:
    reorder -config <file> [options]

OPTIONS:
    -config <file>    Path to terminal YAML config file (required)
    -days <n>         Simulation horizon in days (default: config value or 90)
    -seed <n>         Base random seed; 0 means time-derived (default: config value)
    -scenario <name>  Scenario to simulate: all, expected, best_case, worst_case (default: all)
    -format <fmt>     Output format: text, json, csv (default: text)
    -output <dir>     Output directory for results (optional; required for csv)
    -threshold <gal>  Near-stockout threshold in gallons (default: config value or 1000)
    -verbose          Enable verbose logging, including the simulation event stream
    -help             Show this help message

CONFIG FILE FORMAT (YAML):

    site:
      business_priority: standard   # standard | high | low_margin
      typical_daily_usage: 20000    # gallons per workday
      usage_variability: 4000       # optional; defaults to 20%% of daily usage
      railcar_capacity: 30000       # gallons per railcar
      delivery:
        mean_days: 5
        std_days: 2
        min_days: 1                 # optional; defaults to max(1, mean - 2*std)
        max_days: 11                # optional; defaults to mean + 3*std
      price_risk_tolerance: 0.5     # 0 = conservative, 1 = aggressive
    simulation:
      days: 90
      seed: 42
      low_stock_threshold: 1000

EXAMPLES:
    # Full three-scenario analysis
    reorder -config terminal.yaml -verbose

    # Reproducible worst-case run, JSON to a results directory
    reorder -config terminal.yaml -scenario worst_case -seed 7 -format json -output results/

    # Export time series and order logs as CSV
    reorder -config terminal.yaml -format csv -output results/
`)
}
