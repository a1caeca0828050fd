package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tankfarm/reorder/pkg/application/dto"
	"github.com/tankfarm/reorder/pkg/domain/entities"
)

// Config controls how planning results are rendered.
type Config struct {
	Format    string
	OutputDir string
	Verbose   bool
	Elapsed   time.Duration
}

const dateFormat = "2006-01-02"

// Generate renders a planning result in the configured format.
func Generate(result *dto.PlanningResult, config Config) error {
	switch config.Format {
	case "text":
		return generateTextOutput(result, config)
	case "json":
		return generateJSONOutput(result, config)
	case "csv":
		return generateCSVOutput(result, config)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

// generateTextOutput generates human-readable text output
func generateTextOutput(result *dto.PlanningResult, config Config) error {
	var output string

	targets := result.Targets
	params := result.Parameters

	output += "═══════════════════════════════════════════════════════════════\n"
	output += "              TERMINAL REORDER POINT ANALYSIS\n"
	output += "═══════════════════════════════════════════════════════════════\n\n"

	// Recommendation in railcar terms, matching how operators think about
	// tank farm coverage.
	railcars := decimal.NewFromFloat(targets.ReorderPoint).
		Div(decimal.NewFromFloat(params.RailcarCapacity)).
		Round(1)
	if railcars.LessThan(decimal.NewFromInt(1)) {
		railcars = decimal.NewFromInt(1)
	}
	output += "🚨 RECOMMENDATION\n"
	output += fmt.Sprintf("  Place new orders at %s railcars of product on hand\n", railcars.String())
	output += fmt.Sprintf("  (%s gallons)\n\n", formatGallons(targets.ReorderPoint))

	output += "📊 REORDER TARGETS\n"
	output += "────────────────────────────────────────────────────────────────\n"
	output += fmt.Sprintf("  Reorder Point:        %12s gal\n", formatGallons(targets.ReorderPoint))
	output += fmt.Sprintf("  Lead Time Demand:     %12s gal\n", formatGallons(targets.LeadTimeDemand))
	output += fmt.Sprintf("  Safety Stock:         %12s gal\n", formatGallons(targets.SafetyStock))
	output += fmt.Sprintf("  Recommended Railcars: %12d\n", targets.RecommendedRailcars)
	output += fmt.Sprintf("  Max Railcars:         %12d\n", targets.MaxRailcars)
	output += fmt.Sprintf(
		"  Expected Stockouts:   %12d days/year\n\n",
		targets.ExpectedStockoutDaysPerYear,
	)

	if len(result.Scenarios) > 0 {
		output += "🔮 SIMULATION RESULTS\n"
		output += "────────────────────────────────────────────────────────────────\n"
		for _, outcome := range result.Scenarios {
			metrics := outcome.Metrics
			output += fmt.Sprintf("Scenario: %-12s (%d days, %d orders)\n",
				outcome.Scenario, len(outcome.Series), len(outcome.Orders))
			output += fmt.Sprintf("  Average Inventory:    %12d gal\n", metrics.AverageInventory)
			output += fmt.Sprintf("  Total Railcars:       %12d\n", metrics.TotalRailcars)
			output += fmt.Sprintf("  Near Stockout Days:   %12d\n", metrics.NearStockoutDays)

			if metrics.NearStockoutDays > targets.ExpectedStockoutDaysPerYear {
				output += "  ⚠️  More stockouts than expected; consider increasing safety stock\n"
			}
			if float64(metrics.AverageInventory) > 2*targets.ReorderPoint {
				output += "  💡 Average inventory is high; more aggressive settings would cut holding costs\n"
			}
			output += "\n"
		}
	}

	if config.Verbose && config.Elapsed > 0 {
		output += fmt.Sprintf("Completed in %v\n", config.Elapsed)
	}

	output += "═══════════════════════════════════════════════════════════════\n"

	if config.OutputDir != "" {
		if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		filename := filepath.Join(config.OutputDir, "reorder_results.txt")
		if err := os.WriteFile(filename, []byte(output), 0644); err != nil {
			return fmt.Errorf("failed to write text output: %w", err)
		}
		if config.Verbose {
			fmt.Printf("📄 Text output written to: %s\n", filename)
		}
	} else {
		fmt.Print(output)
	}

	return nil
}

// generateJSONOutput generates JSON output
func generateJSONOutput(result *dto.PlanningResult, config Config) error {
	jsonResult := struct {
		Metadata struct {
			GeneratedAt string `json:"generated_at"`
			Elapsed     string `json:"elapsed"`
		} `json:"metadata"`
		Targets   *entities.ReorderTargets `json:"targets"`
		Scenarios []dto.ScenarioOutcome    `json:"scenarios"`
	}{
		Targets:   result.Targets,
		Scenarios: result.Scenarios,
	}
	jsonResult.Metadata.GeneratedAt = result.GeneratedAt.Format(time.RFC3339)
	jsonResult.Metadata.Elapsed = config.Elapsed.String()

	jsonBytes, err := json.MarshalIndent(jsonResult, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if config.OutputDir != "" {
		if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		filename := filepath.Join(config.OutputDir, "reorder_results.json")
		if err := os.WriteFile(filename, jsonBytes, 0644); err != nil {
			return fmt.Errorf("failed to write JSON output: %w", err)
		}
		if config.Verbose {
			fmt.Printf("📄 JSON output written to: %s\n", filename)
		}
	} else {
		fmt.Printf("%s\n", jsonBytes)
	}

	return nil
}

// generateCSVOutput generates per-scenario CSV files
func generateCSVOutput(result *dto.PlanningResult, config Config) error {
	if config.OutputDir == "" {
		return fmt.Errorf("CSV output requires an output directory (-output)")
	}

	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	for _, outcome := range result.Scenarios {
		seriesPath := filepath.Join(config.OutputDir, outcome.Scenario+"_timeseries.csv")
		if err := writeTimeSeriesCSV(outcome.Series, seriesPath); err != nil {
			return fmt.Errorf("failed to write %s time series CSV: %w", outcome.Scenario, err)
		}

		ordersPath := filepath.Join(config.OutputDir, outcome.Scenario+"_orders.csv")
		if err := writeOrdersCSV(outcome.Orders, ordersPath); err != nil {
			return fmt.Errorf("failed to write %s orders CSV: %w", outcome.Scenario, err)
		}

		if config.Verbose {
			fmt.Printf("📄 %s CSVs written to: %s, %s\n", outcome.Scenario, seriesPath, ordersPath)
		}
	}

	return nil
}

func writeTimeSeriesCSV(series entities.TimeSeries, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"date", "inventory", "railcars_in_transit", "reorder_point", "incoming"}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, day := range series {
		record := []string{
			day.Date.Format(dateFormat),
			strconv.FormatFloat(day.Inventory, 'f', 1, 64),
			strconv.Itoa(day.RailcarsInTransit),
			strconv.FormatFloat(day.ReorderPoint, 'f', 1, 64),
			strconv.FormatFloat(day.Incoming, 'f', 1, 64),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	return nil
}

func writeOrdersCSV(orders entities.OrderLog, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"date", "railcars"}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, order := range orders {
		record := []string{
			order.Date.Format(dateFormat),
			strconv.Itoa(order.Railcars),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	return nil
}

// formatGallons renders a gallon quantity as a whole number for display.
func formatGallons(gallons float64) string {
	return decimal.NewFromFloat(gallons).Round(0).String()
}
