package main

import (
	"context"
	"fmt"

	appservices "github.com/tankfarm/reorder/pkg/application/services"
	"github.com/tankfarm/reorder/pkg/domain/entities"
	domainservices "github.com/tankfarm/reorder/pkg/domain/services"
)

func main() {
	ctx := context.Background()

	// Describe a mid-size propane terminal: 20k gallons sold per workday,
	// railcars hold 30k, deliveries take about 5 days.
	profile, err := entities.DeriveDeliveryTimeProfile(5, 2)
	if err != nil {
		fmt.Printf("❌ Invalid delivery profile: %v\n", err)
		return
	}

	params, err := entities.NewSiteParameters(
		entities.Standard, // 95% service level
		20000,             // typical daily usage, gallons
		4000,              // usage variability, gallons
		30000,             // railcar capacity, gallons
		*profile,
		0.5, // price risk tolerance
	)
	if err != nil {
		fmt.Printf("❌ Invalid site parameters: %v\n", err)
		return
	}

	fmt.Println("⛽ Planning terminal reorder policy...")
	fmt.Printf("Daily usage: %.0f gal | Delivery: %.0f±%.0f days | Priority: %s\n\n",
		params.TypicalDailyUsage,
		params.DeliveryProfile.MeanDays,
		params.DeliveryProfile.StdDays,
		params.BusinessPriority)

	targets, err := domainservices.CalculateReorderTargets(params)
	if err != nil {
		fmt.Printf("❌ Calculation failed: %v\n", err)
		return
	}

	fmt.Println("📊 Reorder Targets:")
	fmt.Printf("  Reorder Point:    %.0f gal\n", targets.ReorderPoint)
	fmt.Printf("  Lead Time Demand: %.0f gal\n", targets.LeadTimeDemand)
	fmt.Printf("  Safety Stock:     %.0f gal\n", targets.SafetyStock)
	fmt.Printf("  Railcars:         %d recommended, %d max\n",
		targets.RecommendedRailcars, targets.MaxRailcars)
	fmt.Printf("  Expected Stockouts: %d days/year\n\n", targets.ExpectedStockoutDaysPerYear)

	// Replay the ordering policy under all three demand scenarios.
	runner := appservices.NewScenarioRunner()
	results, err := runner.RunAll(ctx, params, targets.ReorderPoint, appservices.RunnerOptions{
		Days: 90,
		Seed: 42,
	})
	if err != nil {
		fmt.Printf("❌ Simulation failed: %v\n", err)
		return
	}

	fmt.Println("🔮 90-Day Simulation:")
	for _, scenario := range entities.Scenarios() {
		result := results[scenario]
		fmt.Printf("  %-10s avg inventory %d gal | %d railcars ordered | %d near stockouts\n",
			scenario,
			result.Metrics.AverageInventory,
			result.Metrics.TotalRailcars,
			result.Metrics.NearStockoutDays)
	}

	fmt.Println("\n✅ Planning complete!")
}
