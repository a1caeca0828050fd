package services

import (
	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/stat"

	"github.com/tankfarm/reorder/pkg/domain/entities"
)

// DefaultLowStockThreshold is the near-stockout cutoff in gallons.
const DefaultLowStockThreshold = 1000.0

// MetricsOptions configure scenario metric aggregation.
type MetricsOptions struct {
	// LowStockThreshold marks a day as a near stockout when inventory ends
	// at or below it. Zero or negative means DefaultLowStockThreshold.
	LowStockThreshold float64
}

// ComputeScenarioMetrics aggregates a completed simulation run. Pure and
// stateless; an empty time series yields zero average inventory.
func ComputeScenarioMetrics(
	series entities.TimeSeries,
	log entities.OrderLog,
	opts MetricsOptions,
) entities.ScenarioMetrics {
	threshold := opts.LowStockThreshold
	if threshold <= 0 {
		threshold = DefaultLowStockThreshold
	}

	metrics := entities.ScenarioMetrics{
		TotalRailcars: log.TotalRailcars(),
	}

	if len(series) == 0 {
		return metrics
	}

	levels := make([]float64, len(series))
	for i, day := range series {
		levels[i] = day.Inventory
		if day.Inventory <= threshold {
			metrics.NearStockoutDays++
		}
	}
	metrics.AverageInventory = decimal.NewFromFloat(stat.Mean(levels, nil)).
		Round(0).
		IntPart()
	return metrics
}
