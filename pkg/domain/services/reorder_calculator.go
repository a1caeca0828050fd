package services

import (
	"math"

	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/tankfarm/reorder/pkg/domain/entities"
)

// BusinessDayFactor converts calendar lead-time days to business days.
// Delivery clocks run on a 7-day week while usage and ordering run on a
// 5-day work week.
const BusinessDayFactor = 5.0 / 7.0

// annualBusinessDays approximates the number of ordering days per year.
const annualBusinessDays = 250

// CalculateReorderTargets converts a site's operating profile into a reorder
// point, safety stock buffer and railcar order recommendations.
//
//	Reorder Point = Lead Time Demand + Safety Stock
//
// Lead-time demand is expected consumption while an order is in transit.
// Safety stock combines demand and lead-time variability as independent
// variances, scaled by the z-score of the site's target service level.
// Deterministic: identical parameters always yield identical targets.
func CalculateReorderTargets(params *entities.SiteParameters) (*entities.ReorderTargets, error) {
	if params == nil {
		return nil, &entities.InvalidParameterError{Field: "params", Reason: "must not be nil"}
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	serviceLevel, err := params.ServiceLevel()
	if err != nil {
		return nil, err
	}

	businessDaysLead := params.DeliveryProfile.MeanDays * BusinessDayFactor
	leadTimeDemand := params.TypicalDailyUsage * businessDaysLead

	// Exact inverse CDF of the standard normal at the service level.
	zScore := distuv.UnitNormal.Quantile(serviceLevel)

	// Variance scales linearly with independent days, hence sqrt on the
	// horizon for demand and the independent-variance combination below.
	demandUncertainty := params.UsageVariability * math.Sqrt(businessDaysLead)
	leadTimeUncertainty := params.TypicalDailyUsage * params.DeliveryProfile.StdDays * BusinessDayFactor
	safetyStock := zScore * math.Hypot(demandUncertainty, leadTimeUncertainty)

	reorderPoint := leadTimeDemand + safetyStock

	minRailcars := RailcarsToCover(leadTimeDemand, params.RailcarCapacity)
	if minRailcars < 1 {
		minRailcars = 1
	}
	maxRailcars := RailcarsToCover(reorderPoint, params.RailcarCapacity)
	if maxRailcars < minRailcars {
		maxRailcars = minRailcars
	}

	// Tolerance 0 orders up to full reorder-point coverage, tolerance 1
	// orders only what lead-time demand requires.
	riskAdjusted := float64(minRailcars) +
		float64(maxRailcars-minRailcars)*(1-params.PriceRiskTolerance)

	return &entities.ReorderTargets{
		ReorderPoint:                reorderPoint,
		RecommendedRailcars:         int(minRailcars),
		MaxRailcars:                 int(math.Ceil(riskAdjusted)),
		SafetyStock:                 safetyStock,
		ExpectedStockoutDaysPerYear: int(math.Floor(annualBusinessDays * (1 - serviceLevel))),
		LeadTimeDemand:              leadTimeDemand,
	}, nil
}

// RailcarsToCover returns the whole railcars needed to cover the given
// gallons. Decimal division keeps exact multiples of the capacity from
// spilling into an extra car through float error.
func RailcarsToCover(gallons, capacity float64) int64 {
	if gallons <= 0 {
		return 0
	}
	return decimal.NewFromFloat(gallons).
		Div(decimal.NewFromFloat(capacity)).
		Ceil().
		IntPart()
}
