package entities

// ReorderTargets is the calculator's output: the inventory level that should
// trigger a new order and the railcar counts that back it. All fields are
// derived; recompute whenever SiteParameters changes.
type ReorderTargets struct {
	ReorderPoint                float64 `json:"reorder_point"`
	RecommendedRailcars         int     `json:"recommended_railcars"`
	MaxRailcars                 int     `json:"max_railcars"`
	SafetyStock                 float64 `json:"safety_stock"`
	ExpectedStockoutDaysPerYear int     `json:"expected_stockout_days_per_year"`
	LeadTimeDemand              float64 `json:"lead_time_demand"`
}
