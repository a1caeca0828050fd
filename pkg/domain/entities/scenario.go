package entities

import "fmt"

// Scenario names a demand and lead-time parameterization used to bound
// simulated outcomes.
type Scenario int

const (
	Expected Scenario = iota
	BestCase
	WorstCase
)

// scenarioLeadTimeStd is the lead-time spread used by the bounding scenarios,
// which pin the mean to the profile's min or max.
const scenarioLeadTimeStd = 0.5

// String method for Scenario enum
func (s Scenario) String() string {
	switch s {
	case Expected:
		return "expected"
	case BestCase:
		return "best_case"
	case WorstCase:
		return "worst_case"
	default:
		return "Unknown"
	}
}

// DemandMultiplier scales typical daily usage for the scenario.
func (s Scenario) DemandMultiplier() float64 {
	switch s {
	case BestCase:
		return 0.8
	case WorstCase:
		return 1.2
	default:
		return 1.0
	}
}

// LeadTimeDistribution returns the mean and standard deviation of the
// delivery lead-time draw for the scenario. Draws are still clamped to the
// profile's [min, max] range.
func (s Scenario) LeadTimeDistribution(profile DeliveryTimeProfile) (mean, std float64) {
	switch s {
	case BestCase:
		return profile.MinDays, scenarioLeadTimeStd
	case WorstCase:
		return profile.MaxDays, scenarioLeadTimeStd
	default:
		return profile.MeanDays, profile.StdDays
	}
}

// ParseScenario converts a configuration string to a Scenario.
func ParseScenario(s string) (Scenario, error) {
	switch s {
	case "expected":
		return Expected, nil
	case "best_case":
		return BestCase, nil
	case "worst_case":
		return WorstCase, nil
	default:
		return 0, &InvalidParameterError{
			Field:  "scenario",
			Reason: fmt.Sprintf("must be one of expected, best_case, worst_case, got %q", s),
		}
	}
}

// Scenarios lists every scenario in presentation order.
func Scenarios() []Scenario {
	return []Scenario{Expected, BestCase, WorstCase}
}
