package entities

import (
	"errors"
	"testing"
)

func TestScenario_DemandMultiplier(t *testing.T) {
	testCases := []struct {
		scenario Scenario
		expected float64
	}{
		{BestCase, 0.8},
		{Expected, 1.0},
		{WorstCase, 1.2},
	}

	for _, tc := range testCases {
		t.Run(tc.scenario.String(), func(t *testing.T) {
			if got := tc.scenario.DemandMultiplier(); got != tc.expected {
				t.Errorf("Expected multiplier %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestScenario_LeadTimeDistribution(t *testing.T) {
	profile := DeliveryTimeProfile{MeanDays: 5, StdDays: 2, MinDays: 1, MaxDays: 11}

	testCases := []struct {
		scenario     Scenario
		expectedMean float64
		expectedStd  float64
	}{
		{BestCase, 1, 0.5},
		{WorstCase, 11, 0.5},
		{Expected, 5, 2},
	}

	for _, tc := range testCases {
		t.Run(tc.scenario.String(), func(t *testing.T) {
			mean, std := tc.scenario.LeadTimeDistribution(profile)
			if mean != tc.expectedMean {
				t.Errorf("Expected mean %v, got %v", tc.expectedMean, mean)
			}
			if std != tc.expectedStd {
				t.Errorf("Expected std %v, got %v", tc.expectedStd, std)
			}
		})
	}
}

func TestParseScenario(t *testing.T) {
	for _, scenario := range Scenarios() {
		parsed, err := ParseScenario(scenario.String())
		if err != nil {
			t.Fatalf("Expected %s to parse: %v", scenario, err)
		}
		if parsed != scenario {
			t.Errorf("Expected %v, got %v", scenario, parsed)
		}
	}

	_, err := ParseScenario("average_case")
	if err == nil {
		t.Fatal("Expected error for unknown scenario, but got none")
	}
	var paramErr *InvalidParameterError
	if !errors.As(err, &paramErr) {
		t.Errorf("Expected InvalidParameterError, got %T", err)
	}
}

func TestOrderLog_TotalRailcars(t *testing.T) {
	log := OrderLog{{Railcars: 2}, {Railcars: 1}, {Railcars: 3}}
	if total := log.TotalRailcars(); total != 6 {
		t.Errorf("Expected 6 total railcars, got %d", total)
	}
	if total := (OrderLog{}).TotalRailcars(); total != 0 {
		t.Errorf("Expected 0 total railcars for empty log, got %d", total)
	}
}
