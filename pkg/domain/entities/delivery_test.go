package entities

import (
	"errors"
	"testing"
)

func TestDeliveryTimeProfile_Validation(t *testing.T) {
	validProfile, err := NewDeliveryTimeProfile(5, 2, 1, 11)
	if err != nil {
		t.Fatalf("Expected valid profile creation to succeed: %v", err)
	}
	if validProfile.MeanDays != 5 {
		t.Errorf("Expected mean days 5, got %g", validProfile.MeanDays)
	}

	testCases := []struct {
		name        string
		meanDays    float64
		stdDays     float64
		minDays     float64
		maxDays     float64
		expectError string
	}{
		{
			"negative mean",
			-1, 2, 0, 11,
			"invalid parameter delivery.mean_days: cannot be negative, got -1",
		},
		{
			"negative std",
			5, -2, 1, 11,
			"invalid parameter delivery.std_days: cannot be negative, got -2",
		},
		{
			"negative min",
			5, 2, -1, 11,
			"invalid parameter delivery.min_days: cannot be negative, got -1",
		},
		{
			"min above mean",
			5, 2, 6, 11,
			"invalid parameter delivery.min_days: cannot exceed mean_days, got min 6 mean 5",
		},
		{
			"max below mean",
			5, 2, 1, 4,
			"invalid parameter delivery.max_days: cannot be less than mean_days, got max 4 mean 5",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewDeliveryTimeProfile(tc.meanDays, tc.stdDays, tc.minDays, tc.maxDays)
			if err == nil {
				t.Fatalf("Expected error for %s, but got none", tc.name)
			}
			if err.Error() != tc.expectError {
				t.Errorf("Expected error '%s', got '%s'", tc.expectError, err.Error())
			}
			var paramErr *InvalidParameterError
			if !errors.As(err, &paramErr) {
				t.Errorf("Expected InvalidParameterError, got %T", err)
			}
		})
	}
}

func TestDeriveDeliveryTimeProfile(t *testing.T) {
	profile, err := DeriveDeliveryTimeProfile(5, 2)
	if err != nil {
		t.Fatalf("Expected derivation to succeed: %v", err)
	}
	if profile.MinDays != 1 {
		t.Errorf("Expected min days 1, got %g", profile.MinDays)
	}
	if profile.MaxDays != 11 {
		t.Errorf("Expected max days 11, got %g", profile.MaxDays)
	}

	// A tight distribution keeps the derived floor above zero but never
	// above the mean.
	tight, err := DeriveDeliveryTimeProfile(0.5, 0)
	if err != nil {
		t.Fatalf("Expected derivation to succeed: %v", err)
	}
	if tight.MinDays != 0.5 {
		t.Errorf("Expected min days clamped to mean 0.5, got %g", tight.MinDays)
	}
}
