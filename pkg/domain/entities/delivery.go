package entities

import "fmt"

// DeliveryTimeProfile describes the distribution of days between placing an
// order and the railcars arriving.
type DeliveryTimeProfile struct {
	MeanDays float64
	StdDays  float64
	MinDays  float64
	MaxDays  float64
}

// NewDeliveryTimeProfile creates a validated DeliveryTimeProfile
func NewDeliveryTimeProfile(meanDays, stdDays, minDays, maxDays float64) (*DeliveryTimeProfile, error) {
	if meanDays < 0 {
		return nil, &InvalidParameterError{
			Field:  "delivery.mean_days",
			Reason: fmt.Sprintf("cannot be negative, got %g", meanDays),
		}
	}
	if stdDays < 0 {
		return nil, &InvalidParameterError{
			Field:  "delivery.std_days",
			Reason: fmt.Sprintf("cannot be negative, got %g", stdDays),
		}
	}
	if minDays < 0 {
		return nil, &InvalidParameterError{
			Field:  "delivery.min_days",
			Reason: fmt.Sprintf("cannot be negative, got %g", minDays),
		}
	}
	if minDays > meanDays {
		return nil, &InvalidParameterError{
			Field:  "delivery.min_days",
			Reason: fmt.Sprintf("cannot exceed mean_days, got min %g mean %g", minDays, meanDays),
		}
	}
	if meanDays > maxDays {
		return nil, &InvalidParameterError{
			Field:  "delivery.max_days",
			Reason: fmt.Sprintf("cannot be less than mean_days, got max %g mean %g", maxDays, meanDays),
		}
	}

	return &DeliveryTimeProfile{
		MeanDays: meanDays,
		StdDays:  stdDays,
		MinDays:  minDays,
		MaxDays:  maxDays,
	}, nil
}

// DeriveDeliveryTimeProfile fills the min/max bounds from mean and standard
// deviation the way the terminal intake form does: the floor is two standard
// deviations under the mean (never below one day), the ceiling three above.
func DeriveDeliveryTimeProfile(meanDays, stdDays float64) (*DeliveryTimeProfile, error) {
	minDays := meanDays - 2*stdDays
	if minDays < 1 {
		minDays = 1
	}
	if minDays > meanDays {
		minDays = meanDays
	}
	maxDays := meanDays + 3*stdDays
	return NewDeliveryTimeProfile(meanDays, stdDays, minDays, maxDays)
}
