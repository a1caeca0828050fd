package entities

import "fmt"

// SiteParameters describes a terminal's operating profile. Values are fixed
// at construction; build a new value to change anything.
type SiteParameters struct {
	BusinessPriority   BusinessPriority
	TypicalDailyUsage  float64 // gallons sold per workday
	UsageVariability   float64 // standard deviation of daily usage, gallons
	RailcarCapacity    float64 // gallons per railcar
	DeliveryProfile    DeliveryTimeProfile
	PriceRiskTolerance float64 // 0 = conservative, 1 = aggressive
}

// NewSiteParameters creates a validated SiteParameters
func NewSiteParameters(
	priority BusinessPriority,
	typicalDailyUsage, usageVariability, railcarCapacity float64,
	profile DeliveryTimeProfile,
	priceRiskTolerance float64,
) (*SiteParameters, error) {
	p := &SiteParameters{
		BusinessPriority:   priority,
		TypicalDailyUsage:  typicalDailyUsage,
		UsageVariability:   usageVariability,
		RailcarCapacity:    railcarCapacity,
		DeliveryProfile:    profile,
		PriceRiskTolerance: priceRiskTolerance,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks every field against its allowed range. The calculator and
// simulator call this eagerly so a hand-built literal cannot slip bad values
// past the constructor.
func (p *SiteParameters) Validate() error {
	if p.TypicalDailyUsage <= 0 {
		return &InvalidParameterError{
			Field:  "typical_daily_usage",
			Reason: fmt.Sprintf("must be positive, got %g", p.TypicalDailyUsage),
		}
	}
	if p.UsageVariability < 0 {
		return &InvalidParameterError{
			Field:  "usage_variability",
			Reason: fmt.Sprintf("cannot be negative, got %g", p.UsageVariability),
		}
	}
	if p.RailcarCapacity <= 0 {
		return &InvalidParameterError{
			Field:  "railcar_capacity",
			Reason: fmt.Sprintf("must be positive, got %g", p.RailcarCapacity),
		}
	}
	if p.PriceRiskTolerance < 0 || p.PriceRiskTolerance > 1 {
		return &InvalidParameterError{
			Field:  "price_risk_tolerance",
			Reason: fmt.Sprintf("must be between 0 and 1, got %g", p.PriceRiskTolerance),
		}
	}
	if _, err := NewDeliveryTimeProfile(
		p.DeliveryProfile.MeanDays,
		p.DeliveryProfile.StdDays,
		p.DeliveryProfile.MinDays,
		p.DeliveryProfile.MaxDays,
	); err != nil {
		return err
	}
	return nil
}

// ServiceLevel returns the service level implied by the site's business
// priority.
func (p *SiteParameters) ServiceLevel() (float64, error) {
	return p.BusinessPriority.ServiceLevel()
}
