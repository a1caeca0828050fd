package entities

import "fmt"

// BusinessPriority represents how tolerant a terminal's business case is of
// running out of product.
type BusinessPriority int

const (
	// High priority sites accept very rare runouts (99% service level).
	High BusinessPriority = iota
	// Standard commercial sites accept occasional runouts (95%).
	Standard
	// LowMargin sites accept more frequent runouts (90%).
	LowMargin
)

// String method for BusinessPriority enum
func (p BusinessPriority) String() string {
	switch p {
	case High:
		return "high"
	case Standard:
		return "standard"
	case LowMargin:
		return "low_margin"
	default:
		return "Unknown"
	}
}

// ServiceLevel returns the target probability of not stocking out during a
// lead-time window for this priority.
func (p BusinessPriority) ServiceLevel() (float64, error) {
	switch p {
	case High:
		return 0.99, nil
	case Standard:
		return 0.95, nil
	case LowMargin:
		return 0.90, nil
	default:
		return 0, &ConfigurationError{
			Detail: fmt.Sprintf("no service level mapped for business priority %d", int(p)),
		}
	}
}

// ParseBusinessPriority converts a configuration string to a BusinessPriority.
func ParseBusinessPriority(s string) (BusinessPriority, error) {
	switch s {
	case "high":
		return High, nil
	case "standard":
		return Standard, nil
	case "low_margin":
		return LowMargin, nil
	default:
		return 0, &InvalidParameterError{
			Field:  "business_priority",
			Reason: fmt.Sprintf("must be one of high, standard, low_margin, got %q", s),
		}
	}
}
