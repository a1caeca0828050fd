package config

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tankfarm/reorder/pkg/domain/entities"
)

// DeliveryConfig mirrors the delivery section of a terminal config file.
// Min and max bounds are optional; absent values are derived from the mean
// and standard deviation.
type DeliveryConfig struct {
	MeanDays float64  `yaml:"mean_days"`
	StdDays  float64  `yaml:"std_days"`
	MinDays  *float64 `yaml:"min_days"`
	MaxDays  *float64 `yaml:"max_days"`
}

// SiteConfig mirrors the site section of a terminal config file.
type SiteConfig struct {
	BusinessPriority   string         `yaml:"business_priority"`
	TypicalDailyUsage  float64        `yaml:"typical_daily_usage"`
	UsageVariability   *float64       `yaml:"usage_variability"` // default: 20% of daily usage
	RailcarCapacity    float64        `yaml:"railcar_capacity"`
	Delivery           DeliveryConfig `yaml:"delivery"`
	PriceRiskTolerance float64        `yaml:"price_risk_tolerance"`
}

// SimulationConfig mirrors the simulation section of a terminal config file.
type SimulationConfig struct {
	Days              int     `yaml:"days"`
	Seed              uint64  `yaml:"seed"`
	LowStockThreshold float64 `yaml:"low_stock_threshold"`
}

// File is a parsed terminal configuration.
type File struct {
	Site       SiteConfig       `yaml:"site"`
	Simulation SimulationConfig `yaml:"simulation"`
}

// DefaultSimulationDays is used when the config omits a horizon.
const DefaultSimulationDays = 90

// defaultVariabilityRatio sizes usage variability when the config omits it,
// matching the terminal intake form's 20% assumption.
const defaultVariabilityRatio = 0.2

// Load reads and parses a terminal config file. Unknown keys are rejected so
// a typo cannot silently fall back to a default.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a terminal config document.
func Parse(data []byte) (*File, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var file File
	if err := decoder.Decode(&file); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &file, nil
}

// SiteParameters applies defaults and builds the validated parameter model.
func (f *File) SiteParameters() (*entities.SiteParameters, error) {
	priority, err := entities.ParseBusinessPriority(f.Site.BusinessPriority)
	if err != nil {
		return nil, err
	}

	variability := f.Site.TypicalDailyUsage * defaultVariabilityRatio
	if f.Site.UsageVariability != nil {
		variability = *f.Site.UsageVariability
	}

	profile, err := f.deliveryProfile()
	if err != nil {
		return nil, err
	}

	return entities.NewSiteParameters(
		priority,
		f.Site.TypicalDailyUsage,
		variability,
		f.Site.RailcarCapacity,
		*profile,
		f.Site.PriceRiskTolerance,
	)
}

// Days returns the simulation horizon, defaulted when omitted.
func (f *File) Days() int {
	if f.Simulation.Days == 0 {
		return DefaultSimulationDays
	}
	return f.Simulation.Days
}

func (f *File) deliveryProfile() (*entities.DeliveryTimeProfile, error) {
	d := f.Site.Delivery
	if d.MinDays == nil && d.MaxDays == nil {
		return entities.DeriveDeliveryTimeProfile(d.MeanDays, d.StdDays)
	}

	minDays := d.MeanDays - 2*d.StdDays
	if minDays < 1 {
		minDays = 1
	}
	if minDays > d.MeanDays {
		minDays = d.MeanDays
	}
	if d.MinDays != nil {
		minDays = *d.MinDays
	}

	maxDays := d.MeanDays + 3*d.StdDays
	if d.MaxDays != nil {
		maxDays = *d.MaxDays
	}

	return entities.NewDeliveryTimeProfile(d.MeanDays, d.StdDays, minDays, maxDays)
}
