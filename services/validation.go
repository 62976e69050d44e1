// ABOUTME: Bounds validation for cooling configs and analysis parameters
// ABOUTME: Fails fast with typed errors naming the offending request field

package services

import (
	"fmt"

	"github.com/zelenskymike/immersive-calculator-sub000/models"
)

// ValidationError reports the first request field that violates its
// documented bound. The message always states the bound so API errors
// are deterministic and field-addressable.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// bounds is an inclusive numeric range.
type bounds struct {
	min, max float64
}

func (b bounds) contains(v float64) bool {
	return v >= b.min && v <= b.max
}

// archBounds holds one architecture's validation limits together with
// the request field names used in error messages.
type archBounds struct {
	unitCount      bounds
	powerPerUnitKW bounds
	unitCostUSD    bounds
	pue            bounds

	unitField  string
	powerField string
	costField  string
	pueField   string
}

var airBounds = archBounds{
	unitCount:      bounds{1, 1000},
	powerPerUnitKW: bounds{1, 100},
	unitCostUSD:    bounds{10000, 500000},
	pue:            bounds{1.0, 3.0},
	unitField:      "airRacks",
	powerField:     "airPowerPerRack",
	costField:      "airRackCost",
	pueField:       "airPUE",
}

var immersionBounds = archBounds{
	unitCount:      bounds{1, 500},
	powerPerUnitKW: bounds{5, 200},
	unitCostUSD:    bounds{20000, 1000000},
	pue:            bounds{1.0, 2.0},
	unitField:      "immersionTanks",
	powerField:     "immersionPowerPerTank",
	costField:      "immersionTankCost",
	pueField:       "immersionPUE",
}

func boundsFor(arch models.Architecture) archBounds {
	if arch == models.ArchitectureImmersion {
		return immersionBounds
	}
	return airBounds
}

// ValidateCoolingConfig checks one architecture's config against its
// limits. Every field is checked; out-of-range values are never clamped.
func ValidateCoolingConfig(cfg models.CoolingConfig) error {
	b := boundsFor(cfg.Architecture)

	if !b.unitCount.contains(float64(cfg.UnitCount)) {
		return &ValidationError{
			Field:   b.unitField,
			Message: fmt.Sprintf("must be an integer between %d and %d", int(b.unitCount.min), int(b.unitCount.max)),
		}
	}
	if !b.powerPerUnitKW.contains(cfg.PowerPerUnitKW) {
		return &ValidationError{
			Field:   b.powerField,
			Message: fmt.Sprintf("must be between %g and %g kW", b.powerPerUnitKW.min, b.powerPerUnitKW.max),
		}
	}
	if !b.unitCostUSD.contains(cfg.UnitCostUSD) {
		return &ValidationError{
			Field:   b.costField,
			Message: fmt.Sprintf("must be between %g and %g USD", b.unitCostUSD.min, b.unitCostUSD.max),
		}
	}
	if !b.pue.contains(cfg.PUE) {
		return &ValidationError{
			Field:   b.pueField,
			Message: fmt.Sprintf("must be between %g and %g", b.pue.min, b.pue.max),
		}
	}
	return nil
}

// ValidateAnalysisParams checks the shared financial parameters.
func ValidateAnalysisParams(p models.AnalysisParams) error {
	if p.AnalysisYears < 1 || p.AnalysisYears > 20 {
		return &ValidationError{Field: "analysisYears", Message: "must be an integer between 1 and 20"}
	}
	if p.ElectricityPriceUSD < 0.01 || p.ElectricityPriceUSD > 1.00 {
		return &ValidationError{Field: "electricityPrice", Message: "must be between 0.01 and 1.00 USD/kWh"}
	}
	if p.DiscountRatePct < 0 || p.DiscountRatePct > 30 {
		return &ValidationError{Field: "discountRate", Message: "must be between 0 and 30 percent"}
	}
	if p.MaintenanceCostPct < 0 || p.MaintenanceCostPct > 15 {
		return &ValidationError{Field: "maintenanceCost", Message: "must be between 0 and 15 percent"}
	}
	return nil
}

// FieldBound describes one request field's valid range, served to
// clients so form constraints stay in sync with the engine.
type FieldBound struct {
	Field   string  `json:"field"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Integer bool    `json:"integer"`
}

// RequestBounds returns the validation bounds for every request field.
func RequestBounds() []FieldBound {
	return []FieldBound{
		{Field: "airRacks", Min: 1, Max: 1000, Integer: true},
		{Field: "airPowerPerRack", Min: 1, Max: 100},
		{Field: "airRackCost", Min: 10000, Max: 500000},
		{Field: "airPUE", Min: 1.0, Max: 3.0},
		{Field: "immersionTanks", Min: 1, Max: 500, Integer: true},
		{Field: "immersionPowerPerTank", Min: 5, Max: 200},
		{Field: "immersionTankCost", Min: 20000, Max: 1000000},
		{Field: "immersionPUE", Min: 1.0, Max: 2.0},
		{Field: "analysisYears", Min: 1, Max: 20, Integer: true},
		{Field: "electricityPrice", Min: 0.01, Max: 1.00},
		{Field: "discountRate", Min: 0, Max: 30},
		{Field: "maintenanceCost", Min: 0, Max: 15},
	}
}
