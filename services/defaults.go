// ABOUTME: Documented defaults for omitted calculation request fields
// ABOUTME: Normalizes a raw request into cooling configs and analysis parameters

package services

import (
	"github.com/zelenskymike/immersive-calculator-sub000/models"
)

// Default request values, applied only when the corresponding field is
// omitted entirely. A present-but-invalid value never falls back to
// these; it fails validation instead.
const (
	DefaultAirRacks             = 10
	DefaultAirPowerPerRackKW    = 20.0
	DefaultAirRackCostUSD       = 50000.0
	DefaultAirPUE               = 1.8
	DefaultImmersionTanks       = 9
	DefaultImmersionPowerKW     = 23.0
	DefaultImmersionTankCostUSD = 80000.0
	DefaultImmersionPUE         = 1.1
	DefaultAnalysisYears        = 5
	DefaultElectricityPriceUSD  = 0.12
	DefaultDiscountRatePct      = 5.0
	DefaultMaintenanceCostPct   = 3.0
)

func intOr(v *int, def int) int {
	if v != nil {
		return *v
	}
	return def
}

func floatOr(v *float64, def float64) float64 {
	if v != nil {
		return *v
	}
	return def
}

// Normalize fills defaults for omitted fields and splits the request
// into the two cooling configs plus shared parameters. No validation
// happens here; out-of-range values pass through to the validator.
func Normalize(req models.CalculationRequest) (air, immersion models.CoolingConfig, params models.AnalysisParams) {
	air = models.CoolingConfig{
		Architecture:   models.ArchitectureAir,
		UnitCount:      intOr(req.AirRacks, DefaultAirRacks),
		PowerPerUnitKW: floatOr(req.AirPowerPerRack, DefaultAirPowerPerRackKW),
		UnitCostUSD:    floatOr(req.AirRackCost, DefaultAirRackCostUSD),
		PUE:            floatOr(req.AirPUE, DefaultAirPUE),
	}
	immersion = models.CoolingConfig{
		Architecture:   models.ArchitectureImmersion,
		UnitCount:      intOr(req.ImmersionTanks, DefaultImmersionTanks),
		PowerPerUnitKW: floatOr(req.ImmersionPowerPerTank, DefaultImmersionPowerKW),
		UnitCostUSD:    floatOr(req.ImmersionTankCost, DefaultImmersionTankCostUSD),
		PUE:            floatOr(req.ImmersionPUE, DefaultImmersionPUE),
	}
	params = models.AnalysisParams{
		AnalysisYears:       intOr(req.AnalysisYears, DefaultAnalysisYears),
		ElectricityPriceUSD: floatOr(req.ElectricityPrice, DefaultElectricityPriceUSD),
		DiscountRatePct:     floatOr(req.DiscountRate, DefaultDiscountRatePct),
		MaintenanceCostPct:  floatOr(req.MaintenanceCost, DefaultMaintenanceCostPct),
	}
	return air, immersion, params
}

// Defaults returns the documented default inputs for the defaults endpoint.
func Defaults() models.CalculationDefaults {
	return models.CalculationDefaults{
		AirRacks:              DefaultAirRacks,
		AirPowerPerRack:       DefaultAirPowerPerRackKW,
		AirRackCost:           DefaultAirRackCostUSD,
		AirPUE:                DefaultAirPUE,
		ImmersionTanks:        DefaultImmersionTanks,
		ImmersionPowerPerTank: DefaultImmersionPowerKW,
		ImmersionTankCost:     DefaultImmersionTankCostUSD,
		ImmersionPUE:          DefaultImmersionPUE,
		AnalysisYears:         DefaultAnalysisYears,
		ElectricityPrice:      DefaultElectricityPriceUSD,
		DiscountRate:          DefaultDiscountRatePct,
		MaintenanceCost:       DefaultMaintenanceCostPct,
	}
}
