// ABOUTME: Facility cost model computing CAPEX, power draw, and annual OPEX
// ABOUTME: Pure per-architecture stage of the TCO pipeline

package services

import (
	"github.com/zelenskymike/immersive-calculator-sub000/models"
)

// HoursPerYear is the standard annualization constant (365 days, no
// leap-year adjustment). Deployments with other conventions override it
// through NewCostCalculator.
const HoursPerYear = 8760.0

// CostCalculator derives a CostProfile from a validated cooling config.
type CostCalculator struct {
	hoursPerYear float64
}

// NewCostCalculator creates a cost calculator. A non-positive
// hoursPerYear selects the standard 8760-hour year.
func NewCostCalculator(hoursPerYear float64) *CostCalculator {
	if hoursPerYear <= 0 {
		hoursPerYear = HoursPerYear
	}
	return &CostCalculator{hoursPerYear: hoursPerYear}
}

// Profile computes the cost profile for one architecture. Pure function
// of its inputs; TotalTCOUSD is filled later by the projector.
func (c *CostCalculator) Profile(cfg models.CoolingConfig, params models.AnalysisParams) models.CostProfile {
	totalPowerKW := float64(cfg.UnitCount) * cfg.PowerPerUnitKW
	facilityPowerKW := totalPowerKW * cfg.PUE
	capexUSD := float64(cfg.UnitCount) * cfg.UnitCostUSD

	annualEnergyKWh := facilityPowerKW * c.hoursPerYear
	annualElectricityUSD := annualEnergyKWh * params.ElectricityPriceUSD
	annualMaintenanceUSD := capexUSD * params.MaintenanceCostPct / 100

	return models.CostProfile{
		Architecture:         cfg.Architecture,
		UnitCount:            cfg.UnitCount,
		PowerPerUnitKW:       cfg.PowerPerUnitKW,
		PUE:                  cfg.PUE,
		TotalPowerKW:         totalPowerKW,
		FacilityPowerKW:      facilityPowerKW,
		CapexUSD:             capexUSD,
		AnnualEnergyMWh:      annualEnergyKWh / 1000,
		AnnualElectricityUSD: annualElectricityUSD,
		AnnualMaintenanceUSD: annualMaintenanceUSD,
		AnnualOpexUSD:        annualElectricityUSD + annualMaintenanceUSD,
	}
}
