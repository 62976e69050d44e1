// ABOUTME: API response structures for the calculate endpoint
// ABOUTME: Assembles the nested airCooling/immersionCooling/comparison JSON

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// EquipmentReport describes one architecture's equipment configuration.
type EquipmentReport struct {
	Units          int     `json:"units"`
	PowerPerUnitKW float64 `json:"powerPerUnitKw"`
	TotalPowerKW   float64 `json:"totalPowerKw"`
	PUE            float64 `json:"pue"`
}

// CostReport holds one architecture's cost breakdown in USD.
type CostReport struct {
	Capex             float64 `json:"capex"`
	AnnualElectricity float64 `json:"annualElectricity"`
	AnnualMaintenance float64 `json:"annualMaintenance"`
	AnnualOpex        float64 `json:"annualOpex"`
	TotalTCO          float64 `json:"totalTco"`
}

// EnergyReport holds one architecture's power and energy figures.
type EnergyReport struct {
	FacilityPowerKW      float64 `json:"facilityPowerKw"`
	AnnualConsumptionMWh float64 `json:"annualConsumptionMwh"`
}

// ArchitectureReport groups equipment, cost, and energy figures for one
// cooling architecture.
type ArchitectureReport struct {
	Equipment EquipmentReport `json:"equipment"`
	Costs     CostReport      `json:"costs"`
	Energy    EnergyReport    `json:"energy"`
}

// SavingsReport holds the financial comparison. PaybackYears serializes
// as null when the payback period is undefined (zero annual savings).
type SavingsReport struct {
	TotalSavings    float64  `json:"totalSavings"`
	AnnualSavings   float64  `json:"annualSavings"`
	CapexDifference float64  `json:"capexDifference"`
	PaybackYears    *float64 `json:"paybackYears"`
	ROIPercent      float64  `json:"roiPercent"`
}

// EfficiencyReport holds the energy and carbon comparison.
type EfficiencyReport struct {
	PUEImprovementPercent     float64 `json:"pueImprovementPercent"`
	AnnualEnergySavingsMWh    float64 `json:"annualEnergySavingsMwh"`
	AnnualCarbonReductionTons float64 `json:"annualCarbonReductionTons"`
}

// ComparisonReport groups savings and efficiency figures.
type ComparisonReport struct {
	Savings    SavingsReport    `json:"savings"`
	Efficiency EfficiencyReport `json:"efficiency"`
}

// ParametersEcho mirrors the shared parameters back to the client,
// including any defaults that were applied.
type ParametersEcho struct {
	AnalysisYears    int     `json:"analysisYears"`
	ElectricityPrice float64 `json:"electricityPrice"`
	DiscountRate     float64 `json:"discountRate"`
	MaintenanceCost  float64 `json:"maintenanceCost"`
}

// CalculationResponse is the full API response for one calculation.
// CalculationID and Timestamp are operational metadata attached per
// response, not part of the calculation contract.
type CalculationResponse struct {
	CalculationID    string             `json:"calculationId"`
	Timestamp        time.Time          `json:"timestamp"`
	AirCooling       ArchitectureReport `json:"airCooling"`
	ImmersionCooling ArchitectureReport `json:"immersionCooling"`
	Comparison       ComparisonReport   `json:"comparison"`
	Parameters       ParametersEcho     `json:"parameters"`
}

// roundUSD rounds a dollar amount to whole cents for presentation.
// Engine math stays float64; only serialized figures are rounded.
func roundUSD(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

func buildArchitectureReport(p CostProfile) ArchitectureReport {
	return ArchitectureReport{
		Equipment: EquipmentReport{
			Units:          p.UnitCount,
			PowerPerUnitKW: p.PowerPerUnitKW,
			TotalPowerKW:   p.TotalPowerKW,
			PUE:            p.PUE,
		},
		Costs: CostReport{
			Capex:             roundUSD(p.CapexUSD),
			AnnualElectricity: roundUSD(p.AnnualElectricityUSD),
			AnnualMaintenance: roundUSD(p.AnnualMaintenanceUSD),
			AnnualOpex:        roundUSD(p.AnnualOpexUSD),
			TotalTCO:          roundUSD(p.TotalTCOUSD),
		},
		Energy: EnergyReport{
			FacilityPowerKW:      p.FacilityPowerKW,
			AnnualConsumptionMWh: p.AnnualEnergyMWh,
		},
	}
}

// BuildCalculationResponse assembles the API response from an engine
// result. The caller supplies the ID and timestamp so cached results
// still carry fresh metadata.
func BuildCalculationResponse(id string, ts time.Time, res CalculationResult) CalculationResponse {
	return CalculationResponse{
		CalculationID:    id,
		Timestamp:        ts,
		AirCooling:       buildArchitectureReport(res.Air),
		ImmersionCooling: buildArchitectureReport(res.Immersion),
		Comparison: ComparisonReport{
			Savings: SavingsReport{
				TotalSavings:    roundUSD(res.Comparison.TotalSavingsUSD),
				AnnualSavings:   roundUSD(res.Comparison.AnnualSavingsUSD),
				CapexDifference: roundUSD(res.Comparison.CapexDifferenceUSD),
				PaybackYears:    res.Comparison.PaybackYears,
				ROIPercent:      res.Comparison.ROIPercent,
			},
			Efficiency: EfficiencyReport{
				PUEImprovementPercent:     res.Comparison.PUEImprovementPercent,
				AnnualEnergySavingsMWh:    res.Comparison.AnnualEnergySavingsMWh,
				AnnualCarbonReductionTons: res.Comparison.AnnualCarbonReductionTons,
			},
		},
		Parameters: ParametersEcho{
			AnalysisYears:    res.Params.AnalysisYears,
			ElectricityPrice: res.Params.ElectricityPriceUSD,
			DiscountRate:     res.Params.DiscountRatePct,
			MaintenanceCost:  res.Params.MaintenanceCostPct,
		},
	}
}
