// ABOUTME: Comparison analyzer deriving savings, ROI, payback, and efficiency metrics
// ABOUTME: Consumes the two architecture cost profiles produced by the pipeline

package services

import (
	"math"

	"github.com/zelenskymike/immersive-calculator-sub000/models"
)

// GridCarbonIntensityKgPerKWh is the default grid emission factor.
// Region-specific deployments override it through NewComparisonCalculator.
const GridCarbonIntensityKgPerKWh = 0.4

// ComparisonCalculator derives the comparison result from two cost profiles.
type ComparisonCalculator struct {
	gridIntensityKgPerKWh float64
}

// NewComparisonCalculator creates a comparison calculator. A non-positive
// grid intensity selects the default 0.4 kg CO2/kWh.
func NewComparisonCalculator(gridIntensityKgPerKWh float64) *ComparisonCalculator {
	if gridIntensityKgPerKWh <= 0 {
		gridIntensityKgPerKWh = GridCarbonIntensityKgPerKWh
	}
	return &ComparisonCalculator{gridIntensityKgPerKWh: gridIntensityKgPerKWh}
}

// Compare derives savings and efficiency figures. Positive savings mean
// immersion wins; negative values are legitimate results, not errors.
func (c *ComparisonCalculator) Compare(air, immersion models.CostProfile) models.ComparisonResult {
	totalSavings := air.TotalTCOUSD - immersion.TotalTCOUSD
	annualSavings := air.AnnualOpexUSD - immersion.AnnualOpexUSD
	capexDifference := immersion.CapexUSD - air.CapexUSD

	// Payback is undefined when annual savings are exactly zero; the nil
	// sentinel lets consumers render N/A instead of dividing by zero.
	var payback *float64
	if annualSavings != 0 {
		p := math.Abs(capexDifference / annualSavings)
		payback = &p
	}

	var roiPercent float64
	if immersion.CapexUSD != 0 {
		roiPercent = totalSavings / immersion.CapexUSD * 100
	}

	var pueImprovement float64
	if air.PUE != 0 {
		pueImprovement = (air.PUE - immersion.PUE) / air.PUE * 100
	}

	energySavingsMWh := air.AnnualEnergyMWh - immersion.AnnualEnergyMWh
	carbonReductionTons := energySavingsMWh * 1000 * c.gridIntensityKgPerKWh / 1000

	return models.ComparisonResult{
		TotalSavingsUSD:           totalSavings,
		AnnualSavingsUSD:          annualSavings,
		CapexDifferenceUSD:        capexDifference,
		PaybackYears:              payback,
		ROIPercent:                roiPercent,
		PUEImprovementPercent:     pueImprovement,
		AnnualEnergySavingsMWh:    energySavingsMWh,
		AnnualCarbonReductionTons: carbonReductionTons,
	}
}
