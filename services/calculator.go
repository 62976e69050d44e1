// ABOUTME: TCO calculation pipeline composing validation, cost model, projection, and comparison
// ABOUTME: Stateless and synchronous; one result or one validation error per invocation

package services

import (
	"github.com/zelenskymike/immersive-calculator-sub000/models"
)

// TCOCalculator runs the full air vs immersion comparison.
type TCOCalculator struct {
	cost       *CostCalculator
	comparison *ComparisonCalculator
}

// NewTCOCalculator creates a calculator. Non-positive arguments select
// the standard constants (8760 h/year, 0.4 kg CO2/kWh).
func NewTCOCalculator(hoursPerYear, gridIntensityKgPerKWh float64) *TCOCalculator {
	return &TCOCalculator{
		cost:       NewCostCalculator(hoursPerYear),
		comparison: NewComparisonCalculator(gridIntensityKgPerKWh),
	}
}

// Calculate normalizes and validates the request, then produces the full
// comparison. Validation runs before any arithmetic; on failure a
// *ValidationError is returned and nothing is partially computed.
func (c *TCOCalculator) Calculate(req models.CalculationRequest) (models.CalculationResult, error) {
	airCfg, immersionCfg, params := Normalize(req)

	if err := ValidateCoolingConfig(airCfg); err != nil {
		return models.CalculationResult{}, err
	}
	if err := ValidateCoolingConfig(immersionCfg); err != nil {
		return models.CalculationResult{}, err
	}
	if err := ValidateAnalysisParams(params); err != nil {
		return models.CalculationResult{}, err
	}

	air := c.cost.Profile(airCfg, params)
	immersion := c.cost.Profile(immersionCfg, params)

	air.TotalTCOUSD = ProjectTCO(air.CapexUSD, air.AnnualOpexUSD, params.AnalysisYears, params.DiscountRatePct)
	immersion.TotalTCOUSD = ProjectTCO(immersion.CapexUSD, immersion.AnnualOpexUSD, params.AnalysisYears, params.DiscountRatePct)

	return models.CalculationResult{
		Air:        air,
		Immersion:  immersion,
		Comparison: c.comparison.Compare(air, immersion),
		Params:     params,
	}, nil
}
