package services

import (
	"testing"

	"github.com/zelenskymike/immersive-calculator-sub000/models"
)

func comparisonFixtures() (air, immersion models.CostProfile) {
	air = models.CostProfile{
		Architecture:    models.ArchitectureAir,
		PUE:             1.8,
		CapexUSD:        500000,
		AnnualEnergyMWh: 3153.6,
		AnnualOpexUSD:   393432,
		TotalTCOUSD:     2203354.67,
	}
	immersion = models.CostProfile{
		Architecture:    models.ArchitectureImmersion,
		PUE:             1.1,
		CapexUSD:        720000,
		AnnualEnergyMWh: 1994.652,
		AnnualOpexUSD:   260958.24,
		TotalTCOUSD:     1849812.61,
	}
	return air, immersion
}

func TestCompareDerivations(t *testing.T) {
	air, immersion := comparisonFixtures()

	cmp := NewComparisonCalculator(0).Compare(air, immersion)

	if !almostEqual(cmp.TotalSavingsUSD, 353542.06, 0.01) {
		t.Errorf("Expected TotalSavingsUSD 353542.06, got %.2f", cmp.TotalSavingsUSD)
	}
	if !almostEqual(cmp.AnnualSavingsUSD, 132473.76, 0.01) {
		t.Errorf("Expected AnnualSavingsUSD 132473.76, got %.2f", cmp.AnnualSavingsUSD)
	}
	if cmp.CapexDifferenceUSD != 220000 {
		t.Errorf("Expected CapexDifferenceUSD 220000, got %g", cmp.CapexDifferenceUSD)
	}
	if cmp.PaybackYears == nil {
		t.Fatal("Expected PaybackYears to be set")
	}
	if !almostEqual(*cmp.PaybackYears, 220000/132473.76, 1e-9) {
		t.Errorf("Expected PaybackYears %.4f, got %.4f", 220000/132473.76, *cmp.PaybackYears)
	}
	if !almostEqual(cmp.PUEImprovementPercent, (1.8-1.1)/1.8*100, 1e-9) {
		t.Errorf("Expected PUEImprovementPercent %.3f, got %.3f", (1.8-1.1)/1.8*100, cmp.PUEImprovementPercent)
	}
	if !almostEqual(cmp.AnnualEnergySavingsMWh, 1158.948, 1e-9) {
		t.Errorf("Expected AnnualEnergySavingsMWh 1158.948, got %g", cmp.AnnualEnergySavingsMWh)
	}
	// 1158.948 MWh x 0.4 kg/kWh = 463.5792 tons
	if !almostEqual(cmp.AnnualCarbonReductionTons, 463.5792, 1e-6) {
		t.Errorf("Expected AnnualCarbonReductionTons 463.5792, got %g", cmp.AnnualCarbonReductionTons)
	}
}

func TestCompareNegativeSavingsAreLegitimate(t *testing.T) {
	air, immersion := comparisonFixtures()
	// Make immersion the more expensive option all around.
	immersion.TotalTCOUSD = air.TotalTCOUSD + 100000
	immersion.AnnualOpexUSD = air.AnnualOpexUSD + 5000

	cmp := NewComparisonCalculator(0).Compare(air, immersion)

	if cmp.TotalSavingsUSD >= 0 {
		t.Errorf("Expected negative total savings, got %g", cmp.TotalSavingsUSD)
	}
	if cmp.AnnualSavingsUSD >= 0 {
		t.Errorf("Expected negative annual savings, got %g", cmp.AnnualSavingsUSD)
	}
	if cmp.PaybackYears == nil {
		t.Fatal("Expected PaybackYears to be set for nonzero savings")
	}
	if *cmp.PaybackYears < 0 {
		t.Errorf("Expected non-negative payback, got %g", *cmp.PaybackYears)
	}
}

func TestComparePaybackSentinelOnZeroSavings(t *testing.T) {
	air, immersion := comparisonFixtures()
	immersion.AnnualOpexUSD = air.AnnualOpexUSD

	cmp := NewComparisonCalculator(0).Compare(air, immersion)
	if cmp.PaybackYears != nil {
		t.Errorf("Expected nil PaybackYears for zero annual savings, got %g", *cmp.PaybackYears)
	}
}

func TestCompareCustomGridIntensity(t *testing.T) {
	air, immersion := comparisonFixtures()

	low := NewComparisonCalculator(0.1).Compare(air, immersion)
	high := NewComparisonCalculator(0.8).Compare(air, immersion)

	if !almostEqual(low.AnnualCarbonReductionTons*8, high.AnnualCarbonReductionTons, 1e-6) {
		t.Errorf("Expected carbon reduction to scale with grid intensity: %g vs %g",
			low.AnnualCarbonReductionTons, high.AnnualCarbonReductionTons)
	}
}
