package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestBuildCalculationResponseRoundsMoney(t *testing.T) {
	payback := 1.6607062409944433
	res := CalculationResult{
		Air: CostProfile{
			Architecture:         ArchitectureAir,
			UnitCount:            10,
			CapexUSD:             500000,
			AnnualElectricityUSD: 378432.123456,
			AnnualMaintenanceUSD: 15000.005,
			AnnualOpexUSD:        393432.128456,
			TotalTCOUSD:          2203354.665479624,
		},
		Immersion: CostProfile{
			Architecture: ArchitectureImmersion,
			UnitCount:    9,
			CapexUSD:     720000,
		},
		Comparison: ComparisonResult{
			TotalSavingsUSD: 353542.053390746,
			PaybackYears:    &payback,
		},
		Params: AnalysisParams{AnalysisYears: 5, ElectricityPriceUSD: 0.12, DiscountRatePct: 5, MaintenanceCostPct: 3},
	}

	resp := BuildCalculationResponse("test-id", time.Now().UTC(), res)

	if resp.AirCooling.Costs.AnnualElectricity != 378432.12 {
		t.Errorf("Expected electricity rounded to 378432.12, got %g", resp.AirCooling.Costs.AnnualElectricity)
	}
	if resp.AirCooling.Costs.AnnualMaintenance != 15000.01 {
		t.Errorf("Expected maintenance rounded to 15000.01, got %g", resp.AirCooling.Costs.AnnualMaintenance)
	}
	if resp.AirCooling.Costs.TotalTCO != 2203354.67 {
		t.Errorf("Expected TCO rounded to 2203354.67, got %g", resp.AirCooling.Costs.TotalTCO)
	}
	if resp.Comparison.Savings.TotalSavings != 353542.05 {
		t.Errorf("Expected savings rounded to 353542.05, got %g", resp.Comparison.Savings.TotalSavings)
	}
	// Payback is a duration, not money; passed through unrounded.
	if *resp.Comparison.Savings.PaybackYears != payback {
		t.Errorf("Expected payback %g, got %g", payback, *resp.Comparison.Savings.PaybackYears)
	}
}

func TestCalculationResponseSerializesNullPayback(t *testing.T) {
	resp := BuildCalculationResponse("test-id", time.Now().UTC(), CalculationResult{
		Comparison: ComparisonResult{PaybackYears: nil},
	})

	b, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("Failed to marshal response: %v", err)
	}
	if !strings.Contains(string(b), `"paybackYears":null`) {
		t.Errorf("Expected paybackYears to serialize as null, got %s", string(b))
	}
}

func TestCalculationResponseTimestampISO8601(t *testing.T) {
	ts := time.Date(2025, 6, 15, 12, 30, 45, 0, time.UTC)
	resp := BuildCalculationResponse("test-id", ts, CalculationResult{})

	b, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("Failed to marshal response: %v", err)
	}
	if !strings.Contains(string(b), `"timestamp":"2025-06-15T12:30:45Z"`) {
		t.Errorf("Expected ISO-8601 timestamp, got %s", string(b))
	}
	if !strings.Contains(string(b), `"calculationId":"test-id"`) {
		t.Errorf("Expected calculationId in payload, got %s", string(b))
	}
}

func TestRequestDistinguishesOmittedFromZero(t *testing.T) {
	var omitted CalculationRequest
	if err := json.Unmarshal([]byte(`{}`), &omitted); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}
	if omitted.DiscountRate != nil {
		t.Error("Expected omitted discountRate to be nil")
	}

	var explicit CalculationRequest
	if err := json.Unmarshal([]byte(`{"discountRate": 0}`), &explicit); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}
	if explicit.DiscountRate == nil || *explicit.DiscountRate != 0 {
		t.Error("Expected explicit zero discountRate to be present")
	}
}
