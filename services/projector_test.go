package services

import (
	"math"
	"testing"
)

func TestProjectTCOZeroDiscount(t *testing.T) {
	// With a zero rate every year's OPEX counts at face value.
	got := ProjectTCO(500000, 393432, 5, 0)
	want := 500000.0 + 393432.0*5
	if !almostEqual(got, want, 1e-6) {
		t.Errorf("Expected %g, got %g", want, got)
	}
}

func TestProjectTCOMatchesClosedFormAnnuity(t *testing.T) {
	// NPV of a constant annuity: opex * (1 - (1+r)^-n) / r
	capex, opex := 100000.0, 50000.0
	years, rate := 10, 7.5

	r := rate / 100
	want := capex + opex*(1-math.Pow(1+r, -float64(years)))/r

	got := ProjectTCO(capex, opex, years, rate)
	if !almostEqual(got, want, 1e-6) {
		t.Errorf("Expected closed-form %g, got %g", want, got)
	}
}

func TestProjectTCOZeroYears(t *testing.T) {
	if got := ProjectTCO(250000, 99999, 0, 5); got != 250000 {
		t.Errorf("Expected bare CAPEX with no horizon, got %g", got)
	}
}

func TestProjectTCODiscountReducesContribution(t *testing.T) {
	// Higher discount rates shrink the OPEX contribution, never below CAPEX.
	var prev float64 = math.Inf(1)
	for _, rate := range []float64{0, 5, 10, 20, 30} {
		got := ProjectTCO(500000, 393432, 5, rate)
		if got > prev {
			t.Errorf("TCO increased from %g to %g as rate rose to %g%%", prev, got, rate)
		}
		if got < 500000 {
			t.Errorf("TCO %g fell below CAPEX at rate %g%%", got, rate)
		}
		prev = got
	}
}
