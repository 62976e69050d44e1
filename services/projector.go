// ABOUTME: Discounted cost projector rolling annual OPEX across the horizon
// ABOUTME: Computes total TCO as CAPEX plus the NPV of a flat OPEX annuity

package services

import "math"

// ProjectTCO returns capexUSD plus the net present value of a constant
// annual OPEX over analysisYears at the given discount rate:
//
//	tco = capex + sum over year=1..N of opex / (1 + rate)^year
//
// OPEX is flat across the horizon; escalation is deliberately not
// modeled. With a zero discount rate this reduces to
// capex + opex * years exactly.
func ProjectTCO(capexUSD, annualOpexUSD float64, analysisYears int, discountRatePct float64) float64 {
	rate := discountRatePct / 100
	tco := capexUSD
	for year := 1; year <= analysisYears; year++ {
		tco += annualOpexUSD / math.Pow(1+rate, float64(year))
	}
	return tco
}
