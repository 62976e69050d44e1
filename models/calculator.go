// ABOUTME: Data models for TCO calculation requests and derived cost profiles
// ABOUTME: All entities are created per request and discarded after serialization

package models

// Architecture identifies one of the two cooling architectures under comparison.
type Architecture string

const (
	ArchitectureAir       Architecture = "air"
	ArchitectureImmersion Architecture = "immersion"
)

// CalculationRequest is the raw API input. Pointer fields distinguish an
// omitted value (documented default applies) from a present-but-invalid
// one (rejected by validation, never defaulted).
type CalculationRequest struct {
	AirRacks              *int     `json:"airRacks,omitempty"`
	AirPowerPerRack       *float64 `json:"airPowerPerRack,omitempty"`
	AirRackCost           *float64 `json:"airRackCost,omitempty"`
	AirPUE                *float64 `json:"airPUE,omitempty"`
	ImmersionTanks        *int     `json:"immersionTanks,omitempty"`
	ImmersionPowerPerTank *float64 `json:"immersionPowerPerTank,omitempty"`
	ImmersionTankCost     *float64 `json:"immersionTankCost,omitempty"`
	ImmersionPUE          *float64 `json:"immersionPUE,omitempty"`
	AnalysisYears         *int     `json:"analysisYears,omitempty"`
	ElectricityPrice      *float64 `json:"electricityPrice,omitempty"`
	DiscountRate          *float64 `json:"discountRate,omitempty"`
	MaintenanceCost       *float64 `json:"maintenanceCost,omitempty"`
}

// CoolingConfig describes one architecture's equipment after defaults are applied.
type CoolingConfig struct {
	Architecture   Architecture
	UnitCount      int     // racks (air) or tanks (immersion)
	PowerPerUnitKW float64 // nameplate IT power per unit
	UnitCostUSD    float64
	PUE            float64 // total facility power / IT power
}

// AnalysisParams are the shared financial parameters after defaults are applied.
type AnalysisParams struct {
	AnalysisYears       int
	ElectricityPriceUSD float64 // per kWh
	DiscountRatePct     float64
	MaintenanceCostPct  float64 // annual, as percent of CAPEX
}

// CalculationDefaults lists the documented default inputs, served to
// clients so form UIs stay in sync with the engine.
type CalculationDefaults struct {
	AirRacks              int     `json:"airRacks"`
	AirPowerPerRack       float64 `json:"airPowerPerRack"`
	AirRackCost           float64 `json:"airRackCost"`
	AirPUE                float64 `json:"airPUE"`
	ImmersionTanks        int     `json:"immersionTanks"`
	ImmersionPowerPerTank float64 `json:"immersionPowerPerTank"`
	ImmersionTankCost     float64 `json:"immersionTankCost"`
	ImmersionPUE          float64 `json:"immersionPUE"`
	AnalysisYears         int     `json:"analysisYears"`
	ElectricityPrice      float64 `json:"electricityPrice"`
	DiscountRate          float64 `json:"discountRate"`
	MaintenanceCost       float64 `json:"maintenanceCost"`
}

// CostProfile holds derived per-architecture costs. Immutable once the
// pipeline has filled it.
type CostProfile struct {
	Architecture         Architecture
	UnitCount            int
	PowerPerUnitKW       float64
	PUE                  float64
	TotalPowerKW         float64 // IT load
	FacilityPowerKW      float64 // IT load including cooling overhead
	CapexUSD             float64
	AnnualEnergyMWh      float64
	AnnualElectricityUSD float64
	AnnualMaintenanceUSD float64
	AnnualOpexUSD        float64
	TotalTCOUSD          float64
}

// ComparisonResult holds the savings and efficiency figures derived from
// the two cost profiles. PaybackYears is nil when annual savings are
// exactly zero, which makes the payback period undefined.
type ComparisonResult struct {
	TotalSavingsUSD           float64
	AnnualSavingsUSD          float64
	CapexDifferenceUSD        float64
	PaybackYears              *float64
	ROIPercent                float64
	PUEImprovementPercent     float64
	AnnualEnergySavingsMWh    float64
	AnnualCarbonReductionTons float64
}

// CalculationResult is the full engine output for one request.
type CalculationResult struct {
	Air        CostProfile
	Immersion  CostProfile
	Comparison ComparisonResult
	Params     AnalysisParams
}

// ErrorResponse represents an API error response. Field is set for
// validation failures so clients can address the offending input.
type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
	Code  int    `json:"code"`
}
