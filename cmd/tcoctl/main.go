// ABOUTME: Command line interface for one-off TCO calculations
// ABOUTME: Shares the exact engine code path with the HTTP API

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/zelenskymike/immersive-calculator-sub000/models"
	"github.com/zelenskymike/immersive-calculator-sub000/services"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		airRacks              int
		airPowerPerRack       float64
		airRackCost           float64
		airPUE                float64
		immersionTanks        int
		immersionPowerPerTank float64
		immersionTankCost     float64
		immersionPUE          float64
		analysisYears         int
		electricityPrice      float64
		discountRate          float64
		maintenanceCost       float64
		hoursPerYear          float64
		gridIntensity         float64
	)

	cmd := &cobra.Command{
		Use:           "tcoctl",
		Short:         "Compare air and immersion cooling TCO from the command line",
		Long:          "tcoctl runs one total-cost-of-ownership comparison between air and immersion cooling and prints the result as JSON.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := models.CalculationRequest{
				AirRacks:              &airRacks,
				AirPowerPerRack:       &airPowerPerRack,
				AirRackCost:           &airRackCost,
				AirPUE:                &airPUE,
				ImmersionTanks:        &immersionTanks,
				ImmersionPowerPerTank: &immersionPowerPerTank,
				ImmersionTankCost:     &immersionTankCost,
				ImmersionPUE:          &immersionPUE,
				AnalysisYears:         &analysisYears,
				ElectricityPrice:      &electricityPrice,
				DiscountRate:          &discountRate,
				MaintenanceCost:       &maintenanceCost,
			}

			calc := services.NewTCOCalculator(hoursPerYear, gridIntensity)
			result, err := calc.Calculate(req)
			if err != nil {
				return err
			}

			resp := models.BuildCalculationResponse(uuid.NewString(), time.Now().UTC(), result)
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(resp)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&airRacks, "air-racks", services.DefaultAirRacks, "number of air-cooled racks")
	flags.Float64Var(&airPowerPerRack, "air-power-per-rack", services.DefaultAirPowerPerRackKW, "IT power per rack in kW")
	flags.Float64Var(&airRackCost, "air-rack-cost", services.DefaultAirRackCostUSD, "capital cost per rack in USD")
	flags.Float64Var(&airPUE, "air-pue", services.DefaultAirPUE, "air cooling PUE")
	flags.IntVar(&immersionTanks, "immersion-tanks", services.DefaultImmersionTanks, "number of immersion tanks")
	flags.Float64Var(&immersionPowerPerTank, "immersion-power-per-tank", services.DefaultImmersionPowerKW, "IT power per tank in kW")
	flags.Float64Var(&immersionTankCost, "immersion-tank-cost", services.DefaultImmersionTankCostUSD, "capital cost per tank in USD")
	flags.Float64Var(&immersionPUE, "immersion-pue", services.DefaultImmersionPUE, "immersion cooling PUE")
	flags.IntVar(&analysisYears, "years", services.DefaultAnalysisYears, "analysis horizon in years")
	flags.Float64Var(&electricityPrice, "electricity-price", services.DefaultElectricityPriceUSD, "electricity price in USD/kWh")
	flags.Float64Var(&discountRate, "discount-rate", services.DefaultDiscountRatePct, "discount rate in percent")
	flags.Float64Var(&maintenanceCost, "maintenance-cost", services.DefaultMaintenanceCostPct, "annual maintenance as percent of CAPEX")
	flags.Float64Var(&hoursPerYear, "hours-per-year", services.HoursPerYear, "annualization constant")
	flags.Float64Var(&gridIntensity, "grid-carbon-intensity", services.GridCarbonIntensityKgPerKWh, "grid emission factor in kg CO2/kWh")

	return cmd
}
