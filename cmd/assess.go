package main

import (
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/seismetric/quake-cli/internal/assess"
	"github.com/seismetric/quake-cli/internal/currency"
)

var assessCmd = &cobra.Command{
	Use:   "assess CITY",
	Short: "Run the full risk assessment for a city",
	Long: `Run all four scoring stages for one city: event likelihood from its
seismic history, hazard severity, structural damage for the given
building profile, and financial loss with a recovery timeline.

Examples:
  # Assess a brick residential building in Guwahati
  assess Guwahati --material Brick --age 45 --density High

  # Ten insured hospital structures under the worst-case scenario
  assess Delhi --type Hospital --structures 10 --coverage 0.6 --scenario Worst`,
	Args: cobra.ExactArgs(1),
	RunE: runAssess,
}

func init() {
	addBuildingFlags(assessCmd)

	f := assessCmd.Flags()
	f.Float64("sqft", 1200, "built-up area per structure in sqft")
	f.Float64("value", 0, "value per structure (0 = estimate from type and size)")
	f.Int("structures", 1, "number of structures")
	f.Float64("coverage", 0, "insurance coverage fraction 0-1")
	f.Float64("damage-override", 0, "override the computed damage percent")
	f.String("scenario", "", "scenario: Best, Expected, Worst")
	f.Int("timeline-months", 0, "recovery timeline horizon (0 = config default)")

	rootCmd.AddCommand(assessCmd)
}

func runAssess(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if months, _ := cmd.Flags().GetInt("timeline-months"); months > 0 {
		cfg.Scorer.RecoveryMonths = months
	}
	if err := cfg.Validate("score"); err != nil {
		return err
	}

	pipeline, err := newPipeline()
	if err != nil {
		return err
	}
	session := newSession(ctx)

	sqft, _ := cmd.Flags().GetFloat64("sqft")
	value, _ := cmd.Flags().GetFloat64("value")
	structures, _ := cmd.Flags().GetInt("structures")
	coverage, _ := cmd.Flags().GetFloat64("coverage")
	override, _ := cmd.Flags().GetFloat64("damage-override")
	scenario, _ := cmd.Flags().GetString("scenario")

	req := assess.Request{
		CityName:       args[0],
		Building:       buildingFromFlags(cmd),
		BuildingSqft:   sqft,
		BuildingValue:  value,
		NumStructures:  structures,
		Coverage:       coverage,
		DamageOverride: override,
		Scenario:       scenario,
	}

	a, err := pipeline.Run(ctx, session, req)
	if err != nil {
		return eris.Wrapf(err, "assess: %s", args[0])
	}

	zap.L().Info("assessment complete",
		zap.String("city", a.City.Name),
		zap.String("id", a.ID),
	)
	printAssessment(a)
	return nil
}

func printAssessment(a *assess.Assessment) {
	fmtr := currency.Default()

	fmt.Printf("Assessment %s\n", a.ID)
	fmt.Println(strings.Repeat("-", 60))
	fmt.Printf("City:                  %s (zone %d)\n", a.City.Name, a.City.EventZone)
	fmt.Printf("Risk propensity score: %.4f\n", a.City.RiskPropensityScore)
	fmt.Printf("Event probability:     %.1f%%\n", a.Probability)
	fmt.Printf("Hazard:                %.2f / 10 (%s)\n", a.City.HazardScore, a.City.HazardLevel)
	fmt.Printf("Damage:                %.1f%% (%s)\n", a.Building.DamagePercent, a.Building.DamageLevel)
	fmt.Printf("Casualty potential:    %s\n", a.Building.CasualtyPotential)
	fmt.Println()
	fmt.Printf("Total loss:            %s\n", fmtr.Format(float64(a.Financial.TotalLoss)))
	fmt.Printf("Insurance recovery:    %s\n", fmtr.Format(float64(a.Financial.InsuranceRecovery)))
	fmt.Printf("Net loss:              %s\n", fmtr.Format(float64(a.Financial.NetLoss)))

	if len(a.Timeline) > 1 {
		fmt.Println("\nRecovery timeline:")
		for _, entry := range a.Timeline {
			if entry.Month%6 != 0 {
				continue
			}
			fmt.Printf("  month %-3d cumulative %s\n", entry.Month, fmtr.Format(entry.CumulativeCost))
		}
	}
}
