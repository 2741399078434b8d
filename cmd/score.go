package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seismetric/quake-cli/internal/currency"
	"github.com/seismetric/quake-cli/internal/event"
	"github.com/seismetric/quake-cli/internal/finance"
	"github.com/seismetric/quake-cli/internal/hazard"
	"github.com/seismetric/quake-cli/internal/model"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Run one scoring stage in isolation",
	Long: `Run a single stage of the risk pipeline on explicit inputs.

Stages:
  event   Event likelihood from seismic history (log-ratio score and probability).
  hazard  Hazard severity 0-10 from magnitude, depth, fault activity, and soil.
  vuln    Structural damage percent from material, age, density, and hazard level.
  impact  Financial loss, insurance recovery, and net loss.

Examples:
  # Likelihood for an active region
  score event --frequency 8 --fault High --years-since 2

  # Hazard for a shallow moderate quake on stiff soil
  score hazard --magnitude 6 --depth 10 --fault Medium --soil Stiff

  # Damage for an old brick building in a dense area
  score vuln --material Brick --age 45 --density High --hazard-level "Very High"

  # Loss for ten insured structures
  score impact --damage 45 --value 2000000 --structures 10 --coverage 0.5`,
}

var scoreEventCmd = &cobra.Command{
	Use:   "event",
	Short: "Score event likelihood from seismic history",
	RunE: func(cmd *cobra.Command, _ []string) error {
		frequency, _ := cmd.Flags().GetFloat64("frequency")
		faultStr, _ := cmd.Flags().GetString("fault")
		yearsSince, _ := cmd.Flags().GetFloat64("years-since")
		yearsAhead, _ := cmd.Flags().GetInt("years-ahead")

		fault := model.ParseFaultActivity(faultStr)
		score := event.ScoreAt(frequency, fault, yearsSince, cfg.Scorer.EventWeight, yearsAhead)

		fmt.Printf("Risk propensity score: %.4f\n", score)
		fmt.Printf("Event probability:     %.1f%%\n", event.Probability(score))
		return nil
	},
}

var scoreHazardCmd = &cobra.Command{
	Use:   "hazard",
	Short: "Score hazard severity for a quake profile",
	RunE: func(cmd *cobra.Command, _ []string) error {
		magnitude, _ := cmd.Flags().GetFloat64("magnitude")
		depth, _ := cmd.Flags().GetFloat64("depth")
		faultStr, _ := cmd.Flags().GetString("fault")
		soilStr, _ := cmd.Flags().GetString("soil")

		score := hazard.Score(magnitude, depth,
			model.ParseFaultActivity(faultStr), model.ParseSoilType(soilStr))

		fmt.Printf("Hazard score: %.2f / 10\n", score)
		fmt.Printf("Hazard level: %s\n", hazard.Categorize(score))
		return nil
	},
}

var scoreVulnCmd = &cobra.Command{
	Use:   "vuln",
	Short: "Score structural vulnerability for a building profile",
	RunE: func(cmd *cobra.Command, _ []string) error {
		b := buildingFromFlags(cmd)

		pipeline, err := newPipeline()
		if err != nil {
			return err
		}
		result := pipeline.AssessBuilding(b)

		fmt.Printf("Damage:    %.1f%% (%s)\n", result.DamagePercent, result.DamageLevel)
		fmt.Printf("Casualty potential: %s\n", result.CasualtyPotential)
		fmt.Println("\nContributing factors:")
		for name, v := range result.Factors {
			fmt.Printf("  %-12s %.2f\n", name, v)
		}
		return nil
	},
}

var scoreImpactCmd = &cobra.Command{
	Use:   "impact",
	Short: "Score financial impact for a damage estimate",
	RunE: func(cmd *cobra.Command, _ []string) error {
		damage, _ := cmd.Flags().GetFloat64("damage")
		value, _ := cmd.Flags().GetFloat64("value")
		structures, _ := cmd.Flags().GetInt("structures")
		coverage, _ := cmd.Flags().GetFloat64("coverage")
		scenarioStr, _ := cmd.Flags().GetString("scenario")

		if scenarioStr != "" {
			damage = finance.ApplyScenario(damage, finance.ParseScenario(scenarioStr))
		}

		result := finance.Impact(model.FinancialInput{
			DamagePercent:     damage,
			BuildingValue:     value,
			NumStructures:     structures,
			InsuranceCoverage: coverage,
		})

		fmtr := currency.Default()
		fmt.Printf("Total loss:         %s\n", fmtr.Format(float64(result.TotalLoss)))
		fmt.Printf("Insurance recovery: %s\n", fmtr.Format(float64(result.InsuranceRecovery)))
		fmt.Printf("Net loss:           %s\n", fmtr.Format(float64(result.NetLoss)))
		return nil
	},
}

// buildingFromFlags reads the shared building profile flags.
func buildingFromFlags(cmd *cobra.Command) model.BuildingRecord {
	buildingType, _ := cmd.Flags().GetString("type")
	age, _ := cmd.Flags().GetInt("age")
	material, _ := cmd.Flags().GetString("material")
	density, _ := cmd.Flags().GetString("density")
	retrofit, _ := cmd.Flags().GetBool("retrofit")
	irregular, _ := cmd.Flags().GetBool("irregular")
	hazardLevel, _ := cmd.Flags().GetString("hazard-level")

	return model.BuildingRecord{
		Type:                 model.ParseBuildingType(buildingType),
		AgeYears:             age,
		Material:             model.ParseMaterial(material),
		PopulationDensity:    model.ParsePopulationDensity(density),
		HasRetrofitting:      retrofit,
		IrregularShape:       irregular,
		PredictedHazardLevel: model.ParseHazardLevel(hazardLevel),
	}
}

// addBuildingFlags registers the building profile flags used by vuln
// and assess.
func addBuildingFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("type", "Residential", "building type: Residential, Commercial, Industrial, School, Hospital")
	f.Int("age", 20, "building age in years")
	f.String("material", "Mixed", "construction material: Concrete, Steel, Brick, Wood, Mixed")
	f.String("density", "Medium", "population density: Low, Medium, High")
	f.Bool("retrofit", false, "building has seismic retrofitting")
	f.Bool("irregular", false, "building has an irregular shape")
	f.String("hazard-level", "Moderate", "hazard level: Low, Moderate, High, Very High")
}

func init() {
	f := scoreEventCmd.Flags()
	f.Float64("frequency", 0, "earthquakes recorded in the past decade")
	f.String("fault", "Low", "nearby fault activity: Low, Medium, High")
	f.Float64("years-since", 5, "years since the last significant event")
	f.Int("years-ahead", 0, "shift the score this many years into the future")

	f = scoreHazardCmd.Flags()
	f.Float64("magnitude", 5.0, "average magnitude")
	f.Float64("depth", 10, "hypocenter depth in km")
	f.String("fault", "Low", "nearby fault activity: Low, Medium, High")
	f.String("soil", "Stiff", "soil type: Rock, Stiff, Soft, VerySoft")

	addBuildingFlags(scoreVulnCmd)

	f = scoreImpactCmd.Flags()
	f.Float64("damage", 0, "damage percent 0-100")
	f.Float64("value", 0, "value per structure")
	f.Int("structures", 1, "number of structures")
	f.Float64("coverage", 0, "insurance coverage fraction 0-1")
	f.String("scenario", "", "scenario: Best, Expected, Worst")

	scoreCmd.AddCommand(scoreEventCmd, scoreHazardCmd, scoreVulnCmd, scoreImpactCmd)
	rootCmd.AddCommand(scoreCmd)
}
