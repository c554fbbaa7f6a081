package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/trade-sim/trade-sim/sim"
	"github.com/trade-sim/trade-sim/sim/report"
)

var (
	// CLI flags for the simulation run
	seed         int64  // Seed for random perturbations
	startYear    int    // First simulated year
	endYear      int    // Last simulated year (inclusive)
	scenarioName string // Built-in scenario name
	scenarioFile string // YAML scenario file (overrides --scenario)
	outputPath   string // Results JSON path ("" = no file)
	logLevel     string // Log verbosity level
	printSummary bool   // Print per-model summary tables after the run

	// CLI flags for optional historical trade data
	tradeDataPath string // product-level trade CSV (sector mapper)
	workbookPath  string // Excel workbook with one sheet per year
	yearDataPath  string // pre-aggregated year/sector/export_value CSV
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "trade-sim",
	Short: "Yearly-step simulator for Bangladesh's structural trade transformation",
}

// runCmd executes the simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the trade transformation simulation",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		var scenario *sim.Scenario
		if scenarioFile != "" {
			scenario, err = sim.LoadScenario(scenarioFile)
			if err != nil {
				logrus.Fatalf("Could not load scenario file: %v", err)
			}
		} else {
			scenario = BuiltinScenario(scenarioName)
			if scenario == nil {
				logrus.Fatalf("Unknown scenario %q; see `trade-sim scenarios`", scenarioName)
			}
		}

		// Flags override the scenario where explicitly set.
		if cmd.Flags().Changed("seed") {
			scenario.Seed = seed
		}
		if cmd.Flags().Changed("start-year") {
			scenario.StartYear = startYear
		}
		if cmd.Flags().Changed("end-year") {
			scenario.EndYear = endYear
		}
		if tradeDataPath != "" {
			scenario.Structural.TradeDataPath = tradeDataPath
		}
		if workbookPath != "" {
			scenario.Structural.WorkbookPath = workbookPath
		}
		if yearDataPath != "" {
			scenario.Structural.YearDataPath = yearDataPath
		}

		engine := sim.NewEngineFromScenario(scenario)
		results := engine.Run()

		if outputPath != "" {
			if err := results.WriteJSON(outputPath); err != nil {
				logrus.Fatalf("Could not write results: %v", err)
			}
			logrus.Infof("results written to %s", outputPath)
		}

		if printSummary {
			tables := []struct {
				title string
				log   *sim.MetricsLog
			}{
				{"Structural Transformation", engine.Structural.Metrics()},
				{"Services Trade", engine.Services.Metrics()},
				{"Investment", engine.Investment.Metrics()},
			}
			for _, t := range tables {
				if err := report.WriteTable(os.Stdout, t.title, report.Summarize(t.log)); err != nil {
					logrus.Fatalf("Could not write summary: %v", err)
				}
			}
		}
	},
}

// scenariosCmd lists the built-in scenarios
var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "List built-in scenarios",
	Run: func(cmd *cobra.Command, args []string) {
		for _, s := range BuiltinScenarios() {
			cmd.Printf("%-24s %s\n", s.Name, s.Description)
		}
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for random perturbations")
	runCmd.Flags().IntVar(&startYear, "start-year", 2025, "First simulated year")
	runCmd.Flags().IntVar(&endYear, "end-year", 2050, "Last simulated year (inclusive)")
	runCmd.Flags().StringVar(&scenarioName, "scenario", "baseline", "Built-in scenario name")
	runCmd.Flags().StringVar(&scenarioFile, "scenario-file", "", "YAML scenario file (overrides --scenario)")
	runCmd.Flags().StringVar(&outputPath, "output", "", "Results JSON file path")
	runCmd.Flags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().BoolVar(&printSummary, "summary", true, "Print per-model summary tables after the run")

	// Historical trade data (all optional; absence means synthetic growth)
	runCmd.Flags().StringVar(&tradeDataPath, "trade-data", "", "Product-level trade CSV (year,hs_code,export_value)")
	runCmd.Flags().StringVar(&workbookPath, "trade-workbook", "", "Excel workbook of yearly sector exports")
	runCmd.Flags().StringVar(&yearDataPath, "year-data", "", "Aggregated trade CSV (year,sector,export_value)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(scenariosCmd)
}
