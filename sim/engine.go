package sim

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// YearResults bundles the three model snapshots for one simulated year.
type YearResults struct {
	Year       int                `json:"year"`
	Investment InvestmentSnapshot `json:"investment"`
	Structural StructuralSnapshot `json:"structural_transformation"`
	Services   ServicesSnapshot   `json:"services_trade"`
}

// RunMetadata identifies a simulation run in the results file.
type RunMetadata struct {
	RunID     string `json:"run_id"`
	Scenario  string `json:"scenario"`
	Seed      int64  `json:"seed"`
	StartYear int    `json:"start_year"`
	EndYear   int    `json:"end_year"`
	Timestamp string `json:"timestamp"`
}

// Results is the full output of a run, serialized as a flat JSON file.
type Results struct {
	Metadata RunMetadata   `json:"metadata"`
	Years    []YearResults `json:"yearly_data"`
}

// WriteJSON writes the results to path, creating or truncating the file.
func (r *Results) WriteJSON(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	return nil
}

// Engine runs the three models over a year range in a fixed order:
// investment, structural transformation, services trade. Exogenous shocks
// come from a per-year conditions table supplied by the caller (typically a
// scenario file); the engine itself never moves state between models.
type Engine struct {
	cfg        Config
	scenario   string
	conditions map[int]Conditions

	Structural *StructuralTransformationModel
	Services   *ServicesTradeModel
	Investment *InvestmentModel
}

// NewEngine constructs all three models against a shared PartitionedRNG
// seeded from cfg.Seed. conditions maps year to that year's shocks and may
// be nil.
func NewEngine(cfg Config, scenario string, conditions map[int]Conditions) *Engine {
	cfg.Normalize()
	rng := NewPartitionedRNG(NewSimulationKey(cfg.Seed))
	return &Engine{
		cfg:        cfg,
		scenario:   scenario,
		conditions: conditions,
		Structural: NewStructuralTransformationModel(cfg.Structural, rng.ForSubsystem(SubsystemStructural)),
		Services:   NewServicesTradeModel(cfg.Services, rng.ForSubsystem(SubsystemServices)),
		Investment: NewInvestmentModel(cfg.Investment, rng.ForSubsystem(SubsystemInvestment)),
	}
}

// Run simulates every year in [StartYear, EndYear] and returns the collected
// results. Each SimulateStep is atomic with respect to its model's state, so
// a Results snapshot is always internally consistent.
func (e *Engine) Run() *Results {
	results := &Results{
		Metadata: RunMetadata{
			RunID:     uuid.NewString(),
			Scenario:  e.scenario,
			Seed:      e.cfg.Seed,
			StartYear: e.cfg.StartYear,
			EndYear:   e.cfg.EndYear,
			Timestamp: time.Now().Format("2006-01-02 15:04:05"),
		},
	}
	logrus.Infof("starting %s simulation: %d-%d, seed=%d",
		e.scenario, e.cfg.StartYear, e.cfg.EndYear, e.cfg.Seed)

	for year := e.cfg.StartYear; year <= e.cfg.EndYear; year++ {
		conditions := e.conditions[year]
		results.Years = append(results.Years, YearResults{
			Year:       year,
			Investment: e.Investment.SimulateStep(year, conditions),
			Structural: e.Structural.SimulateStep(year),
			Services:   e.Services.SimulateStep(year, conditions),
		})
	}

	logrus.Infof("simulation complete: %d years", len(results.Years))
	return results
}
