package sim

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Modifiers scale base growth rates after defaults are applied, so one
// scenario file can shift a whole family of trajectories without restating
// every parameter. A zero value means "leave unchanged".
type Modifiers struct {
	ExportGrowth     float64 `yaml:"export_growth_multiplier"`
	GDPGrowth        float64 `yaml:"gdp_growth_multiplier"`
	FDIGrowth        float64 `yaml:"fdi_growth_multiplier"`
	RemittanceGrowth float64 `yaml:"remittance_growth_multiplier"`
	ServiceExports   float64 `yaml:"service_exports_multiplier"`
	TourismGrowth    float64 `yaml:"tourism_growth_multiplier"`
}

// Scenario is a loadable simulation setup: kernel configuration plus growth
// modifiers and per-year exogenous shocks.
type Scenario struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`

	Config `yaml:",inline"`

	Modifiers  Modifiers          `yaml:"modifiers,omitempty"`
	Conditions map[int]Conditions `yaml:"conditions,omitempty"`
}

// LoadScenario reads a YAML scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario file: %w", err)
	}
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scenario file %s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = "baseline"
	}
	logrus.Infof("loaded scenario %q from %s", s.Name, path)
	return &s, nil
}

// mul scales v by factor when factor is set.
func mul(v *float64, factor float64) {
	if factor != 0 {
		*v *= factor
	}
}

// Resolve normalizes the embedded configuration and applies the growth
// modifiers to the base rates they govern. The returned Config is ready for
// NewEngine.
func (s *Scenario) Resolve() Config {
	cfg := s.Config
	cfg.Normalize()

	mul(&cfg.Structural.ExportGrowthScale, s.Modifiers.ExportGrowth)
	mul(&cfg.Investment.GDPGrowthRate, s.Modifiers.GDPGrowth)
	mul(&cfg.Investment.FDIBaseGrowth, s.Modifiers.FDIGrowth)
	mul(&cfg.Services.ServiceFDIGrowthRate, s.Modifiers.FDIGrowth)
	mul(&cfg.Services.WorkerGrowthRate, s.Modifiers.RemittanceGrowth)
	mul(&cfg.Services.BPOGrowthRate, s.Modifiers.ServiceExports)
	mul(&cfg.Services.ProfessionalGrowthRate, s.Modifiers.ServiceExports)
	mul(&cfg.Services.TouristArrivalGrowth, s.Modifiers.TourismGrowth)

	return cfg
}

// NewEngineFromScenario resolves the scenario and constructs an engine with
// its conditions table.
func NewEngineFromScenario(s *Scenario) *Engine {
	return NewEngine(s.Resolve(), s.Name, s.Conditions)
}
