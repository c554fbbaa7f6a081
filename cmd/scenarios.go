package cmd

import (
	"github.com/trade-sim/trade-sim/sim"
)

// Built-in scenarios. Each is a template: Resolve() fills unset parameters
// with the kernel defaults, so only the deviations from baseline are listed.
func builtinScenarios() []*sim.Scenario {
	return []*sim.Scenario{
		{
			Name:        "baseline",
			Description: "Current trends continue with gradual improvements",
		},
		{
			Name:        "accelerated_growth",
			Description: "Rapid development with strong export and FDI growth",
			Modifiers: sim.Modifiers{
				ExportGrowth:   1.3,
				GDPGrowth:      1.2,
				FDIGrowth:      1.5,
				ServiceExports: 1.3,
				TourismGrowth:  1.3,
			},
		},
		{
			Name:        "global_slowdown",
			Description: "Reduced global demand depressing exports, FDI and remittances",
			Modifiers: sim.Modifiers{
				ExportGrowth:     0.6,
				GDPGrowth:        0.8,
				FDIGrowth:        0.5,
				RemittanceGrowth: 0.8,
				ServiceExports:   0.6,
			},
			Conditions: map[int]sim.Conditions{
				2026: {sim.CondGlobalEconomicGrowth: -0.02, sim.CondGlobalFDIFlows: -0.10},
				2027: {sim.CondGlobalEconomicGrowth: -0.01, sim.CondDestinationShock: -0.05},
			},
		},
		{
			Name:        "digital_transformation",
			Description: "Accelerated digital adoption lifting service exports",
			Modifiers: sim.Modifiers{
				ServiceExports: 1.8,
			},
			Conditions: map[int]sim.Conditions{
				2028: {sim.CondGlobalOutsourcingDemand: 0.5},
				2030: {sim.CondGlobalOutsourcingDemand: 0.8},
			},
		},
		{
			Name:        "geopolitical_tensions",
			Description: "Trade barriers and instability deterring investment",
			Modifiers: sim.Modifiers{
				FDIGrowth: 0.7,
			},
			Conditions: map[int]sim.Conditions{
				2026: {sim.CondGlobalFDIFlows: -0.15, sim.CondPolicyPressure: -0.5},
				2027: {sim.CondGlobalFDIFlows: -0.10},
			},
		},
	}
}

// BuiltinScenarios returns all built-in scenarios in listing order.
func BuiltinScenarios() []*sim.Scenario {
	return builtinScenarios()
}

// BuiltinScenario returns the named built-in scenario, or nil when unknown.
// A fresh copy is returned each call so flag overrides never leak between
// runs.
func BuiltinScenario(name string) *sim.Scenario {
	for _, s := range builtinScenarios() {
		if s.Name == name {
			return s
		}
	}
	return nil
}
