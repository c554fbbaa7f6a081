// Package sim provides the core yearly-step simulation kernel for the
// Bangladesh trade transformation model.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - structural.go: sector export values, diversification (HHI), value-chain
//     upgrading, capability and industrial-policy indices
//   - services.go: remittance, tourism, BPO/professional export and service
//     FDI time series
//   - investment.go: the GDP / FDI / domestic-investment / SEZ / policy
//     feedback loop
//
// # Architecture
//
// Each model owns its own state and exposes SimulateStep(year), which advances
// the state by exactly one year and returns a snapshot of the metrics for that
// year. Models never call each other; exogenous shocks for a single year are
// handed in by the caller as a read-only Conditions map. The Engine in
// engine.go runs all three models over a year range in a fixed order and
// accumulates the yearly snapshots into a results structure.
//
// Historical trade data is optional. The structural model consults an ordered
// chain of providers (sim/tradedata) and silently falls back to synthetic
// growth whenever no provider has data for a year. Provider failures degrade
// functionality, never correctness: SimulateStep does not return errors.
//
// All randomness flows through a PartitionedRNG (rng.go) seeded once per run,
// so two runs with the same seed and configuration produce bit-identical
// metric histories.
package sim
