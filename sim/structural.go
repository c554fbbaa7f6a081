package sim

import (
	"math"
	"math/rand"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/trade-sim/trade-sim/sim/tradedata"
)

// Metric names tracked by the structural model.
const (
	MetricExportDiversityHHI = "export_diversity_hhi"
	MetricExportSectorCount  = "export_sector_count"
	MetricCapabilityIndex    = "capability_index"
	MetricPolicyEffect       = "industrial_policy_effectiveness"
	MetricAvgVCP             = "avg_value_chain_position"
)

// Policy regime labels, reporting only.
const (
	RegimeWeak     = "weak"
	RegimeModerate = "moderate"
	RegimeStrong   = "strong"
)

// sectorState is the mutable per-sector record. Sectors are seeded at
// construction and persist for the whole horizon; none are ever removed.
type sectorState struct {
	value      float64 // export value, billion USD
	complexity float64 // [0,1]
	vcp        float64 // value chain position [0,1]
}

// StructuralSnapshot is the per-year result of the structural model.
type StructuralSnapshot struct {
	ExportDiversityHHI float64            `json:"export_diversity_hhi"`
	ExportSectors      map[string]float64 `json:"export_sectors"`
	ValueChainPosition map[string]float64 `json:"value_chain_position"`
	CapabilityIndex    float64            `json:"capability_index"`
	PolicyEffect       float64            `json:"industrial_policy_effectiveness"`
	PolicyRegime       string             `json:"policy_regime"`
	UsedRealData       bool               `json:"used_real_data"`
}

// StructuralTransformationModel evolves per-sector export values and the
// aggregate diversification, value-chain, capability and industrial-policy
// indices, one year at a time.
type StructuralTransformationModel struct {
	cfg   StructuralConfig
	rng   *rand.Rand
	data  *tradedata.Chain
	names []string // sector iteration order, sorted for determinism
	state map[string]*sectorState

	capability float64
	policy     float64

	metrics *MetricsLog
}

// NewStructuralTransformationModel seeds sector state from cfg and attaches
// whatever trade-data providers can be constructed. Provider failures are
// logged and leave the model in synthetic-only mode; this never returns an
// error by design.
func NewStructuralTransformationModel(cfg StructuralConfig, rng *rand.Rand) *StructuralTransformationModel {
	cfg.normalize()

	var providers []tradedata.Provider
	if cfg.TradeDataPath != "" {
		mapper, err := tradedata.NewSectorMapper(cfg.TradeDataPath)
		if err != nil {
			logrus.Warnf("could not initialize sector mapper, relying on synthetic data: %v", err)
		} else {
			providers = append(providers, mapper)
		}
	}
	if cfg.WorkbookPath != "" {
		wb, err := tradedata.NewWorkbookHandler(cfg.WorkbookPath)
		if err != nil {
			logrus.Warnf("could not load trade workbook, relying on synthetic data: %v", err)
		} else {
			providers = append(providers, wb)
		}
	}
	if cfg.YearDataPath != "" {
		h, err := tradedata.NewCSVHandler(cfg.YearDataPath)
		if err != nil {
			logrus.Warnf("could not load trade data csv, relying on synthetic data: %v", err)
		} else {
			providers = append(providers, h)
		}
	}

	m := &StructuralTransformationModel{
		cfg:        cfg,
		rng:        rng,
		data:       tradedata.NewChain(providers...),
		state:      make(map[string]*sectorState, len(cfg.ExportSectors)),
		capability: cfg.InitialCapabilityIndex,
		policy:     cfg.InitialPolicyEffectiveness,
		metrics: NewMetricsLog(
			MetricExportDiversityHHI,
			MetricExportSectorCount,
			MetricAvgVCP,
			MetricCapabilityIndex,
			MetricPolicyEffect,
		),
	}
	for name, sc := range cfg.ExportSectors {
		m.names = append(m.names, name)
		m.state[name] = &sectorState{
			value:      sc.Value,
			complexity: sc.Complexity,
			vcp:        sc.ValueChainPosition,
		}
	}
	sort.Strings(m.names)
	return m
}

// Metrics exposes the model's metric histories.
func (m *StructuralTransformationModel) Metrics() *MetricsLog { return m.metrics }

// CapabilityIndex returns the current capability index.
func (m *StructuralTransformationModel) CapabilityIndex() float64 { return m.capability }

// PolicyEffectiveness returns the current industrial policy effectiveness.
func (m *StructuralTransformationModel) PolicyEffectiveness() float64 { return m.policy }

// SimulateStep advances the model by one year. All internal failures
// (provider errors, empty data) step down to the synthetic path; no error
// escapes this method.
func (m *StructuralTransformationModel) SimulateStep(year int) StructuralSnapshot {
	usedReal := false
	if m.data.Len() > 0 {
		if real, ok := m.data.SectorExports(year); ok {
			m.applyRealData(real)
			usedReal = true
		}
	}
	if !usedReal {
		m.growSynthetic()
	}

	hhi := m.updateDiversification()
	positions := m.upgradeValueChains()
	capability := m.developCapability()
	policy, regime := m.updateIndustrialPolicy(year)

	snap := StructuralSnapshot{
		ExportDiversityHHI: hhi,
		ExportSectors:      make(map[string]float64, len(m.names)),
		ValueChainPosition: positions,
		CapabilityIndex:    capability,
		PolicyEffect:       policy,
		PolicyRegime:       regime,
		UsedRealData:       usedReal,
	}
	for _, name := range m.names {
		snap.ExportSectors[name] = m.state[name].value
	}
	logrus.Debugf("year %d structural: hhi=%.4f capability=%.4f policy=%.4f (%s)",
		year, hhi, capability, policy, regime)
	return snap
}

// applyRealData overwrites matching sector values with observed exports.
// Sectors absent from the data keep their last synthetic value.
func (m *StructuralTransformationModel) applyRealData(real map[string]float64) {
	matched := 0
	for _, name := range m.names {
		if v, ok := real[name]; ok {
			m.state[name].value = v
			matched++
		}
	}
	logrus.Debugf("real trade data matched %d of %d sectors", matched, len(m.names))
}

// growSynthetic applies one year of synthetic export growth to every sector.
// The growth rate is scaled by ExportGrowthScale so scenarios can run faster
// or slower export trajectories without restating the per-sector table.
func (m *StructuralTransformationModel) growSynthetic() {
	for _, name := range m.names {
		s := m.state[name]
		capabilityEffect := m.capability * 0.05
		vcpEffect := s.vcp * 0.02
		growth := capabilityEffect + vcpEffect + uniform(m.rng, -0.02, 0.04)
		// Effective policy lifts sectors already established higher up the chain.
		if m.policy > 0.6 && s.vcp > 0.5 {
			growth += 0.03
		}
		s.value *= 1 + growth*m.cfg.ExportGrowthScale
	}
}

// updateDiversification computes the Herfindahl index over sector shares and
// appends it (with the sector count) to the history.
func (m *StructuralTransformationModel) updateDiversification() float64 {
	total := 0.0
	for _, name := range m.names {
		total += m.state[name].value
	}
	hhi := 0.0
	for _, name := range m.names {
		share := m.state[name].value / total
		hhi += share * share
	}
	m.metrics.Append(MetricExportDiversityHHI, hhi)
	m.metrics.Append(MetricExportSectorCount, float64(len(m.names)))
	return hhi
}

// upgradeValueChains moves each sector up (occasionally down) the value
// chain. Past a position of 0.7 the damping factor turns negative, so
// frontier sectors can transiently slip back.
func (m *StructuralTransformationModel) upgradeValueChains() map[string]float64 {
	positions := make(map[string]float64, len(m.names))
	sum := 0.0
	for _, name := range m.names {
		s := m.state[name]
		upgrade := 0.02 + s.complexity*0.04 + uniform(m.rng, -0.01, 0.03)
		if s.vcp > 0.5 {
			upgrade *= 1 - s.vcp/0.7
		}
		s.vcp = clamp(s.vcp+upgrade, 0, 1)
		positions[name] = s.vcp
		sum += s.vcp
	}
	m.metrics.Append(MetricAvgVCP, sum/float64(len(m.names)))
	return positions
}

// developCapability improves the aggregate capability index, fed back from
// value-chain positions and policy effectiveness.
func (m *StructuralTransformationModel) developCapability() float64 {
	sum := 0.0
	for _, name := range m.names {
		sum += m.state[name].vcp
	}
	avgVCP := sum / float64(len(m.names))

	improvement := 0.006 + avgVCP*0.03 + m.policy*0.02 + uniform(m.rng, -0.01, 0.02)
	if m.capability > 0.7 {
		improvement *= 1 - m.capability/0.95
	}
	m.capability = clamp(m.capability+improvement, 0, 1)
	m.metrics.Append(MetricCapabilityIndex, m.capability)
	return m.capability
}

// updateIndustrialPolicy advances policy effectiveness along a reform cycle
// and classifies the resulting regime.
func (m *StructuralTransformationModel) updateIndustrialPolicy(year int) (float64, string) {
	cycle := 0.02 * math.Sin(float64(year-2020)/5)
	change := cycle + uniform(m.rng, -0.02, 0.01)
	m.policy = clamp(m.policy+change, 0.1, 0.9)
	m.metrics.Append(MetricPolicyEffect, m.policy)

	regime := RegimeStrong
	switch {
	case m.policy < 0.4:
		regime = RegimeWeak
	case m.policy < 0.7:
		regime = RegimeModerate
	}
	return m.policy, regime
}
