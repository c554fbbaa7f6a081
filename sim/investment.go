package sim

import (
	"math"
	"math/rand"
	"sort"

	"github.com/sirupsen/logrus"
)

// Metric names tracked by the investment model.
const (
	MetricGDP                = "gdp"
	MetricFDIInflow          = "fdi_inflow"
	MetricDomesticInvestment = "domestic_investment"
	MetricSEZExports         = "sez_exports"
	MetricActiveSEZs         = "active_sezs"
	MetricSEZUtilization     = "sez_utilization"
	MetricPolicyIndex        = "investment_policy_index"
)

// InvestmentSnapshot is the per-year result of the investment model.
type InvestmentSnapshot struct {
	GDP                float64            `json:"gdp"`
	FDIInflow          float64            `json:"fdi_inflow"`
	FDISectors         map[string]float64 `json:"fdi_sectors"`
	DomesticInvestment float64            `json:"domestic_investment"`
	DomesticRate       float64            `json:"domestic_investment_rate"`
	DomesticSectors    map[string]float64 `json:"domestic_sectors"`
	ActiveSEZs         int                `json:"active_sezs"`
	SEZUtilization     float64            `json:"sez_utilization"`
	SEZExports         float64            `json:"sez_exports"`
	PolicyIndex        float64            `json:"investment_policy_index"`
	Restrictions       float64            `json:"repatriation_restrictions"`
	Incentives         float64            `json:"investment_incentives"`
}

// InvestmentModel couples GDP, FDI, domestic investment, SEZ development and
// an investment-policy index. GDP is updated first each year, so its
// investment-intensity term always reads the previous year's FDI and
// domestic-investment levels (a one-year lag that breaks the circular
// dependency between GDP and the investment ratios).
type InvestmentModel struct {
	cfg InvestmentConfig
	rng *rand.Rand

	gdp                float64
	fdiInflow          float64
	fdiSectors         map[string]float64
	domesticRate       float64
	domesticInvestment float64
	domesticSectors    map[string]float64
	activeSEZs         int
	sezUtilization     float64
	sezExports         float64
	policyIndex        float64
	restrictions       float64
	incentives         float64

	metrics *MetricsLog
}

// NewInvestmentModel seeds investment state from cfg.
func NewInvestmentModel(cfg InvestmentConfig, rng *rand.Rand) *InvestmentModel {
	cfg.normalize()
	m := &InvestmentModel{
		cfg:             cfg,
		rng:             rng,
		gdp:             cfg.InitialGDP,
		fdiInflow:       cfg.InitialFDIInflow,
		fdiSectors:      copyShares(cfg.FDISectors),
		domesticRate:    cfg.InitialDomesticRate,
		domesticSectors: copyShares(cfg.DomesticSectors),
		activeSEZs:      cfg.InitialActiveSEZs,
		sezUtilization:  cfg.InitialSEZUtilization,
		policyIndex:     cfg.InitialPolicyIndex,
		restrictions:    cfg.InitialRestrictions,
		incentives:      cfg.InitialIncentives,
		metrics: NewMetricsLog(
			MetricGDP,
			MetricFDIInflow,
			MetricDomesticInvestment,
			MetricSEZExports,
			MetricActiveSEZs,
			MetricSEZUtilization,
			MetricPolicyIndex,
		),
	}
	m.domesticInvestment = m.domesticRate * m.gdp
	m.sezExports = float64(m.activeSEZs) * m.sezUtilization * cfg.ExportPerSEZ
	return m
}

// Metrics exposes the model's metric histories.
func (m *InvestmentModel) Metrics() *MetricsLog { return m.metrics }

// CapitalFormation returns gross fixed capital formation (domestic + FDI).
func (m *InvestmentModel) CapitalFormation() float64 {
	return m.domesticInvestment + m.fdiInflow
}

// SimulateStep advances all five sub-components in a fixed order:
// GDP, FDI, domestic investment, SEZ development, investment policy.
func (m *InvestmentModel) SimulateStep(year int, conditions Conditions) InvestmentSnapshot {
	m.updateGDP(conditions)
	m.simulateFDI(conditions)
	m.simulateDomesticInvestment(conditions)
	m.simulateSEZDevelopment(year)
	m.simulateInvestmentPolicy(year, conditions)

	snap := InvestmentSnapshot{
		GDP:                m.gdp,
		FDIInflow:          m.fdiInflow,
		FDISectors:         copyShares(m.fdiSectors),
		DomesticInvestment: m.domesticInvestment,
		DomesticRate:       m.domesticRate,
		DomesticSectors:    copyShares(m.domesticSectors),
		ActiveSEZs:         m.activeSEZs,
		SEZUtilization:     m.sezUtilization,
		SEZExports:         m.sezExports,
		PolicyIndex:        m.policyIndex,
		Restrictions:       m.restrictions,
		Incentives:         m.incentives,
	}
	m.metrics.Append(MetricGDP, snap.GDP)
	m.metrics.Append(MetricFDIInflow, snap.FDIInflow)
	m.metrics.Append(MetricDomesticInvestment, snap.DomesticInvestment)
	m.metrics.Append(MetricSEZExports, snap.SEZExports)
	m.metrics.Append(MetricActiveSEZs, float64(snap.ActiveSEZs))
	m.metrics.Append(MetricSEZUtilization, snap.SEZUtilization)
	m.metrics.Append(MetricPolicyIndex, snap.PolicyIndex)

	logrus.Debugf("year %d investment: gdp=%.2f fdi=%.2f domestic=%.2f sez=%.2f policy=%.2f",
		year, snap.GDP, snap.FDIInflow, snap.DomesticInvestment, snap.SEZExports, snap.PolicyIndex)
	return snap
}

// updateGDP grows GDP using last year's investment intensity.
func (m *InvestmentModel) updateGDP(conditions Conditions) {
	intensity := (m.fdiInflow/m.gdp + m.domesticInvestment/m.gdp - 0.25) * 0.3
	growth := m.cfg.GDPGrowthRate +
		intensity +
		conditions.scaled(CondGlobalEconomicGrowth, 0.5) +
		uniform(m.rng, -0.01, 0.02)
	m.gdp *= 1 + growth
}

// simulateFDI grows the FDI inflow and drifts its sector composition.
func (m *InvestmentModel) simulateFDI(conditions Conditions) {
	growth := m.cfg.FDIBaseGrowth +
		(m.policyIndex-0.5)*0.1 +
		-0.08*m.restrictions +
		m.cfg.InfrastructureQuality*0.05 +
		conditions.scaled(CondGlobalFDIFlows, 0.2) +
		m.cfg.RegionalCompetitiveness +
		uniform(m.rng, -0.15, 0.5)
	m.fdiInflow *= 1 + growth

	// Secular drift towards services; one draw per named sector, in a
	// fixed order so runs stay reproducible.
	shifts := map[string]float64{
		"services":       uniform(m.rng, 0.002, 0.008),
		"manufacturing":  uniform(m.rng, -0.005, 0.005),
		"energy":         uniform(m.rng, -0.005, 0.003),
		"infrastructure": uniform(m.rng, -0.002, 0.007),
	}
	if m.cfg.FDIPolicySectorEmphasis != "" {
		shifts[m.cfg.FDIPolicySectorEmphasis] += 0.01
	}
	applyShifts(m.fdiSectors, shifts)
	normalizeShares(m.fdiSectors)
}

// simulateDomesticInvestment adjusts the investment rate (fraction of GDP)
// and recomputes the level against this year's GDP.
func (m *InvestmentModel) simulateDomesticInvestment(conditions Conditions) {
	rateChange := m.cfg.DomesticRateChange +
		-0.1*(m.cfg.InterestRate-0.06) +
		0.15*(m.cfg.BusinessConfidence-0.5) +
		conditions.scaled(CondMonetaryConditions, 0.2) +
		uniform(m.rng, -0.01, 0.02)
	m.domesticRate = clamp(m.domesticRate+rateChange, 0.1, 0.5)
	m.domesticInvestment = m.domesticRate * m.gdp

	shifts := map[string]float64{
		"services":       uniform(m.rng, 0.003, 0.007),
		"manufacturing":  uniform(m.rng, -0.003, 0.005),
		"agriculture":    uniform(m.rng, -0.008, -0.002),
		"infrastructure": uniform(m.rng, -0.002, 0.005),
	}
	switch m.cfg.DevelopmentStage {
	case "early_industrial":
		shifts["manufacturing"] += 0.005
	case "industrial":
		shifts["services"] += 0.003
		shifts["manufacturing"] += 0.002
	case "post_industrial":
		shifts["services"] += 0.008
		shifts["agriculture"] += 0.002
	}
	applyShifts(m.domesticSectors, shifts)
	normalizeShares(m.domesticSectors)
}

// simulateSEZDevelopment occasionally opens new zones and closes the
// utilization gap along an S-curve.
func (m *InvestmentModel) simulateSEZDevelopment(year int) {
	if m.rng.Float64() < m.cfg.NewSEZProbability {
		opened := m.rng.Intn(3) + 1
		m.activeSEZs += opened
		logrus.Debugf("year %d: %d new special economic zone(s) operational", year, opened)
	}

	improvement := m.cfg.SEZUtilizationBase +
		m.policyIndex*0.03 +
		m.cfg.InfrastructureQuality*0.2 +
		uniform(m.rng, -0.01, 0.03)
	m.sezUtilization += improvement * (1 - m.sezUtilization)

	m.sezExports = float64(m.activeSEZs) * m.sezUtilization * m.cfg.ExportPerSEZ
}

// simulateInvestmentPolicy moves the policy index along seven-year reform
// cycles, random-walks repatriation restrictions, and cycles incentives.
func (m *InvestmentModel) simulateInvestmentPolicy(year int, conditions Conditions) {
	change := reformMomentum(year) +
		conditions.scaled(CondPolicyPressure, 0.01) +
		uniform(m.rng, -0.03, 0.03)
	m.policyIndex = clamp(m.policyIndex+change, 0.2, 0.95)

	m.restrictions = clamp(m.restrictions+uniform(m.rng, -0.02, 0.02), 0, 0.5)

	incentiveCycle := 0.1 * math.Sin(float64(year-2020)*0.5)
	m.incentives = clamp(m.incentives+0.005+incentiveCycle+uniform(m.rng, -0.02, 0.02), 0.2, 0.95)
}

// reformMomentum returns the policy drift for the year's position in the
// seven-year reform cycle: five years of progress, two of fatigue. The
// position is a non-negative modulus so years before 2020 stay on the cycle.
func reformMomentum(year int) float64 {
	phase := (year - 2020) % 7
	if phase < 0 {
		phase += 7
	}
	if phase >= 5 {
		return -0.01
	}
	return 0.02
}

// copyShares returns a shallow copy of a share map.
func copyShares(shares map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(shares))
	for k, v := range shares {
		out[k] = v
	}
	return out
}

// applyShifts adds shifts to the matching sectors. Sectors absent from the
// share map are ignored rather than created.
func applyShifts(shares, shifts map[string]float64) {
	for sector, shift := range shifts {
		if _, ok := shares[sector]; ok {
			shares[sector] += shift
		}
	}
}

// normalizeShares rescales shares to sum to exactly 1.
func normalizeShares(shares map[string]float64) {
	keys := make([]string, 0, len(shares))
	for k := range shares {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	total := 0.0
	for _, k := range keys {
		total += shares[k]
	}
	for _, k := range keys {
		shares[k] /= total
	}
}
