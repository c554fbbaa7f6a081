package sim

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newInvestment(cfg InvestmentConfig, seed int64) *InvestmentModel {
	return NewInvestmentModel(cfg, rand.New(rand.NewSource(seed)))
}

func TestInvestment_SectorSharesSumToOne(t *testing.T) {
	m := newInvestment(InvestmentConfig{}, 42)
	for year := 2025; year <= 2074; year++ {
		snap := m.SimulateStep(year, nil)
		for name, shares := range map[string]map[string]float64{
			"fdi":      snap.FDISectors,
			"domestic": snap.DomesticSectors,
		} {
			total := 0.0
			for _, v := range shares {
				total += v
			}
			assert.InDelta(t, 1.0, total, 1e-9, "%s shares year %d", name, year)
		}
	}
}

func TestInvestment_IndexBounds(t *testing.T) {
	m := newInvestment(InvestmentConfig{}, 7)
	for year := 2025; year <= 2124; year++ {
		snap := m.SimulateStep(year, nil)
		assert.GreaterOrEqual(t, snap.PolicyIndex, 0.2, "year %d", year)
		assert.LessOrEqual(t, snap.PolicyIndex, 0.95, "year %d", year)
		assert.GreaterOrEqual(t, snap.Restrictions, 0.0, "year %d", year)
		assert.LessOrEqual(t, snap.Restrictions, 0.5, "year %d", year)
		assert.GreaterOrEqual(t, snap.Incentives, 0.2, "year %d", year)
		assert.LessOrEqual(t, snap.Incentives, 0.95, "year %d", year)
		assert.GreaterOrEqual(t, snap.DomesticRate, 0.1, "year %d", year)
		assert.LessOrEqual(t, snap.DomesticRate, 0.5, "year %d", year)
	}
}

func TestInvestment_SingleYearGDPGrowthBounded(t *testing.T) {
	cfg := InvestmentConfig{InitialFDIInflow: 5.0, InitialGDP: 350}
	m := newInvestment(cfg, 42)
	snap := m.SimulateStep(2025, Conditions{})

	change := math.Abs(snap.GDP-350) / 350
	assert.Less(t, change, 0.15, "GDP moved %.1f%% in one year", change*100)
}

func TestInvestment_DomesticInvestmentTracksGDP(t *testing.T) {
	m := newInvestment(InvestmentConfig{}, 42)
	for year := 2025; year <= 2034; year++ {
		snap := m.SimulateStep(year, nil)
		assert.InDelta(t, snap.DomesticRate*snap.GDP, snap.DomesticInvestment, 1e-9, "year %d", year)
	}
}

func TestInvestment_SEZExportsIdentity(t *testing.T) {
	m := newInvestment(InvestmentConfig{}, 42)
	for year := 2025; year <= 2044; year++ {
		snap := m.SimulateStep(year, nil)
		assert.InDelta(t, float64(snap.ActiveSEZs)*snap.SEZUtilization*0.3, snap.SEZExports, 1e-9, "year %d", year)
		assert.LessOrEqual(t, snap.SEZUtilization, 1.0, "year %d", year)
		assert.GreaterOrEqual(t, snap.ActiveSEZs, 8, "year %d", year)
	}
}

func TestInvestment_SEZCountNeverDecreases(t *testing.T) {
	m := newInvestment(InvestmentConfig{}, 3)
	prev := 0
	for year := 2025; year <= 2054; year++ {
		snap := m.SimulateStep(year, nil)
		assert.GreaterOrEqual(t, snap.ActiveSEZs, prev, "year %d", year)
		prev = snap.ActiveSEZs
	}
}

func TestInvestment_PolicyEmphasisBiasesFDIShares(t *testing.T) {
	// With the same seed, a services emphasis must leave the services share
	// strictly above the unbiased run after renormalization.
	base := newInvestment(InvestmentConfig{}, 42).SimulateStep(2025, nil)
	biased := newInvestment(InvestmentConfig{FDIPolicySectorEmphasis: "services"}, 42).SimulateStep(2025, nil)

	assert.Greater(t, biased.FDISectors["services"], base.FDISectors["services"])
}

func TestInvestment_HistoryLengthMatchesSteps(t *testing.T) {
	m := newInvestment(InvestmentConfig{}, 42)
	const steps = 9
	for i := 0; i < steps; i++ {
		m.SimulateStep(2025+i, nil)
	}
	for _, name := range m.Metrics().Names() {
		assert.Len(t, m.Metrics().Series(name), steps, name)
	}
}

func TestInvestment_CapitalFormation(t *testing.T) {
	m := newInvestment(InvestmentConfig{}, 42)
	snap := m.SimulateStep(2025, nil)
	assert.InDelta(t, snap.DomesticInvestment+snap.FDIInflow, m.CapitalFormation(), 1e-9)
}

func TestInvestment_Determinism(t *testing.T) {
	run := func() []float64 {
		m := newInvestment(InvestmentConfig{}, 99)
		for year := 2025; year <= 2044; year++ {
			m.SimulateStep(year, Conditions{CondGlobalEconomicGrowth: 0.01})
		}
		return m.Metrics().Series(MetricGDP)
	}
	assert.Equal(t, run(), run())
}

func TestReformMomentum_SevenYearCycle(t *testing.T) {
	tests := []struct {
		year int
		want float64
	}{
		{2020, 0.02},
		{2024, 0.02},
		{2025, -0.01}, // phase 5
		{2026, -0.01}, // phase 6
		{2027, 0.02},  // cycle restarts
		// Years before the cycle anchor keep the same phase arithmetic.
		{2013, 0.02},  // phase 0
		{2018, -0.01}, // phase 5
		{2019, -0.01}, // phase 6
		{2015, 0.02},  // phase 2
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, reformMomentum(tt.year), "year %d", tt.year)
	}
}

func TestInvestment_SnapshotSharesAreCopies(t *testing.T) {
	m := newInvestment(InvestmentConfig{}, 42)
	snap := m.SimulateStep(2025, nil)
	snap.FDISectors["services"] = 99
	next := m.SimulateStep(2026, nil)
	assert.Less(t, next.FDISectors["services"], 1.0)
}
