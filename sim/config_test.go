package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Normalize_Defaults(t *testing.T) {
	var c Config
	c.Normalize()

	assert.Equal(t, int64(42), c.Seed)
	assert.Equal(t, 2025, c.StartYear)
	assert.Equal(t, 2050, c.EndYear)

	assert.Len(t, c.Structural.ExportSectors, 10)
	assert.Equal(t, 0.35, c.Structural.InitialCapabilityIndex)
	assert.Equal(t, 0.5, c.Structural.InitialPolicyEffectiveness)
	assert.Equal(t, 1.0, c.Structural.ExportGrowthScale)

	assert.Equal(t, 18.0, c.Services.InitialRemittanceInflow)
	assert.Equal(t, 0.02, c.Services.WorkerGrowthRate)
	assert.Equal(t, 0.18, c.Services.BPOGrowthRate)
	assert.Equal(t, 0.17, c.Services.ProfessionalGrowthRate)
	assert.Equal(t, 0.07, c.Services.ServiceFDIGrowthRate)

	assert.Equal(t, 350.0, c.Investment.InitialGDP)
	assert.Equal(t, 0.09, c.Investment.FDIBaseGrowth)
	assert.Equal(t, -0.02, c.Investment.RegionalCompetitiveness)
	assert.Equal(t, 8, c.Investment.InitialActiveSEZs)
	assert.Equal(t, 0.3, c.Investment.ExportPerSEZ)
	assert.Equal(t, "early_industrial", c.Investment.DevelopmentStage)
}

func TestConfig_Normalize_PreservesExplicitValues(t *testing.T) {
	c := Config{
		Seed:      7,
		StartYear: 2030,
		EndYear:   2035,
	}
	c.Services.InitialRemittanceInflow = 25.0
	c.Investment.InitialGDP = 500
	c.Normalize()

	assert.Equal(t, int64(7), c.Seed)
	assert.Equal(t, 2030, c.StartYear)
	assert.Equal(t, 25.0, c.Services.InitialRemittanceInflow)
	assert.Equal(t, 500.0, c.Investment.InitialGDP)
}

func TestConfig_Normalize_Idempotent(t *testing.T) {
	a := DefaultConfig()
	b := a
	b.Normalize()
	assert.Equal(t, a, b)
}

func TestDefaultSectorShares_SumToOne(t *testing.T) {
	for name, shares := range map[string]map[string]float64{
		"fdi":      defaultFDISectors(),
		"domestic": defaultDomesticSectors(),
	} {
		total := 0.0
		for _, v := range shares {
			total += v
		}
		assert.InDelta(t, 1.0, total, 1e-9, "%s shares", name)
	}
}

func TestDefaultExportSectors_ValidRanges(t *testing.T) {
	for name, sc := range defaultExportSectors() {
		assert.Greater(t, sc.Value, 0.0, name)
		assert.GreaterOrEqual(t, sc.Complexity, 0.0, name)
		assert.LessOrEqual(t, sc.Complexity, 1.0, name)
		assert.GreaterOrEqual(t, sc.ValueChainPosition, 0.0, name)
		assert.LessOrEqual(t, sc.ValueChainPosition, 1.0, name)
	}
}
