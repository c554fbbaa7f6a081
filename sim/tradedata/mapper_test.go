package tradedata

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSectorForHS(t *testing.T) {
	tests := []struct {
		hs   string
		want string
	}{
		{"6109", "rmg"},
		{"6203", "rmg"},
		{"4202", "leather"},
		{"6403", "leather"},
		{"5303", "jute"},
		{"5310", "jute"},
		{"0306", "frozen_food"},
		{"1604", "frozen_food"},
		{"3004", "pharma"},
		{"8471", "it_services"},
		{"8473", "it_services"},
		{"8517", "it_services"},
		{"7308", "light_engineering"},
		{"8708", "light_engineering"},
		{"0902", "agro_processing"},
		{"2008", "agro_processing"},
		{"6302", "home_textiles"},
		{"8901", "shipbuilding"},
		{"2709", "other"}, // crude petroleum, not modeled
		{"5208", "other"}, // woven cotton, not a modeled sector
		{"", "other"},
		{"x", "other"},
		{"xy01", "other"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SectorForHS(tt.hs), "hs %q", tt.hs)
	}
}

func TestSectorMapper_AggregatesByYearAndSector(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.csv")
	content := "year,hs_code,export_value\n" +
		"2024,6109,20.0\n" +
		"2024,6203,18.0\n" +
		"2024,3004,0.16\n" +
		"2024,2709,7.0\n" + // aggregated into "other", then excluded
		"2025,6109,22.0\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	m, err := NewSectorMapper(path)
	require.NoError(t, err)

	data, err := m.SectorExports(2024)
	require.NoError(t, err)
	assert.InDelta(t, 38.0, data["rmg"], 1e-12)
	assert.InDelta(t, 0.16, data["pharma"], 1e-12)
	assert.NotContains(t, data, "other")

	data, err = m.SectorExports(2025)
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"rmg": 22.0}, data)
}

func TestSectorMapper_MissingYearIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.csv")
	require.NoError(t, os.WriteFile(path, []byte("year,hs_code,export_value\n2024,6109,20.0\n"), 0o644))

	m, err := NewSectorMapper(path)
	require.NoError(t, err)

	data, err := m.SectorExports(2030)
	assert.NoError(t, err)
	assert.Empty(t, data)
}

func TestSectorMapper_Errors(t *testing.T) {
	_, err := NewSectorMapper("/nonexistent/products.csv")
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("year,code,value\n2024,6109,20.0\n"), 0o644))
	_, err = NewSectorMapper(path)
	assert.Error(t, err)
}
