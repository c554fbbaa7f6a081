package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetricsLog_AppendAndLen(t *testing.T) {
	log := NewMetricsLog("a", "b")
	assert.Equal(t, 0, log.Len())

	log.Append("a", 1)
	log.Append("b", 2)
	assert.Equal(t, 1, log.Len())

	log.Append("a", 3)
	log.Append("b", 4)
	assert.Equal(t, 2, log.Len())
	assert.Equal(t, []float64{1, 3}, log.Series("a"))
	assert.Equal(t, []float64{2, 4}, log.Series("b"))
}

func TestMetricsLog_OrderPreserved(t *testing.T) {
	log := NewMetricsLog("gdp", "fdi_inflow")
	log.Append("sez_exports", 1) // late registration goes last
	assert.Equal(t, []string{"gdp", "fdi_inflow", "sez_exports"}, log.Names())
}

func TestMetricsLog_At(t *testing.T) {
	log := NewMetricsLog("x")
	log.Append("x", 10)
	log.Append("x", 20)
	log.Append("x", 30)

	tests := []struct {
		idx    int
		want   float64
		wantOK bool
	}{
		{0, 10, true},
		{2, 30, true},
		{-1, 30, true},
		{-3, 10, true},
		{-4, 0, false},
		{3, 0, false},
	}
	for _, tt := range tests {
		got, ok := log.At("x", tt.idx)
		assert.Equal(t, tt.wantOK, ok, "idx %d", tt.idx)
		assert.Equal(t, tt.want, got, "idx %d", tt.idx)
	}

	_, ok := log.At("missing", 0)
	assert.False(t, ok)
}
