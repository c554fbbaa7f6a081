package tradedata

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// stubProvider returns canned data or a canned error.
type stubProvider struct {
	name string
	data map[string]float64
	err  error
}

func (s *stubProvider) Name() string { return s.name }

func (s *stubProvider) SectorExports(year int) (map[string]float64, error) {
	return s.data, s.err
}

func TestChain_FirstNonEmptyWins(t *testing.T) {
	chain := NewChain(
		&stubProvider{name: "empty"},
		&stubProvider{name: "full", data: map[string]float64{"rmg": 40}},
		&stubProvider{name: "later", data: map[string]float64{"rmg": 99}},
	)

	data, ok := chain.SectorExports(2025)
	assert.True(t, ok)
	assert.Equal(t, 40.0, data["rmg"])
}

func TestChain_ErrorTreatedAsEmpty(t *testing.T) {
	chain := NewChain(
		&stubProvider{name: "broken", err: errors.New("corrupt file")},
		&stubProvider{name: "full", data: map[string]float64{"pharma": 1.5}},
	)

	data, ok := chain.SectorExports(2025)
	assert.True(t, ok)
	assert.Equal(t, 1.5, data["pharma"])
}

func TestChain_AllEmpty(t *testing.T) {
	chain := NewChain(
		&stubProvider{name: "a"},
		&stubProvider{name: "b", err: errors.New("boom")},
	)

	_, ok := chain.SectorExports(2025)
	assert.False(t, ok)
}

func TestChain_SkipsNilProviders(t *testing.T) {
	chain := NewChain(nil, &stubProvider{name: "only", data: map[string]float64{"jute": 1}}, nil)
	assert.Equal(t, 1, chain.Len())

	data, ok := chain.SectorExports(2025)
	assert.True(t, ok)
	assert.Equal(t, 1.0, data["jute"])
}

func TestChain_EmptyChain(t *testing.T) {
	chain := NewChain()
	assert.Equal(t, 0, chain.Len())
	_, ok := chain.SectorExports(2025)
	assert.False(t, ok)
}
