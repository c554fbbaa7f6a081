// Package tradedata supplies historical sector-level export data to the
// simulation kernel. Providers are optional: construction failures and
// missing years degrade the kernel to synthetic growth, never abort a run.
package tradedata

import (
	"github.com/sirupsen/logrus"
)

// Provider resolves per-sector export values (billion USD) for one year.
// Returning an empty map or an error mean the same thing to callers: this
// provider has nothing for the requested year.
type Provider interface {
	// Name identifies the provider in fallback logs.
	Name() string
	// SectorExports returns sector name -> export value for the year.
	SectorExports(year int) (map[string]float64, error)
}

// Chain tries providers in order and returns the first non-empty result.
// The decision is one-shot per call: there is no retry within a provider.
type Chain struct {
	providers []Provider
}

// NewChain builds a chain over the given providers. Nil entries are skipped
// so callers can pass the result of failed constructors directly.
func NewChain(providers ...Provider) *Chain {
	c := &Chain{}
	for _, p := range providers {
		if p != nil {
			c.providers = append(c.providers, p)
		}
	}
	return c
}

// Len returns the number of usable providers.
func (c *Chain) Len() int {
	return len(c.providers)
}

// SectorExports walks the chain for the year. ok is false when every
// provider came back empty or failed, in which case the caller should use
// its synthetic path.
func (c *Chain) SectorExports(year int) (map[string]float64, bool) {
	for _, p := range c.providers {
		data, err := p.SectorExports(year)
		if err != nil {
			logrus.Warnf("trade data provider %s failed for year %d: %v", p.Name(), year, err)
			continue
		}
		if len(data) == 0 {
			logrus.Debugf("trade data provider %s has no data for year %d", p.Name(), year)
			continue
		}
		logrus.Debugf("using %s trade data for year %d (%d sectors)", p.Name(), year, len(data))
		return data, true
	}
	return nil, false
}
