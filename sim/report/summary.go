// Package report computes summary statistics over simulation metric
// histories and renders them as plain-text tables for the CLI.
package report

import (
	"fmt"
	"io"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/trade-sim/trade-sim/sim"
)

// MetricSummary aggregates one metric's full history.
type MetricSummary struct {
	Metric string
	First  float64
	Last   float64
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
	CAGR   float64 // compound annual growth rate; 0 when undefined
}

// Summarize computes per-metric statistics from a model's history, in the
// log's metric order. Safe for nil or empty logs (returns nil).
func Summarize(log *sim.MetricsLog) []MetricSummary {
	if log == nil || log.Len() == 0 {
		return nil
	}
	summaries := make([]MetricSummary, 0, len(log.Names()))
	for _, name := range log.Names() {
		series := log.Series(name)
		s := MetricSummary{
			Metric: name,
			First:  series[0],
			Last:   series[len(series)-1],
			Mean:   stat.Mean(series, nil),
			Min:    floats.Min(series),
			Max:    floats.Max(series),
		}
		if len(series) > 1 {
			s.StdDev = stat.StdDev(series, nil)
			s.CAGR = cagr(s.First, s.Last, len(series)-1)
		}
		summaries = append(summaries, s)
	}
	return summaries
}

// cagr returns the compound annual growth rate over years steps, or 0 when
// the endpoints make it undefined.
func cagr(first, last float64, years int) float64 {
	if first <= 0 || last <= 0 || years <= 0 {
		return 0
	}
	return math.Pow(last/first, 1/float64(years)) - 1
}

// WriteTable renders summaries under a title. Errors from the writer are
// returned so the CLI can surface file problems.
func WriteTable(w io.Writer, title string, summaries []MetricSummary) error {
	if _, err := fmt.Fprintf(w, "=== %s ===\n", title); err != nil {
		return err
	}
	if len(summaries) == 0 {
		_, err := fmt.Fprintln(w, "(no data)")
		return err
	}
	if _, err := fmt.Fprintf(w, "%-32s %12s %12s %12s %12s %8s\n",
		"metric", "first", "last", "mean", "stddev", "cagr"); err != nil {
		return err
	}
	for _, s := range summaries {
		if _, err := fmt.Fprintf(w, "%-32s %12.4f %12.4f %12.4f %12.4f %7.2f%%\n",
			s.Metric, s.First, s.Last, s.Mean, s.StdDev, s.CAGR*100); err != nil {
			return err
		}
	}
	return nil
}
