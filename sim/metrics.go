// Tracks per-model metric histories, one appended value per simulated year.

package sim

// MetricsLog records an ordered set of named time series. Each model owns one
// log and appends exactly one value per tracked metric per SimulateStep call,
// so after N steps every series has length N with aligned indices.
type MetricsLog struct {
	order  []string
	series map[string][]float64
}

// NewMetricsLog creates a MetricsLog tracking the given metric names in order.
func NewMetricsLog(names ...string) *MetricsLog {
	m := &MetricsLog{
		order:  append([]string(nil), names...),
		series: make(map[string][]float64, len(names)),
	}
	for _, n := range names {
		m.series[n] = make([]float64, 0)
	}
	return m
}

// Append records the value for one metric for the current step. Appending to
// an untracked name registers it, keeping insertion order.
func (m *MetricsLog) Append(name string, v float64) {
	if _, ok := m.series[name]; !ok {
		m.order = append(m.order, name)
		m.series[name] = make([]float64, 0)
	}
	m.series[name] = append(m.series[name], v)
}

// Names returns the tracked metric names in registration order.
func (m *MetricsLog) Names() []string {
	return append([]string(nil), m.order...)
}

// Series returns the full history for a metric. The returned slice is the
// log's backing storage; callers must not mutate it.
func (m *MetricsLog) Series(name string) []float64 {
	return m.series[name]
}

// Len returns the number of recorded steps, 0 for an empty log.
// All series share the same length by construction.
func (m *MetricsLog) Len() int {
	for _, n := range m.order {
		return len(m.series[n])
	}
	return 0
}

// At returns the value of a metric at a history index. Negative indices
// address from the end (-1 = latest), mirroring the lookup contract of the
// services model's export totals.
func (m *MetricsLog) At(name string, idx int) (float64, bool) {
	s, ok := m.series[name]
	if !ok {
		return 0, false
	}
	if idx < 0 {
		idx += len(s)
	}
	if idx < 0 || idx >= len(s) {
		return 0, false
	}
	return s[idx], true
}
