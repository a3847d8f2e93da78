// SPDX-License-Identifier: MIT

package bench

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the prometheus collectors fed by Runner. The policy label is
// the variant with its parameters, e.g. dynamic(64). A nil *Metrics is valid
// and records nothing.
type Metrics struct {
	trials     *prometheus.CounterVec
	fill       *prometheus.HistogramVec
	mcups      *prometheus.GaugeVec
	chunks     *prometheus.GaugeVec
	mismatches prometheus.Counter
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		trials: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wavealign_trials_total",
			Help: "Completed fill trials by policy variant",
		}, []string{"policy"}),
		fill: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "wavealign_fill_seconds",
			Help:    "Wall time of the wavefront fill",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 16), // 1ms to ~33s
		}, []string{"policy", "workers"}),
		mcups: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "wavealign_mcups",
			Help: "Million cell updates per second of the last trial",
		}, []string{"policy", "workers"}),
		chunks: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "wavealign_chunks",
			Help: "Chunks dispatched over all diagonals in the last trial",
		}, []string{"policy", "workers"}),
		mismatches: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "wavealign_mismatches_total",
			Help: "Trials whose grid differed from the serial reference",
		}),
	}
	for _, c := range []prometheus.Collector{m.trials, m.fill, m.mcups, m.chunks, m.mismatches} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (m *Metrics) observe(t Trial) {
	if m == nil {
		return
	}
	w := strconv.Itoa(t.Workers)
	m.trials.WithLabelValues(t.Variant).Inc()
	m.fill.WithLabelValues(t.Variant, w).Observe(t.Fill.Seconds())
	m.mcups.WithLabelValues(t.Variant, w).Set(t.MCUPS)
	m.chunks.WithLabelValues(t.Variant, w).Set(float64(t.Chunks))
}

func (m *Metrics) mismatch() {
	if m == nil {
		return
	}
	m.mismatches.Inc()
}
