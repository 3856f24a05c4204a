// Package metrics exposes the outcome of a dial run in Prometheus format.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/version"

	"github.com/paulcager/dial_counter/internal/solver"
)

const (
	namespace = "dial"
)

// Collector reports the statistics of a single solved run.
type Collector struct {
	policy solver.Policy
	stats  solver.Stats
	answer int

	rotations *prometheus.Desc
	clicks    *prometheus.Desc
	landings  *prometheus.Desc
	crossings *prometheus.Desc
	position  *prometheus.Desc
	answerVal *prometheus.Desc
}

func NewCollector(policy solver.Policy, stats solver.Stats, answer int) *Collector {
	return &Collector{
		policy: policy,
		stats:  stats,
		answer: answer,

		rotations: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "rotations", "total"),
			"Number of rotations applied to the dial.",
			nil,
			nil),
		clicks: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "clicks", "total"),
			"Distance turned, in clicks, regardless of direction.",
			nil,
			nil),
		landings: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "landings", "total"),
			"Rotations that left the pointer on the zero-slot.",
			nil,
			nil),
		crossings: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "crossings", "total"),
			"Times the pointer passed over or stopped on the zero-slot.",
			nil,
			nil),
		position: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "pointer", "position"),
			"Position of the pointer after the last rotation.",
			nil,
			nil),
		answerVal: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "answer"),
			"Answer produced by the solver.",
			[]string{"policy"},
			nil),
	}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.rotations
	ch <- c.clicks
	ch <- c.landings
	ch <- c.crossings
	ch <- c.position
	ch <- c.answerVal
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(c.rotations, prometheus.CounterValue, float64(c.stats.Rotations))
	ch <- prometheus.MustNewConstMetric(c.clicks, prometheus.CounterValue, float64(c.stats.Clicks))
	ch <- prometheus.MustNewConstMetric(c.landings, prometheus.CounterValue, float64(c.stats.Landings))
	if c.policy == solver.Crossings {
		ch <- prometheus.MustNewConstMetric(c.crossings, prometheus.CounterValue, float64(c.stats.Crossings))
	}
	ch <- prometheus.MustNewConstMetric(c.position, prometheus.GaugeValue, float64(c.stats.Position))
	ch <- prometheus.MustNewConstMetric(c.answerVal, prometheus.GaugeValue, float64(c.answer), c.policy.String())
}

// WriteTextfile writes the run's metrics, plus build information, to path in
// the text format read by node_exporter's textfile collector.
func WriteTextfile(path string, c *Collector) error {
	registry := prometheus.NewRegistry()
	if err := registry.Register(c); err != nil {
		return err
	}
	if err := registry.Register(version.NewCollector("dial_counter")); err != nil {
		return err
	}
	return prometheus.WriteToTextfile(path, registry)
}
