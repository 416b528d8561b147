// Package metrics exposes the children cache counters as Prometheus metrics.
package metrics

import (
	"slices"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"go.trai.ch/grove/internal/engine/children"
	"go.trai.ch/zerr"
)

const namespace = "grove"

// StatsSource is anything that reports registry counters.
type StatsSource interface {
	Stats() children.Stats
}

var _ prometheus.Collector = (*Collector)(nil)

// Collector reads the counters of a StatsSource on every scrape.
type Collector struct {
	source StatsSource

	records        *prometheus.Desc
	reads          *prometheus.Desc
	hits           *prometheus.Desc
	recomputations *prometheus.Desc
	invalidations  *prometheus.Desc
	mutations      *prometheus.Desc
}

// NewCollector creates a Collector over source.
func NewCollector(source StatsSource) *Collector {
	desc := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(namespace, "children", name), help, nil, nil)
	}
	return &Collector{
		source:         source,
		records:        desc("records", "Number of live per-node records."),
		reads:          desc("deep_reads_total", "Deep children reads."),
		hits:           desc("deep_hits_total", "Deep children reads served from a clean cache."),
		recomputations: desc("recomputations_total", "Deep caches rebuilt, including transitive rebuilds."),
		invalidations:  desc("invalidations_total", "Records dirtied by upward invalidation walks."),
		mutations:      desc("mutations_total", "Add or remove child calls that changed a shallow set."),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.records
	ch <- c.reads
	ch <- c.hits
	ch <- c.recomputations
	ch <- c.invalidations
	ch <- c.mutations
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	s := c.source.Stats()
	ch <- prometheus.MustNewConstMetric(c.records, prometheus.GaugeValue, float64(s.Records))
	ch <- prometheus.MustNewConstMetric(c.reads, prometheus.CounterValue, float64(s.Reads))
	ch <- prometheus.MustNewConstMetric(c.hits, prometheus.CounterValue, float64(s.Hits))
	ch <- prometheus.MustNewConstMetric(c.recomputations, prometheus.CounterValue, float64(s.Recomputations))
	ch <- prometheus.MustNewConstMetric(c.invalidations, prometheus.CounterValue, float64(s.Invalidations))
	ch <- prometheus.MustNewConstMetric(c.mutations, prometheus.CounterValue, float64(s.Mutations))
}

// Sample is one gathered metric value.
type Sample struct {
	Name  string
	Help  string
	Value float64
}

// Gather collects every metric registered on g, sorted by name.
func Gather(g prometheus.Gatherer) ([]Sample, error) {
	families, err := g.Gather()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to gather metrics")
	}

	var samples []Sample
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			samples = append(samples, Sample{
				Name:  mf.GetName(),
				Help:  mf.GetHelp(),
				Value: value(mf.GetType(), m),
			})
		}
	}
	slices.SortFunc(samples, func(a, b Sample) int {
		return strings.Compare(a.Name, b.Name)
	})
	return samples, nil
}

func value(t dto.MetricType, m *dto.Metric) float64 {
	switch t {
	case dto.MetricType_COUNTER:
		return m.GetCounter().GetValue()
	case dto.MetricType_GAUGE:
		return m.GetGauge().GetValue()
	case dto.MetricType_UNTYPED:
		return m.GetUntyped().GetValue()
	default:
		return 0
	}
}
