package arena

import "github.com/prometheus/client_golang/prometheus"

// Metrics is a point-in-time snapshot of an arena's storage statistics.
type Metrics struct {
	Len         int     // elements allocated
	Capacity    int     // total element capacity across all chunks
	Free        int     // spare capacity left in the current chunk
	NumChunks   int     // chunks held, retired plus current
	Utilization float64 // Len / Capacity, 0.0 for an empty arena
}

// Metrics returns a snapshot of the arena's storage statistics.
func (a *Arena[T]) Metrics() Metrics {
	m := Metrics{
		Len:      a.Len(),
		Free:     cap(a.chunks.current) - len(a.chunks.current),
		Capacity: cap(a.chunks.current),
	}
	for _, ch := range a.chunks.rest {
		m.Capacity += cap(ch)
	}
	if a.chunks.current != nil {
		m.NumChunks = len(a.chunks.rest) + 1
	}
	if m.Capacity > 0 {
		m.Utilization = float64(m.Len) / float64(m.Capacity)
	}
	return m
}

var _ prometheus.Collector = (*Collector)(nil)

// Collector exports an arena's Metrics as Prometheus gauges.
//
// Arenas are single-owner, so the collector does not touch the arena itself:
// it calls snapshot, and the owner decides how that function reaches a
// consistent Metrics value from the registry's scrape goroutine (typically
// by publishing snapshots from the owning goroutine).
type Collector struct {
	snapshot func() Metrics

	elements    *prometheus.Desc
	capacity    *prometheus.Desc
	chunks      *prometheus.Desc
	utilization *prometheus.Desc
}

// NewCollector builds a Collector around a Metrics source. The name label
// distinguishes arenas when several are registered.
func NewCollector(name string, snapshot func() Metrics) *Collector {
	labels := prometheus.Labels{"arena": name}
	return &Collector{
		snapshot: snapshot,
		elements: prometheus.NewDesc(
			"arena_elements",
			"Number of elements allocated in the arena.",
			nil, labels,
		),
		capacity: prometheus.NewDesc(
			"arena_capacity_elements",
			"Total element capacity across all of the arena's chunks.",
			nil, labels,
		),
		chunks: prometheus.NewDesc(
			"arena_chunks",
			"Number of chunks held by the arena, retired plus current.",
			nil, labels,
		),
		utilization: prometheus.NewDesc(
			"arena_utilization_ratio",
			"Ratio of allocated elements to total capacity.",
			nil, labels,
		),
	}
}

func (c *Collector) Describe(descs chan<- *prometheus.Desc) {
	descs <- c.elements
	descs <- c.capacity
	descs <- c.chunks
	descs <- c.utilization
}

func (c *Collector) Collect(metrics chan<- prometheus.Metric) {
	m := c.snapshot()
	metrics <- prometheus.MustNewConstMetric(c.elements, prometheus.GaugeValue, float64(m.Len))
	metrics <- prometheus.MustNewConstMetric(c.capacity, prometheus.GaugeValue, float64(m.Capacity))
	metrics <- prometheus.MustNewConstMetric(c.chunks, prometheus.GaugeValue, float64(m.NumChunks))
	metrics <- prometheus.MustNewConstMetric(c.utilization, prometheus.GaugeValue, m.Utilization)
}
