package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds every collector the simulator exports. A nil *Registry is
// valid and records nothing, so callers never branch on "metrics enabled".
type Registry struct {
	registry *prometheus.Registry

	// Network state, sampled once per tick.
	BrokenNodes         *prometheus.GaugeVec
	BrokenLinks         *prometheus.GaugeVec
	RemainingRepairTime *prometheus.GaugeVec

	// Flow measurements at sample points.
	MaxFlow        *prometheus.GaugeVec
	FlowSamples    *prometheus.CounterVec
	AverageMaxFlow *prometheus.GaugeVec

	// Repair scheduler.
	RepairsScheduled *prometheus.CounterVec
	RepairsCompleted *prometheus.CounterVec
	RepairDuration   *prometheus.HistogramVec
	Ticks            *prometheus.CounterVec
}
