package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initStateMetrics() {
	r.BrokenNodes = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "netrepair_broken_nodes",
			Help: "Number of broken nodes",
		},
		[]string{"policy"},
	)

	r.BrokenLinks = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "netrepair_broken_links",
			Help: "Number of broken links",
		},
		[]string{"policy"},
	)

	r.RemainingRepairTime = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "netrepair_remaining_repair_time",
			Help: "Sum of repair times of all broken components, in ticks",
		},
		[]string{"policy"},
	)

	r.Ticks = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "netrepair_ticks_total",
			Help: "Simulated ticks elapsed",
		},
		[]string{"policy"},
	)
}

func (r *Registry) initFlowMetrics() {
	r.MaxFlow = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "netrepair_max_flow",
			Help: "Most recent source-to-sink max flow sample",
		},
		[]string{"policy"},
	)

	r.FlowSamples = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "netrepair_flow_samples_total",
			Help: "Number of max flow samples taken",
		},
		[]string{"policy"},
	)

	r.AverageMaxFlow = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "netrepair_average_max_flow",
			Help: "Average of all flow samples of a finished campaign",
		},
		[]string{"policy"},
	)
}

func (r *Registry) initRepairMetrics() {
	r.RepairsScheduled = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "netrepair_repairs_scheduled_total",
			Help: "Repairs put in the scheduler slot",
		},
		[]string{"policy", "kind"},
	)

	r.RepairsCompleted = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "netrepair_repairs_completed_total",
			Help: "Repairs finalized",
		},
		[]string{"policy", "kind"},
	)

	r.RepairDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "netrepair_repair_duration_ticks",
			Help:    "Countdown of scheduled repairs, in ticks",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		},
		[]string{"policy", "kind"},
	)
}
