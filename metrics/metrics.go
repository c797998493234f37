package metrics

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// State is the subset of network state the registry samples.
type State interface {
	BrokenNodes() int
	BrokenLinks() int
	TotalRepairTimeRemaining() int
}

// NewRegistry creates a registry with every collector registered on a
// private prometheus.Registry.
func NewRegistry() *Registry {
	r := &Registry{registry: prometheus.NewRegistry()}
	r.initStateMetrics()
	r.initFlowMetrics()
	r.initRepairMetrics()

	return r
}

// Gatherer exposes the underlying registry (for promhttp or testutil).
func (r *Registry) Gatherer() prometheus.Gatherer {
	if r == nil {
		return prometheus.NewRegistry()
	}
	return r.registry
}

// RecordTick counts one tick and samples the damage gauges.
func (r *Registry) RecordTick(policy string, s State) {
	if r == nil {
		return
	}
	r.Ticks.WithLabelValues(policy).Inc()
	r.BrokenNodes.WithLabelValues(policy).Set(float64(s.BrokenNodes()))
	r.BrokenLinks.WithLabelValues(policy).Set(float64(s.BrokenLinks()))
	r.RemainingRepairTime.WithLabelValues(policy).Set(float64(s.TotalRepairTimeRemaining()))
}

// RecordFlow stores a max flow sample.
func (r *Registry) RecordFlow(policy string, flow int64) {
	if r == nil {
		return
	}
	r.MaxFlow.WithLabelValues(policy).Set(float64(flow))
	r.FlowSamples.WithLabelValues(policy).Inc()
}

// RecordAverage stores the campaign average once a run ends.
func (r *Registry) RecordAverage(policy string, avg float64) {
	if r == nil {
		return
	}
	r.AverageMaxFlow.WithLabelValues(policy).Set(avg)
}

// RecordScheduled counts a newly scheduled repair and its countdown.
func (r *Registry) RecordScheduled(policy, kind string, duration int) {
	if r == nil {
		return
	}
	r.RepairsScheduled.WithLabelValues(policy, kind).Inc()
	r.RepairDuration.WithLabelValues(policy, kind).Observe(float64(duration))
}

// RecordCompleted counts a finalized repair.
func (r *Registry) RecordCompleted(policy, kind string) {
	if r == nil {
		return
	}
	r.RepairsCompleted.WithLabelValues(policy, kind).Inc()
}

// WriteText writes every metric family in the Prometheus text exposition
// format.
func (r *Registry) WriteText(w io.Writer) error {
	families, err := r.Gatherer().Gather()
	if err != nil {
		return fmt.Errorf("WriteText: gather: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("WriteText: %w", err)
		}
	}

	return nil
}
