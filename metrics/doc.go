// Package metrics exports simulation progress as Prometheus collectors:
// damage gauges, max flow samples and repair counters, all labelled by
// repair policy. The CLI dumps the registry in text format after a run;
// a long-running host may serve Gatherer() instead.
package metrics
