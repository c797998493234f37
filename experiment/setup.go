// SPDX-License-Identifier: MIT

package experiment

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/netrepair/config"
	"github.com/katalvlaran/netrepair/flow"
	"github.com/katalvlaran/netrepair/network"
	"github.com/katalvlaran/netrepair/repair"
	"github.com/katalvlaran/netrepair/topology"
)

// Independent random streams derived from the configured seed. Adding a
// policy does not shift the topology or failure draws.
const (
	streamTopology uint64 = iota + 1
	streamFailure
	streamPolicy
)

// Healthy builds the undamaged network described by cfg: layout, then the
// seeded topology draws.
func Healthy(cfg config.Config, logger *slog.Logger) (*network.Network, error) {
	seed := cfg.Experiment.Seed
	layout, err := cfg.Topology.Layout(seed)
	if err != nil {
		return nil, fmt.Errorf("Healthy: %w", err)
	}
	topo, err := topology.Build(layout, cfg.Topology.Params(), topology.DeriveRand(seed, streamTopology))
	if err != nil {
		return nil, fmt.Errorf("Healthy: %w", err)
	}

	var opts []network.Option
	if logger != nil {
		opts = append(opts, network.WithLogger(logger))
	}
	net, err := network.New(topo, opts...)
	if err != nil {
		return nil, fmt.Errorf("Healthy: %w", err)
	}

	return net, nil
}

// Prepare builds the healthy network and applies the configured failure
// event to it.
func Prepare(cfg config.Config, logger *slog.Logger) (*network.Network, error) {
	net, err := Healthy(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("Prepare: %w", err)
	}

	seed := cfg.Experiment.Seed
	switch cfg.Failure.Mode {
	case config.FailureGeographic:
		err = net.InjectGeographicFailure(cfg.Failure.Percent)
	default:
		err = net.InjectRandomFailure(int(cfg.Failure.Percent), topology.DeriveRand(seed, streamFailure))
	}
	if err != nil {
		return nil, fmt.Errorf("Prepare: %w", err)
	}

	return net, nil
}

// Policies resolves the configured policy names. Each stochastic policy
// gets its own stream so results do not depend on list order.
func Policies(cfg config.Config) ([]repair.Policy, error) {
	out := make([]repair.Policy, 0, len(cfg.Experiment.Policies))
	for i, name := range cfg.Experiment.Policies {
		p, err := repair.ByName(name, topology.DeriveRand(cfg.Experiment.Seed, streamPolicy+uint64(i)))
		if err != nil {
			return nil, fmt.Errorf("Policies: %w", err)
		}
		out = append(out, p)
	}

	return out, nil
}

// NewRunner builds a Runner from cfg.
func NewRunner(cfg config.Config, logger *slog.Logger) (*Runner, error) {
	alg, err := flow.ParseAlgorithm(cfg.Experiment.Algorithm)
	if err != nil {
		return nil, fmt.Errorf("NewRunner: %w", err)
	}
	opts := flow.DefaultOptions()
	opts.Algorithm = alg

	return &Runner{
		Source:      cfg.Experiment.Source,
		Sink:        cfg.Experiment.Sink,
		Intervals:   cfg.Experiment.Intervals,
		Logger:      logger,
		FlowOptions: opts,
	}, nil
}
