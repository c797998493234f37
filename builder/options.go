// SPDX-License-Identifier: MIT
// Package: netrepair/builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/netrepair/topology"
)

// BuilderOption customizes the resolved builderConfig.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed attaches a generator seeded like the rest of the module
// (seed 0 selects topology.DefaultSeed).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = topology.NewRand(seed)
	}
}

// WithName sets the layout name reported downstream (logs, metrics).
func WithName(name string) BuilderOption {
	return func(c *builderConfig) {
		c.name = name
	}
}

// WithScale sets the distance unit used for placement (ring radius, grid
// pitch, random square side). Panics unless scale is finite and > 0.
func WithScale(scale float64) BuilderOption {
	if !(scale > 0) || math.IsInf(scale, 1) {
		panic("builder: WithScale(scale<=0)")
	}
	return func(c *builderConfig) {
		c.scale = scale
	}
}

// WithSpacing sets the horizontal gap between components built by
// successive constructors. Panics on negative or non-finite values.
func WithSpacing(gap float64) BuilderOption {
	if !(gap >= 0) || math.IsInf(gap, 1) {
		panic("builder: WithSpacing(gap<0)")
	}
	return func(c *builderConfig) {
		c.spacing = gap
	}
}

// WithOrigin moves the whole layout so the first component starts at o.
func WithOrigin(o topology.Point) BuilderOption {
	return func(c *builderConfig) {
		c.origin = o
	}
}
