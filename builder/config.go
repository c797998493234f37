// SPDX-License-Identifier: MIT
// Package: netrepair/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • name    = "synthetic"
//   • rng     = nil   (stochastic constructors fail with ErrNeedRandSource)
//   • scale   = 1.0
//   • spacing = 1.0
//   • origin  = (0, 0)

package builder

import (
	"math/rand"

	"github.com/katalvlaran/netrepair/topology"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	name    string
	rng     *rand.Rand
	scale   float64
	spacing float64
	origin  topology.Point
}

const (
	defaultName    = "synthetic"
	defaultScale   = 1.0
	defaultSpacing = 1.0
)

// newBuilderConfig starts from the defaults and applies opts in order
// (later overrides earlier).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		name:    defaultName,
		scale:   defaultScale,
		spacing: defaultSpacing,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
