// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/netrepair/builder"
	"github.com/katalvlaran/netrepair/gml"
	"github.com/katalvlaran/netrepair/topology"
)

// Layout resolves the configured topology source. GML files are read from
// disk; builders are seeded with seed so random layouts are reproducible.
func (t Topology) Layout(seed int64) (topology.Layout, error) {
	if t.GML != "" {
		layout, err := gml.LoadLayout(t.GML)
		if err != nil {
			return topology.Layout{}, fmt.Errorf("Layout: %w", err)
		}
		return layout, nil
	}

	var ctor builder.Constructor
	switch strings.ToLower(t.Builder) {
	case "cycle":
		ctor = builder.Cycle(t.Size)
	case "path":
		ctor = builder.Path(t.Size)
	case "star":
		ctor = builder.Star(t.Size)
	case "wheel":
		ctor = builder.Wheel(t.Size)
	case "complete":
		ctor = builder.Complete(t.Size)
	case "grid":
		ctor = builder.Grid(t.Size, t.Cols)
	case "random":
		ctor = builder.RandomSparse(t.Size, t.Probability)
	default:
		return topology.Layout{}, fmt.Errorf("Layout: builder %q: %w", t.Builder, ErrInvalid)
	}

	layout, err := builder.BuildLayout(
		[]builder.BuilderOption{builder.WithName(t.Builder), builder.WithSeed(seed)},
		ctor,
	)
	if err != nil {
		return topology.Layout{}, fmt.Errorf("Layout: %w", err)
	}

	return layout, nil
}
