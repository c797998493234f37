// SPDX-License-Identifier: MIT

package builder

import (
	"math"

	"github.com/katalvlaran/netrepair/topology"
)

// Minimum sizes per constructor.
const (
	MinCycleNodes    = 3
	MinPathNodes     = 2
	MinStarNodes     = 2
	MinWheelNodes    = 4
	MinCompleteNodes = 2
	MinGridDim       = 1
	MinRandomNodes   = 2
	MinProbability   = 0.0
	MaxProbability   = 1.0
)

// onCircle returns the position of the i-th of n points evenly spaced on a
// circle of the given radius centred at the origin, starting at angle 0.
func onCircle(i, n int, radius float64) topology.Point {
	theta := 2 * math.Pi * float64(i) / float64(n)
	return topology.Point{X: radius * math.Cos(theta), Y: radius * math.Sin(theta)}
}

// ring appends n nodes on a circle and joins consecutive ones, closing the
// loop. It returns the local index of the first ring node.
func ring(p *part, n int, radius float64) int {
	first := len(p.nodes)
	for i := 0; i < n; i++ {
		p.addNode(onCircle(i, n, radius))
	}
	for i := 0; i < n; i++ {
		p.addEdge(first+i, first+(i+1)%n)
	}

	return first
}
