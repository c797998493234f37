// SPDX-License-Identifier: MIT
// Package: netrepair/topology
//
// errors.go: sentinel errors for the topology package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w ("Build: edge 3: ...: %w").
//   • Nothing in this package panics on caller input.

package topology

import "errors"

var (
	// ErrTooFewNodes indicates a layout with fewer than two nodes.
	ErrTooFewNodes = errors.New("topology: at least two nodes are required")

	// ErrNoLinks indicates a layout without any edge.
	ErrNoLinks = errors.New("topology: at least one link is required")

	// ErrEndpointOutOfRange indicates an edge endpoint outside [0, len(nodes)).
	ErrEndpointOutOfRange = errors.New("topology: link endpoint out of range")

	// ErrSelfLoop indicates an edge whose endpoints coincide.
	ErrSelfLoop = errors.New("topology: link endpoints must differ")

	// ErrInvalidParams indicates non-positive draw bounds.
	ErrInvalidParams = errors.New("topology: invalid parameters")

	// ErrInvalidRepairTime indicates a non-positive repair duration.
	ErrInvalidRepairTime = errors.New("topology: repair time must be > 0")

	// ErrInvalidCapacity indicates a non-positive link capacity.
	ErrInvalidCapacity = errors.New("topology: capacity must be > 0")

	// ErrIndexOutOfRange indicates a node or link lookup outside bounds.
	ErrIndexOutOfRange = errors.New("topology: index out of range")
)
