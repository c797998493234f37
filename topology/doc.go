// Package topology holds the static shape of a communication network: sites
// (nodes) with a position and a repair duration, and links with two endpoint
// indices, a capacity, a repair duration and a midpoint.
//
// A Layout is the ingestion contract (GML parser, builder): ordered positions
// and ordered endpoint pairs. Build turns a Layout into a Topology, drawing
// capacities and repair times from an injected *rand.Rand so that a fixed
// seed reproduces the same network.
//
// Everything here is immutable after construction. Health (broken/connected)
// is mutable state owned by package network.
package topology
