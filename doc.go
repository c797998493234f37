// Package netrepair simulates the degradation and repair of a communication
// network and measures how quickly a repair policy restores the maximum
// flow between two nodes.
//
// A run proceeds in four stages:
//
//	layout      gml/ (Topology Zoo files) or builder/ (synthetic shapes)
//	topology    topology/ draws capacities and repair times from a seed
//	damage      network/ injects a random or geographic failure
//	repair      repair/ policies fill the single repair slot tick by tick,
//	            experiment/ samples flow/ max flow along the way
//
// Subpackages:
//
//	matrix/         dense int64 capacity matrix
//	flow/           Edmonds–Karp, Dinic and Ford–Fulkerson max flow
//	topology/       immutable nodes, links, positions and seeded draws
//	network/        health flags, connectivity, repair scheduler, failure injectors
//	repair/         Uniform (random) and Greedy (capacity per repair time) policies
//	experiment/     campaign runner, policy comparison and text report
//	config/         YAML/TOML experiment configuration
//	metrics/        Prometheus gauges and counters for a run
//	cmd/netrepair/  the command line front end
//
// Quick start:
//
//	netrepair inspect --builder grid --size 6 --cols 8 --source 0 --sink 47
//	netrepair run --gml Kdl.gml --source 52 --sink 725 --mode geographic --percent 30
package netrepair
