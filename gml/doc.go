// Package gml reads Graph Modelling Language files as published by the
// Internet Topology Zoo and turns them into topology.Layout values.
//
// Only what the simulation needs is interpreted: node id, label,
// Latitude/Longitude and the hyperedge flag, and edge source/target.
// Every other key is parsed and ignored. Nodes without coordinates are
// placed at (FallbackLatitude, FallbackLongitude).
//
//	layout, err := gml.LoadLayout("Kdl.gml")
//	topo, err := topology.Build(layout, topology.DefaultParams(), topology.NewRand(seed))
package gml
