// SPDX-License-Identifier: MIT

package gml

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/netrepair/topology"
)

// Fallback position for nodes without coordinates (hyperedge nodes in the
// Topology Zoo): a point near the middle of the continental US.
const (
	FallbackLatitude  = 40.0
	FallbackLongitude = -90.0
)

// Node is one GML node. Latitude and Longitude are valid iff HasCoords.
type Node struct {
	ID        int
	Label     string
	Latitude  float64
	Longitude float64
	HasCoords bool
	Hyperedge bool
}

// Position maps the node onto the simulation plane: X = Latitude,
// Y = Longitude, or the fallback point when coordinates are missing.
func (n Node) Position() topology.Point {
	if !n.HasCoords {
		return topology.Point{X: FallbackLatitude, Y: FallbackLongitude}
	}
	return topology.Point{X: n.Latitude, Y: n.Longitude}
}

// Edge joins two nodes by their GML ids.
type Edge struct {
	Source int
	Target int
	Label  string
}

// Graph is the decoded graph section of a GML document.
type Graph struct {
	Label    string
	Directed bool
	Nodes    []Node
	Edges    []Edge
}

// Decode parses a GML document and extracts its first graph section.
func Decode(r io.Reader) (*Graph, error) {
	top, err := Parse(r)
	if err != nil {
		return nil, fmt.Errorf("Decode: %w", err)
	}
	for _, p := range top {
		if p.Key == "graph" && p.Value.Kind == KindList {
			g, err := decodeGraph(p.Value)
			if err != nil {
				return nil, fmt.Errorf("Decode: %w", err)
			}
			return g, nil
		}
	}

	return nil, fmt.Errorf("Decode: %w", ErrNoGraph)
}

// ReadFile decodes the GML file at path.
func ReadFile(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Decode(f)
}

func decodeGraph(v Value) (*Graph, error) {
	g := &Graph{}
	if label, ok := v.Get("label"); ok {
		g.Label = label.Text
	}
	if d, ok := v.Get("directed"); ok {
		i, _ := d.Int()
		g.Directed = i != 0
	}

	for _, p := range v.List {
		switch p.Key {
		case "node":
			n, err := decodeNode(p.Value)
			if err != nil {
				return nil, fmt.Errorf("node #%d: %w", len(g.Nodes), err)
			}
			g.Nodes = append(g.Nodes, n)
		case "edge":
			e, err := decodeEdge(p.Value)
			if err != nil {
				return nil, fmt.Errorf("edge #%d: %w", len(g.Edges), err)
			}
			g.Edges = append(g.Edges, e)
		}
	}

	return g, nil
}

func decodeNode(v Value) (Node, error) {
	var n Node
	id, ok := v.Get("id")
	if !ok {
		return n, ErrMissingID
	}
	if n.ID, ok = id.Int(); !ok {
		return n, ErrMissingID
	}
	if label, ok := v.Get("label"); ok {
		n.Label = label.Text
	}
	if h, ok := v.Get("hyperedge"); ok {
		i, _ := h.Int()
		n.Hyperedge = i != 0
	}
	lat, okLat := v.Get("Latitude")
	lon, okLon := v.Get("Longitude")
	if okLat && okLon && lat.Kind == KindNumber && lon.Kind == KindNumber {
		n.Latitude, n.Longitude, n.HasCoords = lat.Number, lon.Number, true
	}

	return n, nil
}

func decodeEdge(v Value) (Edge, error) {
	var e Edge
	src, okS := v.Get("source")
	dst, okT := v.Get("target")
	if !okS || !okT {
		return e, ErrMissingID
	}
	var ok bool
	if e.Source, ok = src.Int(); !ok {
		return e, ErrMissingID
	}
	if e.Target, ok = dst.Int(); !ok {
		return e, ErrMissingID
	}
	if label, ok := v.Get("LinkLabel"); ok {
		e.Label = label.Text
	}

	return e, nil
}

// Layout converts the graph to the ingestion format used by topology.Build.
// Node ids are remapped to 0-based indices in order of appearance. Self
// loops carry no flow and are dropped; parallel edges are kept.
func (g *Graph) Layout() (topology.Layout, error) {
	index := make(map[int]int, len(g.Nodes))
	layout := topology.Layout{Name: g.Label, Nodes: make([]topology.Point, 0, len(g.Nodes))}
	for i, n := range g.Nodes {
		if _, dup := index[n.ID]; dup {
			return topology.Layout{}, fmt.Errorf("Layout: id %d: %w", n.ID, ErrDuplicateID)
		}
		index[n.ID] = i
		layout.Nodes = append(layout.Nodes, n.Position())
	}

	for _, e := range g.Edges {
		u, okU := index[e.Source]
		v, okV := index[e.Target]
		if !okU || !okV {
			return topology.Layout{}, fmt.Errorf("Layout: edge %d-%d: %w", e.Source, e.Target, ErrUnknownNode)
		}
		if u == v {
			continue
		}
		layout.Edges = append(layout.Edges, topology.Edge{From: u, To: v})
	}

	if err := layout.Validate(); err != nil {
		return topology.Layout{}, fmt.Errorf("Layout: %w", err)
	}

	return layout, nil
}

// LoadLayout reads a GML file and returns its layout.
func LoadLayout(path string) (topology.Layout, error) {
	g, err := ReadFile(path)
	if err != nil {
		return topology.Layout{}, err
	}
	return g.Layout()
}
