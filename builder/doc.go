// Package builder assembles synthetic network layouts for experiments and
// tests when no Topology Zoo file is at hand.
//
// A layout is composed from Constructors (Cycle, Path, Star, Wheel,
// Complete, Grid, RandomSparse) by BuildLayout. Each constructor places its
// own nodes geometrically (ring on a circle, lattice, uniform scatter) and
// emits edges in a documented order; successive components are laid out
// left to right. The result is a topology.Layout ready for topology.Build.
//
// Options follow the functional style:
//
//	layout, err := builder.BuildLayout(
//		[]builder.BuilderOption{builder.WithName("mesh"), builder.WithSeed(7), builder.WithScale(10)},
//		builder.Grid(4, 6),
//	)
//
// Option constructors panic on meaningless values (nil rng, non-positive
// scale); constructors return sentinel errors (ErrTooFewVertices,
// ErrInvalidProbability, ErrNeedRandSource, ErrConstructFailed) and never
// panic.
package builder
