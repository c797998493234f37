// Package matrix provides the square capacity matrix shared by the network
// model and the flow engine.
//
// Dense stores n×n int64 values in one contiguous row-major slice sized once
// at construction. Entry (i, j) is the usable capacity from node i to node j;
// zero means "no usable link". The network model keeps its matrix symmetric
// through SetSymmetric; the flow engine never mutates a caller's matrix and
// works on Values() copies instead.
//
// All accessors validate indices and return sentinel errors (ErrOutOfRange,
// ErrNilMatrix, ...) rather than panicking.
package matrix
