// Package flow implements maximum-flow algorithms over a square capacity
// matrix (*matrix.Dense). Vertices are matrix indices; entry (u, v) is the
// capacity of the arc u→v. A symmetric matrix models undirected links: each
// direction may carry up to the link capacity.
//
// The key algorithms offered are:
//
//   - Edmonds–Karp (default)
//
//   - Method: breadth-first search for shortest (fewest-edge) augmenting paths.
//
//   - Time:   O(V · E²) augmentations bound.
//
//   - Guarantees polynomial worst-case behavior.
//
//   - Dinic
//
//   - Method: level graph construction + blocking-flow via DFS.
//
//   - Used to cross-check Edmonds–Karp and on larger topologies.
//
//   - Ford–Fulkerson
//
//   - Method: depth-first search to find any augmenting path.
//
//   - Time:   O(E · F) for integral capacities.
//
// # API
//
//	func EdmondsKarp(m *matrix.Dense, source, sink int, opts *Options) (int64, error)
//	func Dinic(m *matrix.Dense, source, sink int, opts *Options) (int64, error)
//	func FordFulkerson(m *matrix.Dense, source, sink int, opts *Options) (int64, error)
//	func MaxFlow(m *matrix.Dense, source, sink int, opts *Options) (int64, error)
//
// All entry points are reentrant: they read the caller's matrix once into a
// private residual copy and never mutate it, so concurrent calls on the same
// matrix are safe. Disconnected terminals yield a flow of 0, not an error.
//
// # Errors
//
//	ErrNilMatrix      - nil capacity matrix.
//	ErrSourceNotFound - source index outside the matrix.
//	ErrSinkNotFound   - sink index outside the matrix.
//	EdgeError         - a negative capacity entry.
//	context.Canceled / context.DeadlineExceeded - if opts.Ctx is cancelled.
package flow
