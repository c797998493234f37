package flow

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// ErrSourceNotFound is returned when the source index is outside the matrix.
var ErrSourceNotFound = fmt.Errorf("flow: %w", errSourceNotFound)
var errSourceNotFound = errors.New("source vertex not found")

// ErrSinkNotFound is returned when the sink index is outside the matrix.
var ErrSinkNotFound = fmt.Errorf("flow: %w", errSinkNotFound)
var errSinkNotFound = errors.New("sink vertex not found")

// ErrNilMatrix is returned when a nil capacity matrix is supplied.
var ErrNilMatrix = errors.New("flow: capacity matrix is nil")

// ErrUnknownAlgorithm is returned by ParseAlgorithm for unrecognised names.
var ErrUnknownAlgorithm = errors.New("flow: unknown algorithm")

// EdgeError is returned when an entry of the capacity matrix is negative.
type EdgeError struct {
	From, To int
	Cap      int64
}

func (e EdgeError) Error() string {
	return fmt.Sprintf("flow: negative capacity on edge %d→%d: %d", e.From, e.To, e.Cap)
}

// Algorithm selects the augmenting strategy used by MaxFlow.
type Algorithm int

const (
	// AlgorithmEdmondsKarp uses BFS shortest augmenting paths (default).
	AlgorithmEdmondsKarp Algorithm = iota
	// AlgorithmDinic uses level graphs and blocking flows.
	AlgorithmDinic
	// AlgorithmFordFulkerson uses DFS augmenting paths.
	AlgorithmFordFulkerson
)

func (a Algorithm) String() string {
	switch a {
	case AlgorithmEdmondsKarp:
		return "edmonds-karp"
	case AlgorithmDinic:
		return "dinic"
	case AlgorithmFordFulkerson:
		return "ford-fulkerson"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps a configuration name onto an Algorithm.
// The empty string resolves to AlgorithmEdmondsKarp.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "edmonds-karp", "edmondskarp", "ek":
		return AlgorithmEdmondsKarp, nil
	case "dinic":
		return AlgorithmDinic, nil
	case "ford-fulkerson", "fordfulkerson", "ff":
		return AlgorithmFordFulkerson, nil
	default:
		return 0, fmt.Errorf("ParseAlgorithm(%q): %w", name, ErrUnknownAlgorithm)
	}
}

// Options configures all max-flow algorithms.
//   - Ctx: checked between augmentations (nil means context.Background()).
//   - Logger: receives one debug record per augmentation when Verbose is set.
//   - Verbose: if true, logs each augmentation.
//   - Algorithm: strategy used by MaxFlow.
//   - LevelRebuildInterval: for Dinic, rebuild level graph every N augmentations.
type Options struct {
	Ctx                  context.Context
	Logger               *slog.Logger
	Verbose              bool
	Algorithm            Algorithm
	LevelRebuildInterval int
}

// DefaultOptions returns production-safe defaults: background context,
// a discarding logger, Edmonds–Karp, no verbose output.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		Algorithm: AlgorithmEdmondsKarp,
	}
}

// normalize fills zero-valued fields with defaults.
func (o *Options) normalize() {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if o.LevelRebuildInterval < 0 {
		o.LevelRebuildInterval = 0
	}
}

// resolve copies opts (nil allowed) and normalizes the copy.
func resolve(opts *Options) Options {
	var o Options
	if opts != nil {
		o = *opts
	} else {
		o = DefaultOptions()
	}
	o.normalize()

	return o
}
