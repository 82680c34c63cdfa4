package astar

import (
	"errors"
	"runtime"

	"github.com/go-logr/logr"
)

// Node is the capability contract every graph node type must satisfy.
// The type parameter is the node type itself (N Node[N]), and it must be
// comparable: equality on N defines node identity for open/closed membership
// and goal detection, so the graph must hand out exactly one value per
// logical node (typically a pointer).
type Node[N comparable] interface {
	comparable

	// Distance returns the exact edge cost to rhs. It is called only on
	// adjacent pairs produced by Successors and may assume adjacency.
	Distance(rhs N) float64

	// Heuristic estimates the remaining cost to goal. It must be admissible
	// (never an overestimate) for the search to be optimal, and stable for a
	// given goal: the engine computes it once per node, at first discovery.
	Heuristic(goal N) float64

	// Successors enumerates the nodes reachable over outgoing edges. The
	// full graph range is passed through so node types that compute
	// adjacency by position can index into it. The result may be empty and
	// must not contain the node itself.
	Successors(graph []N) []N

	// Available reports whether the node is traversable. Unavailable nodes
	// may appear in successor lists; the engine never expands into them.
	Available() bool
}

// Epsilon is the cost-comparison tolerance used during relaxation. A
// tentative cost within Epsilon of the recorded one counts as "no
// improvement": genuinely tied alternative paths are rejected rather than
// adopted, which keeps floating-point noise from churning predecessors.
const Epsilon = 2.220446049250313e-16

// ErrNotInGraph is returned by New when the start or goal node is not part
// of the supplied graph range.
var ErrNotInGraph = errors.New("node not in graph")

// Result contains the outcome of one search query.
type Result[N Node[N]] struct {
	Path      []N
	TotalCost float64
	Steps     int
	Expanded  int
	Found     bool
}

// Options defines parameters shared by all entry points.
type Options struct {
	Logger      logr.Logger
	Parallelism int
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithLogger sets the logger used by the search. The default discards
// everything.
func WithLogger(log logr.Logger) Option {
	return func(options *Options) { options.Logger = log }
}

// WithParallelism bounds how many queries SearchMany runs at once.
func WithParallelism(n int) Option {
	return func(options *Options) { options.Parallelism = n }
}

func applyOptions(options []Option) Options {
	applied := Options{
		Logger:      logr.Discard(),
		Parallelism: runtime.NumCPU(),
	}
	for _, option := range options {
		option(&applied)
	}
	return applied
}
