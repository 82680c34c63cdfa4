package astar

import (
	"context"
	"fmt"
	"math"

	"github.com/go-logr/logr"
)

// nodeState is the per-search side table record for one discovered node.
// The heuristic is filled in exactly once, at first discovery.
type nodeState struct {
	g    float64
	f    float64
	h    float64
	step int
}

// searchState bundles the side tables shared by Search and Stepper. Nodes
// themselves are never written to; everything the engine learns about them
// lives here, keyed by node identity, and is dropped with the invocation.
type searchState[N Node[N]] struct {
	graph []N
	goal  N

	frontier *frontier[N]
	states   map[N]*nodeState
	closed   map[N]bool
	prev     map[N]N
	next     map[N]N
}

func newSearchState[N Node[N]](graph []N, start, goal N) searchState[N] {
	s := searchState[N]{
		graph:    graph,
		goal:     goal,
		frontier: newFrontier[N](),
		states:   make(map[N]*nodeState),
		closed:   make(map[N]bool),
		prev:     make(map[N]N),
		next:     make(map[N]N),
	}
	h := start.Heuristic(goal)
	s.states[start] = &nodeState{g: 0, f: h, h: h}
	s.frontier.Insert(start, h)
	return s
}

// relax attempts to improve the path to successor via current. A tentative
// cost that is not strictly smaller than the recorded one, with Epsilon
// absorbing floating-point noise, is no improvement: tied alternatives are
// rejected, so a finalized predecessor is never swapped for an equal-cost
// one.
func (s *searchState[N]) relax(current N, successor N) {
	if s.closed[successor] || !successor.Available() {
		return
	}
	tentativeG := s.states[current].g + current.Distance(successor)
	state := s.states[successor]
	if s.frontier.Contains(successor) {
		if tentativeG > state.g || math.Abs(tentativeG-state.g) < Epsilon {
			return
		}
	} else {
		state = &nodeState{h: successor.Heuristic(s.goal)}
		s.states[successor] = state
	}
	state.g = tentativeG
	state.f = state.h + tentativeG
	state.step = s.states[current].step + 1
	s.prev[successor] = current
	s.frontier.Insert(successor, state.f)
}

// backlink turns the predecessor chain ending at the goal into forward
// links, so the path can be walked start to goal.
func (s *searchState[N]) backlink() {
	for node := s.goal; ; {
		previous, ok := s.prev[node]
		if !ok {
			return
		}
		s.next[previous] = node
		node = previous
	}
}

// Search is one completed A* invocation. It is constructed by New, which
// runs the algorithm synchronously, and afterwards only answers queries.
// A Search must not be shared between goroutines while New is running;
// once New returns it is read-only.
type Search[N Node[N]] struct {
	searchState[N]

	log   logr.Logger
	start N

	last       N
	expanded   int
	successful bool
}

// New runs an A* search over graph from start to goal and returns the
// finished invocation. Both start and goal must be part of graph; if either
// is absent New fails with ErrNotInGraph before searching. An unreachable
// goal is not an error: New returns normally and Successful reports false.
//
// The context is checked once per expansion; cancellation aborts the search
// with the context's error.
func New[N Node[N]](ctx context.Context, graph []N, start N, goal N, options ...Option) (*Search[N], error) {
	applied := applyOptions(options)

	if !inGraph(graph, start) {
		return nil, fmt.Errorf("start node: %w", ErrNotInGraph)
	}
	if !inGraph(graph, goal) {
		return nil, fmt.Errorf("goal node: %w", ErrNotInGraph)
	}

	s := &Search[N]{
		searchState: newSearchState(graph, start, goal),
		log:         applied.Logger,
		start:       start,
	}
	if err := s.run(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Search[N]) run(ctx context.Context) error {
	s.log.V(1).Info("search started", "nodes", len(s.graph))

	for s.frontier.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}

		current := s.frontier.PopMin()
		s.closed[current] = true
		s.last = current
		s.expanded++

		if current == s.goal {
			s.successful = true
			s.backlink()
			s.log.V(1).Info("search succeeded",
				"cost", s.states[current].g,
				"steps", s.states[current].step,
				"expanded", s.expanded)
			return nil
		}

		s.log.V(2).Info("expanding", "g", s.states[current].g, "f", s.states[current].f)
		for _, successor := range current.Successors(s.graph) {
			s.relax(current, successor)
		}
	}

	s.log.V(1).Info("search exhausted", "expanded", s.expanded)
	return nil
}

// Successful reports whether the goal was reached. It must be checked
// before TotalCost, Steps or the path accessors are trusted.
func (s *Search[N]) Successful() bool {
	return s.successful
}

// TotalCost returns the cost of the found path. If the search was not
// successful it returns the last expanded node's cost, which is stale and
// carries no meaning for callers.
func (s *Search[N]) TotalCost() float64 {
	return s.states[s.last].g
}

// Steps returns the number of hops on the found path, with the same
// validity caveat as TotalCost.
func (s *Search[N]) Steps() int {
	return s.states[s.last].step
}

// Expanded returns how many nodes were moved to the closed set. It is at
// most the size of the graph.
func (s *Search[N]) Expanded() int {
	return s.expanded
}

// Result summarizes the invocation in a single value.
func (s *Search[N]) Result() Result[N] {
	result := Result[N]{
		Expanded: s.expanded,
		Found:    s.successful,
	}
	if s.successful {
		result.Path = s.PathNodes()
		result.TotalCost = s.TotalCost()
		result.Steps = s.Steps()
	}
	return result
}

func inGraph[N comparable](graph []N, node N) bool {
	for _, candidate := range graph {
		if candidate == node {
			return true
		}
	}
	return false
}
