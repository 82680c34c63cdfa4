package astar

import (
	"fmt"

	"github.com/go-logr/logr"
)

// StepSnapshot exposes the state of the search after one expansion. The
// maps are copies and remain valid after further steps.
type StepSnapshot[N Node[N]] struct {
	Current   N
	Open      map[N]bool
	Closed    map[N]bool
	CameFrom  map[N]N
	Done      bool
	Found     bool
	Path      []N
	StepIndex int
}

// Stepper runs the same algorithm as New but one expansion per call, for
// driving visualizations or inspecting intermediate state. Like Search it
// owns all of its state; the graph is only read.
type Stepper[N Node[N]] struct {
	searchState[N]

	log   logr.Logger
	start N

	stepCount int
	done      bool
	found     bool
}

// NewStepper prepares a stepwise search. The start/goal precondition is the
// same as New's; the first expansion happens on the first call to Step.
func NewStepper[N Node[N]](graph []N, start N, goal N, options ...Option) (*Stepper[N], error) {
	applied := applyOptions(options)

	if !inGraph(graph, start) {
		return nil, fmt.Errorf("start node: %w", ErrNotInGraph)
	}
	if !inGraph(graph, goal) {
		return nil, fmt.Errorf("goal node: %w", ErrNotInGraph)
	}

	return &Stepper[N]{
		searchState: newSearchState(graph, start, goal),
		log:         applied.Logger,
		start:       start,
	}, nil
}

// Step expands the next frontier node and returns a snapshot. Once the
// search is done, either by reaching the goal or exhausting the frontier,
// further calls return the final snapshot unchanged.
func (s *Stepper[N]) Step() StepSnapshot[N] {
	if s.done {
		return s.snapshot()
	}
	if s.frontier.Len() == 0 {
		s.done = true
		s.log.V(1).Info("search exhausted", "expanded", s.stepCount)
		return s.snapshot()
	}

	s.stepCount++
	current := s.frontier.PopMin()
	s.closed[current] = true

	if current == s.goal {
		s.done = true
		s.found = true
		s.backlink()
		s.log.V(1).Info("search succeeded",
			"cost", s.states[current].g,
			"steps", s.states[current].step,
			"expanded", s.stepCount)
		snap := s.snapshot()
		snap.Current = current
		return snap
	}

	for _, successor := range current.Successors(s.graph) {
		s.relax(current, successor)
	}

	snap := s.snapshot()
	snap.Current = current
	return snap
}

// Done reports whether the search has terminated.
func (s *Stepper[N]) Done() bool { return s.done }

// Found reports whether the goal was reached. Meaningful once Done is true.
func (s *Stepper[N]) Found() bool { return s.found }

func (s *Stepper[N]) snapshot() StepSnapshot[N] {
	snap := StepSnapshot[N]{
		Open:      make(map[N]bool, s.frontier.Len()),
		Closed:    copyBoolMap(s.closed),
		CameFrom:  copyNodeMap(s.prev),
		Done:      s.done,
		Found:     s.found,
		StepIndex: s.stepCount,
	}
	for node := range s.frontier.open {
		snap.Open[node] = true
	}
	if s.found {
		snap.Path = s.pathNodes()
	}
	return snap
}

func (s *Stepper[N]) pathNodes() []N {
	path := []N{s.start}
	for node := s.start; node != s.goal; {
		next, ok := s.next[node]
		if !ok {
			break
		}
		path = append(path, next)
		node = next
	}
	return path
}

func copyBoolMap[T comparable](m map[T]bool) map[T]bool {
	c := make(map[T]bool, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}

func copyNodeMap[T comparable](m map[T]T) map[T]T {
	c := make(map[T]T, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}
