package astar

import "iter"

// Path returns the found path as a lazy sequence of nodes, start to goal.
// The sequence is restartable: the forward links are immutable once New
// returns, so every iteration yields the same nodes. If the search was not
// successful the sequence is empty.
func (s *Search[N]) Path() iter.Seq[N] {
	return func(yield func(N) bool) {
		if !s.successful {
			return
		}
		for node := s.start; ; {
			if !yield(node) {
				return
			}
			if node == s.goal {
				return
			}
			next, ok := s.next[node]
			if !ok {
				return
			}
			node = next
		}
	}
}

// PathNodes returns the found path as a slice, or nil if the search was not
// successful.
func (s *Search[N]) PathNodes() []N {
	if !s.successful {
		return nil
	}
	path := make([]N, 0, s.Steps()+1)
	for node := range s.Path() {
		path = append(path, node)
	}
	return path
}
