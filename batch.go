package astar

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Query is one start/goal pair for SearchMany.
type Query[N Node[N]] struct {
	Start N
	Goal  N
}

// SearchMany runs an independent search for every query over the same
// graph, at most Options.Parallelism at a time, and returns the results in
// query order. Each invocation owns its side tables and the graph is only
// read, so the queries do not interfere; the graph and its nodes must not
// be mutated while SearchMany runs.
//
// An unreachable goal yields a Result with Found false. A query whose start
// or goal is outside the graph aborts the batch with ErrNotInGraph.
func SearchMany[N Node[N]](ctx context.Context, graph []N, queries []Query[N], options ...Option) ([]Result[N], error) {
	applied := applyOptions(options)

	results := make([]Result[N], len(queries))
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(applied.Parallelism)

	for i, query := range queries {
		group.Go(func() error {
			s, err := New(ctx, graph, query.Start, query.Goal, options...)
			if err != nil {
				return fmt.Errorf("query %d: %w", i, err)
			}
			results[i] = s.Result()
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
