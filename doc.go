// Package astar provides a generic A* graph search over caller-supplied nodes.
//
// It exposes three main entry points:
//
//   - New: run a search to completion and query its outcome and path.
//   - Stepper: advance the same search one expansion at a time to drive
//     UIs or debugging tools.
//   - SearchMany: run independent queries over one immutable graph with
//     bounded parallelism.
//
// The library is generic over the node type. Nodes supply their own edge
// costs, heuristic, successor enumeration and availability; the engine keeps
// all per-search state (costs, predecessors, open and closed membership) in
// side tables of its own, so the graph is never mutated and may be shared
// between searches.
package astar
