// Package search implements steppable graph search over a grid.
//
// Every algorithm variant satisfies [Stepper]: one call to Step expands
// exactly one node and returns the cell-role changes as [Event] values,
// so a host animation loop can drive the search one frame at a time.
// The variants differ only in frontier ordering:
//
//   - bfs: FIFO queue, optimal on unit-cost grids
//   - dfs: LIFO stack, no optimality guarantee
//   - dijkstra: min-heap on cumulative cost, ties by insertion order
//   - astar: min-heap on cost + Manhattan distance, ties by lower cost
//     then insertion order
//   - greedy: min-heap on Manhattan distance alone
//   - dls: LIFO stack truncated at a fixed depth limit
//   - iddfs: depth-limited rounds restarted with a growing limit
//   - bidirectional: two FIFO frontiers grown alternately until they meet
//
// For a fixed grid, start, target, and variant the emitted event sequence
// is identical across runs. Neighbor enumeration order is fixed by the grid
// and frontier ties are broken by a monotonic insertion sequence, so no
// map iteration order ever leaks into results.
package search
