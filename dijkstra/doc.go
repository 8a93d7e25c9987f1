// Package dijkstra implements Dijkstra's shortest-path search over the
// implicit grid graph of a gridgraph.Level, or any other graph exposed as a
// gridgraph.Adjacency.
//
// Overview:
//
//   - ShortestPath stops as soon as the destination is finalized and rebuilds
//     the source-first path from the predecessor chain.
//   - ShortestPathToAll drains the frontier and returns the cost of every
//     reachable cell; unreachable cells are absent.
//   - Both share one runner: a distance/predecessor arena and a min-heap
//     frontier keyed by tentative distance. Equal distances are extracted in
//     discovery order, so results are reproducible run to run.
//
// State machine per cell: unvisited → frontier on first discovery;
// frontier → frontier when a cheaper path lowers its key (heap.Fix);
// frontier → finalized on extraction. No cell moves backwards.
//
// Key features:
//
//   - Pluggable adjacency: the engine never inspects the level; it only calls
//     the gridgraph.Adjacency it is given.
//   - WithMaxCost: cells beyond a distance cap are not explored.
//   - WithOnSettle: hook called once per finalized cell.
//   - WithStats: pops, relaxations and decrease-key counters.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V) over the reachable part of the graph.
//   - Space: O(V). Each cell occupies at most one heap slot (true decrease-key).
//
// Error handling:
//
//   - An unreachable destination is a normal result (Result.Found == false).
//   - ErrNilAdjacency: a nil adjacency was passed.
//   - ErrOptionViolation: an option received an invalid value.
//
// Concurrency: each call allocates its own state. Concurrent calls over the
// same read-only Level are safe.
package dijkstra
