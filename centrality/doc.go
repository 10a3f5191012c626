// Package centrality computes closeness and betweenness centrality for
// stations of a transit graph.
//
// Closeness:
//
//   - Closeness(g, s) is the count of stations reachable from s (excluding s
//     itself) divided by the sum of shortest-path delays to each of them, via
//     one delay-weighted Dijkstra per target. Higher score = more central:
//     lower typical delay to reach more stations.
//   - The score is undefined — not zero — when no peer is reachable, and also
//     when every reachable peer costs zero total delay (a zero denominator).
//     The two cases are deliberately not distinguished; see Closeness.
//   - Targets are the graph's origin stations (those with outgoing edges),
//     matching the set the batch ranking scores.
//
// Betweenness:
//
//   - Betweenness(g) runs Brandes' algorithm over unweighted hop count,
//     deliberately ignoring the delay weights the same graph carries:
//     betweenness here measures structural path-sharing, not delay-weighted
//     path-sharing.
//   - Parallel edges are not deduplicated during traversal, so each parallel
//     edge counts as a distinct shortest path when accumulating sigma. This
//     over-counts relative to textbook Brandes on a simple graph; it is the
//     established ranking behavior for this dataset.
//   - Non-finite or negative dependency contributions are excluded from the
//     running totals and reported via BetweennessResult.Suppressed, so a
//     malformed graph surfaces as a diagnostic instead of a silent loss.
//
// Complexity:
//
//   - Closeness: O(V) Dijkstra runs per ranking, O((V+E) log V) each.
//   - Betweenness: O(V·E) with unweighted BFS.
//
// Both rankings are pure functions of the immutable graph: nothing is cached
// between calls, and independent sources could safely be computed on separate
// workers if that were ever needed.
package centrality
