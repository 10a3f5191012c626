// Package transit provides the core in-memory transit-network graph built
// from historical train-trip records.
//
// Overview:
//
//   - A Graph is a directed, weighted multigraph: every trip record carrying
//     a measured delay contributes exactly one edge, so parallel edges between
//     the same station pair are expected and represent repeated trips.
//   - Stations are identified by their exact name string; no normalization
//     (case folding, whitespace trimming) is performed, so two textually
//     distinct names are always distinct nodes.
//   - The graph is built once from an immutable record snapshot and is never
//     mutated afterward. All analysis packages (shortestpath, centrality,
//     routestats) borrow it read-only, so no locking is required.
//
// Construction:
//
//	records := []transit.TripRecord{...}   // from ingest, or hand-built
//	g := transit.NewGraph(records)
//
// Records whose DelayMinutes is nil are silently excluded: a missing delay
// means the trip never got a completed delay measurement, which is a normal
// state of the dataset, not an error.
//
// Per-origin edge lists preserve record insertion order. No algorithm's
// correctness depends on that order, but traversals that examine edges in
// list order inherit it as their tie-break order.
//
// See also:
//
//   - shortestpath: delay-weighted Dijkstra over a Graph.
//   - centrality: closeness and betweenness centrality.
//   - routestats: per-route average-delay aggregation.
package transit
