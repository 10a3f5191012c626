// Package routestats aggregates per-route average-delay statistics over a
// transit graph.
//
// A route is an ordered (origin, destination) station pair. Every directed
// edge between the pair — including every parallel edge — contributes its
// delay to the route's sum and bumps its trip count, so the reported average
// is the exact mean delay over all recorded trips on that route.
//
// Aggregation is a full O(E) scan recomputed from the graph on every call;
// nothing is cached between calls.
//
// Rankings:
//
//   - RankHighest / RankLowest first drop routes with fewer trips than the
//     minimum sample size (default 5, tunable via WithMinTrips) so that
//     single-trip outliers cannot dominate the ranking, then sort by average
//     delay descending or ascending and keep the top N.
//
// Example:
//
//	worst, err := routestats.RankHighest(g, 10)
//	best, err := routestats.RankLowest(g, 10, routestats.WithMinTrips(3))
package routestats
