// Package shortestpath implements single-pair Dijkstra search over a transit
// graph, minimizing cumulative trip delay.
//
// Overview:
//
//   - Between computes the minimum-total-delay path from a start station to
//     an end station over non-negative edge delays, using a min-heap priority
//     frontier keyed by cumulative delay with the lazy-decrease-key strategy.
//   - The search terminates as soon as the end station is popped as the
//     frontier minimum; the path is reconstructed by walking predecessor
//     links backward and reversing.
//   - Unreachability is a normal outcome, not an error: Between returns a nil
//     *Result (and a nil error) when no route exists, including when either
//     station is absent from the graph.
//
// Numeric safety:
//
//   - Frontier keys carry a total order over the floating delay values.
//     Pushing a NaN cumulative delay would silently corrupt the heap order,
//     so it panics instead (ErrNaNDelay): a NaN weight is a data-integrity
//     fault, and producing a wrong ranking is worse than aborting the run.
//
// Edge cases:
//
//   - start == end yields a single-element path with zero total delay, found
//     immediately on the first pop — even when the station has no edges.
//   - Ties in cumulative delay are broken arbitrarily by frontier order; the
//     result is deterministic per fixed input but not specified by delay
//     alone.
//
// Complexity:
//
//   - Time:  O((V + E) log V) per call.
//   - Space: O(V + E) for the distance/predecessor maps and the frontier.
//
// Example:
//
//	res, err := shortestpath.Between(g, "Newark Penn", "Summit")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if res == nil {
//	    fmt.Println("unreachable")
//	} else {
//	    fmt.Printf("%.1f min via %v\n", res.TotalDelay, res.Stations)
//	}
package shortestpath
