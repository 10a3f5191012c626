// Package shortestpath implements delay-weighted Dijkstra over a transit
// graph using a min-heap frontier with lazy decrease-key.
package shortestpath

import (
	"container/heap"

	"github.com/transitlab/railstat/transit"
)

// Between computes the minimum-total-delay path from start to end.
//
// Returns:
//
//   - (*Result, nil) when a path exists: Stations runs start…end inclusive
//     and TotalDelay is the sum of the edge delays along it.
//   - (nil, nil) when end is unreachable from start, including when either
//     station is absent from the graph. Unreachability is a normal outcome.
//   - (nil, err) only for invalid input: ErrNilGraph, ErrEmptyStation.
//
// A NaN edge delay reaching the frontier panics with ErrNaNDelay rather than
// silently corrupting the heap order.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Between(g *transit.Graph, start, end string) (*Result, error) {
	// 1) Validate inputs. Station absence is not validated here: an absent
	//    start simply reaches nothing, and start == end is answered directly
	//    by the first pop, exactly as the frontier would resolve it.
	if start == "" || end == "" {
		return nil, ErrEmptyStation
	}
	if g == nil {
		return nil, ErrNilGraph
	}

	// 2) Prepare per-query state.
	r := &search{
		g:    g,
		dist: map[string]float64{start: 0},
		prev: make(map[string]string),
	}
	heap.Init(&r.pq)
	heap.Push(&r.pq, frontierItem{station: start, delay: newDelayKey(0)})

	// 3) Run the main loop.
	return r.run(end), nil
}

// search holds the ephemeral state of a single Between invocation; it is
// discarded when the call returns.
type search struct {
	g    *transit.Graph     // borrowed read-only
	dist map[string]float64 // best-known cumulative delay per station
	prev map[string]string  // predecessor on the best-known path
	pq   frontier           // min-heap frontier, lazy decrease-key
}

// run pops frontier minima and relaxes outgoing edges until end is popped
// (shortest distance finalized) or the frontier drains (unreachable).
func (r *search) run(end string) *Result {
	for r.pq.Len() > 0 {
		// 1) Pop the smallest cumulative delay from the frontier.
		item := heap.Pop(&r.pq).(frontierItem)
		station, d := item.station, float64(item.delay)

		// 2) Skip stale entries left behind by lazy decrease-key.
		if d > r.dist[station] {
			continue
		}

		// 3) The first pop of end finalizes its distance: reconstruct.
		if station == end {
			return &Result{TotalDelay: d, Stations: r.rebuild(end)}
		}

		// 4) Relax every outgoing edge, parallel edges included. A duplicate
		//    edge can only re-offer the same or a worse candidate, so the
		//    strict-improvement check keeps multi-edges harmless here.
		for _, e := range r.g.Neighbors(station) {
			nd := d + e.Delay
			if cur, seen := r.dist[e.To]; seen && nd >= cur {
				continue
			}
			r.dist[e.To] = nd
			r.prev[e.To] = station
			heap.Push(&r.pq, frontierItem{station: e.To, delay: newDelayKey(nd)})
		}
	}

	// Frontier drained without popping end: unreachable.
	return nil
}

// rebuild walks predecessor links backward from end and reverses in place.
func (r *search) rebuild(end string) []string {
	path := []string{end}
	for {
		prev, ok := r.prev[path[len(path)-1]]
		if !ok {
			break
		}
		path = append(path, prev)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
