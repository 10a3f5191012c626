// Package centrality: closeness centrality over delay-weighted shortest
// paths.
package centrality

import (
	"fmt"
	"sort"

	"github.com/transitlab/railstat/shortestpath"
	"github.com/transitlab/railstat/transit"
)

// Closeness computes the closeness centrality of station:
// (number of reachable origin stations, excluding station itself) divided by
// (sum of shortest-path delays to each of them).
//
// Returns ok=false — "no score", distinct from a score of zero — when:
//
//   - no other origin station is reachable from station, or
//   - every reachable station costs zero cumulative delay, which makes the
//     denominator zero. This conflates "unreachable" with "reachable at zero
//     cost"; callers that must tell the two apart need a different metric.
//
// Complexity: O(V) Dijkstra runs, O((V+E) log V) each.
func Closeness(g *transit.Graph, station string) (score float64, ok bool, err error) {
	if g == nil {
		return 0, false, ErrNilGraph
	}
	if station == "" {
		return 0, false, ErrEmptyStation
	}

	var totalDelay float64
	var reachable int
	for _, other := range g.Origins() {
		if other == station {
			continue
		}
		res, perr := shortestpath.Between(g, station, other)
		if perr != nil {
			return 0, false, fmt.Errorf("centrality: closeness of %q: %w", station, perr)
		}
		if res == nil {
			continue // unreachable target, a normal outcome
		}
		totalDelay += res.TotalDelay
		reachable++
	}

	if reachable == 0 || totalDelay == 0 {
		return 0, false, nil
	}

	return float64(reachable) / totalDelay, true, nil
}

// RankByCloseness scores every origin station by closeness centrality and
// returns the topN highest, descending, with 1-based ranks. Stations with no
// defined score are omitted. Ties keep alphabetical station order.
func RankByCloseness(g *transit.Graph, topN int) ([]StationScore, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if topN < 0 {
		return nil, ErrBadTopN
	}

	scored := make([]StationScore, 0, g.Order())
	for _, station := range g.Origins() {
		score, ok, err := Closeness(g, station)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		scored = append(scored, StationScore{Station: station, Score: score})
	}

	// Origins() is sorted, so a stable sort leaves ties alphabetical.
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })
	if len(scored) > topN {
		scored = scored[:topN]
	}
	for i := range scored {
		scored[i].Rank = i + 1
	}

	return scored, nil
}
