// Package routestats implements the per-route average-delay aggregation and
// its highest/lowest rankings.
package routestats

import (
	"sort"

	"github.com/transitlab/railstat/transit"
)

// routeKey identifies an ordered (origin, destination) pair.
type routeKey struct {
	from, to string
}

// AverageDelays scans every edge of the graph and returns one RouteStat per
// distinct ordered station pair that has at least one edge: the exact mean
// delay over all parallel edges plus the trip count.
//
// Rows are sorted by (From, To) for deterministic output.
//
// Complexity: O(E + R log R) where R is the number of distinct routes.
func AverageDelays(g *transit.Graph) ([]RouteStat, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	type acc struct {
		total float64
		count int
	}
	totals := make(map[routeKey]*acc)
	for _, from := range g.Origins() {
		for _, e := range g.Neighbors(from) {
			k := routeKey{from: from, to: e.To}
			a := totals[k]
			if a == nil {
				a = &acc{}
				totals[k] = a
			}
			a.total += e.Delay
			a.count++
		}
	}

	stats := make([]RouteStat, 0, len(totals))
	for k, a := range totals {
		stats = append(stats, RouteStat{
			From:     k.from,
			To:       k.to,
			AvgDelay: a.total / float64(a.count),
			Trips:    a.count,
		})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].From != stats[j].From {
			return stats[i].From < stats[j].From
		}

		return stats[i].To < stats[j].To
	})

	return stats, nil
}

// RankHighest returns the topN routes with the highest average delay among
// routes meeting the minimum trip count, descending.
func RankHighest(g *transit.Graph, topN int, opts ...Option) ([]RouteStat, error) {
	return rank(g, topN, true, opts)
}

// RankLowest returns the topN routes with the lowest average delay among
// routes meeting the minimum trip count, ascending.
func RankLowest(g *transit.Graph, topN int, opts ...Option) ([]RouteStat, error) {
	return rank(g, topN, false, opts)
}

// rank filters by minimum trip count, orders by average delay, and truncates.
func rank(g *transit.Graph, topN int, descending bool, opts []Option) ([]RouteStat, error) {
	if topN < 0 {
		return nil, ErrBadTopN
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	stats, err := AverageDelays(g)
	if err != nil {
		return nil, err
	}

	kept := stats[:0]
	for _, s := range stats {
		if s.Trips >= o.MinTrips {
			kept = append(kept, s)
		}
	}

	// AverageDelays output is (From, To)-sorted, so a stable sort keeps ties
	// in route order.
	sort.SliceStable(kept, func(i, j int) bool {
		if descending {
			return kept[i].AvgDelay > kept[j].AvgDelay
		}

		return kept[i].AvgDelay < kept[j].AvgDelay
	})
	if len(kept) > topN {
		kept = kept[:topN]
	}

	return kept, nil
}
