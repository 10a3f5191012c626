// Package centrality: Brandes betweenness centrality over unweighted hop
// count.
package centrality

import (
	"math"
	"sort"

	"github.com/transitlab/railstat/transit"
)

// Betweenness computes betweenness centrality for every station in the graph
// using Brandes' algorithm over unweighted hop count. Delay weights are
// deliberately ignored: the metric is structural path-sharing.
//
// Parallel edges are not deduplicated, so sigma counts each parallel edge as
// a distinct shortest path; see the package documentation for the
// consequences. Non-finite or negative dependency contributions are excluded
// from the totals and counted in BetweennessResult.Suppressed.
//
// Complexity: O(V·E) time.
func Betweenness(g *transit.Graph) (*BetweennessResult, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	all := g.AllStations()
	res := &BetweennessResult{Scores: make(map[string]float64, len(all))}
	for _, s := range all {
		res.Scores[s] = 0
	}

	b := &brandes{g: g, all: all}
	for _, source := range all {
		b.accumulate(source, res)
	}

	return res, nil
}

// brandes holds the per-source mutable state of one Brandes pass.
type brandes struct {
	g   *transit.Graph // borrowed read-only
	all []string       // every station, sorted

	stack []string            // visitation order for back-propagation
	preds map[string][]string // predecessors on hop-shortest paths
	sigma map[string]float64  // number of hop-shortest paths from source
	dist  map[string]int      // hop distance from source, -1 = unvisited
	queue []string            // BFS queue
}

// accumulate runs one source's BFS and dependency back-propagation, adding
// the source's contributions into res.
func (b *brandes) accumulate(source string, res *BetweennessResult) {
	// 1) Reset per-source state.
	n := len(b.all)
	b.stack = b.stack[:0]
	b.preds = make(map[string][]string, n)
	b.sigma = make(map[string]float64, n)
	b.dist = make(map[string]int, n)
	for _, v := range b.all {
		b.sigma[v] = 0
		b.dist[v] = -1
	}
	b.sigma[source] = 1
	b.dist[source] = 0
	b.queue = append(b.queue[:0], source)

	// 2) BFS from source, assigning hop distances and counting hop-shortest
	//    paths. Every parallel edge is examined, so sigma and the predecessor
	//    list pick up one contribution per parallel edge.
	for len(b.queue) > 0 {
		v := b.queue[0]
		b.queue = b.queue[1:]
		b.stack = append(b.stack, v)
		dv := b.dist[v]
		for _, e := range b.g.Neighbors(v) {
			w := e.To
			if b.dist[w] < 0 {
				b.dist[w] = dv + 1
				b.queue = append(b.queue, w)
			}
			if b.dist[w] == dv+1 {
				b.sigma[w] += b.sigma[v]
				b.preds[w] = append(b.preds[w], v)
			}
		}
	}

	// 3) Dependency accumulation: walk the stack in reverse, splitting each
	//    station's dependency across its predecessors in proportion to their
	//    share of hop-shortest paths.
	delta := make(map[string]float64, n)
	for i := len(b.stack) - 1; i >= 0; i-- {
		w := b.stack[i]
		if sw := b.sigma[w]; sw > 0 {
			for _, v := range b.preds[w] {
				delta[v] += (b.sigma[v] / sw) * (1 + delta[w])
			}
		}
		if w == source {
			continue
		}
		contrib := delta[w]
		if math.IsInf(contrib, 0) || math.IsNaN(contrib) || contrib < 0 {
			res.Suppressed++ // surfaced, not silently dropped
			continue
		}
		res.Scores[w] += contrib
	}
}

// RankByBetweenness computes betweenness for the whole graph and returns the
// topN highest scores, descending, with 1-based ranks, plus the number of
// suppressed contributions for diagnostics. Non-finite scores are filtered
// out; ties keep alphabetical station order.
func RankByBetweenness(g *transit.Graph, topN int) ([]StationScore, int, error) {
	if topN < 0 {
		return nil, 0, ErrBadTopN
	}
	res, err := Betweenness(g)
	if err != nil {
		return nil, 0, err
	}

	scored := make([]StationScore, 0, len(res.Scores))
	for _, station := range g.AllStations() {
		score := res.Scores[station]
		if math.IsInf(score, 0) || math.IsNaN(score) {
			continue
		}
		scored = append(scored, StationScore{Station: station, Score: score})
	}

	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })
	if len(scored) > topN {
		scored = scored[:topN]
	}
	for i := range scored {
		scored[i].Rank = i + 1
	}

	return scored, res.Suppressed, nil
}
