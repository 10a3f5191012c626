// Package transit provides the immutable transit-network multigraph.
package transit

import "sort"

// Graph is a directed, weighted multigraph of stations.
//
// It maps each origin station to its insertion-ordered list of outgoing
// edges. A station that only ever appears as a destination has no entry as a
// key but is still discoverable via AllStations.
//
// A Graph is built exactly once by NewGraph and must not be mutated
// afterward; every analysis borrows it read-only.
type Graph struct {
	adj       map[Station][]Edge
	edgeCount int
}

// NewGraph builds a Graph from a sequence of trip records.
//
// Exactly one edge is inserted per record whose DelayMinutes is present;
// records without a delay measurement are silently excluded. Record order
// determines edge insertion order within each origin's outgoing list.
//
// Complexity: O(R) over the number of records.
func NewGraph(records []TripRecord) *Graph {
	g := &Graph{adj: make(map[Station][]Edge)}
	for _, r := range records {
		if r.DelayMinutes == nil {
			continue // trip without a completed delay measurement
		}
		g.adj[r.From] = append(g.adj[r.From], Edge{To: r.To, Delay: *r.DelayMinutes})
		g.edgeCount++
	}

	return g
}

// Neighbors returns the outgoing edges of station, in insertion order.
//
// The returned slice is borrowed from the graph and must be treated as
// read-only. It is nil for stations with no outgoing edges (including
// stations the graph has never seen).
//
// Complexity: O(1)
func (g *Graph) Neighbors(station Station) []Edge {
	return g.adj[station]
}

// HasStation reports whether station appears in the graph as an origin,
// i.e. has at least one outgoing edge.
//
// Complexity: O(1)
func (g *Graph) HasStation(station Station) bool {
	_, ok := g.adj[station]
	return ok
}

// Origins returns every station that has at least one outgoing edge,
// sorted for deterministic iteration.
//
// Complexity: O(V log V)
func (g *Graph) Origins() []Station {
	out := make([]Station, 0, len(g.adj))
	for s := range g.adj {
		out = append(out, s)
	}
	sort.Strings(out)

	return out
}

// AllStations returns every unique station in the graph, origins and
// sink-only destinations alike, sorted for deterministic iteration.
//
// Complexity: O(V log V + E)
func (g *Graph) AllStations() []Station {
	seen := make(map[Station]struct{}, len(g.adj))
	for from, edges := range g.adj {
		seen[from] = struct{}{}
		for _, e := range edges {
			seen[e.To] = struct{}{}
		}
	}
	out := make([]Station, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Strings(out)

	return out
}

// Order returns the number of origin stations (stations with outgoing edges).
//
// Complexity: O(1)
func (g *Graph) Order() int {
	return len(g.adj)
}

// EdgeCount returns the total number of edges, counting every parallel edge.
//
// Complexity: O(1)
func (g *Graph) EdgeCount() int {
	return g.edgeCount
}
