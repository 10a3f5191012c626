// Package railstat analyzes a transit network derived from historical
// train-trip records: which stations are most central to the network, and
// which routes run most (and least) delayed.
//
// The heart of the module is an immutable, directed, weighted multigraph
// built once from a static snapshot of trip records, plus the read-only
// algorithms that query it:
//
//	transit/       — the TripRecord boundary type and the Graph itself
//	shortestpath/  — delay-weighted Dijkstra between two stations
//	centrality/    — closeness (delay-weighted) and betweenness (hop-count)
//	routestats/    — per-route average-delay aggregation and rankings
//
// Around the core sit the collaborators:
//
//	ingest/        — CSV trip-record loading with malformed-row filtering
//	report/        — fixed-width console rendering of the four rankings
//	config/        — YAML run configuration
//	server/        — JSON HTTP API over the same rankings
//	cmd/railstat/  — the binary tying the pipeline together
//
// Everything downstream of transit.NewGraph is a pure, deterministic
// function of the graph: no caches, no retries, no mutation. The graph may
// therefore be shared freely across goroutines.
//
// Quick start:
//
//	res, _ := ingest.LoadFile("stations_filtered.csv")
//	g := transit.NewGraph(res.Records)
//	top, _ := centrality.RankByCloseness(g, 10)
package railstat
