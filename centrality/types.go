// Package centrality declares result types and sentinel errors shared by the
// closeness and betweenness computations.
package centrality

import "errors"

// Sentinel errors for centrality operations.
var (
	// ErrNilGraph indicates a nil *transit.Graph was passed in.
	ErrNilGraph = errors.New("centrality: graph is nil")

	// ErrEmptyStation indicates an empty station name was passed in.
	ErrEmptyStation = errors.New("centrality: station name is empty")

	// ErrBadTopN indicates a negative top-N was requested.
	ErrBadTopN = errors.New("centrality: top-N must be non-negative")
)

// StationScore is one row of a centrality ranking.
type StationScore struct {
	// Rank is the 1-based position in the ranking.
	Rank int

	// Station is the station name.
	Station string

	// Score is the centrality score; finite and non-negative.
	Score float64
}

// BetweennessResult carries the full betweenness score map plus the count of
// dependency contributions that were excluded for being non-finite or
// negative. A non-zero Suppressed means the graph produced numerically
// inconsistent contributions and the scores should be treated with care.
type BetweennessResult struct {
	// Scores maps every station in the graph to its betweenness score.
	Scores map[string]float64

	// Suppressed counts dropped non-finite/negative contributions.
	Suppressed int
}
