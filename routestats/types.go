// Package routestats declares the route statistic type, sentinel errors, and
// ranking options.
package routestats

import "errors"

// DefaultMinTrips is the minimum-sample-size floor applied by the rankings:
// routes with fewer trips are excluded so single-trip outliers cannot
// dominate.
const DefaultMinTrips = 5

// Sentinel errors for route aggregation.
var (
	// ErrNilGraph indicates a nil *transit.Graph was passed in.
	ErrNilGraph = errors.New("routestats: graph is nil")

	// ErrBadTopN indicates a negative top-N was requested.
	ErrBadTopN = errors.New("routestats: top-N must be non-negative")

	// ErrBadMinTrips indicates WithMinTrips was given a non-positive value.
	ErrBadMinTrips = errors.New("routestats: minimum trip count must be positive")
)

// RouteStat is the aggregated delay statistic of one ordered station pair.
type RouteStat struct {
	// From is the origin station name.
	From string

	// To is the destination station name.
	To string

	// AvgDelay is the mean delay in minutes over all trips on this route.
	AvgDelay float64

	// Trips is the number of recorded trips (parallel edges) on this route.
	Trips int
}

// Options configures the route rankings.
//
// MinTrips – minimum trip count a route needs to be ranked. Must be > 0.
// Default is DefaultMinTrips.
type Options struct {
	MinTrips int
}

// Option is a functional option for configuring a ranking call.
type Option func(*Options)

// WithMinTrips overrides the minimum-sample-size floor.
// Must pass a positive value; zero or negative panics with ErrBadMinTrips
// when the option is applied by a ranking call.
func WithMinTrips(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(ErrBadMinTrips.Error())
		}
		o.MinTrips = n
	}
}

// DefaultOptions returns the ranking defaults.
func DefaultOptions() Options {
	return Options{MinTrips: DefaultMinTrips}
}
