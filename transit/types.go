// Package transit declares the TripRecord input-boundary type and the Edge
// building block of the graph.
package transit

// Station identifies a node in the transit graph by its exact name.
// Uniqueness is by string equality; no normalization is applied.
type Station = string

// TripRecord is one ingested trip row at the input boundary of the core.
//
// From and To are station names. DelayMinutes is the measured delay of this
// single trip in minutes; nil means the trip has no completed delay
// measurement and the record will not contribute an edge to the graph.
type TripRecord struct {
	// From is the departure station name.
	From string

	// To is the arrival station name.
	To string

	// DelayMinutes is the trip delay in minutes, or nil if not measured.
	// Non-negative in practice, but not validated here.
	DelayMinutes *float64
}

// Edge is a directed, weighted connection to a destination station.
// Edges are never deduplicated: each qualifying trip record yields one Edge.
type Edge struct {
	// To is the destination station name.
	To Station

	// Delay is the delay weight of this single trip, in minutes.
	Delay float64
}

// Delay returns p pointing at a copy of d, for building TripRecords inline.
func Delay(d float64) *float64 { return &d }
