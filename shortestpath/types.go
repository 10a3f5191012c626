// Package shortestpath declares the result type, sentinel errors, and the
// total-order frontier key used by the Dijkstra search.
package shortestpath

import (
	"errors"
	"math"
)

// Sentinel errors returned (or panicked) by the shortest-path search.
var (
	// ErrNilGraph indicates a nil *transit.Graph was passed to Between.
	ErrNilGraph = errors.New("shortestpath: graph is nil")

	// ErrEmptyStation indicates an empty start or end station name.
	ErrEmptyStation = errors.New("shortestpath: station name is empty")

	// ErrNaNDelay is the panic value raised when a NaN cumulative delay
	// reaches the priority frontier. NaN has no place in a total order, and
	// continuing would silently misorder the heap, so the search aborts.
	ErrNaNDelay = errors.New("shortestpath: NaN delay reached the frontier")
)

// Result is a successful shortest-path answer.
//
// Stations holds the full path start…end inclusive; TotalDelay is the sum of
// edge delays along it. A single-element path has TotalDelay zero.
type Result struct {
	// TotalDelay is the cumulative delay of the path, in minutes.
	TotalDelay float64

	// Stations is the path from start to end, inclusive of both.
	Stations []string
}

// delayKey is a cumulative-delay frontier key with a guaranteed total order.
// Construction rejects NaN by panicking, so comparisons never misorder.
type delayKey float64

// newDelayKey wraps v as a frontier key, panicking on NaN.
func newDelayKey(v float64) delayKey {
	if math.IsNaN(v) {
		panic(ErrNaNDelay)
	}

	return delayKey(v)
}

// frontierItem pairs a station with its cumulative delay from the start.
type frontierItem struct {
	station string
	delay   delayKey
}

// frontier is a min-heap of frontierItem ordered by delay ascending, used
// with the lazy-decrease-key strategy: shorter rediscoveries push duplicate
// entries, and stale entries are skipped when popped.
type frontier []frontierItem

// Len returns the number of items in the heap.
func (f frontier) Len() int { return len(f) }

// Less defines the comparison: smaller cumulative delay, higher priority.
func (f frontier) Less(i, j int) bool { return f[i].delay < f[j].delay }

// Swap swaps two elements in the heap.
func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push adds a new element x onto the heap; x must be a frontierItem.
func (f *frontier) Push(x interface{}) { *f = append(*f, x.(frontierItem)) }

// Pop removes and returns the smallest element from the heap.
func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]

	return item
}
