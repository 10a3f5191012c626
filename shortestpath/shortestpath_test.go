// Package shortestpath_test contains unit tests for the delay-weighted
// Dijkstra search: input validation, path correctness, tie and multi-edge
// behavior, and the NaN fail-fast guard.
package shortestpath_test

import (
	"math"
	"reflect"
	"testing"

	"github.com/transitlab/railstat/shortestpath"
	"github.com/transitlab/railstat/transit"
)

// buildGraph assembles a graph from (from, to, delay) triples.
func buildGraph(edges ...[3]interface{}) *transit.Graph {
	records := make([]transit.TripRecord, 0, len(edges))
	for _, e := range edges {
		records = append(records, transit.TripRecord{
			From:         e[0].(string),
			To:           e[1].(string),
			DelayMinutes: transit.Delay(e[2].(float64)),
		})
	}

	return transit.NewGraph(records)
}

// ------------------------------------------------------------------------
// 1. Validation: invalid inputs are rejected with sentinel errors.
// ------------------------------------------------------------------------

func TestBetween_EmptyStation(t *testing.T) {
	g := transit.NewGraph(nil)
	if _, err := shortestpath.Between(g, "", "B"); err != shortestpath.ErrEmptyStation {
		t.Fatalf("empty start: want ErrEmptyStation, got %v", err)
	}
	if _, err := shortestpath.Between(g, "A", ""); err != shortestpath.ErrEmptyStation {
		t.Fatalf("empty end: want ErrEmptyStation, got %v", err)
	}
}

func TestBetween_NilGraph(t *testing.T) {
	if _, err := shortestpath.Between(nil, "A", "B"); err != shortestpath.ErrNilGraph {
		t.Fatalf("nil graph: want ErrNilGraph, got %v", err)
	}
}

// ------------------------------------------------------------------------
// 2. Basic correctness.
// ------------------------------------------------------------------------

func TestBetween_SimpleChain(t *testing.T) {
	// A→B (2), B→C (3): the only A→C route costs 5 via B.
	g := buildGraph([3]interface{}{"A", "B", 2.0}, [3]interface{}{"B", "C", 3.0})

	res, err := shortestpath.Between(g, "A", "C")
	if err != nil {
		t.Fatal(err)
	}
	if res == nil {
		t.Fatal("expected a path, got nil")
	}
	if res.TotalDelay != 5.0 {
		t.Errorf("TotalDelay = %v; want 5.0", res.TotalDelay)
	}
	if want := []string{"A", "B", "C"}; !reflect.DeepEqual(res.Stations, want) {
		t.Errorf("Stations = %v; want %v", res.Stations, want)
	}

	// Edges are directed: C→A has no route.
	back, err := shortestpath.Between(g, "C", "A")
	if err != nil {
		t.Fatal(err)
	}
	if back != nil {
		t.Errorf("C→A: want nil (unreachable), got %+v", back)
	}
}

func TestBetween_PrefersCheaperRoute(t *testing.T) {
	// Direct A→C costs 10; the detour via B costs 5.
	g := buildGraph(
		[3]interface{}{"A", "C", 10.0},
		[3]interface{}{"A", "B", 2.0},
		[3]interface{}{"B", "C", 3.0},
	)

	res, err := shortestpath.Between(g, "A", "C")
	if err != nil {
		t.Fatal(err)
	}
	if res.TotalDelay != 5.0 {
		t.Errorf("TotalDelay = %v; want 5.0", res.TotalDelay)
	}
	if want := []string{"A", "B", "C"}; !reflect.DeepEqual(res.Stations, want) {
		t.Errorf("Stations = %v; want %v", res.Stations, want)
	}
}

func TestBetween_PathWeightEqualsEdgeSum(t *testing.T) {
	g := buildGraph(
		[3]interface{}{"A", "B", 1.5},
		[3]interface{}{"B", "C", 2.25},
		[3]interface{}{"C", "D", 0.75},
		[3]interface{}{"A", "D", 10.0},
	)

	res, err := shortestpath.Between(g, "A", "D")
	if err != nil {
		t.Fatal(err)
	}
	if res == nil {
		t.Fatal("expected a path")
	}
	if first, last := res.Stations[0], res.Stations[len(res.Stations)-1]; first != "A" || last != "D" {
		t.Errorf("endpoints = %s…%s; want A…D", first, last)
	}
	// The reported total must equal the sum of consecutive edge delays.
	var sum float64
	for i := 0; i+1 < len(res.Stations); i++ {
		sum += edgeDelay(t, g, res.Stations[i], res.Stations[i+1])
	}
	if res.TotalDelay != sum {
		t.Errorf("TotalDelay = %v; edge sum = %v", res.TotalDelay, sum)
	}
	if res.TotalDelay != 4.5 {
		t.Errorf("TotalDelay = %v; want 4.5", res.TotalDelay)
	}
}

// edgeDelay returns the minimum delay among parallel from→to edges.
func edgeDelay(t *testing.T, g *transit.Graph, from, to string) float64 {
	t.Helper()
	best := math.Inf(1)
	for _, e := range g.Neighbors(from) {
		if e.To == to && e.Delay < best {
			best = e.Delay
		}
	}
	if math.IsInf(best, 1) {
		t.Fatalf("no edge %s→%s", from, to)
	}

	return best
}

// ------------------------------------------------------------------------
// 3. Edge cases.
// ------------------------------------------------------------------------

func TestBetween_StartEqualsEnd(t *testing.T) {
	g := buildGraph([3]interface{}{"A", "B", 2.0})

	res, err := shortestpath.Between(g, "A", "A")
	if err != nil {
		t.Fatal(err)
	}
	if res == nil {
		t.Fatal("expected a single-element path")
	}
	if res.TotalDelay != 0 {
		t.Errorf("TotalDelay = %v; want 0", res.TotalDelay)
	}
	if want := []string{"A"}; !reflect.DeepEqual(res.Stations, want) {
		t.Errorf("Stations = %v; want %v", res.Stations, want)
	}
}

func TestBetween_AbsentStationsUnreachable(t *testing.T) {
	g := buildGraph([3]interface{}{"A", "B", 2.0})

	for _, pair := range [][2]string{{"X", "B"}, {"A", "X"}, {"X", "Y"}} {
		res, err := shortestpath.Between(g, pair[0], pair[1])
		if err != nil {
			t.Fatal(err)
		}
		if res != nil {
			t.Errorf("%s→%s: want nil, got %+v", pair[0], pair[1], res)
		}
	}
}

func TestBetween_ParallelEdgesTakeCheapest(t *testing.T) {
	g := buildGraph(
		[3]interface{}{"A", "B", 7.0},
		[3]interface{}{"A", "B", 3.0},
		[3]interface{}{"A", "B", 5.0},
	)

	res, err := shortestpath.Between(g, "A", "B")
	if err != nil {
		t.Fatal(err)
	}
	if res.TotalDelay != 3.0 {
		t.Errorf("TotalDelay = %v; want 3.0 (cheapest parallel edge)", res.TotalDelay)
	}
}

func TestBetween_ZeroDelayEdges(t *testing.T) {
	g := buildGraph(
		[3]interface{}{"A", "B", 0.0},
		[3]interface{}{"B", "C", 0.0},
	)

	res, err := shortestpath.Between(g, "A", "C")
	if err != nil {
		t.Fatal(err)
	}
	if res == nil || res.TotalDelay != 0 {
		t.Fatalf("want zero-delay path, got %+v", res)
	}
}

func TestBetween_NaNDelayPanics(t *testing.T) {
	g := buildGraph(
		[3]interface{}{"A", "B", math.NaN()},
		[3]interface{}{"B", "C", 1.0},
	)

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on NaN delay reaching the frontier")
		}
	}()
	_, _ = shortestpath.Between(g, "A", "C")
}
