package transit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transitlab/railstat/transit"
)

func TestNewGraph_OneEdgePerDelayedRecord(t *testing.T) {
	g := transit.NewGraph([]transit.TripRecord{
		{From: "A", To: "B", DelayMinutes: transit.Delay(2)},
		{From: "A", To: "B", DelayMinutes: transit.Delay(3)},
		{From: "A", To: "C", DelayMinutes: transit.Delay(1)},
	})

	require.Equal(t, 3, g.EdgeCount())
	nbrs := g.Neighbors("A")
	require.Len(t, nbrs, 3)
	// Parallel edges are preserved, in insertion order.
	assert.Equal(t, transit.Edge{To: "B", Delay: 2}, nbrs[0])
	assert.Equal(t, transit.Edge{To: "B", Delay: 3}, nbrs[1])
	assert.Equal(t, transit.Edge{To: "C", Delay: 1}, nbrs[2])
}

func TestNewGraph_ExcludesRecordsWithoutDelay(t *testing.T) {
	g := transit.NewGraph([]transit.TripRecord{
		{From: "A", To: "B", DelayMinutes: nil},
		{From: "A", To: "C", DelayMinutes: transit.Delay(4)},
		{From: "B", To: "C", DelayMinutes: nil},
	})

	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, []transit.Edge{{To: "C", Delay: 4}}, g.Neighbors("A"))
	// B contributed no edge, so it is not an origin at all.
	assert.False(t, g.HasStation("B"))
}

func TestNewGraph_NoNameNormalization(t *testing.T) {
	g := transit.NewGraph([]transit.TripRecord{
		{From: "Summit", To: "X", DelayMinutes: transit.Delay(1)},
		{From: "Summit ", To: "X", DelayMinutes: transit.Delay(1)},
		{From: "summit", To: "X", DelayMinutes: transit.Delay(1)},
	})

	// Textually distinct names are distinct nodes.
	assert.Len(t, g.Neighbors("Summit"), 1)
	assert.Len(t, g.Neighbors("Summit "), 1)
	assert.Len(t, g.Neighbors("summit"), 1)
	assert.Equal(t, 3, g.Order())
}

func TestGraph_SinkOnlyStationDiscoverable(t *testing.T) {
	g := transit.NewGraph([]transit.TripRecord{
		{From: "A", To: "B", DelayMinutes: transit.Delay(2)},
	})

	// B only ever appears as a destination: not an origin key...
	assert.False(t, g.HasStation("B"))
	assert.Nil(t, g.Neighbors("B"))
	// ...but still discoverable by scanning all edges.
	assert.Equal(t, []string{"A", "B"}, g.AllStations())
	assert.Equal(t, []string{"A"}, g.Origins())
}

func TestGraph_EmptyRecordSet(t *testing.T) {
	g := transit.NewGraph(nil)

	assert.Zero(t, g.Order())
	assert.Zero(t, g.EdgeCount())
	assert.Empty(t, g.AllStations())
}
