package report_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transitlab/railstat/centrality"
	"github.com/transitlab/railstat/report"
	"github.com/transitlab/railstat/routestats"
)

func TestWriteCloseness(t *testing.T) {
	var buf bytes.Buffer
	rows := []centrality.StationScore{
		{Rank: 1, Station: "Newark Penn Station", Score: 0.125},
		{Rank: 2, Station: "Summit", Score: 0.0625},
	}

	require.NoError(t, report.WriteCloseness(&buf, 2, rows))

	// Station names are left-aligned in a 30-character column.
	want := "Top 2 stations by closeness centrality:\n" +
		" 1. Newark Penn Station" + strings.Repeat(" ", 12) + "0.1250\n" +
		" 2. Summit" + strings.Repeat(" ", 25) + "0.0625\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteBetweenness(t *testing.T) {
	var buf bytes.Buffer
	rows := []centrality.StationScore{
		{Rank: 1, Station: "Secaucus", Score: 42},
	}

	require.NoError(t, report.WriteBetweenness(&buf, 10, rows))

	want := "Top 10 stations (unweighted betweenness):\n" +
		" 1. Secaucus" + strings.Repeat(" ", 23) + "42.0000\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteRouteRankings(t *testing.T) {
	rows := []routestats.RouteStat{
		{From: "Newark Penn", To: "Summit", AvgDelay: 7.125, Trips: 8},
		{From: "Summit", To: "Dover", AvgDelay: 2.5, Trips: 6},
	}

	var slow bytes.Buffer
	require.NoError(t, report.WriteSlowestRoutes(&slow, 2, rows))
	wantSlow := "Top 2 routes by average delay:\n" +
		" 1. Newark Penn → Summit : 7.12 minutes (8 trips)\n" +
		" 2. Summit → Dover : 2.50 minutes (6 trips)\n"
	assert.Equal(t, wantSlow, slow.String())

	var fast bytes.Buffer
	require.NoError(t, report.WriteFastestRoutes(&fast, 2, rows))
	assert.Contains(t, fast.String(), "Top 2 routes by **lowest** average delay:\n")
	assert.Contains(t, fast.String(), " 1. Newark Penn → Summit : 7.12 minutes (8 trips)\n")
}

func TestWrite_EmptyRows(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.WriteCloseness(&buf, 10, nil))
	assert.Equal(t, "Top 10 stations by closeness centrality:\n", buf.String())
}
