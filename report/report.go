// Package report renders the ranked analysis results as fixed-width console
// tables.
//
// The four writers correspond to the four ranked collections the analysis
// produces: closeness top-N, betweenness top-N, and the highest/lowest
// average-delay route top-Ns. Centrality scores print to 4 decimal places,
// route delays to 2.
package report

import (
	"fmt"
	"io"

	"github.com/transitlab/railstat/centrality"
	"github.com/transitlab/railstat/routestats"
)

// WriteCloseness writes the closeness-centrality ranking to w.
func WriteCloseness(w io.Writer, topN int, rows []centrality.StationScore) error {
	if _, err := fmt.Fprintf(w, "Top %d stations by closeness centrality:\n", topN); err != nil {
		return err
	}

	return writeStations(w, rows)
}

// WriteBetweenness writes the betweenness-centrality ranking to w.
func WriteBetweenness(w io.Writer, topN int, rows []centrality.StationScore) error {
	if _, err := fmt.Fprintf(w, "Top %d stations (unweighted betweenness):\n", topN); err != nil {
		return err
	}

	return writeStations(w, rows)
}

// WriteSlowestRoutes writes the highest-average-delay route ranking to w.
func WriteSlowestRoutes(w io.Writer, topN int, rows []routestats.RouteStat) error {
	if _, err := fmt.Fprintf(w, "Top %d routes by average delay:\n", topN); err != nil {
		return err
	}

	return writeRoutes(w, rows)
}

// WriteFastestRoutes writes the lowest-average-delay route ranking to w.
func WriteFastestRoutes(w io.Writer, topN int, rows []routestats.RouteStat) error {
	if _, err := fmt.Fprintf(w, "Top %d routes by **lowest** average delay:\n", topN); err != nil {
		return err
	}

	return writeRoutes(w, rows)
}

func writeStations(w io.Writer, rows []centrality.StationScore) error {
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "%2d. %-30s %.4f\n", r.Rank, r.Station, r.Score); err != nil {
			return err
		}
	}

	return nil
}

func writeRoutes(w io.Writer, rows []routestats.RouteStat) error {
	for i, r := range rows {
		_, err := fmt.Fprintf(w, "%2d. %s → %s : %.2f minutes (%d trips)\n",
			i+1, r.From, r.To, r.AvgDelay, r.Trips)
		if err != nil {
			return err
		}
	}

	return nil
}
