// Package ingest implements CSV trip-record loading with malformed-row
// filtering.
package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/transitlab/railstat/transit"
)

// Sentinel errors for CSV loading.
var (
	// ErrNoHeader indicates the input had no header row at all.
	ErrNoHeader = errors.New("ingest: input has no header row")

	// ErrMissingColumn indicates a required column is absent from the header.
	ErrMissingColumn = errors.New("ingest: required column missing from header")
)

// Required header names. The loader looks columns up by name, so order and
// extra columns do not matter.
const (
	colFrom  = "from"
	colTo    = "to"
	colDelay = "delay_minutes"
)

// LoadResult is the outcome of one CSV load.
type LoadResult struct {
	// Records holds every well-formed row, in file order.
	Records []transit.TripRecord

	// Skipped counts malformed rows that were filtered out: missing station
	// names, unparsable delay values, or too few fields.
	Skipped int
}

// LoadFile opens path and delegates to LoadCSV.
func LoadFile(path string) (*LoadResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ingest: open %s: %w", path, err)
	}
	defer f.Close()

	return LoadCSV(f)
}

// LoadCSV reads header-first CSV trip data from r.
//
// Well-formed rows become TripRecords in file order; malformed rows are
// skipped and counted, never fatal. Only an unreadable stream or a header
// missing a required column fails the load.
func LoadCSV(r io.Reader) (*LoadResult, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // ragged rows are filtered per-row, not fatal

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("ingest: read header: %w", err)
	}

	idx, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	res := &LoadResult{}
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// A per-row parse error (bare quote etc.) is a malformed row.
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				res.Skipped++
				continue
			}

			return nil, fmt.Errorf("ingest: read row: %w", err)
		}

		rec, ok := parseRow(row, idx)
		if !ok {
			res.Skipped++
			continue
		}
		res.Records = append(res.Records, rec)
	}

	return res, nil
}

// columns holds the resolved positions of the required columns.
type columns struct {
	from, to, delay int
}

// columnIndex resolves required column positions from the header row.
func columnIndex(header []string) (columns, error) {
	pos := map[string]int{}
	for i, name := range header {
		pos[strings.TrimSpace(name)] = i
	}

	idx := columns{}
	for _, want := range []struct {
		name string
		dst  *int
	}{
		{colFrom, &idx.from},
		{colTo, &idx.to},
		{colDelay, &idx.delay},
	} {
		i, ok := pos[want.name]
		if !ok {
			return columns{}, fmt.Errorf("%w: %q", ErrMissingColumn, want.name)
		}
		*want.dst = i
	}

	return idx, nil
}

// parseRow converts one CSV row into a TripRecord, reporting ok=false for
// malformed rows.
func parseRow(row []string, idx columns) (transit.TripRecord, bool) {
	max := idx.from
	if idx.to > max {
		max = idx.to
	}
	if idx.delay > max {
		max = idx.delay
	}
	if len(row) <= max {
		return transit.TripRecord{}, false
	}

	// Station names are taken verbatim: the core performs no normalization,
	// and textually distinct names must stay distinct nodes.
	from := row[idx.from]
	to := row[idx.to]
	if from == "" || to == "" {
		return transit.TripRecord{}, false
	}

	rec := transit.TripRecord{From: from, To: to}
	if raw := strings.TrimSpace(row[idx.delay]); raw != "" {
		// The dataset records delays at 32-bit precision; parsing at bitSize
		// 32 rounds to that precision before widening, so the stored float64
		// is exactly the 32-bit value.
		delay, err := strconv.ParseFloat(raw, 32)
		if err != nil {
			return transit.TripRecord{}, false
		}
		rec.DelayMinutes = &delay
	}

	return rec, true
}
