// Package ingest loads historical train-trip records from CSV into the
// transit core's input-boundary type.
//
// The expected file is a header-first CSV in the NJ-Transit performance
// schema (date, train_id, stop_sequence, from, from_id, to, to_id,
// scheduled_time, actual_time, delay_minutes, status, line, type, month,
// year). Columns are located by header name, so column order and extra
// columns are not load-bearing; only "from", "to" and "delay_minutes" are
// required.
//
// Filtering happens here, before the core ever sees a record:
//
//   - rows missing either station name, or whose delay field fails to parse,
//     are skipped and counted in LoadResult.Skipped rather than failing the
//     whole load;
//   - an empty delay field is not malformed: it becomes a record with a nil
//     DelayMinutes, which graph construction later excludes as a trip
//     without a completed delay measurement.
//
// Example:
//
//	res, err := ingest.LoadFile("stations_filtered.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	g := transit.NewGraph(res.Records)
package ingest
