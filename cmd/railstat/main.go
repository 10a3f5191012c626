// Command railstat analyzes a transit network derived from historical
// train-trip records: it loads a delay CSV, builds the in-memory transit
// graph, and either prints the four ranked reports (closeness centrality,
// betweenness centrality, slowest routes, fastest routes) to stdout or
// serves them as a JSON HTTP API.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"

	"github.com/transitlab/railstat/centrality"
	"github.com/transitlab/railstat/config"
	"github.com/transitlab/railstat/ingest"
	"github.com/transitlab/railstat/report"
	"github.com/transitlab/railstat/routestats"
	"github.com/transitlab/railstat/server"
	"github.com/transitlab/railstat/transit"
)

func main() {
	var (
		configPath = flag.String("config", "", "path of a YAML config file")
		csvPath    = flag.String("csv", "", "path of the trip-record CSV (overrides config)")
		topN       = flag.Int("n", 0, "ranking length (overrides config)")
		serve      = flag.Bool("serve", false, "serve the analytics over HTTP instead of printing reports")
	)
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg := config.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = config.ReadConfig(*configPath)
		if err != nil {
			log.Error("failed to read config", "error", err)
			os.Exit(1)
		}
	}
	if *csvPath != "" {
		cfg.Data.CSV = *csvPath
	}
	if *topN > 0 {
		cfg.Report.TopN = *topN
	}
	if cfg.Data.CSV == "" {
		log.Error("no input: set -csv or data.csv in the config file")
		os.Exit(1)
	}

	start := time.Now()
	loaded, err := ingest.LoadFile(cfg.Data.CSV)
	if err != nil {
		log.Error("failed to load trip records", "path", cfg.Data.CSV, "error", err)
		os.Exit(1)
	}
	log.Info("trip records loaded",
		"path", cfg.Data.CSV,
		"records", len(loaded.Records),
		"skipped", loaded.Skipped,
		"elapsed", time.Since(start))

	g := transit.NewGraph(loaded.Records)
	log.Info("graph built", "origins", g.Order(), "edges", g.EdgeCount())

	if *serve {
		runServer(log, cfg, g)
		return
	}
	if err := runReports(log, cfg, g); err != nil {
		log.Error("analysis failed", "error", err)
		os.Exit(1)
	}
}

// runReports prints the four ranked tables to stdout.
func runReports(log *slog.Logger, cfg config.Config, g *transit.Graph) error {
	n := cfg.Report.TopN
	w := os.Stdout

	closeness, err := centrality.RankByCloseness(g, n)
	if err != nil {
		return err
	}
	if err := report.WriteCloseness(w, n, closeness); err != nil {
		return err
	}

	betweenness, suppressed, err := centrality.RankByBetweenness(g, n)
	if err != nil {
		return err
	}
	if suppressed > 0 {
		log.Warn("betweenness contributions suppressed", "count", suppressed)
	}
	if err := report.WriteBetweenness(w, n, betweenness); err != nil {
		return err
	}

	minTrips := routestats.WithMinTrips(cfg.Report.MinTrips)
	slowest, err := routestats.RankHighest(g, n, minTrips)
	if err != nil {
		return err
	}
	if err := report.WriteSlowestRoutes(w, n, slowest); err != nil {
		return err
	}

	fastest, err := routestats.RankLowest(g, n, minTrips)
	if err != nil {
		return err
	}

	return report.WriteFastestRoutes(w, n, fastest)
}

// runServer serves the analytics over HTTP until the process is stopped.
func runServer(log *slog.Logger, cfg config.Config, g *transit.Graph) {
	router := mux.NewRouter()
	h := server.NewHandler(g, cfg.Report.TopN, cfg.Report.MinTrips, log)
	h.RegisterRoutes(router)

	log.Info("serving analytics", "addr", cfg.Server.Addr)
	if err := http.ListenAndServe(cfg.Server.Addr, router); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
