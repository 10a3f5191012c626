// Package server exposes the transit analytics as a small JSON HTTP API.
//
// Endpoints:
//
//	GET /healthz                          liveness probe
//	GET /api/stations/closeness?n=10      closeness top-N
//	GET /api/stations/betweenness?n=10    betweenness top-N
//	GET /api/routes/slowest?n=10          highest average-delay routes
//	GET /api/routes/fastest?n=10          lowest average-delay routes
//	GET /api/path?from=A&to=B             delay-weighted shortest path
//
// The handler borrows the immutable graph read-only, so it is safe for
// concurrent requests without locking; every request recomputes from the
// graph.
package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/transitlab/railstat/centrality"
	"github.com/transitlab/railstat/routestats"
	"github.com/transitlab/railstat/shortestpath"
	"github.com/transitlab/railstat/transit"
)

// Handler serves the analytics endpoints over a built graph.
type Handler struct {
	graph    *transit.Graph
	topN     int
	minTrips int
	log      *slog.Logger
}

// NewHandler builds a Handler over g. defaultTopN bounds rankings when the
// request carries no n parameter; minTrips is the route-ranking sample floor.
func NewHandler(g *transit.Graph, defaultTopN, minTrips int, log *slog.Logger) *Handler {
	return &Handler{graph: g, topN: defaultTopN, minTrips: minTrips, log: log}
}

// RegisterRoutes attaches all endpoints to router.
func (h *Handler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/healthz", h.health).Methods(http.MethodGet)
	router.HandleFunc("/api/stations/closeness", h.closeness).Methods(http.MethodGet)
	router.HandleFunc("/api/stations/betweenness", h.betweenness).Methods(http.MethodGet)
	router.HandleFunc("/api/routes/slowest", h.slowestRoutes).Methods(http.MethodGet)
	router.HandleFunc("/api/routes/fastest", h.fastestRoutes).Methods(http.MethodGet)
	router.HandleFunc("/api/path", h.path).Methods(http.MethodGet)
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// stationScoreJSON is the wire shape of one centrality ranking row.
type stationScoreJSON struct {
	Rank    int     `json:"rank"`
	Station string  `json:"station"`
	Score   float64 `json:"score"`
}

func (h *Handler) closeness(w http.ResponseWriter, r *http.Request) {
	n, ok := h.topNParam(w, r)
	if !ok {
		return
	}
	rows, err := centrality.RankByCloseness(h.graph, n)
	if err != nil {
		h.internalError(w, "closeness ranking", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"stations": stationRows(rows), "count": len(rows)})
}

func (h *Handler) betweenness(w http.ResponseWriter, r *http.Request) {
	n, ok := h.topNParam(w, r)
	if !ok {
		return
	}
	rows, suppressed, err := centrality.RankByBetweenness(h.graph, n)
	if err != nil {
		h.internalError(w, "betweenness ranking", err)
		return
	}
	if suppressed > 0 && h.log != nil {
		h.log.Warn("betweenness contributions suppressed", "count", suppressed)
	}
	writeJSON(w, http.StatusOK, map[string]any{"stations": stationRows(rows), "count": len(rows)})
}

// routeStatJSON is the wire shape of one route ranking row.
type routeStatJSON struct {
	From     string  `json:"from"`
	To       string  `json:"to"`
	AvgDelay float64 `json:"avg_delay_minutes"`
	Trips    int     `json:"trips"`
}

func (h *Handler) slowestRoutes(w http.ResponseWriter, r *http.Request) {
	h.routes(w, r, routestats.RankHighest)
}

func (h *Handler) fastestRoutes(w http.ResponseWriter, r *http.Request) {
	h.routes(w, r, routestats.RankLowest)
}

func (h *Handler) routes(w http.ResponseWriter, r *http.Request,
	rank func(*transit.Graph, int, ...routestats.Option) ([]routestats.RouteStat, error)) {
	n, ok := h.topNParam(w, r)
	if !ok {
		return
	}
	rows, err := rank(h.graph, n, routestats.WithMinTrips(h.minTrips))
	if err != nil {
		h.internalError(w, "route ranking", err)
		return
	}
	out := make([]routeStatJSON, 0, len(rows))
	for _, s := range rows {
		out = append(out, routeStatJSON{From: s.From, To: s.To, AvgDelay: s.AvgDelay, Trips: s.Trips})
	}
	writeJSON(w, http.StatusOK, map[string]any{"routes": out, "count": len(out)})
}

func (h *Handler) path(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	if from == "" || to == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "from and to are required"})
		return
	}

	res, err := shortestpath.Between(h.graph, from, to)
	if err != nil {
		h.internalError(w, "shortest path", err)
		return
	}
	if res == nil {
		// Unreachable is a normal outcome of the search, but for an HTTP
		// client it is a not-found resource.
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no route found"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"total_delay_minutes": res.TotalDelay,
		"stations":            res.Stations,
	})
}

// topNParam reads the optional n query parameter, falling back to the
// configured default. Reports false after writing a 400 for bad values.
func (h *Handler) topNParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("n")
	if raw == "" {
		return h.topN, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "n must be a non-negative integer"})
		return 0, false
	}

	return n, true
}

func (h *Handler) internalError(w http.ResponseWriter, op string, err error) {
	if h.log != nil {
		h.log.Error("request failed", "op", op, "error", err)
	}
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
}

func stationRows(rows []centrality.StationScore) []stationScoreJSON {
	out := make([]stationScoreJSON, 0, len(rows))
	for _, s := range rows {
		out = append(out, stationScoreJSON{Rank: s.Rank, Station: s.Station, Score: s.Score})
	}

	return out
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
