// Package http exposes the loaded dataset as a JSON report API alongside
// health, readiness, and metrics endpoints.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/couchcryptid/race-results-etl/internal/analyze"
	"github.com/couchcryptid/race-results-etl/internal/config"
	"github.com/couchcryptid/race-results-etl/internal/dataset"
	"github.com/couchcryptid/race-results-etl/internal/domain"
)

// Server serves race-result reports over HTTP.
type Server struct {
	httpServer *http.Server
	data       *dataset.Dataset
	countries  *domain.CountryTable
	cfg        *config.Config
	logger     *slog.Logger
}

// NewServer creates an HTTP server with health, metrics, and report routes.
func NewServer(cfg *config.Config, data *dataset.Dataset, countries *domain.CountryTable, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         cfg.HTTPAddr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		data:      data,
		countries: countries,
		cfg:       cfg,
		logger:    logger,
	}

	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", s.handleReady)
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("GET /api/summary/{field}", s.handleSummary)
	mux.HandleFunc("GET /api/counts/{axis}", s.handleCounts)
	mux.HandleFunc("GET /api/bins/{axis}", s.handleBins)
	mux.HandleFunc("GET /api/countries", s.handleCountries)
	mux.HandleFunc("GET /api/outliers/{field}", s.handleOutliers)
	mux.HandleFunc("GET /api/fastest/{axis}", s.handleFastest)
	mux.HandleFunc("GET /api/waves/median", s.handleMedianWaves)
	mux.HandleFunc("GET /api/runners", s.handleRunners)

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleReady(w http.ResponseWriter, _ *http.Request) {
	if s.data.Len() == 0 {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "not ready",
			"error":  "dataset is empty",
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	field := domain.FieldName(r.PathValue("field"))
	summary, err := analyze.Summary(s.data, field)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"field":   field,
		"summary": summary,
	})
}

func (s *Server) handleCounts(w http.ResponseWriter, r *http.Request) {
	var (
		counts []analyze.Count
		labels [2]string
	)
	switch r.PathValue("axis") {
	case "age":
		counts, labels = analyze.CountByAge(s.data)
	case "gender":
		counts, labels = analyze.CountByGender(s.data)
	case "wave":
		counts, labels = analyze.CountByWave(s.data)
	default:
		writeError(w, http.StatusNotFound, errors.New("unknown count axis"))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"labels": labels,
		"counts": counts,
	})
}

func (s *Server) handleBins(w http.ResponseWriter, r *http.Request) {
	var (
		counts []analyze.Count
		labels [2]string
	)
	switch r.PathValue("axis") {
	case "age":
		counts, labels = analyze.AgeBins(s.data)
	case "time":
		counts, labels = analyze.TimeBins(s.data)
	default:
		writeError(w, http.StatusNotFound, errors.New("unknown bin axis"))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"labels": labels,
		"counts": counts,
	})
}

func (s *Server) handleCountries(w http.ResponseWriter, r *http.Request) {
	minP, err := queryInt(r, "min", s.cfg.MinParticipants)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	maxP, err := queryInt(r, "max", s.cfg.MaxParticipants)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	full, aboveMin, belowMax := analyze.CountryCounts(s.data, minP, maxP)

	// Resolve display names for the codes present; unknown codes are left out.
	names := make(map[string]string, len(full))
	for _, c := range full {
		if country, err := s.countries.LookupAlpha3(c.Key); err == nil {
			names[c.Key] = country.Name
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"min":       minP,
		"max":       maxP,
		"all":       full,
		"above_min": aboveMin,
		"below_max": belowMax,
		"names":     names,
	})
}

func (s *Server) handleOutliers(w http.ResponseWriter, r *http.Request) {
	field := domain.FieldName(r.PathValue("field"))
	threshold := s.cfg.OutlierThreshold
	if v := r.URL.Query().Get("threshold"); v != "" {
		t, err := strconv.ParseFloat(v, 64)
		if err != nil || t <= 0 {
			writeError(w, http.StatusBadRequest, errors.New("threshold must be a positive number"))
			return
		}
		threshold = t
	}
	outliers, err := analyze.Outliers(s.data, field, threshold)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"field":     field,
		"threshold": threshold,
		"outliers":  outliers,
	})
}

func (s *Server) handleFastest(w http.ResponseWriter, r *http.Request) {
	var fastest map[string]analyze.FastestEntry
	switch r.PathValue("axis") {
	case "gender":
		fastest = analyze.FastestByGender(s.data)
	case "age":
		fastest = analyze.FastestByAgeBracket(s.data)
	case "country":
		fastest = analyze.FastestByCountry(s.data)
	default:
		writeError(w, http.StatusNotFound, errors.New("unknown fastest axis"))
		return
	}
	writeJSON(w, http.StatusOK, fastest)
}

func (s *Server) handleMedianWaves(w http.ResponseWriter, _ *http.Request) {
	median, waves, err := analyze.BetterThanMedianWaves(s.data)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"median":         domain.FormatClock(median),
		"median_seconds": median.Seconds(),
		"waves":          waves,
	})
}

func (s *Server) handleRunners(w http.ResponseWriter, r *http.Request) {
	var bibs []int
	if v := r.URL.Query().Get("bibs"); v != "" {
		var err error
		bibs, err = parseBibs(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
	}
	header, rows := s.data.Rows(bibs...)
	writeJSON(w, http.StatusOK, map[string]any{
		"header": header,
		"rows":   rows,
	})
}

func queryInt(r *http.Request, key string, fallback int) (int, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, errors.New(key + " must be a non-negative integer")
	}
	return n, nil
}

func parseBibs(v string) ([]int, error) {
	var bibs []int
	for _, part := range strings.Split(v, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, errors.New("bibs must be comma-separated integers")
		}
		bibs = append(bibs, n)
	}
	return bibs, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
