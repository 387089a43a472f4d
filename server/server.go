package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/vedantwpatil/trendbot/models"
	"github.com/vedantwpatil/trendbot/strategy"
)

// Analyzer is the analysis surface the HTTP layer needs.
type Analyzer interface {
	AnalyzeTicker(ctx context.Context, symbol, sectorID string, isETF bool, cfg strategy.Config, lookbackDays int) (models.TickerAnalysis, bool, error)
	AnalyzeSector(ctx context.Context, sector models.Sector, cfg strategy.Config, lookbackDays int) (models.SectorRecommendation, error)
	AnalyzeAllSectors(ctx context.Context, cfg strategy.Config, lookbackDays int) ([]models.SectorRecommendation, error)
	EachSector(ctx context.Context, cfg strategy.Config, lookbackDays int, fn func(models.SectorRecommendation)) error
	MarketTopStocks(ctx context.Context, cfg strategy.Config, lookbackDays, topN int) ([]models.TickerAnalysis, error)
}

type HistoryStore interface {
	SaveAnalyses(ctx context.Context, analyses []models.TickerAnalysis) (string, error)
	History(ctx context.Context, symbol string, limit int) ([]models.AnalysisRecord, error)
}

type Options struct {
	Strategy     strategy.Config
	LookbackDays int
	TopN         int
}

type Server struct {
	an    Analyzer
	store HistoryStore
	opts  Options
	log   zerolog.Logger
}

// New builds the API server. store may be nil, which disables history.
func New(an Analyzer, store HistoryStore, opts Options, log zerolog.Logger) *Server {
	if opts.LookbackDays <= 0 {
		opts.LookbackDays = 504
	}
	if opts.TopN <= 0 {
		opts.TopN = 10
	}
	return &Server{an: an, store: store, opts: opts, log: log}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleRoot)
	mux.HandleFunc("GET /sectors", s.handleListSectors)
	mux.HandleFunc("GET /sectors/analyze", s.handleAnalyzeSectors)
	mux.HandleFunc("GET /sectors/{id}", s.handleSector)
	mux.HandleFunc("GET /sectors/{id}/analyze", s.handleAnalyzeSector)
	mux.HandleFunc("GET /tickers/{symbol}", s.handleTicker)
	mux.HandleFunc("GET /tickers/{symbol}/history", s.handleTickerHistory)
	mux.HandleFunc("GET /market/top-stocks", s.handleTopStocks)
	mux.HandleFunc("GET /ws/sectors", s.handleSectorStream)
	return s.withLogging(withCORS(mux))
}

func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "*")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

// intParam reads a positive integer query parameter, or def when absent.
func intParam(r *http.Request, name string, def int) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
