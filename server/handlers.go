package server

import (
	"net/http"

	"github.com/vedantwpatil/trendbot/models"
	"github.com/vedantwpatil/trendbot/sectors"
)

const defaultHistoryLimit = 50

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Sector Recommendations API", "docs": "/docs"})
}

func (s *Server) handleListSectors(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, sectors.All())
}

func (s *Server) handleSector(w http.ResponseWriter, r *http.Request) {
	sec, ok := sectors.Get(r.PathValue("id"))
	if !ok {
		writeError(w, http.StatusNotFound, "Sector not found")
		return
	}
	writeJSON(w, http.StatusOK, sec)
}

func (s *Server) handleAnalyzeSectors(w http.ResponseWriter, r *http.Request) {
	lookback, ok := intParam(r, "lookback_days", s.opts.LookbackDays)
	if !ok {
		writeError(w, http.StatusBadRequest, "lookback_days must be a positive integer")
		return
	}
	recs, err := s.an.AnalyzeAllSectors(r.Context(), s.opts.Strategy, lookback)
	if err != nil {
		s.log.Error().Err(err).Msg("analyze sectors")
		writeError(w, http.StatusInternalServerError, "Sector analysis failed")
		return
	}
	writeJSON(w, http.StatusOK, recs)
}

func (s *Server) handleAnalyzeSector(w http.ResponseWriter, r *http.Request) {
	sec, ok := sectors.Get(r.PathValue("id"))
	if !ok {
		writeError(w, http.StatusNotFound, "Sector not found")
		return
	}
	lookback, ok := intParam(r, "lookback_days", s.opts.LookbackDays)
	if !ok {
		writeError(w, http.StatusBadRequest, "lookback_days must be a positive integer")
		return
	}
	rec, err := s.an.AnalyzeSector(r.Context(), sec, s.opts.Strategy, lookback)
	if err != nil {
		s.log.Error().Err(err).Str("sector", sec.ID).Msg("analyze sector")
		writeError(w, http.StatusInternalServerError, "Sector analysis failed")
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleTicker(w http.ResponseWriter, r *http.Request) {
	symbol := r.PathValue("symbol")
	lookback, ok := intParam(r, "lookback_days", s.opts.LookbackDays)
	if !ok {
		writeError(w, http.StatusBadRequest, "lookback_days must be a positive integer")
		return
	}
	sectorID := r.URL.Query().Get("sector_id")
	if sectorID == "" {
		sectorID = "unknown"
	}

	a, found, err := s.an.AnalyzeTicker(r.Context(), symbol, sectorID, false, s.opts.Strategy, lookback)
	if err != nil {
		s.log.Error().Err(err).Str("symbol", symbol).Msg("analyze ticker")
		writeError(w, http.StatusInternalServerError, "Ticker analysis failed")
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "Ticker not found or insufficient data")
		return
	}
	s.record(r, []models.TickerAnalysis{a})
	writeJSON(w, http.StatusOK, a)
}

func (s *Server) handleTickerHistory(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeError(w, http.StatusServiceUnavailable, "History store not configured")
		return
	}
	limit, ok := intParam(r, "limit", defaultHistoryLimit)
	if !ok {
		writeError(w, http.StatusBadRequest, "limit must be a positive integer")
		return
	}
	symbol := r.PathValue("symbol")
	records, err := s.store.History(r.Context(), symbol, limit)
	if err != nil {
		s.log.Error().Err(err).Str("symbol", symbol).Msg("load history")
		writeError(w, http.StatusInternalServerError, "History lookup failed")
		return
	}
	writeJSON(w, http.StatusOK, records)
}

func (s *Server) handleTopStocks(w http.ResponseWriter, r *http.Request) {
	lookback, ok := intParam(r, "lookback_days", s.opts.LookbackDays)
	if !ok {
		writeError(w, http.StatusBadRequest, "lookback_days must be a positive integer")
		return
	}
	topN, ok := intParam(r, "top_n", s.opts.TopN)
	if !ok {
		writeError(w, http.StatusBadRequest, "top_n must be a positive integer")
		return
	}
	top, err := s.an.MarketTopStocks(r.Context(), s.opts.Strategy, lookback, topN)
	if err != nil {
		s.log.Error().Err(err).Msg("market top stocks")
		writeError(w, http.StatusInternalServerError, "Market ranking failed")
		return
	}
	s.record(r, top)
	writeJSON(w, http.StatusOK, top)
}

// record stores analyses when a history store is configured. A storage
// failure is logged and does not fail the request.
func (s *Server) record(r *http.Request, analyses []models.TickerAnalysis) {
	if s.store == nil || len(analyses) == 0 {
		return
	}
	runID, err := s.store.SaveAnalyses(r.Context(), analyses)
	if err != nil {
		s.log.Warn().Err(err).Int("analyses", len(analyses)).Msg("failed to record analyses")
		return
	}
	s.log.Debug().Str("run_id", runID).Int("analyses", len(analyses)).Msg("recorded analyses")
}
