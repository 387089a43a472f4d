package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/vedantwpatil/trendbot/analysis"
	"github.com/vedantwpatil/trendbot/config"
	"github.com/vedantwpatil/trendbot/logging"
	"github.com/vedantwpatil/trendbot/scraper"
	"github.com/vedantwpatil/trendbot/server"
	"github.com/vedantwpatil/trendbot/stocks"
	"github.com/vedantwpatil/trendbot/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		boot := logging.New("info", os.Stderr)
		boot.Fatal().Err(err).Msg("load config")
	}
	log := logging.New(cfg.LogLevel, os.Stdout)

	handler, cleanup, err := newHandler(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("build server")
	}
	defer cleanup()

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Msg("server starting")
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server failed")
		}
		return
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}

// newHandler wires the collaborators into the API handler. cleanup closes
// the history database when one is configured.
func newHandler(cfg config.Config, log zerolog.Logger) (http.Handler, func(), error) {
	stockClient := stocks.NewStockClient(cfg.StockServiceURL, log)
	newsScraper := scraper.NewNewsScraper(cfg.NewsBaseURL, log)
	analyzer := analysis.NewAnalyzer(stockClient, newsScraper, log, cfg.Workers)

	cleanup := func() {}
	// A nil interface, not a nil *storage.Database, disables history.
	var store server.HistoryStore
	if cfg.DBPath != "" {
		db, err := storage.NewDatabase(cfg.DBPath)
		if err != nil {
			return nil, nil, err
		}
		store = db
		cleanup = func() { db.Close() }
	}

	srv := server.New(analyzer, store, server.Options{
		Strategy:     cfg.Strategy,
		LookbackDays: cfg.LookbackDays,
		TopN:         cfg.TopN,
	}, log)
	return srv.Handler(), cleanup, nil
}
