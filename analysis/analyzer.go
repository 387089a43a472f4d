package analysis

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/vedantwpatil/trendbot/models"
	"github.com/vedantwpatil/trendbot/scraper"
	"github.com/vedantwpatil/trendbot/stocks"
	"github.com/vedantwpatil/trendbot/strategy"
)

const DefaultLookbackDays = 504

// Analyzer ties the price provider and headline source to the strategy
// engine. It holds no per-run state; every call takes its own config.
type Analyzer struct {
	prices  stocks.Provider
	news    scraper.HeadlineSource
	log     zerolog.Logger
	workers int
	// slots caps in-flight ticker fetches at workers across nested
	// sector and ticker fan-outs.
	slots   chan struct{}
}

// NewAnalyzer builds an Analyzer. news may be nil, in which case tickers
// are analyzed without headlines.
func NewAnalyzer(prices stocks.Provider, news scraper.HeadlineSource, log zerolog.Logger, workers int) *Analyzer {
	if workers < 1 {
		workers = 1
	}
	return &Analyzer{prices: prices, news: news, log: log, workers: workers, slots: make(chan struct{}, workers)}
}

// AnalyzeTicker fetches prices and headlines for one symbol and builds its
// analysis. ok is false when the provider has no usable prices.
func (a *Analyzer) AnalyzeTicker(ctx context.Context, symbol, sectorID string, isETF bool, cfg strategy.Config, lookbackDays int) (models.TickerAnalysis, bool, error) {
	if err := cfg.Validate(); err != nil {
		return models.TickerAnalysis{}, false, err
	}
	started := time.Now()

	select {
	case a.slots <- struct{}{}:
	case <-ctx.Done():
		return models.TickerAnalysis{}, false, ctx.Err()
	}
	var (
		wg        sync.WaitGroup
		priceRes  stocks.PriceResult
		priceErr  error
		headlines scraper.HeadlineResult
	)
	wg.Go(func() {
		priceRes, priceErr = a.prices.FetchCloses(ctx, symbol, lookbackDays)
	})
	if a.news != nil {
		wg.Go(func() {
			headlines = a.news.FetchHeadlines(ctx, symbol)
		})
	}
	wg.Wait()
	<-a.slots

	if priceErr != nil {
		return models.TickerAnalysis{}, false, priceErr
	}
	if !priceRes.Available {
		a.log.Info().Str("symbol", symbol).Str("reason", priceRes.Reason).Msg("prices unavailable, skipping")
		return models.TickerAnalysis{}, false, nil
	}
	if a.news != nil && !headlines.Available {
		a.log.Info().Str("symbol", symbol).Str("reason", headlines.Reason).Msg("headlines unavailable")
	}

	analysis, err := Evaluate(symbol, sectorID, isETF, cfg, priceRes.Series, headlines.Titles())
	if err != nil {
		return models.TickerAnalysis{}, false, err
	}

	a.log.Debug().
		Str("symbol", symbol).
		Str("trend", analysis.TrendSignal).
		Bool("good", analysis.IsGood).
		Dur("elapsed", time.Since(started)).
		Msg("ticker analyzed")
	return analysis, true, nil
}
