package analysis

import (
	"context"
	"sort"
	"sync"

	"github.com/vedantwpatil/trendbot/models"
	"github.com/vedantwpatil/trendbot/sectors"
	"github.com/vedantwpatil/trendbot/stats"
	"github.com/vedantwpatil/trendbot/strategy"
	"golang.org/x/sync/errgroup"
)

// AnalyzeSector analyzes the sector ETF and its stocks and keeps only the
// tickers that pass the good-stock filter.
func (a *Analyzer) AnalyzeSector(ctx context.Context, sector models.Sector, cfg strategy.Config, lookbackDays int) (models.SectorRecommendation, error) {
	if err := cfg.Validate(); err != nil {
		return models.SectorRecommendation{}, err
	}

	symbols := append([]string{sector.ETF}, sector.Stocks...)
	results := make([]*models.TickerAnalysis, len(symbols))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.workers)
	for i, sym := range symbols {
		g.Go(func() error {
			ta, ok, err := a.AnalyzeTicker(gctx, sym, sector.ID, i == 0, cfg, lookbackDays)
			if err != nil {
				return err
			}
			if ok && ta.IsGood {
				results[i] = &ta
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return models.SectorRecommendation{}, err
	}

	rec := models.SectorRecommendation{
		Sector:        sector,
		ETFAnalysis:   results[0],
		StockAnalyses: []models.TickerAnalysis{},
	}
	var sharpes []float64
	if rec.ETFAnalysis != nil {
		sharpes = append(sharpes, rec.ETFAnalysis.SharpeRatio)
	}
	for _, r := range results[1:] {
		if r != nil {
			rec.StockAnalyses = append(rec.StockAnalyses, *r)
			sharpes = append(sharpes, r.SharpeRatio)
		}
	}
	if len(sharpes) > 0 {
		rec.SectorScore = stats.Mean(sharpes)
	}
	rec.Reasoning = sectorReasoning(rec)
	return rec, nil
}

// EachSector analyzes every sector concurrently and calls fn as each one
// completes. Calls to fn are serialized. A sector that fails is logged and
// skipped.
func (a *Analyzer) EachSector(ctx context.Context, cfg strategy.Config, lookbackDays int, fn func(models.SectorRecommendation)) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.workers)
	for _, s := range sectors.All() {
		g.Go(func() error {
			rec, err := a.AnalyzeSector(gctx, s, cfg, lookbackDays)
			if err != nil {
				a.log.Error().Err(err).Str("sector", s.ID).Msg("sector analysis failed")
				return nil
			}
			mu.Lock()
			defer mu.Unlock()
			fn(rec)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// AnalyzeAllSectors returns every sector recommendation, best score first.
func (a *Analyzer) AnalyzeAllSectors(ctx context.Context, cfg strategy.Config, lookbackDays int) ([]models.SectorRecommendation, error) {
	order := make(map[string]int)
	for i, s := range sectors.All() {
		order[s.ID] = i
	}

	var recs []models.SectorRecommendation
	err := a.EachSector(ctx, cfg, lookbackDays, func(r models.SectorRecommendation) {
		recs = append(recs, r)
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(recs, func(i, j int) bool {
		if recs[i].SectorScore != recs[j].SectorScore {
			return recs[i].SectorScore > recs[j].SectorScore
		}
		return order[recs[i].Sector.ID] < order[recs[j].Sector.ID]
	})
	a.log.Info().Int("sectors", len(recs)).Msg("sector analysis complete")
	return recs, nil
}

// MarketTopStocks ranks every stock in the sector table and returns the
// topN by rank score.
func (a *Analyzer) MarketTopStocks(ctx context.Context, cfg strategy.Config, lookbackDays, topN int) ([]models.TickerAnalysis, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	universe := sectors.AllStocks()
	results := make([]*models.TickerAnalysis, len(universe))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.workers)
	for i, sym := range universe {
		g.Go(func() error {
			sectorID := "market"
			if s, ok := sectors.ForSymbol(sym); ok {
				sectorID = s.ID
			}
			ta, ok, err := a.AnalyzeTicker(gctx, sym, sectorID, false, cfg, lookbackDays)
			if err != nil {
				return err
			}
			if ok {
				results[i] = &ta
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ranked := make([]models.TickerAnalysis, 0, len(universe))
	for _, r := range results {
		if r != nil {
			ranked = append(ranked, *r)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].RankScore > ranked[j].RankScore })

	if topN < 0 {
		topN = 0
	}
	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	a.log.Info().Int("analyzed", len(universe)).Int("returned", len(ranked)).Msg("market ranking complete")
	return ranked, nil
}
