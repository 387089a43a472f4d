package analysis

import (
	"errors"

	"github.com/vedantwpatil/trendbot/backtest"
	"github.com/vedantwpatil/trendbot/models"
	"github.com/vedantwpatil/trendbot/sentiment"
	"github.com/vedantwpatil/trendbot/strategy"
)

// Good-stock filter thresholds.
const (
	minSharpe      = 0.5
	maxDrawdownCap = -0.35
)

// Evaluate runs the strategy on prices and builds the ticker analysis.
// A series too short for the strategy gets a placeholder analysis instead
// of an error.
func Evaluate(symbol, sectorID string, isETF bool, cfg strategy.Config, prices models.PriceSeries, headlines []string) (models.TickerAnalysis, error) {
	sim, err := strategy.Simulate(prices, cfg)
	if errors.Is(err, strategy.ErrInsufficientData) {
		return insufficient(symbol, sectorID, isETF, prices), nil
	}
	if err != nil {
		return models.TickerAnalysis{}, err
	}

	perf, err := backtest.Evaluate(sim.StrategyReturns)
	if err != nil {
		return models.TickerAnalysis{}, err
	}

	trend := models.TrendBearish
	if sim.Bullish() {
		trend = models.TrendBullish
	}
	if headlines == nil {
		headlines = []string{}
	}
	eventScore := sentiment.Score(headlines)

	a := models.TickerAnalysis{
		Symbol:           symbol,
		SectorID:         sectorID,
		IsETF:            isETF,
		CurrentPrice:     prices.Last().Close,
		FastEMA:          sim.LastFastEMA(),
		SlowEMA:          sim.LastSlowEMA(),
		TrendSignal:      trend,
		PositionSize:     sim.TargetPosition(),
		AnnualReturn:     perf.AnnualReturn,
		SharpeRatio:      perf.SharpeRatio,
		AnnualVolatility: perf.AnnualVolatility,
		MaxDrawdown:      perf.MaxDrawdown,
		NObservations:    prices.Len(),
		EventScore:       eventScore,
		EventHeadlines:   headlines,
		EventSummary:     sentiment.Summarize(headlines, eventScore),
	}
	a.IsGood = isGood(a, len(headlines) > 0)
	a.RankScore = rankScore(a)
	a.RawMetrics = map[string]float64{
		"annual_return":     a.AnnualReturn,
		"sharpe_ratio":      a.SharpeRatio,
		"annual_volatility": a.AnnualVolatility,
		"max_drawdown":      a.MaxDrawdown,
		"event_score":       a.EventScore,
		"rank_score":        a.RankScore,
	}
	a.InvestmentThesis = investmentThesis(a, cfg)
	a.Reasoning = reasoning(a, cfg)
	return a, nil
}

func insufficient(symbol, sectorID string, isETF bool, prices models.PriceSeries) models.TickerAnalysis {
	a := models.TickerAnalysis{
		Symbol:           symbol,
		SectorID:         sectorID,
		IsETF:            isETF,
		TrendSignal:      models.TrendUnknown,
		NObservations:    prices.Len(),
		Reasoning:        "Insufficient data for analysis.",
		InvestmentThesis: "Not enough data to form a reliable investment thesis.",
		EventHeadlines:   []string{},
		EventSummary:     sentiment.Summarize(nil, 0),
		RawMetrics:       map[string]float64{},
	}
	if prices.Len() > 0 {
		a.CurrentPrice = prices.Last().Close
	}
	return a
}

// isGood requires a bullish trend, a positive return with Sharpe >= 0.5,
// drawdown no worse than -35%, and no negative news skew.
func isGood(a models.TickerAnalysis, hasHeadlines bool) bool {
	if a.TrendSignal != models.TrendBullish {
		return false
	}
	if a.SharpeRatio < minSharpe || a.AnnualReturn <= 0 {
		return false
	}
	if a.MaxDrawdown < maxDrawdownCap {
		return false
	}
	if hasHeadlines && a.EventScore < 0 {
		return false
	}
	return true
}

// rankScore is the composite used to order tickers across the market.
func rankScore(a models.TickerAnalysis) float64 {
	trendBonus := -0.25
	if a.TrendSignal == models.TrendBullish {
		trendBonus = 0.25
	}
	return a.AnnualReturn*3.0 +
		a.SharpeRatio*1.5 +
		a.EventScore*0.5 +
		a.MaxDrawdown*0.5 +
		trendBonus
}
