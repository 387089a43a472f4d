package analysis

import (
	"fmt"
	"strings"

	"github.com/vedantwpatil/trendbot/models"
	"github.com/vedantwpatil/trendbot/strategy"
)

func pct(x float64, digits int) string {
	return fmt.Sprintf("%.*f%%", digits, x*100)
}

func investmentThesis(a models.TickerAnalysis, cfg strategy.Config) string {
	phrase, side := "downtrend", "below"
	if a.TrendSignal == models.TrendBullish {
		phrase, side = "uptrend", "above"
	}
	return fmt.Sprintf(
		"%s is currently in a %s, with a fast EMA (%.2f) %s the slow EMA (%.2f). "+
			"Over roughly %d trading days, the strategy produces an annualized return of %s "+
			"with a Sharpe ratio of %.2f, implying %s annualized volatility and a max drawdown of %s. "+
			"The volatility-targeting model suggests a %.2fx position size versus a %s risk target, "+
			"indicating how much exposure the math supports. "+
			"Current events: %s This real-world backdrop, combined with a composite market score of %.2f, "+
			"supports the case for investment if the trend persists.",
		a.Symbol, phrase, a.FastEMA, side, a.SlowEMA,
		a.NObservations, pct(a.AnnualReturn, 1),
		a.SharpeRatio, pct(a.AnnualVolatility, 1), pct(a.MaxDrawdown, 1),
		a.PositionSize, pct(cfg.TargetVol, 0),
		a.EventSummary, a.RankScore,
	)
}

func reasoning(a models.TickerAnalysis, cfg strategy.Config) string {
	cmp := "<"
	if a.FastEMA > a.SlowEMA {
		cmp = ">"
	}
	parts := []string{
		fmt.Sprintf("**Price & trend:** Latest close = $%.2f. Fast EMA (%dd) = %.2f, Slow EMA (%dd) = %.2f. Trend is **%s** (fast %s slow).",
			a.CurrentPrice, cfg.FastWindow, a.FastEMA, cfg.SlowWindow, a.SlowEMA, a.TrendSignal, cmp),
		fmt.Sprintf("**Volatility targeting:** Realized vol (annualized) = %s. Target vol = %s. Position size scaled to %.2f (capped at %gx).",
			pct(a.AnnualVolatility, 1), pct(cfg.TargetVol, 0), a.PositionSize, cfg.MaxLeverage),
		fmt.Sprintf("**Backtest (≈%d days):** Annual return = %s, Sharpe = %.2f, Max drawdown = %s. Transaction costs = %g bps.",
			a.NObservations, pct(a.AnnualReturn, 1), a.SharpeRatio, pct(a.MaxDrawdown, 1), cfg.TransactionCostBps),
		"**Real-world catalysts:** " + a.EventSummary,
		"**Investment thesis (paragraph):** " + a.InvestmentThesis,
	}

	switch {
	case a.IsGood:
		parts = append(parts, fmt.Sprintf(
			"**Recommendation:** Good-stock filter passed (bullish trend, positive return, Sharpe ≥ 0.5, "+
				"drawdown within limits, and no negative news skew). Consider exposure if trend remains %s.", a.TrendSignal))
	case a.TrendSignal == models.TrendBearish:
		parts = append(parts,
			"**Recommendation:** No long allocation; trend is bearish. Strategy waits for fast EMA > slow EMA before going long.")
	default:
		parts = append(parts,
			"**Recommendation:** Mixed signals. Evaluate alongside other sectors and risk constraints.")
	}
	return strings.Join(parts, " ")
}

func sectorReasoning(rec models.SectorRecommendation) string {
	good := len(rec.StockAnalyses)
	if rec.ETFAnalysis != nil {
		good++
	}
	total := len(rec.Sector.Stocks) + 1
	return fmt.Sprintf(
		"**%s** (%s): %d/%d tickers pass the good-stock filter (bullish + positive return + Sharpe ≥ 0.5 + "+
			"drawdown limits + non-negative news skew). Sector score (avg Sharpe, good only) = %.2f. %s",
		rec.Sector.Name, rec.Sector.ETF, good, total, rec.SectorScore, rec.Sector.Description)
}
