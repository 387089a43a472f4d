package backtest

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/vedantwpatil/trendbot/models"
	"github.com/vedantwpatil/trendbot/stats"
	"github.com/vedantwpatil/trendbot/strategy"
)

var (
	ErrEmptyReturns   = errors.New("empty return series")
	ErrInvalidReturns = errors.New("invalid return series")
)

// Evaluate summarizes a per-period return series.
//
// Sharpe and annual volatility are 0 when the sample std is zero or
// undefined (a single period). Annual return is geometric over a 252-day
// year; a non-positive final equity is reported as -1.
func Evaluate(returns []float64) (models.PerformanceSummary, error) {
	if len(returns) == 0 {
		return models.PerformanceSummary{}, ErrEmptyReturns
	}
	for i, r := range returns {
		if math.IsNaN(r) || math.IsInf(r, 0) {
			return models.PerformanceSummary{}, fmt.Errorf("%w: non-finite value at index %d", ErrInvalidReturns, i)
		}
	}

	annualize := math.Sqrt(strategy.TradingDaysPerYear)
	equity := stats.CumProdPlusOne(returns)

	dailyVol := stats.SampleStd(returns)
	sharpe, annualVol := 0.0, 0.0
	if !math.IsNaN(dailyVol) && dailyVol != 0 {
		sharpe = stats.Mean(returns) / dailyVol * annualize
		annualVol = dailyVol * annualize
	}

	return models.PerformanceSummary{
		AnnualReturn:     annualReturn(equity[len(equity)-1], len(equity)),
		AnnualVolatility: annualVol,
		SharpeRatio:      sharpe,
		MaxDrawdown:      stats.Min(stats.Drawdowns(equity)),
		EquityCurve:      equity,
		Returns:          slices.Clone(returns),
	}, nil
}

func annualReturn(finalEquity float64, periods int) float64 {
	if finalEquity <= 0 {
		return -1
	}
	return math.Pow(finalEquity, float64(strategy.TradingDaysPerYear)/float64(periods)) - 1
}
