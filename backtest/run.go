package backtest

import (
	"fmt"
	"strings"

	"github.com/vedantwpatil/trendbot/models"
	"github.com/vedantwpatil/trendbot/stocks"
	"github.com/vedantwpatil/trendbot/strategy"
)

// RunCSV loads a price file, runs the strategy and evaluates the result.
func RunCSV(path, priceColumn string, cfg strategy.Config) (models.PerformanceSummary, error) {
	prices, err := stocks.LoadCSV(path, priceColumn)
	if err != nil {
		return models.PerformanceSummary{}, err
	}
	return Run(prices, cfg)
}

func Run(prices models.PriceSeries, cfg strategy.Config) (models.PerformanceSummary, error) {
	returns, err := strategy.ComputeStrategyReturns(prices, cfg)
	if err != nil {
		return models.PerformanceSummary{}, fmt.Errorf("compute strategy returns: %w", err)
	}
	return Evaluate(returns)
}

func FormatReport(s models.PerformanceSummary) string {
	return strings.Join([]string{
		"Performance Summary",
		"-------------------",
		fmt.Sprintf("Annual Return: %.2f%%", s.AnnualReturn*100),
		fmt.Sprintf("Annual Volatility: %.2f%%", s.AnnualVolatility*100),
		fmt.Sprintf("Sharpe Ratio: %.2f", s.SharpeRatio),
		fmt.Sprintf("Max Drawdown: %.2f%%", s.MaxDrawdown*100),
	}, "\n")
}
