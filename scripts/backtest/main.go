// Command backtest runs the trend strategy over a CSV of prices, or over
// closes fetched from the stock service, and prints a performance summary.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/vedantwpatil/trendbot/backtest"
	"github.com/vedantwpatil/trendbot/logging"
	"github.com/vedantwpatil/trendbot/models"
	"github.com/vedantwpatil/trendbot/stocks"
	"github.com/vedantwpatil/trendbot/strategy"
)

func main() {
	def := strategy.DefaultConfig()
	var (
		priceColumn string
		symbol      string
		serviceURL  string
		lookback    int
		cfg         strategy.Config
	)

	flag.StringVar(&priceColumn, "price-column", "close", "name of the price column")
	flag.IntVar(&cfg.FastWindow, "fast-ema", def.FastWindow, "fast EMA span")
	flag.IntVar(&cfg.SlowWindow, "slow-ema", def.SlowWindow, "slow EMA span")
	flag.IntVar(&cfg.VolLookback, "vol-lookback", def.VolLookback, "rolling volatility window")
	flag.Float64Var(&cfg.TargetVol, "target-vol", def.TargetVol, "annualized volatility target")
	flag.Float64Var(&cfg.MaxLeverage, "max-leverage", def.MaxLeverage, "position size cap")
	flag.Float64Var(&cfg.TransactionCostBps, "transaction-cost-bps", def.TransactionCostBps, "cost per unit turnover in basis points")
	flag.StringVar(&symbol, "symbol", "", "fetch closes for this ticker instead of reading a CSV")
	flag.StringVar(&serviceURL, "service-url", stocks.DefaultServiceURL, "stock data service URL (with -symbol)")
	flag.IntVar(&lookback, "lookback-days", 504, "calendar days of history to fetch (with -symbol)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: backtest [flags] <csv-path>\n       backtest [flags] -symbol TICKER\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	var (
		summary models.PerformanceSummary
		err     error
	)
	switch {
	case symbol != "":
		summary, err = runSymbol(symbol, serviceURL, lookback, cfg)
	case flag.NArg() == 1:
		summary, err = backtest.RunCSV(flag.Arg(0), priceColumn, cfg)
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(backtest.FormatReport(summary))
}

func runSymbol(symbol, serviceURL string, lookback int, cfg strategy.Config) (models.PerformanceSummary, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	client := stocks.NewStockClient(serviceURL, logging.New("warn", os.Stderr))
	res, err := client.FetchCloses(ctx, symbol, lookback)
	if err != nil {
		return models.PerformanceSummary{}, err
	}
	if !res.Available {
		return models.PerformanceSummary{}, fmt.Errorf("no prices for %s: %s", symbol, res.Reason)
	}
	return backtest.Run(res.Series, cfg)
}
