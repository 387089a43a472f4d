package strategy

import (
	"fmt"

	"github.com/vedantwpatil/trendbot/models"
	"github.com/vedantwpatil/trendbot/stats"
)

// Simulation carries every intermediate series of one engine run, each
// aligned 1:1 with the input prices.
type Simulation struct {
	FastEMA         []float64
	SlowEMA         []float64
	Trend           []float64
	PriceReturns    []float64
	RollingVol      []float64 // NaN where undefined
	VolTarget       []float64
	RawPositions    []float64
	Positions       []float64
	Turnover        []float64
	Costs           []float64
	StrategyReturns []float64
}

// TargetPosition is the size decided at the last bar, to be held next period.
func (s Simulation) TargetPosition() float64 {
	return s.RawPositions[len(s.RawPositions)-1]
}

func (s Simulation) LastFastEMA() float64 { return s.FastEMA[len(s.FastEMA)-1] }

func (s Simulation) LastSlowEMA() float64 { return s.SlowEMA[len(s.SlowEMA)-1] }

// Bullish reports whether the latest fast EMA is above the slow EMA.
func (s Simulation) Bullish() bool {
	return s.Trend[len(s.Trend)-1] == 1
}

// Simulate runs the trend and volatility-targeting engine over prices.
func Simulate(prices models.PriceSeries, cfg Config) (Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return Simulation{}, err
	}
	if prices.Len() == 0 {
		return Simulation{}, fmt.Errorf("%w: empty series", ErrInvalidPrices)
	}
	if need := cfg.MinObservations(); prices.Len() < need {
		return Simulation{}, fmt.Errorf("%w: have %d prices, need %d", ErrInsufficientData, prices.Len(), need)
	}

	closes := prices.Closes()
	sim := Simulation{
		FastEMA:      EMA(closes, cfg.FastWindow),
		SlowEMA:      EMA(closes, cfg.SlowWindow),
		PriceReturns: stats.PctChange(closes),
	}
	sim.Trend = TrendIndicator(sim.FastEMA, sim.SlowEMA)
	sim.RollingVol = stats.RollingStd(sim.PriceReturns, cfg.VolLookback)
	sim.VolTarget = VolTarget(sim.RollingVol, cfg.TargetVol, cfg.MaxLeverage)

	n := len(closes)
	sim.RawPositions = make([]float64, n)
	for i := range n {
		sim.RawPositions[i] = sim.Trend[i] * sim.VolTarget[i]
	}
	sim.Positions = Lag(sim.RawPositions)
	sim.Turnover = Turnover(sim.Positions)

	costRate := cfg.TransactionCostBps / 10_000
	sim.Costs = make([]float64, n)
	sim.StrategyReturns = make([]float64, n)
	for i := range n {
		sim.Costs[i] = sim.Turnover[i] * costRate
		sim.StrategyReturns[i] = sim.Positions[i]*sim.PriceReturns[i] - sim.Costs[i]
	}
	return sim, nil
}

// ComputeStrategyReturns returns the per-period net strategy returns.
func ComputeStrategyReturns(prices models.PriceSeries, cfg Config) ([]float64, error) {
	sim, err := Simulate(prices, cfg)
	if err != nil {
		return nil, err
	}
	return sim.StrategyReturns, nil
}
