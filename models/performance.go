package models

// PerformanceSummary is a snapshot built fresh by each evaluation.
type PerformanceSummary struct {
	AnnualReturn     float64   `json:"annual_return"`
	AnnualVolatility float64   `json:"annual_volatility"`
	SharpeRatio      float64   `json:"sharpe_ratio"`
	MaxDrawdown      float64   `json:"max_drawdown"`
	EquityCurve      []float64 `json:"equity_curve"`
	Returns          []float64 `json:"daily_returns"`
}
