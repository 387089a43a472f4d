package models

import "time"

const (
	TrendBullish = "bullish"
	TrendBearish = "bearish"
	TrendUnknown = "unknown"
)

type TickerAnalysis struct {
	Symbol           string             `json:"symbol"`
	SectorID         string             `json:"sector_id"`
	IsETF            bool               `json:"is_etf"`
	CurrentPrice     float64            `json:"current_price"`
	FastEMA          float64            `json:"fast_ema"`
	SlowEMA          float64            `json:"slow_ema"`
	TrendSignal      string             `json:"trend_signal"`
	PositionSize     float64            `json:"position_size"`
	AnnualReturn     float64            `json:"annual_return"`
	SharpeRatio      float64            `json:"sharpe_ratio"`
	AnnualVolatility float64            `json:"annual_volatility"`
	MaxDrawdown      float64            `json:"max_drawdown"`
	NObservations    int                `json:"n_observations"`
	Reasoning        string             `json:"reasoning"`
	InvestmentThesis string             `json:"investment_thesis"`
	IsGood           bool               `json:"is_good"`
	EventScore       float64            `json:"event_score"`
	EventHeadlines   []string           `json:"event_headlines"`
	EventSummary     string             `json:"event_summary"`
	RankScore        float64            `json:"rank_score"`
	RawMetrics       map[string]float64 `json:"raw_metrics"`
}

type Sector struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	ETF         string   `json:"etf"`
	Stocks      []string `json:"stocks"`
}

type SectorRecommendation struct {
	Sector        Sector           `json:"sector"`
	SectorScore   float64          `json:"sector_score"`
	Reasoning     string           `json:"reasoning"`
	ETFAnalysis   *TickerAnalysis  `json:"etf_analysis"`
	StockAnalyses []TickerAnalysis `json:"stock_analyses"`
}

// AnalysisRecord is a stored ticker analysis.
type AnalysisRecord struct {
	ID               string    `json:"id"`
	RunID            string    `json:"run_id"`
	Symbol           string    `json:"symbol"`
	SectorID         string    `json:"sector_id"`
	AnalyzedAt       time.Time `json:"analyzed_at"`
	TrendSignal      string    `json:"trend_signal"`
	PositionSize     float64   `json:"position_size"`
	AnnualReturn     float64   `json:"annual_return"`
	SharpeRatio      float64   `json:"sharpe_ratio"`
	AnnualVolatility float64   `json:"annual_volatility"`
	MaxDrawdown      float64   `json:"max_drawdown"`
	EventScore       float64   `json:"event_score"`
	RankScore        float64   `json:"rank_score"`
	IsGood           bool      `json:"is_good"`
}
