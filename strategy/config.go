package strategy

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidConfig    = errors.New("invalid strategy configuration")
	ErrInvalidPrices    = errors.New("invalid price series")
	ErrInsufficientData = errors.New("insufficient data")
)

// Config holds the engine parameters. It is a plain value; every call
// receives its own copy.
type Config struct {
	FastWindow         int     `json:"fast_ema_span"`
	SlowWindow         int     `json:"slow_ema_span"`
	VolLookback        int     `json:"vol_lookback"`
	TargetVol          float64 `json:"target_vol"`
	MaxLeverage        float64 `json:"max_leverage"`
	TransactionCostBps float64 `json:"transaction_cost_bps"`
}

func DefaultConfig() Config {
	return Config{
		FastWindow:         12,
		SlowWindow:         48,
		VolLookback:        20,
		TargetVol:          0.15,
		MaxLeverage:        2.0,
		TransactionCostBps: 1.0,
	}
}

func (c Config) Validate() error {
	switch {
	case c.FastWindow < 1 || c.SlowWindow < 1 || c.VolLookback < 1:
		return fmt.Errorf("%w: windows must be >= 1 (fast=%d slow=%d vol=%d)",
			ErrInvalidConfig, c.FastWindow, c.SlowWindow, c.VolLookback)
	case c.FastWindow >= c.SlowWindow:
		return fmt.Errorf("%w: fast window %d must be shorter than slow window %d",
			ErrInvalidConfig, c.FastWindow, c.SlowWindow)
	case !finite(c.TargetVol) || c.TargetVol <= 0:
		return fmt.Errorf("%w: target vol must be positive, got %v", ErrInvalidConfig, c.TargetVol)
	case !finite(c.MaxLeverage) || c.MaxLeverage < 0:
		return fmt.Errorf("%w: max leverage must be >= 0, got %v", ErrInvalidConfig, c.MaxLeverage)
	case !finite(c.TransactionCostBps) || c.TransactionCostBps < 0:
		return fmt.Errorf("%w: transaction cost must be >= 0 bps, got %v", ErrInvalidConfig, c.TransactionCostBps)
	}
	return nil
}

// MinObservations is the shortest price series the engine accepts.
func (c Config) MinObservations() int {
	return c.SlowWindow + c.VolLookback
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
