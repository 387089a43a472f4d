package strategy

import "math"

const TradingDaysPerYear = 252

// VolTarget scales exposure to hit targetVol annualized, clipped to
// [0, maxLeverage]. Undefined or zero volatility sizes to 0.
func VolTarget(rollingStd []float64, targetVol, maxLeverage float64) []float64 {
	annualize := math.Sqrt(TradingDaysPerYear)
	out := make([]float64, len(rollingStd))
	for i, s := range rollingStd {
		if math.IsNaN(s) || s == 0 {
			continue
		}
		out[i] = clip(targetVol/(s*annualize), 0, maxLeverage)
	}
	return out
}

// Lag shifts decisions forward one period: out[t] = raw[t-1], out[0] = 0.
func Lag(raw []float64) []float64 {
	out := make([]float64, len(raw))
	if len(raw) > 1 {
		copy(out[1:], raw[:len(raw)-1])
	}
	return out
}

func Turnover(positions []float64) []float64 {
	out := make([]float64, len(positions))
	for i := 1; i < len(positions); i++ {
		out[i] = math.Abs(positions[i] - positions[i-1])
	}
	return out
}

func clip(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
