package stats

import "math"

func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// SampleStd uses the N-1 denominator. Fewer than 2 values give NaN.
func SampleStd(xs []float64) float64 {
	if len(xs) < 2 {
		return math.NaN()
	}
	m := Mean(xs)
	ss := 0.0
	for _, x := range xs {
		d := x - m
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(xs)-1))
}

// PctChange returns x[t]/x[t-1] - 1 with the first element set to 0.
func PctChange(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i := 1; i < len(xs); i++ {
		out[i] = xs[i]/xs[i-1] - 1
	}
	return out
}

// CumProdPlusOne returns the running product of (1 + r).
func CumProdPlusOne(rs []float64) []float64 {
	out := make([]float64, len(rs))
	acc := 1.0
	for i, r := range rs {
		acc *= 1 + r
		out[i] = acc
	}
	return out
}

func CumMax(xs []float64) []float64 {
	out := make([]float64, len(xs))
	peak := math.Inf(-1)
	for i, x := range xs {
		if x > peak {
			peak = x
		}
		out[i] = peak
	}
	return out
}

// Drawdowns gives (x - peak) / peak against the running peak.
// A non-positive peak counts as a full loss (-1).
func Drawdowns(equity []float64) []float64 {
	peaks := CumMax(equity)
	out := make([]float64, len(equity))
	for i, e := range equity {
		if peaks[i] <= 0 {
			out[i] = -1
			continue
		}
		out[i] = (e - peaks[i]) / peaks[i]
	}
	return out
}

func Min(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	m := xs[0]
	for _, x := range xs[1:] {
		if x < m {
			m = x
		}
	}
	return m
}
