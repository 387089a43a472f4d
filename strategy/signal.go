package strategy

// EMA is the recursive exponential average seeded at the first observation,
// so there is no warm-up period: ema[0] = xs[0], ema[t] = a*xs[t] + (1-a)*ema[t-1]
// with a = 2/(span+1).
func EMA(xs []float64, span int) []float64 {
	out := make([]float64, len(xs))
	if len(xs) == 0 {
		return out
	}
	alpha := 2.0 / float64(span+1)
	out[0] = xs[0]
	for i := 1; i < len(xs); i++ {
		out[i] = alpha*xs[i] + (1-alpha)*out[i-1]
	}
	return out
}

// TrendIndicator is 1 where fast > slow and 0 otherwise. Ties are bearish.
func TrendIndicator(fast, slow []float64) []float64 {
	out := make([]float64, len(fast))
	for i := range fast {
		if fast[i] > slow[i] {
			out[i] = 1
		}
	}
	return out
}
