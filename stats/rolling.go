package stats

import "math"

// RollingStd is the sample standard deviation over a trailing window of
// exactly `window` values, NaN until the window fills. A window below 2
// never yields a value.
//
// The window slides with a Welford accumulator so each step is O(1). A window
// holding one repeated value reports exactly 0 regardless of accumulated rounding.
func RollingStd(xs []float64, window int) []float64 {
	out := make([]float64, len(xs))
	for i := range out {
		out[i] = math.NaN()
	}
	if window < 2 {
		return out
	}

	var w slidingWindow
	run := 0
	for i, x := range xs {
		if i > 0 && x == xs[i-1] {
			run++
		} else {
			run = 1
		}
		if i < window {
			w.push(x)
		} else {
			w.replace(xs[i-window], x)
		}
		switch {
		case i < window-1:
		case run >= window:
			out[i] = 0
		default:
			out[i] = w.std()
		}
	}
	return out
}

type slidingWindow struct {
	n    int
	mean float64
	m2   float64
}

func (w *slidingWindow) push(x float64) {
	w.n++
	d := x - w.mean
	w.mean += d / float64(w.n)
	w.m2 += d * (x - w.mean)
}

func (w *slidingWindow) replace(old, x float64) {
	prevMean := w.mean
	w.mean += (x - old) / float64(w.n)
	w.m2 += (x - old) * (x - w.mean + old - prevMean)
}

func (w *slidingWindow) std() float64 {
	if w.n < 2 {
		return math.NaN()
	}
	v := w.m2 / float64(w.n-1)
	if v < 0 {
		// rounding can push a flat window slightly negative
		v = 0
	}
	return math.Sqrt(v)
}
