package strategy

import (
	"testing"
	"time"

	"github.com/vedantwpatil/trendbot/models"
)

// mkSeries builds a daily series from closes, starting at a fixed date.
func mkSeries(t *testing.T, closes []float64) models.PriceSeries {
	t.Helper()
	start := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	pts := make([]models.PricePoint, len(closes))
	for i, c := range closes {
		pts[i] = models.PricePoint{Time: start.AddDate(0, 0, i), Close: c}
	}
	s, err := models.NewPriceSeries(pts)
	if err != nil {
		t.Fatalf("NewPriceSeries: %v", err)
	}
	return s
}

// sawtooth repeats the scenario pattern until it reaches n points.
func sawtooth(n int) []float64 {
	pattern := []float64{100, 101, 99, 102, 103, 101, 104, 100, 105}
	out := make([]float64, n)
	for i := range out {
		out[i] = pattern[i%len(pattern)]
	}
	return out
}

func linear(n int, start, step float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}
