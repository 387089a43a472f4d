package models

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var ErrInvalidSeries = errors.New("invalid price series")

type PricePoint struct {
	Time  time.Time `json:"time"`
	Close float64   `json:"close"`
}

// PriceSeries is an immutable, strictly time-ordered series of positive closes.
// Build one with NewPriceSeries; the zero value is an empty series.
type PriceSeries struct {
	points []PricePoint
}

func NewPriceSeries(points []PricePoint) (PriceSeries, error) {
	if len(points) == 0 {
		return PriceSeries{}, fmt.Errorf("%w: no points", ErrInvalidSeries)
	}

	owned := make([]PricePoint, len(points))
	copy(owned, points)

	for i, p := range owned {
		if math.IsNaN(p.Close) || math.IsInf(p.Close, 0) || p.Close <= 0 {
			return PriceSeries{}, fmt.Errorf("%w: non-positive close %v at index %d", ErrInvalidSeries, p.Close, i)
		}
		if i > 0 && !p.Time.After(owned[i-1].Time) {
			return PriceSeries{}, fmt.Errorf("%w: timestamp %s at index %d not after %s",
				ErrInvalidSeries, p.Time.Format(time.RFC3339), i, owned[i-1].Time.Format(time.RFC3339))
		}
	}

	return PriceSeries{points: owned}, nil
}

func (s PriceSeries) Len() int { return len(s.points) }

func (s PriceSeries) At(i int) PricePoint { return s.points[i] }

// Last panics on an empty series.
func (s PriceSeries) Last() PricePoint { return s.points[len(s.points)-1] }

// Closes returns a fresh copy of the close prices.
func (s PriceSeries) Closes() []float64 {
	out := make([]float64, len(s.points))
	for i, p := range s.points {
		out[i] = p.Close
	}
	return out
}

func (s PriceSeries) Points() []PricePoint {
	out := make([]PricePoint, len(s.points))
	copy(out, s.points)
	return out
}
