package models

import (
	"errors"
	"math"
	"testing"
	"time"
)

func day(n int) time.Time {
	return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func TestNewPriceSeriesValidation(t *testing.T) {
	cases := map[string][]PricePoint{
		"empty":         nil,
		"zero close":    {{day(0), 10}, {day(1), 0}},
		"negative":      {{day(0), -1}},
		"nan":           {{day(0), math.NaN()}},
		"inf":           {{day(0), math.Inf(1)}},
		"duplicate day": {{day(0), 10}, {day(0), 11}},
		"out of order":  {{day(1), 10}, {day(0), 11}},
	}
	for name, pts := range cases {
		if _, err := NewPriceSeries(pts); !errors.Is(err, ErrInvalidSeries) {
			t.Errorf("%s: err = %v, want ErrInvalidSeries", name, err)
		}
	}
}

func TestPriceSeriesCopies(t *testing.T) {
	pts := []PricePoint{{day(0), 10}, {day(1), 11}, {day(2), 12}}
	s, err := NewPriceSeries(pts)
	if err != nil {
		t.Fatalf("NewPriceSeries: %v", err)
	}

	pts[0].Close = 999
	closes := s.Closes()
	closes[1] = 999
	s.Points()[2].Close = 999

	if s.At(0).Close != 10 || s.At(1).Close != 11 || s.Last().Close != 12 {
		t.Fatalf("series mutated through a copy: %v", s.Closes())
	}
	if s.Len() != 3 {
		t.Fatalf("Len = %d, want 3", s.Len())
	}
}
