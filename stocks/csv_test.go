package stocks

import (
	"errors"
	"strings"
	"testing"

	"github.com/vedantwpatil/trendbot/models"
)

func TestReadCSVSortsAndMatchesHeaders(t *testing.T) {
	in := "DATE,Open,CLOSE\n2024-01-03,1,103\n2024-01-01,1,101\n2024-01-02,1,102\n"
	s, err := ReadCSV(strings.NewReader(in), "Close")
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	closes := s.Closes()
	want := []float64{101, 102, 103}
	for i := range want {
		if closes[i] != want[i] {
			t.Fatalf("closes = %v, want %v", closes, want)
		}
	}
}

func TestReadCSVCustomColumn(t *testing.T) {
	in := "date,adj_close,close\n2024-01-01T00:00:00Z,50,100\n2024-01-02T00:00:00Z,51,101\n"
	s, err := ReadCSV(strings.NewReader(in), "adj_close")
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if s.Last().Close != 51 {
		t.Fatalf("last close = %v, want 51", s.Last().Close)
	}
}

func TestReadCSVErrors(t *testing.T) {
	cases := map[string]string{
		"missing date":  "day,close\n2024-01-01,1\n",
		"missing price": "date,open\n2024-01-01,1\n",
		"bad price":     "date,close\n2024-01-01,abc\n",
		"bad date":      "date,close\n01/02/2024,1\n",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := ReadCSV(strings.NewReader(in), "close"); err == nil {
				t.Fatalf("expected an error")
			}
		})
	}
}

func TestReadCSVRejectsDuplicateDates(t *testing.T) {
	in := "date,close\n2024-01-01,1\n2024-01-01,2\n"
	if _, err := ReadCSV(strings.NewReader(in), "close"); !errors.Is(err, models.ErrInvalidSeries) {
		t.Fatalf("expected ErrInvalidSeries, got %v", err)
	}
}
