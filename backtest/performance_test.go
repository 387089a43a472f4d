package backtest

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/vedantwpatil/trendbot/models"
	"github.com/vedantwpatil/trendbot/strategy"
)

func mkSeries(t *testing.T, closes []float64) models.PriceSeries {
	t.Helper()
	start := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
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

func TestEvaluateKnownSeries(t *testing.T) {
	rets := []float64{0.1, -0.1, 0.05}
	s, err := Evaluate(rets)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	wantEquity := []float64{1.1, 0.99, 1.0395}
	for i, w := range wantEquity {
		if math.Abs(s.EquityCurve[i]-w) > 1e-12 {
			t.Fatalf("equity[%d] = %v, want %v", i, s.EquityCurve[i], w)
		}
	}
	if math.Abs(s.MaxDrawdown-(-0.1)) > 1e-12 {
		t.Fatalf("max drawdown = %v, want -0.1", s.MaxDrawdown)
	}

	mean := 0.05 / 3
	var ss float64
	for _, r := range rets {
		ss += (r - mean) * (r - mean)
	}
	std := math.Sqrt(ss / 2)
	if want := mean / std * math.Sqrt(252); math.Abs(s.SharpeRatio-want) > 1e-12 {
		t.Fatalf("sharpe = %v, want %v", s.SharpeRatio, want)
	}
	if want := std * math.Sqrt(252); math.Abs(s.AnnualVolatility-want) > 1e-12 {
		t.Fatalf("annual vol = %v, want %v", s.AnnualVolatility, want)
	}
	if want := math.Pow(1.0395, 252.0/3) - 1; math.Abs(s.AnnualReturn-want) > 1e-9*want {
		t.Fatalf("annual return = %v, want %v", s.AnnualReturn, want)
	}
}

func TestEvaluateZeroDispersion(t *testing.T) {
	s, err := Evaluate(make([]float64, 50))
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if s.SharpeRatio != 0 || s.AnnualVolatility != 0 || s.MaxDrawdown != 0 || s.AnnualReturn != 0 {
		t.Fatalf("flat returns should give all-zero summary, got %+v", s)
	}
}

func TestEvaluateSinglePeriod(t *testing.T) {
	s, err := Evaluate([]float64{0.01})
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if s.SharpeRatio != 0 || s.AnnualVolatility != 0 {
		t.Fatalf("single period should not produce dispersion stats: %+v", s)
	}
	if want := math.Pow(1.01, 252) - 1; math.Abs(s.AnnualReturn-want) > 1e-9 {
		t.Fatalf("annual return = %v, want %v", s.AnnualReturn, want)
	}
}

func TestEvaluateWipedOutEquity(t *testing.T) {
	s, err := Evaluate([]float64{0, -1.5, 0.2})
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if s.AnnualReturn != -1 {
		t.Fatalf("annual return = %v, want -1", s.AnnualReturn)
	}
	if math.IsNaN(s.MaxDrawdown) || s.MaxDrawdown > 0 {
		t.Fatalf("max drawdown = %v", s.MaxDrawdown)
	}
}

func TestEvaluateRejectsBadInput(t *testing.T) {
	if _, err := Evaluate(nil); !errors.Is(err, ErrEmptyReturns) {
		t.Fatalf("expected ErrEmptyReturns, got %v", err)
	}
	if _, err := Evaluate([]float64{0.01, math.NaN()}); !errors.Is(err, ErrInvalidReturns) {
		t.Fatalf("expected ErrInvalidReturns, got %v", err)
	}
}

func TestEvaluateDoesNotAliasInput(t *testing.T) {
	rets := []float64{0.01, 0.02}
	s, err := Evaluate(rets)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	rets[0] = 99
	if s.Returns[0] != 0.01 {
		t.Fatalf("summary returns alias the input slice")
	}
}

func TestDrawdownNeverPositive(t *testing.T) {
	series := [][]float64{
		{0.05, 0.02, 0.01},
		{-0.05, 0.1, -0.2, 0.3},
		{0, 0, -0.01},
	}
	for _, rets := range series {
		s, err := Evaluate(rets)
		if err != nil {
			t.Fatalf("Evaluate(%v): %v", rets, err)
		}
		if s.MaxDrawdown > 0 {
			t.Fatalf("max drawdown %v > 0 for %v", s.MaxDrawdown, rets)
		}
	}
}

func TestRunFlatPrices(t *testing.T) {
	closes := make([]float64, 120)
	for i := range closes {
		closes[i] = 100
	}
	s, err := Run(mkSeries(t, closes), strategy.DefaultConfig())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if s.AnnualVolatility != 0 || s.SharpeRatio != 0 || s.MaxDrawdown != 0 || s.AnnualReturn != 0 {
		t.Fatalf("flat prices should give an all-zero summary, got %+v", s)
	}
}

func TestRunRisingPrices(t *testing.T) {
	closes := make([]float64, 250)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}
	s, err := Run(mkSeries(t, closes), strategy.DefaultConfig())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if s.AnnualReturn < 0 {
		t.Fatalf("annual return = %v on a rising series", s.AnnualReturn)
	}
	if s.MaxDrawdown != 0 {
		t.Fatalf("max drawdown = %v, want 0", s.MaxDrawdown)
	}
}

func TestRunInsufficientData(t *testing.T) {
	_, err := Run(mkSeries(t, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}), strategy.DefaultConfig())
	if !errors.Is(err, strategy.ErrInsufficientData) {
		t.Fatalf("expected ErrInsufficientData, got %v", err)
	}
}

func TestRunCSVAndReport(t *testing.T) {
	var b strings.Builder
	b.WriteString("Date,Open,High,Low,Close,Volume\n")
	start := time.Date(2022, 1, 3, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 100; i++ {
		p := 100 + float64(i%9) - 4 + float64(i)*0.1
		b.WriteString(start.AddDate(0, 0, i).Format("2006-01-02"))
		b.WriteString(",1,1,1,")
		b.WriteString(strconv.FormatFloat(p, 'f', 2, 64))
		b.WriteString(",1000\n")
	}
	path := filepath.Join(t.TempDir(), "prices.csv")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	s, err := RunCSV(path, "close", strategy.DefaultConfig())
	if err != nil {
		t.Fatalf("RunCSV: %v", err)
	}
	if len(s.Returns) != 100 {
		t.Fatalf("got %d returns, want 100", len(s.Returns))
	}

	report := FormatReport(s)
	for _, want := range []string{"Performance Summary", "Annual Return:", "Annual Volatility:", "Sharpe Ratio:", "Max Drawdown:"} {
		if !strings.Contains(report, want) {
			t.Fatalf("report missing %q:\n%s", want, report)
		}
	}
}

func TestFormatReport(t *testing.T) {
	got := FormatReport(models.PerformanceSummary{AnnualReturn: 0.1234, AnnualVolatility: 0.2, SharpeRatio: 1.456, MaxDrawdown: -0.05})
	want := "Performance Summary\n-------------------\nAnnual Return: 12.34%\nAnnual Volatility: 20.00%\nSharpe Ratio: 1.46\nMax Drawdown: -5.00%"
	if got != want {
		t.Fatalf("FormatReport:\n%s\nwant:\n%s", got, want)
	}
}
