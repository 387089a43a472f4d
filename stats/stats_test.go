package stats

import (
	"math"
	"testing"
)

func almostEqual(a, b, tol float64) bool { return math.Abs(a-b) <= tol }

func TestSampleStd(t *testing.T) {
	got := SampleStd([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	// population std is 2; sample std is 2*sqrt(8/7)
	want := 2 * math.Sqrt(8.0/7.0)
	if !almostEqual(got, want, 1e-12) {
		t.Fatalf("SampleStd = %.12f, want %.12f", got, want)
	}
	if !math.IsNaN(SampleStd([]float64{1})) {
		t.Fatalf("expected NaN for a single value")
	}
}

func TestRollingStdMatchesNaive(t *testing.T) {
	xs := []float64{0, 0.01, -0.02, 0.015, 0.003, -0.007, 0.02, 0.0, -0.011, 0.004, 0.009, -0.001}
	const window = 4
	got := RollingStd(xs, window)

	for i := range xs {
		if i < window-1 {
			if !math.IsNaN(got[i]) {
				t.Fatalf("index %d: expected NaN during warmup, got %v", i, got[i])
			}
			continue
		}
		want := SampleStd(xs[i-window+1 : i+1])
		if !almostEqual(got[i], want, 1e-12) {
			t.Fatalf("index %d: rolling std %.15f, naive %.15f", i, got[i], want)
		}
	}
}

func TestRollingStdFlatWindowIsExactlyZero(t *testing.T) {
	xs := []float64{0.013, -0.021, 0.007, 0, 0, 0, 0}
	got := RollingStd(xs, 3)
	if got[5] != 0 || got[6] != 0 {
		t.Fatalf("flat windows should be exactly 0, got %v %v", got[5], got[6])
	}
	if got[4] == 0 {
		t.Fatalf("window with a non-zero value should not be 0")
	}
}

func TestRollingStdWindowOneIsUndefined(t *testing.T) {
	for i, v := range RollingStd([]float64{1, 2, 3}, 1) {
		if !math.IsNaN(v) {
			t.Fatalf("index %d: expected NaN, got %v", i, v)
		}
	}
}

func TestPctChange(t *testing.T) {
	got := PctChange([]float64{100, 110, 99})
	want := []float64{0, 0.1, -0.1}
	for i := range want {
		if !almostEqual(got[i], want[i], 1e-12) {
			t.Fatalf("index %d: got %v want %v", i, got[i], want[i])
		}
	}
}

func TestDrawdowns(t *testing.T) {
	equity := []float64{1, 1.2, 0.9, 1.3, 1.04}
	dd := Drawdowns(equity)
	want := []float64{0, 0, -0.25, 0, -0.2}
	for i := range want {
		if !almostEqual(dd[i], want[i], 1e-12) {
			t.Fatalf("index %d: drawdown %v want %v", i, dd[i], want[i])
		}
	}
	if m := Min(dd); !almostEqual(m, -0.25, 1e-12) {
		t.Fatalf("min drawdown %v", m)
	}
}

func TestCumProdPlusOne(t *testing.T) {
	got := CumProdPlusOne([]float64{0, 0.1, -0.5})
	want := []float64{1, 1.1, 0.55}
	for i := range want {
		if !almostEqual(got[i], want[i], 1e-12) {
			t.Fatalf("index %d: got %v want %v", i, got[i], want[i])
		}
	}
}
