package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/vedantwpatil/trendbot/models"
)

func openTestDB(t *testing.T) *Database {
	t.Helper()
	db, err := NewDatabase(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("NewDatabase: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSaveAndHistory(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	clock := time.Date(2025, 1, 10, 15, 0, 0, 0, time.UTC)
	db.now = func() time.Time { return clock }

	first, err := db.SaveAnalyses(ctx, []models.TickerAnalysis{
		{Symbol: "AAPL", SectorID: "information_technology", TrendSignal: models.TrendBullish, SharpeRatio: 1.2, IsGood: true},
		{Symbol: "MSFT", SectorID: "information_technology", TrendSignal: models.TrendBearish, SharpeRatio: -0.3},
	})
	if err != nil {
		t.Fatalf("SaveAnalyses: %v", err)
	}

	clock = clock.Add(24 * time.Hour)
	second, err := db.SaveAnalyses(ctx, []models.TickerAnalysis{
		{Symbol: "AAPL", TrendSignal: models.TrendBearish, MaxDrawdown: -0.2},
	})
	if err != nil {
		t.Fatalf("SaveAnalyses: %v", err)
	}
	if first == second || first == "" {
		t.Fatalf("run ids should be distinct: %q %q", first, second)
	}

	hist, err := db.History(ctx, "AAPL", 10)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(hist) != 2 {
		t.Fatalf("got %d records, want 2", len(hist))
	}
	if hist[0].RunID != second || hist[0].TrendSignal != models.TrendBearish || hist[0].MaxDrawdown != -0.2 {
		t.Fatalf("newest record first expected, got %+v", hist[0])
	}
	if hist[1].RunID != first || !hist[1].IsGood || hist[1].SharpeRatio != 1.2 {
		t.Fatalf("unexpected older record: %+v", hist[1])
	}
	if !hist[1].AnalyzedAt.Equal(time.Date(2025, 1, 10, 15, 0, 0, 0, time.UTC)) {
		t.Fatalf("analyzed_at = %v", hist[1].AnalyzedAt)
	}

	limited, err := db.History(ctx, "AAPL", 1)
	if err != nil || len(limited) != 1 {
		t.Fatalf("limit not applied: %d records, err %v", len(limited), err)
	}

	none, err := db.History(ctx, "TSLA", 10)
	if err != nil || len(none) != 0 || none == nil {
		t.Fatalf("expected empty non-nil history, got %v (err %v)", none, err)
	}
}
