package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/vedantwpatil/trendbot/models"
)

type Database struct {
	db  *sql.DB
	now func() time.Time
}

func NewDatabase(filepath string) (*Database, error) {
	db, err := sql.Open("sqlite3", filepath)
	if err != nil {
		return nil, err
	}

	createTable := `
    CREATE TABLE IF NOT EXISTS ticker_analyses (
        id TEXT PRIMARY KEY,
        run_id TEXT NOT NULL,
        symbol TEXT NOT NULL,
        sector_id TEXT,
        analyzed_at DATETIME NOT NULL,
        trend TEXT,
        position_size REAL,
        annual_return REAL,
        sharpe_ratio REAL,
        annual_volatility REAL,
        max_drawdown REAL,
        event_score REAL,
        rank_score REAL,
        is_good INTEGER
    );

    CREATE INDEX IF NOT EXISTS idx_symbol_analyzed ON ticker_analyses(symbol, analyzed_at);
    `

	if _, err := db.Exec(createTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Database{db: db, now: time.Now}, nil
}

func (d *Database) Close() error {
	return d.db.Close()
}

// SaveAnalyses stores a batch of analyses in a single transaction and
// returns the run id shared by the batch.
func (d *Database) SaveAnalyses(ctx context.Context, analyses []models.TickerAnalysis) (string, error) {
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO ticker_analyses
        (id, run_id, symbol, sector_id, analyzed_at, trend, position_size, annual_return,
         sharpe_ratio, annual_volatility, max_drawdown, event_score, rank_score, is_good)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", err
	}
	defer stmt.Close()

	runID := uuid.NewString()
	at := d.now().UTC()
	for _, a := range analyses {
		_, err := stmt.ExecContext(ctx,
			uuid.NewString(), runID, a.Symbol, a.SectorID, at, a.TrendSignal, a.PositionSize,
			a.AnnualReturn, a.SharpeRatio, a.AnnualVolatility, a.MaxDrawdown, a.EventScore,
			a.RankScore, a.IsGood)
		if err != nil {
			return "", fmt.Errorf("insert %s: %w", a.Symbol, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return "", err
	}
	return runID, nil
}

// History returns up to limit stored analyses for symbol, newest first.
func (d *Database) History(ctx context.Context, symbol string, limit int) ([]models.AnalysisRecord, error) {
	query := `SELECT id, run_id, symbol, sector_id, analyzed_at, trend, position_size, annual_return,
                     sharpe_ratio, annual_volatility, max_drawdown, event_score, rank_score, is_good
              FROM ticker_analyses
              WHERE symbol = ?
              ORDER BY analyzed_at DESC, rowid DESC
              LIMIT ?`

	rows, err := d.db.QueryContext(ctx, query, symbol, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []models.AnalysisRecord{}
	for rows.Next() {
		var r models.AnalysisRecord
		err := rows.Scan(&r.ID, &r.RunID, &r.Symbol, &r.SectorID, &r.AnalyzedAt, &r.TrendSignal,
			&r.PositionSize, &r.AnnualReturn, &r.SharpeRatio, &r.AnnualVolatility, &r.MaxDrawdown,
			&r.EventScore, &r.RankScore, &r.IsGood)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}
