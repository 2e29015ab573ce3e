package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	apperrors "breakout-scanner/internal/errors"
	"breakout-scanner/internal/models"
)

// SQLiteStore implements DataStore using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite-based bar cache.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(time.Hour)

	store := &SQLiteStore{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

func (s *SQLiteStore) initSchema() error {
	schema := `
	-- Daily bars keyed by ticker and trading day
	CREATE TABLE IF NOT EXISTS bars (
		ticker TEXT NOT NULL,
		date TEXT NOT NULL,
		close REAL NOT NULL,
		volume INTEGER NOT NULL,
		fetched_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (ticker, date)
	);
	CREATE INDEX IF NOT EXISTS idx_bars_ticker_date ON bars(ticker, date);
	`
	_, err := s.db.Exec(schema)
	return err
}

// GetBars returns cached bars for the ticker within [from, to], ordered by
// date ascending. An empty result is not an error.
func (s *SQLiteStore) GetBars(ctx context.Context, ticker string, from, to time.Time) (models.BarSeries, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT date, close, volume FROM bars
		WHERE ticker = ? AND date >= ? AND date <= ?
		ORDER BY date ASC`,
		ticker, from.Format("2006-01-02"), to.Format("2006-01-02"))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrDatabaseError, err.Error())
	}
	defer rows.Close()

	var bars models.BarSeries
	for rows.Next() {
		var dateStr string
		var bar models.Bar
		if err := rows.Scan(&dateStr, &bar.Close, &bar.Volume); err != nil {
			return nil, apperrors.Wrap(apperrors.ErrDatabaseError, err.Error())
		}
		date, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrDatabaseError, "bad date in cache: "+dateStr)
		}
		bar.Date = date
		bars = append(bars, bar)
	}

	return bars, rows.Err()
}

// SaveBars upserts bars for the ticker in a single transaction.
func (s *SQLiteStore) SaveBars(ctx context.Context, ticker string, bars models.BarSeries) error {
	if len(bars) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrDatabaseError, err.Error())
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO bars (ticker, date, close, volume)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(ticker, date) DO UPDATE SET close = excluded.close, volume = excluded.volume`)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrDatabaseError, err.Error())
	}
	defer stmt.Close()

	for _, bar := range bars {
		if _, err := stmt.ExecContext(ctx, ticker, bar.Date.Format("2006-01-02"), bar.Close, bar.Volume); err != nil {
			return apperrors.Wrap(apperrors.ErrDatabaseError, err.Error())
		}
	}

	return tx.Commit()
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
