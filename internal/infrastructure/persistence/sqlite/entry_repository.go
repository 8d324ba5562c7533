// Package sqlite persists risk entries in a local SQLite database through the
// pure-Go glebarez driver.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/glebarez/go-sqlite"
	"github.com/shopspring/decimal"

	"github.com/khanhnv2901/crowdrisk/internal/domain/entry"
	"github.com/khanhnv2901/crowdrisk/internal/shared/constants"
	sharedErrors "github.com/khanhnv2901/crowdrisk/internal/shared/errors"
	"github.com/khanhnv2901/crowdrisk/internal/shared/security"
)

const schema = `
	CREATE TABLE IF NOT EXISTS crypto_risk_entries (
		entry_id INTEGER PRIMARY KEY AUTOINCREMENT,
		cryptocurrency TEXT NOT NULL,
		risk_level TEXT NOT NULL,
		reporter TEXT NOT NULL,
		report_date TEXT NOT NULL,
		description TEXT,
		market_cap REAL,
		volatility_index REAL,
		crowd_sentiment TEXT,
		risk_score REAL
	);
`

const selectColumns = `SELECT entry_id, cryptocurrency, risk_level, reporter, report_date,
	description, market_cap, volatility_index, crowd_sentiment, risk_score
	FROM crypto_risk_entries`

const orderNewestFirst = ` ORDER BY report_date DESC, entry_id DESC`

// EntryRepository implements the entry.Repository interface using SQLite storage
type EntryRepository struct {
	db *sql.DB
}

var _ entry.Repository = (*EntryRepository)(nil)

// NewEntryRepository opens (creating if needed) the database at dbPath with
// WAL mode enabled.
func NewEntryRepository(dbPath string) (*EntryRepository, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("%w: database path cannot be empty", sharedErrors.ErrInvalidInput)
	}
	if !security.IsValidPath(dbPath) {
		return nil, fmt.Errorf("%w: invalid database path: %s", sharedErrors.ErrInvalidInput, dbPath)
	}

	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, constants.DefaultDirPerm); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}
	// Single writer; avoids SQLITE_BUSY between pooled connections.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA cache_size=-2000;",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to set pragma %s: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create crypto_risk_entries table: %w", err)
	}

	return &EntryRepository{db: db}, nil
}

// Add persists a new entry. The score is always recomputed from the entry's
// inputs; whatever score the entry carried is discarded.
func (r *EntryRepository) Add(ctx context.Context, e *entry.Entry) (*entry.Entry, error) {
	if e == nil {
		return nil, fmt.Errorf("%w: entry cannot be nil", sharedErrors.ErrInvalidInput)
	}

	stored := e.WithID(0)
	stored.Rescore()

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO crypto_risk_entries
		(cryptocurrency, risk_level, reporter, report_date, description,
		 market_cap, volatility_index, crowd_sentiment, risk_score)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		stored.Cryptocurrency(),
		string(stored.RiskLevel()),
		stored.Reporter(),
		stored.ReportDate().Format(entry.DateLayout),
		stored.Description(),
		stored.MarketCap(),
		stored.Volatility(),
		nullableSentiment(stored.Sentiment()),
		stored.Score(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to insert entry: %w", sharedErrors.ErrRepositoryOperation, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read entry id: %w", sharedErrors.ErrRepositoryOperation, err)
	}

	return stored.WithID(id), nil
}

// FindByID retrieves an entry by its ID
func (r *EntryRepository) FindByID(ctx context.Context, id int64) (*entry.Entry, error) {
	if id <= 0 {
		return nil, sharedErrors.ErrInvalidEntryID
	}

	row := r.db.QueryRowContext(ctx, selectColumns+` WHERE entry_id = ?`, id)
	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sharedErrors.ErrEntryNotFound
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

// FindAll retrieves all entries, newest report first
func (r *EntryRepository) FindAll(ctx context.Context) ([]*entry.Entry, error) {
	return r.query(ctx, selectColumns+orderNewestFirst)
}

// FindByCryptocurrency retrieves entries for a cryptocurrency, matching the
// name case-insensitively
func (r *EntryRepository) FindByCryptocurrency(ctx context.Context, name string) ([]*entry.Entry, error) {
	return r.query(ctx, selectColumns+` WHERE cryptocurrency = ? COLLATE NOCASE`+orderNewestFirst, name)
}

// Aggregate computes count, average score and per-level counts for a cryptocurrency
func (r *EntryRepository) Aggregate(ctx context.Context, name string) (entry.Aggregate, error) {
	agg := entry.Aggregate{
		Cryptocurrency: name,
		LevelCounts:    make(map[entry.RiskLevel]int, len(entry.RiskLevels)),
	}
	for _, level := range entry.RiskLevels {
		agg.LevelCounts[level] = 0
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT risk_level, COUNT(*), COALESCE(SUM(risk_score), 0)
		FROM crypto_risk_entries
		WHERE cryptocurrency = ? COLLATE NOCASE
		GROUP BY risk_level`, name)
	if err != nil {
		return entry.Aggregate{}, fmt.Errorf("%w: failed to aggregate entries: %w", sharedErrors.ErrRepositoryOperation, err)
	}
	defer rows.Close()

	total := decimal.Zero
	for rows.Next() {
		var (
			level string
			count int
			sum   float64
		)
		if err := rows.Scan(&level, &count, &sum); err != nil {
			return entry.Aggregate{}, fmt.Errorf("%w: failed to scan aggregate: %w", sharedErrors.ErrRepositoryOperation, err)
		}
		agg.LevelCounts[entry.RiskLevel(level)] += count
		agg.Count += count
		total = total.Add(decimal.NewFromFloat(sum))
	}
	if err := rows.Err(); err != nil {
		return entry.Aggregate{}, fmt.Errorf("%w: rows iteration error: %w", sharedErrors.ErrRepositoryOperation, err)
	}

	if agg.Count > 0 {
		agg.AverageScore, _ = total.Div(decimal.NewFromInt(int64(agg.Count))).Round(2).Float64()
	}
	return agg, nil
}

// Delete removes an entry by its ID
func (r *EntryRepository) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return sharedErrors.ErrInvalidEntryID
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM crypto_risk_entries WHERE entry_id = ?`, id)
	if err != nil {
		return fmt.Errorf("%w: failed to delete entry: %w", sharedErrors.ErrRepositoryOperation, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: failed to read affected rows: %w", sharedErrors.ErrRepositoryOperation, err)
	}
	if affected == 0 {
		return sharedErrors.ErrEntryNotFound
	}
	return nil
}

// Close closes the database connection.
func (r *EntryRepository) Close() error {
	return r.db.Close()
}

func (r *EntryRepository) query(ctx context.Context, query string, args ...any) ([]*entry.Entry, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query entries: %w", sharedErrors.ErrRepositoryOperation, err)
	}
	defer rows.Close()

	entries := []*entry.Entry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: rows iteration error: %w", sharedErrors.ErrRepositoryOperation, err)
	}
	return entries, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(s scanner) (*entry.Entry, error) {
	var (
		id          int64
		crypto      string
		level       string
		reporter    string
		reportDate  string
		description sql.NullString
		marketCap   sql.NullFloat64
		volatility  sql.NullFloat64
		sentiment   sql.NullString
		score       sql.NullFloat64
	)
	if err := s.Scan(&id, &crypto, &level, &reporter, &reportDate,
		&description, &marketCap, &volatility, &sentiment, &score); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: failed to scan entry: %w", sharedErrors.ErrDeserializationFailed, err)
	}

	date, err := time.Parse(entry.DateLayout, reportDate)
	if err != nil {
		return nil, fmt.Errorf("%w: entry %d has invalid report date %q", sharedErrors.ErrInvalidData, id, reportDate)
	}

	return entry.Reconstruct(id, entry.Params{
		Cryptocurrency: crypto,
		RiskLevel:      entry.RiskLevel(level),
		Reporter:       reporter,
		ReportDate:     date,
		Description:    description.String,
		MarketCap:      marketCap.Float64,
		Volatility:     volatility.Float64,
		Sentiment:      entry.Sentiment(sentiment.String),
	}, score.Float64), nil
}

func nullableSentiment(s entry.Sentiment) sql.NullString {
	if s == entry.SentimentUnspecified {
		return sql.NullString{}
	}
	return sql.NullString{String: string(s), Valid: true}
}
