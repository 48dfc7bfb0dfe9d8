// Package db provides PostgreSQL persistence for analysis history.
// Persistence is best effort: analysis requests succeed even when the
// database is unavailable, the caller just loses the audit trail.
package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// EnsureSchema creates the analyses table if it does not exist yet.
func (db *DB) EnsureSchema(ctx context.Context) error {
	_, err := db.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS analyses (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			job_url TEXT NOT NULL DEFAULT '',
			source TEXT NOT NULL,
			overall_score INT,
			match_score INT,
			result JSONB,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	if err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}

// SaveAnalysis stores one completed analysis and returns its ID. The
// result is stored as JSONB alongside the score columns used for listing.
func (db *DB) SaveAnalysis(ctx context.Context, input AnalysisInput) (uuid.UUID, error) {
	resultJSON, err := json.Marshal(input.Result)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal analysis result: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO analyses (job_url, source, overall_score, match_score, result)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		input.JobURL, input.Source, input.OverallScore, input.MatchScore, resultJSON,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save analysis: %w", err)
	}
	return id, nil
}

// GetAnalysis retrieves one analysis by ID. Returns nil without error
// when no record exists.
func (db *DB) GetAnalysis(ctx context.Context, id uuid.UUID) (*Analysis, error) {
	var a Analysis
	var resultBytes []byte
	err := db.pool.QueryRow(ctx,
		`SELECT id, job_url, source, overall_score, match_score, result, created_at
		 FROM analyses WHERE id = $1`,
		id,
	).Scan(&a.ID, &a.JobURL, &a.Source, &a.OverallScore, &a.MatchScore, &resultBytes, &a.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}

	if len(resultBytes) > 0 {
		if err := json.Unmarshal(resultBytes, &a.Result); err != nil {
			return nil, fmt.Errorf("failed to decode analysis result: %w", err)
		}
	}
	return &a, nil
}

// AnalysisFilters holds optional filters for listing analyses
type AnalysisFilters struct {
	Source   string
	MinScore *int
	Limit    int
}

// ListAnalyses retrieves recent analyses, newest first. Result payloads
// are omitted from the listing.
func (db *DB) ListAnalyses(ctx context.Context, filters AnalysisFilters) ([]AnalysisSummary, error) {
	if filters.Limit <= 0 {
		filters.Limit = 50
	}

	query := `SELECT id, job_url, source, overall_score, match_score, created_at
		FROM analyses WHERE 1=1`
	args := []any{}
	argNum := 1

	if filters.Source != "" {
		query += fmt.Sprintf(" AND source = $%d", argNum)
		args = append(args, filters.Source)
		argNum++
	}
	if filters.MinScore != nil {
		query += fmt.Sprintf(" AND overall_score >= $%d", argNum)
		args = append(args, *filters.MinScore)
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", argNum)
	args = append(args, filters.Limit)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	var analyses []AnalysisSummary
	for rows.Next() {
		var a AnalysisSummary
		if err := rows.Scan(&a.ID, &a.JobURL, &a.Source, &a.OverallScore, &a.MatchScore, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan analysis: %w", err)
		}
		analyses = append(analyses, a)
	}
	return analyses, nil
}

// DeleteAnalysis removes one analysis record
func (db *DB) DeleteAnalysis(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM analyses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete analysis: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("analysis not found: %s", id)
	}
	return nil
}
