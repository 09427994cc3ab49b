// Package db provides PostgreSQL-backed session storage.
package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/resume-analyzer/internal/session"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database and ensures the
// session table exists.
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

	db := &DB{pool: pool}
	if err := db.ensureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return db, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

func (db *DB) ensureSchema(ctx context.Context) error {
	_, err := db.pool.Exec(ctx,
		`CREATE TABLE IF NOT EXISTS analysis_sessions (
			id UUID PRIMARY KEY,
			filename TEXT NOT NULL DEFAULT '',
			result JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL,
			expires_at TIMESTAMPTZ NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("failed to create sessions table: %w", err)
	}
	return nil
}

// Save stores or replaces an analysis session.
func (db *DB) Save(ctx context.Context, s *session.Session) error {
	resultJSON, err := json.Marshal(s.Result)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis result: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO analysis_sessions (id, filename, result, created_at, expires_at)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (id) DO UPDATE SET filename = $2, result = $3, created_at = $4, expires_at = $5`,
		s.ID, s.Filename, resultJSON, s.CreatedAt, s.ExpiresAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save session %s: %w", s.ID, err)
	}
	return nil
}

// Get retrieves an analysis session by ID. Returns (nil, nil) when the
// session does not exist or has expired.
func (db *DB) Get(ctx context.Context, id uuid.UUID) (*session.Session, error) {
	var (
		s          session.Session
		resultJSON []byte
	)
	err := db.pool.QueryRow(ctx,
		`SELECT id, filename, result, created_at, expires_at
		 FROM analysis_sessions WHERE id = $1 AND expires_at > NOW()`,
		id,
	).Scan(&s.ID, &s.Filename, &resultJSON, &s.CreatedAt, &s.ExpiresAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get session %s: %w", id, err)
	}

	var result types.AnalysisResult
	if err := json.Unmarshal(resultJSON, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal analysis result for %s: %w", id, err)
	}
	s.Result = &result

	return &s, nil
}

// Delete removes a session. Deleting a missing session is not an error.
func (db *DB) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := db.pool.Exec(ctx, `DELETE FROM analysis_sessions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete session %s: %w", id, err)
	}
	return nil
}

// DeleteExpired removes every expired session and returns how many rows
// were dropped.
func (db *DB) DeleteExpired(ctx context.Context) (int, error) {
	result, err := db.pool.Exec(ctx, `DELETE FROM analysis_sessions WHERE expires_at <= NOW()`)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired sessions: %w", err)
	}
	return int(result.RowsAffected()), nil
}
