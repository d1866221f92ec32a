package repository

import (
	"context"
	"database/sql"
	"time"

	apperrors "github.com/allisson/scenes/internal/errors"
)

// PostgreSQLRecordStore implements scene record persistence for PostgreSQL.
type PostgreSQLRecordStore struct {
	db *sql.DB
}

// NewPostgreSQLRecordStore creates a new PostgreSQLRecordStore.
func NewPostgreSQLRecordStore(db *sql.DB) *PostgreSQLRecordStore {
	return &PostgreSQLRecordStore{db: db}
}

// Get retrieves the record stored at storageKey.
func (p *PostgreSQLRecordStore) Get(ctx context.Context, storageKey string) (string, error) {
	query := `SELECT record FROM scene_records WHERE storage_key = $1`

	var record string
	err := p.db.QueryRowContext(ctx, query, storageKey).Scan(&record)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", apperrors.ErrNotFound
		}
		return "", apperrors.Wrap(err, "failed to get scene record")
	}

	return record, nil
}

// Put stores record at storageKey, replacing any previous value. The upsert
// is a single statement, relying on the database's per-row atomicity; no
// conditional write is offered, so concurrent puts for the same key are
// last-write-wins.
func (p *PostgreSQLRecordStore) Put(ctx context.Context, storageKey string, record string) error {
	query := `INSERT INTO scene_records (storage_key, record, created_at, updated_at)
			  VALUES ($1, $2, $3, $3)
			  ON CONFLICT (storage_key)
			  DO UPDATE SET record = EXCLUDED.record, updated_at = EXCLUDED.updated_at`

	_, err := p.db.ExecContext(ctx, query, storageKey, record, time.Now().UTC())
	if err != nil {
		return apperrors.Wrap(err, "failed to put scene record")
	}

	return nil
}
