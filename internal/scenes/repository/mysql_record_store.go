package repository

import (
	"context"
	"database/sql"
	"time"

	apperrors "github.com/allisson/scenes/internal/errors"
)

// MySQLRecordStore implements scene record persistence for MySQL.
type MySQLRecordStore struct {
	db *sql.DB
}

// NewMySQLRecordStore creates a new MySQLRecordStore.
func NewMySQLRecordStore(db *sql.DB) *MySQLRecordStore {
	return &MySQLRecordStore{db: db}
}

// Get retrieves the record stored at storageKey.
func (m *MySQLRecordStore) Get(ctx context.Context, storageKey string) (string, error) {
	query := `SELECT record FROM scene_records WHERE storage_key = ?`

	var record string
	err := m.db.QueryRowContext(ctx, query, storageKey).Scan(&record)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", apperrors.ErrNotFound
		}
		return "", apperrors.Wrap(err, "failed to get scene record")
	}

	return record, nil
}

// Put stores record at storageKey, replacing any previous value.
// Concurrent puts for the same key are last-write-wins.
func (m *MySQLRecordStore) Put(ctx context.Context, storageKey string, record string) error {
	query := `INSERT INTO scene_records (storage_key, record, created_at, updated_at)
			  VALUES (?, ?, ?, ?)
			  ON DUPLICATE KEY UPDATE record = VALUES(record), updated_at = VALUES(updated_at)`

	now := time.Now().UTC()
	_, err := m.db.ExecContext(ctx, query, storageKey, record, now, now)
	if err != nil {
		return apperrors.Wrap(err, "failed to put scene record")
	}

	return nil
}
