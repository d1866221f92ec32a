// Package repository implements the scene record store against the supported
// key-value backends: PostgreSQL, MySQL, gocloud.dev blob buckets, and an
// in-memory map for tests.
package repository

import (
	"context"
	"sync"

	apperrors "github.com/allisson/scenes/internal/errors"
)

// MemoryRecordStore is an in-memory RecordStore used in tests and local
// development. Safe for concurrent use.
type MemoryRecordStore struct {
	mu      sync.RWMutex
	records map[string]string
}

// NewMemoryRecordStore creates an empty MemoryRecordStore.
func NewMemoryRecordStore() *MemoryRecordStore {
	return &MemoryRecordStore{
		records: make(map[string]string),
	}
}

// Get returns the record at storageKey, or errors.ErrNotFound.
func (m *MemoryRecordStore) Get(ctx context.Context, storageKey string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.records[storageKey]
	if !ok {
		return "", apperrors.ErrNotFound
	}
	return record, nil
}

// Put stores record at storageKey, replacing any previous value.
func (m *MemoryRecordStore) Put(ctx context.Context, storageKey string, record string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.records[storageKey] = record
	return nil
}

// Seed inserts a record directly, bypassing Put. Test helper for staging
// legacy or foreign records.
func (m *MemoryRecordStore) Seed(storageKey, record string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.records[storageKey] = record
}
