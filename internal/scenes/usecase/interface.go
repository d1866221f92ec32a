// Package usecase implements business logic orchestration for scene preset
// sync: per-user key derivation, payload sealing, and reads/writes against
// the record store, including the legacy plaintext fallback.
package usecase

import (
	"context"

	scenesDomain "github.com/allisson/scenes/internal/scenes/domain"
)

// SceneUseCase defines the two operations the transport layer consumes.
type SceneUseCase interface {
	// Fetch returns the stored scenes for identity. Absence, corruption, and
	// backend read failures all degrade to an empty payload; Fetch only
	// reports errors that should fail the request, which in the current
	// design is never.
	Fetch(ctx context.Context, identity string) (scenesDomain.ScenesPayload, error)

	// Save validates, seals, and writes the payload as a full replacement of
	// the identity's record. Returns a validation error for payloads over the
	// item or size limits, or a store error if the backend write fails.
	Save(ctx context.Context, identity string, payload scenesDomain.ScenesPayload) error
}

// RecordStore is the key-value backend holding one record per storage key.
//
// Get returns errors.ErrNotFound when no record exists for the key. Put is a
// full replacement of whatever the key held before; the store is not required
// to offer conditional writes, so concurrent saves for the same key race and
// the last write wins.
type RecordStore interface {
	Get(ctx context.Context, storageKey string) (string, error)
	Put(ctx context.Context, storageKey string, record string) error
}
