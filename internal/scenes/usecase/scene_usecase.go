package usecase

import (
	"context"
	"encoding/json"
	"log/slog"

	cryptoService "github.com/allisson/scenes/internal/crypto/service"
	apperrors "github.com/allisson/scenes/internal/errors"
	scenesDomain "github.com/allisson/scenes/internal/scenes/domain"
)

// sceneUseCase implements the SceneUseCase interface.
//
// Everything is re-derived from the identity on each call: the storage key,
// the legacy storage key, and the encryption key. No identity material or
// plaintext is cached between requests.
type sceneUseCase struct {
	store  RecordStore
	sealer cryptoService.Sealer
	logger *slog.Logger
}

// NewSceneUseCase creates a SceneUseCase backed by the given record store.
func NewSceneUseCase(store RecordStore, sealer cryptoService.Sealer, logger *slog.Logger) SceneUseCase {
	return &sceneUseCase{
		store:  store,
		sealer: sealer,
		logger: logger,
	}
}

// Fetch retrieves the scenes for identity.
//
// Lookup order: current (hashed) storage key first, then the legacy raw-identity
// key for records written before key hashing was introduced. A legacy hit is
// never written back under the current key here; migration happens passively on
// the next successful Save.
//
// Fail-soft policy: a missing record, an undecryptable or unparseable record,
// and a backend read failure all return an empty payload instead of an error.
// A locked-out user with an empty scene list beats a hard failure for data
// that may be legitimately foreign (wrong key generation, manual tampering,
// version skew). Each degraded path is logged distinctly so operators can
// tell drift from genuine absence.
func (s *sceneUseCase) Fetch(ctx context.Context, identity string) (scenesDomain.ScenesPayload, error) {
	storageKey := cryptoService.StorageKeyFor(identity)

	raw, err := s.store.Get(ctx, storageKey)
	if apperrors.Is(err, apperrors.ErrNotFound) {
		raw, err = s.store.Get(ctx, cryptoService.LegacyStorageKeyFor(identity))
	}
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			return scenesDomain.EmptyPayload(), nil
		}
		s.logger.Error("scene record read failed",
			slog.String("storage_key", storageKey),
			slog.Any("error", err))
		return scenesDomain.EmptyPayload(), nil
	}

	data := []byte(raw)
	if cryptoService.IsEncrypted(raw) {
		data, err = s.sealer.Open(raw, cryptoService.EncryptionKeyFor(identity))
		if err != nil {
			s.logger.Warn("corrupt scene record",
				slog.String("storage_key", storageKey),
				slog.Any("error", err))
			return scenesDomain.EmptyPayload(), nil
		}
	}

	var payload scenesDomain.ScenesPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		s.logger.Warn("unparseable scene record",
			slog.String("storage_key", storageKey),
			slog.Any("error", err))
		return scenesDomain.EmptyPayload(), nil
	}
	if payload.Scenes == nil {
		payload.Scenes = []json.RawMessage{}
	}

	return payload, nil
}

// Save validates the payload, seals it under the identity's derived key, and
// writes it under the current storage key as a full snapshot replacement.
//
// The limits are re-checked here even though the transport layer validates
// the request body: the use case owns the constraints, the handler only
// front-runs them. Write failures are surfaced to the caller; unlike reads,
// losing visibility into a failed write risks silent data loss.
func (s *sceneUseCase) Save(
	ctx context.Context,
	identity string,
	payload scenesDomain.ScenesPayload,
) error {
	if payload.Scenes == nil {
		return scenesDomain.ErrMissingScenes
	}
	if len(payload.Scenes) > scenesDomain.MaxScenes {
		return scenesDomain.ErrTooManyScenes
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return apperrors.Wrap(err, "failed to serialize scenes payload")
	}
	if len(data) > scenesDomain.MaxPayloadBytes {
		return scenesDomain.ErrPayloadTooLarge
	}

	blob, err := s.sealer.Seal(data, cryptoService.EncryptionKeyFor(identity))
	if err != nil {
		return apperrors.Wrap(err, "failed to seal scenes payload")
	}

	storageKey := cryptoService.StorageKeyFor(identity)
	if err := s.store.Put(ctx, storageKey, blob); err != nil {
		return apperrors.Wrap(err, "failed to write scene record")
	}

	return nil
}
